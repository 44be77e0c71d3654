package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/booklandia/lending-service/internal/errs"
	"github.com/booklandia/lending-service/internal/model"
	"github.com/booklandia/lending-service/pkg/auth"
)

func (h *Handler) SearchCatalog(c echo.Context) error {
	title := c.QueryParam("title")
	author := c.QueryParam("author")

	entries, err := h.svc.SearchCatalog(c.Request().Context(), title, author)
	if err != nil {
		if errors.Is(err, errs.ErrUpstreamUnavailable) {
			return echo.NewHTTPError(http.StatusBadGateway, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *Handler) AddToShelf(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	var req model.AddShelfRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.svc.AddToShelf(c.Request().Context(), req.Key, id.UserID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusCreated)
}

func (h *Handler) Shelf(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	items, err := h.svc.Shelf(c.Request().Context(), id.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) SearchShelves(c echo.Context) error {
	term := c.QueryParam("term")
	if term == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "term is required")
	}
	items, err := h.svc.SearchShelves(c.Request().Context(), term)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) BookInfo(c echo.Context) error {
	bookID, err := pathInt(c, "bookID")
	if err != nil {
		return err
	}
	info, err := h.svc.BookInfo(c.Request().Context(), bookID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, info)
}

// identity pulls the authenticated actor set by the JWT middleware.
func identity(c echo.Context) (auth.Identity, error) {
	id, ok := auth.FromContext(c.Request().Context())
	if !ok {
		return auth.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "no identity")
	}
	return id, nil
}

func pathInt(c echo.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return v, nil
}
