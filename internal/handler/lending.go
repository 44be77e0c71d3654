package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/booklandia/lending-service/internal/errs"
	"github.com/booklandia/lending-service/internal/model"
)

// The handlers own authorization: the state machine below assumes the actor
// was already checked against the status owner.

func (h *Handler) RequestBook(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	bookID, err := pathInt(c, "bookID")
	if err != nil {
		return err
	}
	ownerID, err := pathInt(c, "ownerID")
	if err != nil {
		return err
	}

	if err := h.svc.RequestBook(c.Request().Context(), bookID, ownerID, id.UserID); err != nil {
		return lendingError(err)
	}
	return c.NoContent(http.StatusCreated)
}

func (h *Handler) ApproveRequest(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	bookID, err := pathInt(c, "bookID")
	if err != nil {
		return err
	}
	ownerID, err := pathInt(c, "ownerID")
	if err != nil {
		return err
	}
	if id.UserID != ownerID {
		return echo.NewHTTPError(http.StatusForbidden, "only the owner may approve")
	}

	if err := h.svc.ApproveRequest(c.Request().Context(), bookID, ownerID); err != nil {
		return lendingError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) RejectRequest(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	bookID, err := pathInt(c, "bookID")
	if err != nil {
		return err
	}
	ownerID, err := pathInt(c, "ownerID")
	if err != nil {
		return err
	}
	if id.UserID != ownerID {
		return echo.NewHTTPError(http.StatusForbidden, "only the owner may reject")
	}

	if err := h.svc.RejectRequest(c.Request().Context(), bookID, ownerID); err != nil {
		return lendingError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	bookID, err := pathInt(c, "bookID")
	if err != nil {
		return err
	}
	var req model.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.svc.UpdateStatus(c.Request().Context(), bookID, id.UserID, req.Location, req.Condition); err != nil {
		return lendingError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) RemoveFromShelf(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	bookID, err := pathInt(c, "bookID")
	if err != nil {
		return err
	}

	if err := h.svc.RemoveFromShelf(c.Request().Context(), bookID, id.UserID); err != nil {
		return lendingError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) Requests(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	view, err := h.svc.Requests(c.Request().Context(), id.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, view)
}

func lendingError(err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
