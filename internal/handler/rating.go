package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/booklandia/lending-service/internal/errs"
	"github.com/booklandia/lending-service/internal/model"
)

func (h *Handler) RateBook(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	bookID, err := pathInt(c, "bookID")
	if err != nil {
		return err
	}
	var req model.RatingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	avg, err := h.svc.SubmitBookRating(c.Request().Context(), bookID, id.UserID, req.Rating, req.Review)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, model.RatingResponse{AvgRating: avg})
}

func (h *Handler) RateLender(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return err
	}
	lenderID, err := pathInt(c, "lenderID")
	if err != nil {
		return err
	}
	var req model.RatingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	avg, err := h.svc.SubmitLenderRating(c.Request().Context(), lenderID, id.UserID, req.Rating, req.Review)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotBorrowed):
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, model.RatingResponse{AvgRating: avg})
}
