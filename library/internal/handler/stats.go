package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) LoanStats(c echo.Context) error {
	series, err := h.librarySvc.LoansByDate(c.Request().Context(), session(c))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, series)
}

func (h *Handler) ReturnStats(c echo.Context) error {
	series, err := h.librarySvc.ReturnsByDate(c.Request().Context(), session(c))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, series)
}

func (h *Handler) ActivityStats(c echo.Context) error {
	series, err := h.librarySvc.ActivityByDate(c.Request().Context(), session(c))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, series)
}
