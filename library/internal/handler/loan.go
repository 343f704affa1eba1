package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-engine/library/internal/model"
)

func (h *Handler) IssueBook(c echo.Context) error {
	var req model.IssueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	resp, err := h.librarySvc.IssueBook(c.Request().Context(), session(c), req.BookID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) ReturnLoan(c echo.Context) error {
	loanID, err := strconv.Atoi(c.Param("loanId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "loanId is invalid")
	}
	if err := h.librarySvc.ReturnLoan(c.Request().Context(), session(c), loanID); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListLoans(c echo.Context) error {
	loans, err := h.librarySvc.ListLoans(c.Request().Context(), session(c))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) ListReturns(c echo.Context) error {
	returns, err := h.librarySvc.ListReturns(c.Request().Context(), session(c))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, returns)
}
