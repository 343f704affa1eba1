package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-engine/library/internal/errs"
	"github.com/Astemirdum/library-engine/library/internal/model"
)

func (h *Handler) RegisterStudent(c echo.Context) error {
	return h.register(c, h.librarySvc.RegisterStudent)
}

func (h *Handler) RegisterStaff(c echo.Context) error {
	return h.register(c, h.librarySvc.RegisterStaff)
}

type registerFunc = func(ctx context.Context, req model.RegisterRequest) error

func (h *Handler) register(c echo.Context, register registerFunc) error {
	var req model.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := register(c.Request().Context(), req); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusCreated)
}

func (h *Handler) LoginStudent(c echo.Context) error {
	return h.login(c, h.librarySvc.AuthenticateStudent)
}

func (h *Handler) LoginStaff(c echo.Context) error {
	return h.login(c, h.librarySvc.AuthenticateStaff)
}

type authenticateFunc = func(ctx context.Context, req model.LoginRequest) (model.Account, error)

func (h *Handler) login(c echo.Context, authenticate authenticateFunc) error {
	var req model.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	acc, err := authenticate(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, errs.ErrUnauthorized.Error())
		}
		return h.httpError(err)
	}
	token, err := h.issuer.Issue(acc.Session())
	if err != nil {
		h.log.Error("issue token", zap.String("id", acc.ID), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, token)
}

func (h *Handler) ListStudents(c echo.Context) error {
	students, err := h.librarySvc.ListStudents(c.Request().Context(), session(c))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, students)
}
