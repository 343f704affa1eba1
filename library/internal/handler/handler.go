package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-engine/library/internal/errs"
	"github.com/Astemirdum/library-engine/pkg/auth"
	md "github.com/Astemirdum/library-engine/pkg/middleware"
	"github.com/Astemirdum/library-engine/pkg/validate"
)

type Handler struct {
	librarySvc LibraryService
	issuer     TokenIssuer
	log        *zap.Logger
}

func New(librarySvc LibraryService, issuer TokenIssuer, log *zap.Logger) *Handler {
	return &Handler{
		librarySvc: librarySvc,
		issuer:     issuer,
		log:        log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost},
		AllowHeaders:     []string{echo.HeaderAuthorization, echo.HeaderContentType},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.Session(h.issuer),
		md.NewRateLimiter(apiRPS),
	)

	var (
		anyone    = md.RequireRole(auth.RoleStudent, auth.RoleStaff)
		student   = md.RequireRole(auth.RoleStudent)
		staffOnly = md.RequireRole(auth.RoleStaff)
	)

	api.POST("/students", h.RegisterStudent)
	api.POST("/staff", h.RegisterStaff)
	api.POST("/students/login", h.LoginStudent)
	api.POST("/staff/login", h.LoginStaff)
	api.GET("/students", h.ListStudents, staffOnly)

	books := api.Group("/books", anyone)
	books.GET("", h.ListBooks)
	books.GET("/search", h.SearchBooks)
	books.GET("/availability", h.Availability)
	books.GET("/recommendations/popular", h.PopularBooks)
	books.GET("/recommendations/random", h.RandomBooks)
	api.POST("/catalog/reload", h.ReloadCatalog, staffOnly)

	api.POST("/loans", h.IssueBook, student)
	api.POST("/loans/:loanId/return", h.ReturnLoan, anyone)
	api.GET("/loans", h.ListLoans, anyone)
	api.GET("/returns", h.ListReturns, staffOnly)

	stats := api.Group("/stats", staffOnly)
	stats.GET("/loans", h.LoanStats)
	stats.GET("/returns", h.ReturnStats)
	stats.GET("/activity", h.ActivityStats)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps store and service errors onto HTTP statuses.
func (h *Handler) httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrDuplicateKey), errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrInvalidField), errors.Is(err, errs.ErrMalformedSource):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	}
	h.log.Error("internal", zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

const defaultRecommendations = 5

// countParam reads a non-negative integer query parameter.
func countParam(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, errors.Errorf("%s is invalid", name)
	}
	return n, nil
}

func session(c echo.Context) auth.Session {
	return auth.GetSession(c.Request().Context())
}
