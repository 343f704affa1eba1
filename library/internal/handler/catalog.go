package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-engine/library/internal/model"
)

func (h *Handler) ListBooks(c echo.Context) error {
	books, err := h.librarySvc.ListBooks(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) SearchBooks(c echo.Context) error {
	field := model.SearchField(c.QueryParam("field"))
	if field == "" {
		field = model.SearchByAuthors
	}
	books, err := h.librarySvc.SearchBooks(c.Request().Context(), c.QueryParam("keyword"), field)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) Availability(c echo.Context) error {
	items, err := h.librarySvc.Availability(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) PopularBooks(c echo.Context) error {
	n, err := countParam(c, "n", defaultRecommendations)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	books, err := h.librarySvc.PopularityRecommendations(c.Request().Context(), n)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) RandomBooks(c echo.Context) error {
	n, err := countParam(c, "n", defaultRecommendations)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	books, err := h.librarySvc.RandomRecommendations(c.Request().Context(), session(c), n)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// ReloadCatalog accepts the CSV either as the raw body or as the "file" part
// of a multipart form.
func (h *Handler) ReloadCatalog(c echo.Context) error {
	var src io.Reader = c.Request().Body
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		fh, err := c.FormFile("file")
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		f, err := fh.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		defer f.Close()
		src = f
	}
	res, err := h.librarySvc.ReloadCatalog(c.Request().Context(), session(c), src)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}
