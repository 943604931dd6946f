package search

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"bazar.GO/api"
	"bazar.GO/catalog"
	"bazar.GO/catalog/search"
)

func init() {
	api.RegisterModule(RegisterSearchRoutes)
}

// response keeps the JSON arrays non-null for clients.
type response struct {
	Categories []catalog.IndexedSubcategory `json:"categories"`
	Products   []catalog.IndexedProduct     `json:"products"`
}

func RegisterSearchRoutes(apiGroup *echo.Group, deps api.Deps) {
	// GET /api/search?q= – live suggestions. An empty query or an absent
	// catalog both degrade to empty arrays; the client hides the panel.
	apiGroup.GET("/search", func(c echo.Context) error {
		start := time.Now()
		empty := response{
			Categories: []catalog.IndexedSubcategory{},
			Products:   []catalog.IndexedProduct{},
		}

		idx, err := deps.Catalog.Index()
		if err != nil {
			return c.JSON(http.StatusOK, empty)
		}
		res, err := search.Match(c.QueryParam("q"), idx)
		if err != nil {
			if errors.Is(err, search.ErrEmptyQuery) {
				return c.JSON(http.StatusOK, empty)
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		out := response{Categories: res.Subcategories, Products: res.Products}
		if out.Categories == nil {
			out.Categories = empty.Categories
		}
		if out.Products == nil {
			out.Products = empty.Products
		}
		c.Response().Header().Set("X-Request-Duration-ms",
			strconv.FormatInt(time.Since(start).Milliseconds(), 10))
		return c.JSON(http.StatusOK, out)
	})
}
