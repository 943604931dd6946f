package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"bazar.GO/api"
	catalogStore "bazar.GO/catalog"
	"bazar.GO/config"
	"bazar.GO/core/cache"
)

func init() {
	api.RegisterModule(RegisterCatalogRoutes)
}

const (
	cacheKeyData = "catalog:data"
	cacheTag     = "catalog"
	cacheTTL     = 300 // seconds
)

// marshaledDocument returns the JSON payload for the full catalog,
// preferring Redis, then the in-process cache, then marshaling fresh.
func marshaledDocument(store *catalogStore.Store) ([]byte, error) {
	if config.RedisClient != nil {
		if raw, err := config.RedisClient.Get(config.RedisCtx(), cacheKeyData).Bytes(); err == nil {
			return raw, nil
		}
	}
	if v, ok := cache.GetInstance().Get(cacheKeyData); ok {
		if raw, isBytes := v.([]byte); isBytes {
			return raw, nil
		}
	}

	doc, err := store.Document()
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	cache.GetInstance().Set(cacheKeyData, raw, cacheTTL, []string{cacheTag})
	if config.RedisClient != nil {
		config.RedisClient.Set(config.RedisCtx(), cacheKeyData, raw, cacheTTL*time.Second)
	}
	return raw, nil
}

// InvalidateCache drops cached catalog payloads. The reload job calls this
// after swapping in a fresh document.
func InvalidateCache() {
	cache.GetInstance().DeleteByTag(cacheTag)
	if config.RedisClient != nil {
		config.RedisClient.Del(config.RedisCtx(), cacheKeyData)
	}
}

func RegisterCatalogRoutes(apiGroup *echo.Group, deps api.Deps) {
	// GET /api/data – the full catalog document, fetched once by clients
	// at startup.
	apiGroup.GET("/data", func(c echo.Context) error {
		start := time.Now()
		raw, err := marshaledDocument(deps.Catalog)
		if err != nil {
			if errors.Is(err, catalogStore.ErrNotLoaded) {
				return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "catalog not available"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		c.Response().Header().Set("X-Request-Duration-ms",
			strconv.FormatInt(time.Since(start).Milliseconds(), 10))
		return c.JSONBlob(http.StatusOK, raw)
	})

	// GET /api/categories/:id – top-level category or subcategory by id.
	apiGroup.GET("/categories/:id", func(c echo.Context) error {
		cat, err := deps.Catalog.FindCategory(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Category not found"})
		}
		return c.JSON(http.StatusOK, cat)
	})

	// GET /api/categories/:id/products/:pid – product within a category.
	apiGroup.GET("/categories/:id/products/:pid", func(c echo.Context) error {
		cat, err := deps.Catalog.FindCategory(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Category not found"})
		}
		pid := c.Param("pid")
		for _, item := range cat.Items {
			if item.ID == pid {
				return c.JSON(http.StatusOK, item)
			}
		}
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
	})
}
