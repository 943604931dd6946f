//go:build !cli
// +build !cli

package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"bazar.GO/api"
	"bazar.GO/catalog"
	"bazar.GO/config"
	"bazar.GO/cron/jobs"
	kvRepo "bazar.GO/model/repository/kv"
	orderRepo "bazar.GO/model/repository/order"

	catalogApi "bazar.GO/api/catalog"
	_ "bazar.GO/api/cart"
	_ "bazar.GO/api/graphql"
	_ "bazar.GO/api/lang"
	_ "bazar.GO/api/order"
	_ "bazar.GO/api/search"
)

func getAuthMiddleware() echo.MiddlewareFunc {
	skipPaths := config.GetAuthSkipperPaths()
	skipper := func(c echo.Context) bool {
		path := c.Path()
		for _, skip := range skipPaths {
			if path == skip {
				return true
			}
		}
		return false
	}
	authType := os.Getenv("AUTH_TYPE")
	switch authType {
	case "key":
		apiKey := os.Getenv("API_KEY")
		return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
			Validator: func(key string, c echo.Context) (bool, error) {
				return key == apiKey, nil
			},
			Skipper: skipper,
		})
	default:
		return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
			Validator: func(username, password string, c echo.Context) (bool, error) {
				return username == os.Getenv("API_USER") && password == os.Getenv("API_PASS"), nil
			},
			Skipper: skipper,
		})
	}
}

func main() {
	config.LoadEnv()
	config.LoadAppConfig()
	// Initialize Redis
	config.InitRedis()
	redisStatus := "Redis not configured or not reachable, caching disabled."
	if config.RedisClient != nil {
		err := config.RedisClient.Ping(config.RedisCtx()).Err()
		if err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil // Disable Redis if not reachable
			redisStatus = "Redis configured but not reachable, caching disabled."
		}
	}
	log.Println(redisStatus)

	db, err := config.NewDB()
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := kvRepo.NewKVRepository(db).Migrate(); err != nil {
		log.Fatalf("kv storage migration failed: %v", err)
	}
	if err := orderRepo.NewOrderRepository(db).Migrate(); err != nil {
		log.Fatalf("order log migration failed: %v", err)
	}
	log.Println("Database connection successful.")

	// Load the catalog once at startup. A failed load is not fatal: every
	// catalog-dependent operation degrades to empty results until the
	// reload job or a restart brings the document in.
	store := catalog.NewStore()
	if err := store.LoadFile(config.AppConfig.CatalogPath); err != nil {
		log.Printf("catalog load failed, serving without catalog: %v", err)
	}
	jobs.Init(store, db, config.AppConfig.CatalogPath, catalogApi.InvalidateCache)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			return err
		}
	})

	e.Static("/static", config.AppConfig.StaticDir)

	deps := api.Deps{Catalog: store, DB: db}

	apiGroup := e.Group("/api")
	apiGroup.Use(getAuthMiddleware())
	api.ApplyModules(apiGroup, deps)
	api.ApplyRoutes(e, deps)

	port := config.AppConfig.Port
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on :%s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
