package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"instock/internal/caching"
	"instock/internal/handlers"
	"instock/internal/jobs"
	"instock/internal/jobs/background"
	"instock/internal/repositories"
	"instock/internal/services"
	"instock/pkg/database"
)

func main() {
	// Database connection
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := database.NewPool(context.Background(), databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Redis configuration
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := 0
	if redisDBStr := os.Getenv("REDIS_DB"); redisDBStr != "" {
		if db, err := strconv.Atoi(redisDBStr); err == nil {
			redisDB = db
		}
	}

	cacheSvc := caching.NewRedisCacheService(redisAddr, redisPassword, redisDB)

	// Repositories and services
	warehouseRepo := repositories.NewWarehouseRepository(pool)
	inventoryRepo := repositories.NewInventoryRepository(pool)

	warehouseSvc := services.NewWarehouseService(warehouseRepo, inventoryRepo, cacheSvc)
	inventorySvc := services.NewInventoryService(inventoryRepo, warehouseRepo, cacheSvc)

	// Background low-stock scan
	threshold := 0
	if thresholdStr := os.Getenv("LOW_STOCK_THRESHOLD"); thresholdStr != "" {
		if t, err := strconv.Atoi(thresholdStr); err == nil {
			threshold = t
		}
	}
	lowStockSvc := jobs.NewLowStockService(inventoryRepo, threshold)
	scheduler, err := background.NewJobScheduler(lowStockSvc)
	if err != nil {
		log.Fatalf("Failed to create job scheduler: %v", err)
	}
	scheduler.Start()
	defer func() {
		if err := scheduler.Shutdown(); err != nil {
			log.Printf("Scheduler shutdown failed: %v", err)
		}
	}()

	// Handlers
	warehouseHandlers := handlers.NewWarehouseHandlers(warehouseSvc)
	inventoryHandlers := handlers.NewInventoryHandlers(inventorySvc)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc)

	// Create Echo instance
	e := echo.New()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin != "" {
		e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
			AllowOrigins: []string{corsOrigin},
		}))
	} else {
		e.Use(echoMiddleware.CORS())
	}

	// Health endpoints
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	// API routes
	api := e.Group("/api")

	api.GET("/warehouses", warehouseHandlers.ListWarehouses)
	api.GET("/warehouses/search", warehouseHandlers.SearchWarehouses)
	api.GET("/warehouses/:id", warehouseHandlers.GetWarehouse)
	api.POST("/warehouses", warehouseHandlers.CreateWarehouse)
	api.PUT("/warehouses/:id", warehouseHandlers.UpdateWarehouse)
	api.DELETE("/warehouses/:id", warehouseHandlers.DeleteWarehouse)
	api.GET("/warehouses/:id/inventories", warehouseHandlers.ListWarehouseInventories)

	api.GET("/inventories", inventoryHandlers.ListInventories)
	api.GET("/inventories/search", inventoryHandlers.SearchInventories)
	api.GET("/inventories/:id", inventoryHandlers.GetInventory)
	api.POST("/inventories", inventoryHandlers.CreateInventory)
	api.PUT("/inventories/:id", inventoryHandlers.UpdateInventory)
	api.DELETE("/inventories/:id", inventoryHandlers.DeleteInventory)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", port)))
}
