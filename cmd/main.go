package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"seller-insights-service/internal/clients"
	"seller-insights-service/internal/config"
	"seller-insights-service/internal/handlers"
	"seller-insights-service/internal/middleware"
	"seller-insights-service/internal/repository"
	"seller-insights-service/internal/store"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg := config.Load()

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Environment == "production" {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(logrus.DebugLevel)
	}

	// Initialize Redis client
	var redisClient *redis.Client
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Printf("WARNING: Failed to parse Redis URL: %v (continuing without Redis)", err)
	} else {
		redisClient = redis.NewClient(redisOpts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("WARNING: Failed to connect to Redis: %v (caching will be disabled)", err)
			redisClient = nil
		} else {
			log.Println("✓ Redis connected successfully")
		}
		cancel()
	}

	// Initialize marketplace clients
	catalogClient := clients.NewCatalogClient(cfg.BrandID)
	sellerClient := clients.NewSellerClient(cfg.SellerID)
	legalClient := clients.NewLegalClient(cfg.SellerID)
	favoritesClient := clients.NewFavoritesClient(cfg.BrandID)

	// Initialize local analytics export store
	analyticsStore := store.NewAnalyticsStore(cfg.AnalyticsExportPath)

	// Initialize snapshot repository
	snapshotRepo := repository.NewSnapshotRepository(
		catalogClient,
		sellerClient,
		legalClient,
		favoritesClient,
		analyticsStore,
		redisClient,
		logger,
	)

	// Warm start from the cached snapshot, then try a live refresh
	if snapshotRepo.RestoreCached(context.Background()) {
		log.Println("✓ Snapshot restored from cache")
	}
	if cfg.RefreshOnStart {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		if _, err := snapshotRepo.Refresh(ctx); err != nil {
			log.Printf("WARNING: Initial refresh failed: %v (serving cached data if available)", err)
		} else {
			log.Println("✓ Initial snapshot built")
		}
		cancel()
	}

	// Initialize handlers
	productsHandler := handlers.NewProductsHandler(snapshotRepo, logger)
	chartsHandler := handlers.NewChartsHandler(snapshotRepo)
	sellerHandler := handlers.NewSellerHandler(snapshotRepo, logger)

	// Initialize Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS())

	// Health check endpoints
	router.GET("/health", handlers.HealthCheck)
	router.GET("/ready", handlers.HealthCheck)

	// API routes
	api := router.Group("/api/v1")
	{
		products := api.Group("/products")
		{
			products.GET("", productsHandler.GetProducts)
			products.POST("/export", productsHandler.ExportProducts)
		}

		charts := api.Group("/charts")
		{
			charts.GET("/abc", chartsHandler.GetABC)
			charts.GET("/sales-tiers", chartsHandler.GetSalesTiers)
			charts.GET("/price-segments", chartsHandler.GetPriceSegments)
			charts.GET("/review-buckets", chartsHandler.GetReviewBuckets)
			charts.GET("/promo", chartsHandler.GetPromoSplit)
			charts.GET("/promo-heatmap", chartsHandler.GetPromoHeatmap)
			charts.GET("/daily-sales", chartsHandler.GetDailySales)
			charts.GET("/ratings", chartsHandler.GetRatingDistribution)
		}

		seller := api.Group("/seller")
		{
			seller.GET("/profile", sellerHandler.GetProfile)
			seller.GET("/legal", sellerHandler.GetLegalInfo)
			seller.GET("/favorites", sellerHandler.GetFavorites)
		}

		api.POST("/refresh", productsHandler.Refresh)
	}

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Seller insights service starting on port %s", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal
	<-quit
	log.Println("Shutting down seller-insights-service...")

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("WARNING: Failed to close Redis client: %v", err)
		}
	}
}
