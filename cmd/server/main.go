package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mini-news-api/internal/attachment"
	"mini-news-api/internal/config"
	"mini-news-api/internal/handler"
	"mini-news-api/internal/infrastructure/database"
	"mini-news-api/internal/logger"
	"mini-news-api/internal/metrics"
	"mini-news-api/internal/middleware"
	"mini-news-api/internal/repository"
	"mini-news-api/internal/service"
	"mini-news-api/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.SetLevel(cfg.LogLevel)

	// Create database client; the pool dials lazily
	poolTracker := metrics.NewPoolTracker()
	db, err := database.NewMongo(database.PoolConfig{
		URI:                    cfg.MongoURI,
		Database:               cfg.MongoDatabase,
		MaxPoolSize:            cfg.MongoMaxPoolSize,
		MinPoolSize:            cfg.MongoMinPoolSize,
		ServerSelectionTimeout: cfg.MongoServerSelectionTimeout,
		SocketTimeout:          cfg.MongoSocketTimeout,
		MaxConnIdleTime:        cfg.MongoMaxConnIdleTime,
		PoolMonitor:            poolTracker.Monitor(),
	})
	if err != nil {
		logger.Fatal("Failed to create database client",
			slog.String("error", err.Error()))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(ctx); err != nil {
			logger.Error("Database disconnect error",
				slog.String("error", err.Error()))
		}
	}()

	if cfg.RunMigrations {
		db.OnConnect(database.MigrationHook)
	}

	// Try to connect at startup; requests retry through the database guard
	connectCtx, cancel := context.WithTimeout(context.Background(), cfg.MongoServerSelectionTimeout+10*time.Second)
	if err := db.Connect(connectCtx); err != nil {
		logger.Warn("Database not reachable at startup, will retry on first request",
			slog.String("error", err.Error()))
	} else {
		logger.Info("Database connected",
			slog.String("database", db.DatabaseName()))
	}
	cancel()

	// Initialize repositories
	articleRepo := repository.NewMongoArticleRepository(db.Database(), cfg.QueryTimeout)

	// Initialize services
	codec := attachment.NewCodec(cfg.MaxUploadSize)
	articleService := service.NewArticleService(
		articleRepo,
		codec,
		validator.NewValidator(),
		service.WithPageSizes(cfg.DefaultPageSize, cfg.MaxPageSize),
	)

	// Initialize handlers
	articleHandler := handler.NewArticleHandler(articleService, codec, cfg.MaxBodySize, cfg.IsDevelopment())
	healthHandler := handler.NewHealthHandler(db, handler.Version)

	// Setup Gin router
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxBodySize
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics("/live", "/ready"))
	router.Use(middleware.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := router.Group("/api")
	api.Use(middleware.RequireDatabase(db, cfg.IsDevelopment()))
	{
		articleHandler.Register(api.Group("/mini_news"))
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	total, inUse := poolTracker.Stats()
	logger.Info("Server exited",
		slog.Int("pool_connections", total),
		slog.Int("pool_in_use", inUse))
}
