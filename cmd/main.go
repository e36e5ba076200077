package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/shortify/shortify/internal/cache"
	"github.com/shortify/shortify/internal/config"
	"github.com/shortify/shortify/internal/database"
	"github.com/shortify/shortify/internal/handler"
	"github.com/shortify/shortify/internal/logger"
	"github.com/shortify/shortify/internal/repository"
	"github.com/shortify/shortify/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.Setup(cfg.App.LogLevel, cfg.IsProduction())

	db, err := database.Connect(
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect database")
	}
	defer db.Close()

	log.Info().Msg("Successfully connected to database")

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply schema")
	}

	var linkCache cache.LinkCache
	redisClient, err := cache.NewRedisClient(cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		MaxRetries:   cfg.Redis.MaxRetries,
		CacheTTL:     cfg.Redis.CacheTTL,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Failed to connect to Redis, running without cache")
		linkCache = cache.NewNullCache()
	} else {
		defer redisClient.Close()
		log.Info().Msg("Successfully connected to Redis")
		linkCache = redisClient
	}

	linkRepo := repository.NewPostgresLinkRepository(db)
	linkService := service.NewLinkService(linkRepo, linkCache, cfg.GetBaseURL(), cfg.App.ShortCodeLength)
	linkHandler := handler.NewLinkHandler(linkService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.GetAllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		response := gin.H{
			"status": "healthy",
			"services": gin.H{
				"database": "healthy",
				"cache":    "healthy",
			},
		}

		if err := database.HealthCheck(db); err != nil {
			response["services"].(gin.H)["database"] = "unhealthy"
			response["status"] = "degraded"
		}

		if err := linkCache.HealthCheck(c.Request.Context()); err != nil {
			response["services"].(gin.H)["cache"] = "unhealthy"
			response["status"] = "degraded"
		}

		statusCode := http.StatusOK
		if response["status"] == "degraded" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, response)
	})

	api := router.Group("/api")
	{
		api.POST("/shorten", linkHandler.Shorten)
		api.GET("/expand/:code", linkHandler.Expand)
		api.GET("/stats/:code", linkHandler.Stats)
	}

	router.GET("/r/:code", linkHandler.Redirect)

	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Info().Str("addr", cfg.GetServerAddress()).Msg("Server starting")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server gracefully stopped")
}
