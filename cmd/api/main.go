package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vidyavipul/dynamic-price-engine/internal/adapter/handler"
	"github.com/vidyavipul/dynamic-price-engine/internal/adapter/logger"
	redisadapter "github.com/vidyavipul/dynamic-price-engine/internal/adapter/storage/redis"
	"github.com/vidyavipul/dynamic-price-engine/internal/config"
	"github.com/vidyavipul/dynamic-price-engine/internal/core/port"
	"github.com/vidyavipul/dynamic-price-engine/internal/core/service/calendar"
	"github.com/vidyavipul/dynamic-price-engine/internal/core/service/demand"
	"github.com/vidyavipul/dynamic-price-engine/internal/core/service/override"
	"github.com/vidyavipul/dynamic-price-engine/internal/core/service/pricing"
	"github.com/vidyavipul/dynamic-price-engine/internal/core/service/profile"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLogger, _ := logger.New(cfg.Env)
	defer appLogger.Sync()

	cal := calendar.IndianHolidays()
	profiles := profile.Load(cfg.ProfilesPath, appLogger)
	if profiles.UsingFallback() {
		appLogger.Warn("running on embedded fallback profiles, accuracy degraded")
	}

	var estimator port.DemandEstimator
	switch cfg.PricingBackend {
	case "v2":
		estimator = demand.NewModelV2(cal, profiles)
	default:
		estimator = demand.NewModel(cal, profiles)
	}
	appLogger.Info("pricing backend selected", zap.String("backend", cfg.PricingBackend))

	detector := override.NewDetector(cal, profiles)
	engine := pricing.NewEngine(estimator, detector, cal)

	var cache handler.QuoteCache
	if cfg.RedisURL != "" {
		opts, err := goredis.ParseURL(cfg.RedisURL)
		if err != nil {
			appLogger.Fatal("invalid redis url", zap.Error(err))
		}
		ttl := time.Duration(cfg.QuoteCacheTTLSeconds) * time.Second
		cache = redisadapter.NewQuoteCache(goredis.NewClient(opts), ttl, appLogger)
		appLogger.Info("quote cache enabled", zap.Duration("ttl", ttl))
	}

	priceHandler := handler.NewPriceHandler(engine, cache, cfg.PricingBackend, appLogger)
	vehicleHandler := handler.NewVehicleHandler()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handler.RequestID())
	r.Use(handler.AccessLog(appLogger))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{
			"status":           "UP",
			"env":              cfg.Env,
			"backend":          cfg.PricingBackend,
			"profile_fallback": profiles.UsingFallback(),
		})
	})

	api := r.Group("/api/v1")
	{
		api.GET("/vehicles", vehicleHandler.ListVehicles)
		api.POST("/price", priceHandler.CalculatePrice)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		appLogger.Info("starting server", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("listen: %s\n", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("server forced to shutdown:", zap.Error(err))
	}

	appLogger.Info("server exiting")
}
