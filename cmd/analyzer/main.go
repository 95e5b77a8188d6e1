package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/vidyavipul/dynamic-price-engine/internal/adapter/logger"
	"github.com/vidyavipul/dynamic-price-engine/internal/adapter/storage/csvfile"
	"github.com/vidyavipul/dynamic-price-engine/internal/adapter/storage/postgres"
	"github.com/vidyavipul/dynamic-price-engine/internal/analytics"
	"github.com/vidyavipul/dynamic-price-engine/internal/config"
	"github.com/vidyavipul/dynamic-price-engine/internal/core/port"
)

// analyzer reads booking history (Postgres when DB_URL is set, otherwise a
// CSV export) and writes the demand profile JSON the pricing engine loads.
func main() {
	csvPath := flag.String("csv", "data/bookings.csv", "bookings CSV path (used when DB_URL is unset)")
	outPath := flag.String("out", "data/demand_profiles.json", "profile output path")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLogger, _ := logger.New(cfg.Env)
	defer appLogger.Sync()

	ctx := context.Background()

	var source port.BookingSource
	if cfg.DBUrl != "" {
		pool, err := pgxpool.New(ctx, cfg.DBUrl)
		if err != nil {
			appLogger.Fatal("unable to create db pool", zap.Error(err))
		}
		defer pool.Close()

		if err := pool.Ping(ctx); err != nil {
			appLogger.Fatal("cannot connect to db", zap.Error(err))
		}

		appLogger.Info("reading bookings from postgres")
		source = postgres.NewBookingStore(pool)
	} else {
		appLogger.Info("reading bookings from csv", zap.String("path", *csvPath))
		source = csvfile.NewBookingFile(*csvPath)
	}

	bookings, err := source.Bookings(ctx)
	if err != nil {
		appLogger.Fatal("failed to load bookings", zap.Error(err))
	}
	if len(bookings) == 0 {
		appLogger.Fatal("no bookings found, nothing to analyze")
	}
	appLogger.Info("loaded bookings", zap.Int("count", len(bookings)))

	tables := analytics.BuildProfiles(bookings)

	raw, err := json.MarshalIndent(tables, "", "  ")
	if err != nil {
		appLogger.Fatal("failed to encode profiles", zap.Error(err))
	}
	if err := os.WriteFile(*outPath, raw, 0o644); err != nil {
		appLogger.Fatal("failed to write profiles", zap.Error(err))
	}

	appLogger.Info("demand profiles saved",
		zap.String("path", *outPath),
		zap.Float64("baseline_daily_bookings", tables.Stats.BaselineDailyBookings),
		zap.String("range_start", tables.Stats.DateRange.Start),
		zap.String("range_end", tables.Stats.DateRange.End),
	)
}
