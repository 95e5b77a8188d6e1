package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/vidyavipul/dynamic-price-engine/internal/core/service/calendar"
	"github.com/vidyavipul/dynamic-price-engine/internal/datagen"
)

// datagen writes a synthetic two-year booking CSV for bootstrapping demand
// profiles before real history exists.
func main() {
	outPath := flag.String("out", "data/bookings.csv", "output CSV path")
	seed := flag.Int64("seed", 42, "rng seed (same seed, same dataset)")
	start := flag.String("start", "2024-01-01", "first day (YYYY-MM-DD)")
	end := flag.String("end", "2025-12-31", "last day (YYYY-MM-DD)")
	flag.Parse()

	startDay, err := time.Parse("2006-01-02", *start)
	if err != nil {
		log.Fatalf("invalid start date: %v", err)
	}
	endDay, err := time.Parse("2006-01-02", *end)
	if err != nil {
		log.Fatalf("invalid end date: %v", err)
	}

	gen := datagen.New(calendar.IndianHolidays(), *seed)
	bookings := gen.Generate(startDay, endDay)

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("create %s: %v", *outPath, err)
	}
	defer f.Close()

	if err := datagen.WriteCSV(f, bookings); err != nil {
		log.Fatalf("write csv: %v", err)
	}

	log.Printf("generated %d bookings -> %s (%s to %s)", len(bookings), *outPath, *start, *end)
}
