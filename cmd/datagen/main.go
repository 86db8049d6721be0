package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/arvind/retailscope/internal/generator"
)

func main() {
	cfg := generator.DefaultConfig()
	var (
		records    = flag.Int("records", cfg.NumRecords, "number of transactions to generate")
		seed       = flag.Int64("seed", cfg.Seed, "random seed for deterministic generation")
		startYear  = flag.Int("start-year", cfg.StartYear, "first year of generated transaction dates")
		endYear    = flag.Int("end-year", cfg.EndYear, "last year of generated transaction dates")
		dirtyDates = flag.Float64("dirty-date-chance", cfg.DirtyDateChance, "probability of an unparseable date cell")
		output     = flag.String("out", "data/transactions.csv", "path of the CSV file to write")
	)
	flag.Parse()

	genCfg := generator.Config{
		NumRecords:      *records,
		Seed:            *seed,
		StartYear:       *startYear,
		EndYear:         *endYear,
		DirtyDateChance: clampProbability(*dirtyDates),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	gen := generator.New(genCfg)
	dataset, err := gen.Generate(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		os.Exit(1)
	}

	if err := generator.WriteCSV(dataset, *output); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write dataset: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "Generated %d transactions into %s\n", len(dataset), *output)
}

func clampProbability(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
