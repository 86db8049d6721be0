// Command inspect runs the query pipeline offline against a CSV dataset:
// the same loading, filtering, sorting, and facet extraction the server
// uses, driven from the command line. Useful for poking at a dataset
// without standing up the HTTP service.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/arvind/retailscope/internal/config"
	"github.com/arvind/retailscope/internal/dataset"
	"github.com/arvind/retailscope/internal/logging"
	"github.com/arvind/retailscope/internal/service"
)

func main() {
	var (
		path   = flag.String("path", "", "path to a local CSV dataset (overrides DATASET_PATH)")
		url    = flag.String("url", "", "URL of a remote CSV dataset (overrides DATASET_URL)")
		facets = flag.Bool("facets", false, "print filter options instead of a page of records")
		sum    = flag.Bool("summary", false, "print aggregate totals over the filtered set")

		search        = flag.String("search", "", "free-text search over customer name and phone number")
		region        = flag.String("region", "", "comma-separated region filter")
		gender        = flag.String("gender", "", "comma-separated gender filter")
		ageMin        = flag.String("age-min", "", "inclusive minimum age")
		ageMax        = flag.String("age-max", "", "inclusive maximum age")
		category      = flag.String("category", "", "comma-separated product category filter")
		tags          = flag.String("tags", "", "comma-separated tag filter (any match)")
		paymentMethod = flag.String("payment-method", "", "comma-separated payment method filter")
		dateFrom      = flag.String("date-from", "", "inclusive lower date bound")
		dateTo        = flag.String("date-to", "", "inclusive upper date bound (end of day)")
		page          = flag.String("page", "", "page number (default 1)")
		limit         = flag.String("limit", "", "page size (default 10)")
		sortBy        = flag.String("sort-by", "", "sort field: date, quantity, customerName")
		sortOrder     = flag.String("sort-order", "", "sort order: asc or desc")
	)
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *path != "" {
		cfg.Dataset.Path = *path
		cfg.Dataset.URL = ""
	} else if *url != "" {
		cfg.Dataset.Path = ""
		cfg.Dataset.URL = *url
	}

	logger := logging.New(cfg.Logging).With("component", "inspect")

	source, err := buildSource(cfg.Dataset)
	if err != nil {
		logger.Error("failed to configure dataset source", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store := dataset.NewStore(source, logger, nil)
	svc := service.NewTransactionService(store, nil)

	q := service.RawQuery{
		Search:        *search,
		Region:        *region,
		Gender:        *gender,
		AgeMin:        *ageMin,
		AgeMax:        *ageMax,
		Category:      *category,
		Tags:          *tags,
		PaymentMethod: *paymentMethod,
		DateFrom:      *dateFrom,
		DateTo:        *dateTo,
		Page:          *page,
		Limit:         *limit,
		SortBy:        *sortBy,
		SortOrder:     *sortOrder,
	}

	var result any
	switch {
	case *facets:
		result, err = svc.FilterOptions(ctx)
	case *sum:
		result, err = svc.Summary(ctx, q)
	default:
		result, err = svc.ListTransactions(ctx, q)
	}
	if err != nil {
		logger.Error("query failed", "error", err)
		os.Exit(1)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode result: %v\n", err)
		os.Exit(1)
	}
}

func buildSource(cfg config.DatasetConfig) (dataset.Source, error) {
	switch {
	case cfg.Path != "":
		return dataset.NewFileSource(cfg.Path), nil
	case cfg.URL != "":
		return dataset.NewHTTPSource(cfg.URL, cfg.FetchTimeout), nil
	default:
		return nil, dataset.ErrMissingSource
	}
}
