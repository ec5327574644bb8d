// Package main provides the synthesis entry point: load class and spell
// documents, assemble the market, write reports and optionally persist the
// run to PostgreSQL and ClickHouse.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"heronomics/internal/domain"
	"heronomics/internal/pipeline"
	"heronomics/internal/rating"
	"heronomics/internal/source"
	"heronomics/internal/source/fixtures"
	mongosource "heronomics/internal/source/mongo"
	chstore "heronomics/internal/storage/clickhouse"
	"heronomics/internal/storage/memory"
	"heronomics/internal/storage/migrations"
	pgstore "heronomics/internal/storage/postgres"
)

func main() {
	// Load .env file if exists
	loadEnvFile()

	// Parse flags (env vars as defaults)
	sourceKind := flag.String("source", "fixtures", "Document source: fixtures or mongo")
	mongoURI := flag.String("mongo-uri", os.Getenv("MONGO_URI"), "MongoDB connection URI (mongo source)")
	postgresDSN := flag.String("postgres-dsn", os.Getenv("POSTGRES_DSN"), "PostgreSQL connection string (optional persistence)")
	clickhouseDSN := flag.String("clickhouse-dsn", os.Getenv("CLICKHOUSE_DSN"), "ClickHouse connection string (optional history persistence)")
	outputDir := flag.String("output-dir", "output", "Output directory for generated files")
	useMemory := flag.Bool("use-memory", false, "Persist the run to in-memory stores instead of databases")
	workers := flag.Int("workers", 4, "Concurrent assembly workers")
	todayFlag := flag.String("today", "", "Synthesis date as YYYY-MM-DD (default: current UTC date)")
	flag.Parse()

	logger := log.New(os.Stdout, "[simulate] ", log.LstdFlags)

	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Printf("Received signal %v, cancelling...", sig)
		cancel()
	}()

	docs, cleanup, err := buildSource(ctx, *sourceKind, *mongoURI)
	if err != nil {
		logger.Fatalf("Failed to load documents: %v", err)
	}
	defer cleanup()

	opts := pipeline.Options{
		Attributes: docs,
		Network:    docs,
		Params:     domain.DefaultMarketParams(),
		Thresholds: rating.DefaultThresholds(),
		OutputDir:  *outputDir,
		Workers:    *workers,
		Logger:     logger,
	}

	// Optional persistence. Migrations run on connect.
	switch {
	case *useMemory:
		opts.Instruments = memory.NewInstrumentStore()
		opts.Indices = memory.NewIndexStore()
		opts.Histories = memory.NewPriceHistoryStore()
	default:
		if *postgresDSN != "" {
			pool, err := pgstore.NewPool(ctx, *postgresDSN)
			if err != nil {
				logger.Fatalf("Failed to connect to postgres: %v", err)
			}
			defer pool.Close()
			if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
				logger.Fatalf("Postgres migrations failed: %v", err)
			}
			opts.Instruments = pgstore.NewInstrumentStore(pool)
			opts.Indices = pgstore.NewIndexStore(pool)
		}
		if *clickhouseDSN != "" {
			conn, err := migrations.RunClickhouseMigrations(ctx, *clickhouseDSN)
			if err != nil {
				logger.Fatalf("ClickHouse migrations failed: %v", err)
			}
			defer conn.Close()
			opts.Histories = chstore.NewPriceHistoryStore(conn)
		}
	}

	p := pipeline.New(opts)
	if *todayFlag != "" {
		today, err := time.Parse("2006-01-02", *todayFlag)
		if err != nil {
			logger.Fatalf("Invalid --today value %q: %v", *todayFlag, err)
		}
		p = p.WithClock(func() time.Time { return today })
	}

	start := time.Now()
	result, err := p.Run(ctx)
	if err != nil {
		logger.Fatalf("Pipeline error: %v", err)
	}

	fmt.Println("=== Market Synthesis ===")
	fmt.Printf("Run ID:      %s\n", result.RunID)
	fmt.Printf("Instruments: %d (skipped %d)\n", len(result.Instruments), result.Skipped)

	names := make([]string, 0, len(result.Indices))
	for name := range result.Indices {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		idx := result.Indices[name]
		fmt.Printf("%-14s %8.2f (%+.2f%%)\n", idx.Name, idx.Value, idx.ChangePercent)
	}

	fmt.Printf("Outputs:     %s/\n", *outputDir)
	fmt.Printf("Elapsed:     %v\n", time.Since(start).Round(time.Millisecond))
}

// buildSource creates the configured document source. The cleanup closes the
// mongo connection in mongo mode and is a no-op otherwise.
func buildSource(ctx context.Context, kind, mongoURI string) (*source.DocumentSource, func(), error) {
	switch kind {
	case "fixtures":
		return fixtures.New(), func() {}, nil
	case "mongo":
		if mongoURI == "" {
			return nil, nil, fmt.Errorf("--mongo-uri is required with --source mongo")
		}
		loader, err := mongosource.NewLoader(ctx, mongoURI)
		if err != nil {
			return nil, nil, err
		}
		docs, err := loader.Load(ctx)
		if err != nil {
			loader.Close(ctx)
			return nil, nil, err
		}
		return docs, func() { loader.Close(context.Background()) }, nil
	default:
		return nil, nil, fmt.Errorf("unknown source %q (want fixtures or mongo)", kind)
	}
}

// loadEnvFile loads environment variables from .env file if it exists.
func loadEnvFile() {
	data, err := os.ReadFile(".env")
	if err != nil {
		return // File doesn't exist, use system env vars
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Don't override existing env vars
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
}
