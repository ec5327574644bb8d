// Package main provides the reproducibility checker. It re-executes the
// synthesis twice (or against a stored run) and reports any divergence.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"heronomics/internal/domain"
	"heronomics/internal/pipeline"
	"heronomics/internal/rating"
	"heronomics/internal/source"
	"heronomics/internal/source/fixtures"
	mongosource "heronomics/internal/source/mongo"
	pgstore "heronomics/internal/storage/postgres"
	"heronomics/internal/verification"
)

func main() {
	loadEnvFile()

	sourceKind := flag.String("source", "fixtures", "Document source: fixtures or mongo")
	mongoURI := flag.String("mongo-uri", os.Getenv("MONGO_URI"), "MongoDB connection URI (mongo source)")
	postgresDSN := flag.String("postgres-dsn", os.Getenv("POSTGRES_DSN"), "PostgreSQL connection string (stored-run mode)")
	runID := flag.String("run-id", "", "Stored run to verify against (requires --postgres-dsn)")
	todayFlag := flag.String("today", "", "Synthesis date as YYYY-MM-DD (default: current UTC date)")
	flag.Parse()

	logger := log.New(os.Stdout, "[verify] ", log.LstdFlags)

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

	v := verification.New(pipeline.Options{
		Attributes: docs,
		Network:    docs,
		Params:     domain.DefaultMarketParams(),
		Thresholds: rating.DefaultThresholds(),
		Logger:     logger,
	})
	if *todayFlag != "" {
		today, err := time.Parse("2006-01-02", *todayFlag)
		if err != nil {
			logger.Fatalf("Invalid --today value %q: %v", *todayFlag, err)
		}
		v = v.WithClock(func() time.Time { return today })
	}

	var report *verification.Report
	if *runID != "" {
		if *postgresDSN == "" {
			logger.Fatal("--run-id requires --postgres-dsn")
		}
		pool, err := pgstore.NewPool(ctx, *postgresDSN)
		if err != nil {
			logger.Fatalf("Failed to connect to postgres: %v", err)
		}
		defer pool.Close()
		report, err = v.VerifyStored(ctx, pgstore.NewInstrumentStore(pool), *runID)
		if err != nil {
			logger.Fatalf("Verification error: %v", err)
		}
	} else {
		report, err = v.Verify(ctx)
		if err != nil {
			logger.Fatalf("Verification error: %v", err)
		}
	}

	fmt.Println("=== Reproducibility Check ===")
	fmt.Printf("Instruments: %d total, %d matched, %d divergent\n",
		report.TotalInstruments, report.MatchedInstruments, report.DivergentInstruments)
	fmt.Printf("Fingerprint (expected): %s\n", report.FingerprintExpected)
	fmt.Printf("Fingerprint (actual):   %s\n", report.FingerprintActual)

	if report.Match {
		fmt.Println("Result: MATCH")
		return
	}

	fmt.Println("Result: DIVERGED")
	for _, r := range report.Results {
		if r.Match {
			continue
		}
		fmt.Printf("  %s:\n", r.Symbol)
		for _, d := range r.Divergences {
			fmt.Printf("    %-24s expected=%v actual=%v\n", d.Field, d.Expected, d.Actual)
		}
	}
	os.Exit(1)
}

// buildSource creates the configured document source.
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
		return
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
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
}
