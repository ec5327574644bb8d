// Package main provides the market API server. It synthesizes the market on
// startup, refreshes it on an interval, and serves the results over HTTP
// plus a WebSocket ticker stream.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/websocket"

	"heronomics/internal/domain"
	"heronomics/internal/observability"
	"heronomics/internal/pipeline"
	"heronomics/internal/rating"
	"heronomics/internal/reporting"
	"heronomics/internal/source"
	"heronomics/internal/source/fixtures"
	mongosource "heronomics/internal/source/mongo"
)

// Server holds the latest synthesis result and serves it.
type Server struct {
	pipelineOpts    pipeline.Options
	refreshInterval time.Duration
	tickInterval    time.Duration
	logger          *log.Logger
	upgrader        websocket.Upgrader

	mu      sync.RWMutex
	latest  *pipeline.Result
	started time.Time
	runs    int
	lastRun time.Time
}

func main() {
	// Load .env file if exists
	loadEnvFile()

	// Parse flags (env vars as defaults)
	addr := flag.String("addr", ":8080", "HTTP listen address")
	sourceKind := flag.String("source", "fixtures", "Document source: fixtures or mongo")
	mongoURI := flag.String("mongo-uri", os.Getenv("MONGO_URI"), "MongoDB connection URI (mongo source)")
	outputDir := flag.String("output-dir", "", "Also write output files after each refresh (optional)")
	refreshInterval := flag.Duration("refresh-interval", 1*time.Hour, "Market refresh interval")
	tickInterval := flag.Duration("tick-interval", 2*time.Second, "WebSocket ticker send interval")
	workers := flag.Int("workers", 4, "Concurrent assembly workers")
	flag.Parse()

	logger := log.New(os.Stdout, "[server] ", log.LstdFlags)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Printf("Received signal %v, initiating graceful shutdown...", sig)
		cancel()
	}()

	docs, cleanup, err := buildSource(ctx, *sourceKind, *mongoURI)
	if err != nil {
		logger.Fatalf("Failed to load documents: %v", err)
	}
	defer cleanup()

	server := &Server{
		pipelineOpts: pipeline.Options{
			Attributes: docs,
			Network:    docs,
			Params:     domain.DefaultMarketParams(),
			Thresholds: rating.DefaultThresholds(),
			OutputDir:  *outputDir,
			Workers:    *workers,
			Logger:     logger,
		},
		refreshInterval: *refreshInterval,
		tickInterval:    *tickInterval,
		logger:          logger,
		started:         time.Now().UTC(),
	}

	// Initial synthesis before accepting traffic.
	if err := server.refresh(ctx); err != nil {
		logger.Fatalf("Initial synthesis failed: %v", err)
	}

	httpServer := &http.Server{
		Addr:    *addr,
		Handler: server.routes(),
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	go server.refreshLoop(ctx)

	logger.Printf("Listening on %s", *addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("HTTP server error: %v", err)
	}
	logger.Println("Shutdown complete")
}

// refresh runs the pipeline and swaps in the new result.
func (s *Server) refresh(ctx context.Context) error {
	result, err := pipeline.New(s.pipelineOpts).Run(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.latest = result
	s.runs++
	s.lastRun = time.Now().UTC()
	s.mu.Unlock()

	s.logger.Printf("Market refreshed: run %s, %d instruments", result.RunID, len(result.Instruments))
	return nil
}

func (s *Server) refreshLoop(ctx context.Context) {
	ticker := time.NewTicker(s.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.refresh(ctx); err != nil && ctx.Err() == nil {
				s.logger.Printf("Refresh failed: %v", err)
			}
		}
	}
}

func (s *Server) result() *pipeline.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	health := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}
	mux.HandleFunc("/health", health)
	mux.HandleFunc("/healthz", health)
	mux.Handle("/metrics", observability.Handler())
	mux.HandleFunc("/status", s.instrumented("/status", s.handleStatus))

	mux.HandleFunc("/api/summary", s.instrumented("/api/summary", s.handleSummary))
	mux.HandleFunc("/api/report", s.instrumented("/api/report", s.handleReport))
	mux.HandleFunc("/api/indices", s.instrumented("/api/indices", s.handleIndices))
	mux.HandleFunc("/api/instruments", s.instrumented("/api/instruments", s.handleInstruments))
	mux.HandleFunc("/api/instruments/", s.instrumented("/api/instruments/{symbol}", s.handleInstrument))
	mux.HandleFunc("/ws", s.handleTickerStream)

	return mux
}

// instrumented wraps a handler with request metrics for one route.
func (s *Server) instrumented(route string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		h(rec, r)
		observability.RecordHTTPRequest(route, fmt.Sprintf("%d", rec.status), time.Since(start).Seconds())
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// StatusResponse is the JSON response for /status endpoint.
type StatusResponse struct {
	Status      string    `json:"status"`
	Uptime      string    `json:"uptime"`
	RunID       string    `json:"run_id"`
	Instruments int       `json:"instruments"`
	Refreshes   int       `json:"refreshes"`
	LastRefresh time.Time `json:"last_refresh"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	resp := StatusResponse{
		Status:      "running",
		Uptime:      time.Since(s.started).String(),
		Refreshes:   s.runs,
		LastRefresh: s.lastRun,
	}
	if s.latest != nil {
		resp.RunID = s.latest.RunID
		resp.Instruments = len(s.latest.Instruments)
	}
	s.mu.RUnlock()

	writeJSON(w, resp)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.result().Summary)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.result().Report)
}

func (s *Server) handleIndices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.result().Indices)
}

func (s *Server) handleInstruments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.result().Instruments)
}

func (s *Server) handleInstrument(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(strings.TrimPrefix(r.URL.Path, "/api/instruments/"))
	if symbol == "" || strings.Contains(symbol, "/") {
		http.NotFound(w, r)
		return
	}

	for _, inst := range s.result().Instruments {
		if inst.Symbol == symbol {
			writeJSON(w, inst)
			return
		}
	}
	http.Error(w, fmt.Sprintf("unknown symbol %q", symbol), http.StatusNotFound)
}

// TickerMessage is one WebSocket ticker frame.
type TickerMessage struct {
	Timestamp time.Time                     `json:"timestamp"`
	RunID     string                        `json:"run_id"`
	Indices   map[string]domain.MarketIndex `json:"indices"`
	TopStocks []reporting.SummaryStock      `json:"top_stocks"`
}

// handleTickerStream upgrades to WebSocket and pushes the current indices
// and top stocks on every tick until the client disconnects.
func (s *Server) handleTickerStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	observability.DefaultMetrics.WSTickerClients.Inc()
	defer observability.DefaultMetrics.WSTickerClients.Dec()

	// Reader goroutine only drains control frames and detects disconnect.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			result := s.result()
			msg := TickerMessage{
				Timestamp: time.Now().UTC(),
				RunID:     result.RunID,
				Indices:   result.Indices,
				TopStocks: result.Summary.TopStocks,
			}
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
			observability.DefaultMetrics.WSMessagesSent.Inc()
		}
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
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
