// Package pipeline orchestrates the full synthesis run: load counts, score,
// assemble instruments, compute indices, report, persist and write outputs.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"heronomics/internal/domain"
	"heronomics/internal/market"
	"heronomics/internal/observability"
	"heronomics/internal/rating"
	"heronomics/internal/reporting"
	"heronomics/internal/scoring"
	"heronomics/internal/source"
	"heronomics/internal/storage"
)

const defaultWorkers = 4

// Options configures a Pipeline. Attributes and Network are required; the
// stores and OutputDir are optional sinks.
type Options struct {
	Attributes source.AttributeSource
	Network    source.NetworkSource

	Params     domain.MarketParams
	Thresholds rating.Thresholds

	Instruments storage.InstrumentStore
	Indices     storage.IndexStore
	Histories   storage.PriceHistoryStore

	OutputDir string
	Workers   int
	Logger    *log.Logger
}

// Result holds everything one run produced.
type Result struct {
	RunID       string
	Instruments []*domain.Instrument
	Indices     map[string]domain.MarketIndex
	Report      *reporting.MarketReport
	Summary     *reporting.MarketSummary
	Skipped     int
}

// Pipeline runs the synthesis end to end.
type Pipeline struct {
	opts      Options
	assembler *market.Assembler
	reportGen *reporting.Generator
	clock     func() time.Time
}

// New creates a pipeline from options.
func New(opts Options) *Pipeline {
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Pipeline{
		opts:      opts,
		assembler: market.NewAssembler(opts.Params, opts.Thresholds),
		reportGen: reporting.NewGenerator(),
		clock:     func() time.Time { return time.Now().UTC() },
	}
}

// WithClock sets a custom clock function for deterministic output.
func (p *Pipeline) WithClock(clock func() time.Time) *Pipeline {
	p.clock = clock
	p.reportGen = p.reportGen.WithClock(clock)
	return p
}

// Run executes the full pipeline. On success the result carries the run ID
// the outputs were persisted under.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	started := p.clock()

	result, err := p.run(ctx)

	status := "success"
	if err != nil {
		status = "error"
	}
	observability.RecordPipelineRun(status, p.clock().Sub(started).Seconds())
	return result, err
}

func (p *Pipeline) run(ctx context.Context) (*Result, error) {
	// 1. Enumerate classes; the source returns them name-sorted, which fixes
	// the order of everything downstream.
	names, err := p.opts.Attributes.ClassNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}

	totalSpells, err := p.opts.Network.TotalSpellCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("total spell count: %w", err)
	}

	// Truncate the clock to a date; histories end on this day.
	now := p.clock().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	// 2. Assemble instruments concurrently. Results land in a slice indexed
	// by class position, so worker scheduling cannot affect output order.
	instruments, skipped, err := p.assembleAll(ctx, names, totalSpells, today)
	if err != nil {
		return nil, err
	}
	p.opts.Logger.Printf("pipeline: assembled %d instruments, skipped %d classes", len(instruments), skipped)

	// 3. Indices over the full set, then per-instrument news.
	indices := market.ComputeIndices(instruments)
	for _, inst := range instruments {
		inst.News = market.GenerateNews(inst)
	}

	// 4. Reports. The report's run ID fingerprints the instrument set.
	report := p.reportGen.Generate(instruments, indices, skipped, today)
	summary := p.reportGen.Summarize(instruments, indices)
	observability.RecordReportGenerated()

	result := &Result{
		RunID:       report.Reproducibility.RunID,
		Instruments: instruments,
		Indices:     indices,
		Report:      report,
		Summary:     summary,
		Skipped:     skipped,
	}

	// 5. Persist under the run ID. Duplicates mean an identical run was
	// already stored, so they are skipped rather than treated as failures.
	if err := p.persist(ctx, result); err != nil {
		return nil, err
	}

	// 6. Output files.
	if p.opts.OutputDir != "" {
		if err := p.writeOutputs(result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// assembleAll fans class names out to a bounded worker pool and collects the
// assembled instruments in input order.
func (p *Pipeline) assembleAll(ctx context.Context, names []string, totalSpells int, today time.Time) ([]*domain.Instrument, int, error) {
	type slot struct {
		inst *domain.Instrument
		err  error
	}
	slots := make([]slot, len(names))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < p.opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				inst, err := p.assembleOne(ctx, names[i], totalSpells, today)
				slots[i] = slot{inst: inst, err: err}
			}
		}()
	}
	for i := range names {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var instruments []*domain.Instrument
	skipped := 0
	for i, s := range slots {
		switch {
		case s.err != nil:
			return nil, 0, fmt.Errorf("assemble %s: %w", names[i], s.err)
		case s.inst == nil:
			skipped++
		default:
			instruments = append(instruments, s.inst)
			observability.RecordInstrumentAssembled()
		}
	}
	return instruments, skipped, nil
}

// assembleOne scores and assembles a single class. A (nil, nil) return means
// the class was skipped.
func (p *Pipeline) assembleOne(ctx context.Context, name string, totalSpells int, today time.Time) (*domain.Instrument, error) {
	counts, err := p.opts.Attributes.ClassCounts(ctx, name)
	if errors.Is(err, source.ErrClassNotFound) {
		observability.RecordClassSkipped("missing_document")
		p.opts.Logger.Printf("pipeline: skipping %s: no class document", name)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	netCounts, err := p.opts.Network.NetworkCounts(ctx, name)
	if err != nil {
		return nil, err
	}

	score := scoring.ComputeScoreProfile(counts)
	network := scoring.ComputeNetworkProfile(name, netCounts, totalSpells)

	inst, err := p.assembler.Assemble(score, network, today)
	if err != nil {
		observability.RecordClassSkipped("assembly_failed")
		p.opts.Logger.Printf("pipeline: skipping %s: %v", name, err)
		return nil, nil
	}
	return inst, nil
}

// persist writes instruments, histories and indices to whichever stores are
// configured.
func (p *Pipeline) persist(ctx context.Context, r *Result) error {
	if p.opts.Instruments != nil {
		for _, inst := range r.Instruments {
			err := p.opts.Instruments.Insert(ctx, r.RunID, inst)
			if errors.Is(err, storage.ErrDuplicateKey) {
				p.opts.Logger.Printf("pipeline: run %s already stored, skipping instrument persistence", r.RunID)
				break
			}
			if err != nil {
				return fmt.Errorf("persist instrument %s: %w", inst.Symbol, err)
			}
		}
	}

	if p.opts.Histories != nil {
		for _, inst := range r.Instruments {
			err := p.opts.Histories.InsertBulk(ctx, r.RunID, inst.Symbol, inst.PriceHistory)
			if errors.Is(err, storage.ErrDuplicateKey) {
				p.opts.Logger.Printf("pipeline: run %s already stored, skipping history persistence", r.RunID)
				break
			}
			if err != nil {
				return fmt.Errorf("persist history %s: %w", inst.Symbol, err)
			}
		}
	}

	if p.opts.Indices != nil {
		for _, idx := range r.Indices {
			idx := idx
			err := p.opts.Indices.Insert(ctx, r.RunID, &idx)
			if errors.Is(err, storage.ErrDuplicateKey) {
				p.opts.Logger.Printf("pipeline: run %s already stored, skipping index persistence", r.RunID)
				break
			}
			if err != nil {
				return fmt.Errorf("persist index %s: %w", idx.Name, err)
			}
		}
	}

	return nil
}

// writeOutputs renders and writes every output document.
func (p *Pipeline) writeOutputs(r *Result) error {
	if err := os.MkdirAll(p.opts.OutputDir, 0755); err != nil {
		return err
	}

	stocksJSON, err := reporting.RenderStocksJSON(r.Instruments)
	if err != nil {
		return err
	}
	reportJSON, err := reporting.RenderReportJSON(r.Report)
	if err != nil {
		return err
	}
	summaryJSON, err := reporting.RenderSummaryJSON(r.Summary)
	if err != nil {
		return err
	}

	files := map[string][]byte{
		reporting.StocksFile:   stocksJSON,
		reporting.ReportFile:   reportJSON,
		reporting.SummaryFile:  summaryJSON,
		reporting.OverviewFile: []byte(reporting.RenderMarkdown(r.Report)),
		reporting.CSVFile:      []byte(reporting.RenderCSV(r.Instruments)),
	}
	for name, data := range files {
		path := filepath.Join(p.opts.OutputDir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}

	p.opts.Logger.Printf("pipeline: wrote %d output files to %s", len(files), p.opts.OutputDir)
	return nil
}
