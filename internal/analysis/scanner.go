// Package analysis runs the rule table over every candidate file and
// aggregates the findings into a single Result.
package analysis

import (
	"fmt"
	"path/filepath"
	"time"

	"routelint/internal/diag"
	"routelint/internal/observ"
	"routelint/internal/rules"
	"routelint/internal/source"
	"routelint/internal/walker"
)

// CachedFile is the per-file payload a FileCache stores, keyed by content
// hash. Spans are rebound to the current FileID on a hit.
type CachedFile struct {
	Path            string
	Extended        bool
	Issues          []diag.Issue
	Recommendations []diag.Recommendation
	Config          *RouteFileConfig
}

// FileCache lets re-scans skip rule evaluation for unchanged content.
type FileCache interface {
	Get(hash [32]byte) (*CachedFile, bool)
	Put(hash [32]byte, entry *CachedFile) error
}

// Scanner wires the walker, the rule table, and the aggregator.
// Analysis is strictly sequential; the only goroutine boundary a caller
// may add is a progress sink consuming events.
type Scanner struct {
	Rules         []rules.Rule
	Extended      bool
	MaxIssues     int // 0 = unlimited
	ExtraSkipDirs []string
	Cache         FileCache
	Warnf         func(format string, args ...any)
	Progress      Sink
	Timer         *observ.Timer
}

func (s *Scanner) warnf(format string, args ...any) {
	if s.Warnf != nil {
		s.Warnf(format, args...)
	}
}

func (s *Scanner) begin(phase string) int {
	if s.Timer == nil {
		return -1
	}
	return s.Timer.Begin(phase)
}

func (s *Scanner) end(idx int, note string) {
	if s.Timer != nil {
		s.Timer.End(idx, note)
	}
}

// Run walks root, analyzes every candidate file in discovery order, and
// returns the aggregated result. Per-file read failures are warned and
// skipped; only the walk setup itself can fail the run.
func (s *Scanner) Run(root string) (*Result, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scan root: %w", err)
	}

	walkPhase := s.begin("walk")
	files, err := walker.Walk(absRoot, walker.Options{
		ExtraSkipDirs: s.ExtraSkipDirs,
		Warnf:         s.Warnf,
	})
	s.end(walkPhase, fmt.Sprintf("%d candidates", len(files)))
	if err != nil {
		return nil, fmt.Errorf("walk failed: %w", err)
	}

	fileSet := source.NewFileSetWithBase(absRoot)
	res := &Result{
		Root:        absRoot,
		GeneratedAt: time.Now(),
		Bag:         diag.NewBag(s.MaxIssues),
		FileSet:     fileSet,
	}
	res.Stats.Total = len(files)

	for _, path := range files {
		emit(s.Progress, fileSet.RelPath(path), StatusQueued, 0)
	}

	analyzePhase := s.begin("analyze")
	unmemoizedFiles := 0
	for _, path := range files {
		rel := fileSet.RelPath(path)
		emit(s.Progress, rel, StatusReading, 0)

		id, loadErr := fileSet.Load(path)
		if loadErr != nil {
			s.warnf("skipping %s: %v", rel, loadErr)
			emit(s.Progress, rel, StatusError, 0)
			continue
		}
		res.Stats.Analyzed++
		f := fileSet.Get(id)
		emit(s.Progress, rel, StatusScanning, 0)

		batch := s.analyzeFile(res, f, rel)
		if batch > 0 {
			res.Stats.WithIssues++
		}
		if s.Extended && len(res.RouteConfigs) > 0 {
			if cfg := res.RouteConfigs[len(res.RouteConfigs)-1]; cfg.File == rel && cfg.UnmemoizedRoutes {
				unmemoizedFiles++
			}
		}
		emit(s.Progress, rel, StatusDone, batch)
	}
	s.end(analyzePhase, fmt.Sprintf("%d files, %d issues", res.Stats.Analyzed, res.Bag.Len()))

	res.aggregate(s.Extended, unmemoizedFiles)
	return res, nil
}

// analyzeFile runs the rule table (or replays a cache hit) for one file
// and returns the number of issues it contributed.
func (s *Scanner) analyzeFile(res *Result, f *source.File, rel string) int {
	if s.Cache != nil {
		// Entries written under the other report mode carry a different
		// recommendation set; treat them as misses.
		if entry, ok := s.Cache.Get(f.Hash); ok && entry.Extended == s.Extended {
			return s.replayCached(res, f, rel, entry)
		}
	}

	before := res.Bag.Len()
	recsBefore := len(res.Recommendations)
	ctx := rules.NewContext(f, rel, s.Extended, diag.BagReporter{
		Bag:  res.Bag,
		Recs: &res.Recommendations,
	})
	rules.Run(s.Rules, ctx)

	var cfg *RouteFileConfig
	if s.Extended {
		built := BuildRouteFileConfig(rel, ctx.Text)
		res.RouteConfigs = append(res.RouteConfigs, built)
		cfg = &built
	}

	batch := res.Bag.Len() - before
	if s.Cache != nil && s.MaxIssues == 0 {
		entry := &CachedFile{
			Path:            rel,
			Extended:        s.Extended,
			Issues:          append([]diag.Issue(nil), res.Bag.Items()[before:]...),
			Recommendations: append([]diag.Recommendation(nil), res.Recommendations[recsBefore:]...),
			Config:          cfg,
		}
		if err := s.Cache.Put(f.Hash, entry); err != nil {
			s.warnf("cache write for %s failed: %v", rel, err)
		}
	}
	return batch
}

// replayCached appends a cache hit as if the rules had just run,
// rebinding paths and spans to the current scan.
func (s *Scanner) replayCached(res *Result, f *source.File, rel string, entry *CachedFile) int {
	batch := 0
	for _, iss := range entry.Issues {
		iss.File = rel
		iss.Span.File = f.ID
		if res.Bag.Add(iss) {
			batch++
		}
	}
	for _, rec := range entry.Recommendations {
		rec.File = rel
		res.Recommendations = append(res.Recommendations, rec)
	}
	if s.Extended && entry.Config != nil {
		cfg := *entry.Config
		cfg.File = rel
		res.RouteConfigs = append(res.RouteConfigs, cfg)
	}
	return batch
}
