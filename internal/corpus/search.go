package corpus

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/nearmatch/nearmatch/internal/match"
)

// Algorithm selects the scanner variant for a search run.
type Algorithm int

const (
	AlgoDirect Algorithm = iota
	AlgoRolling
	AlgoNaive
)

func (a Algorithm) String() string {
	switch a {
	case AlgoDirect:
		return "direct"
	case AlgoRolling:
		return "rolling"
	case AlgoNaive:
		return "naive"
	}
	return "unknown"
}

// ParseAlgorithm maps a CLI flag value to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "direct":
		return AlgoDirect, nil
	case "rolling":
		return AlgoRolling, nil
	case "naive":
		return AlgoNaive, nil
	}
	return 0, fmt.Errorf("unknown strategy %q (want direct, rolling, or naive)", s)
}

// Options configures a search run.
type Options struct {
	Threshold float64
	N         int // n-gram width for the prefiltered algorithms
	Algorithm Algorithm
	Workers   int // scan goroutines per file; 0 means NumCPU
	Cache     *FileCache
	Progress  func(path string, records int) // called after each file, may be nil
}

// Result aggregates a search run over many files.
type Result struct {
	Counts       []int64    // per-query number of matching records
	MatchedFiles [][]string // per-query files with at least one match
	Files        int
	Records      int
}

// Search runs every query against every record of the given files.
// Files are processed one at a time to bound memory; the (record,
// query) scans within a file fan out across a bounded errgroup. Each
// scan is independent and allocation-local, so no locking is needed
// beyond the per-query counters.
func Search(ctx context.Context, files []string, queries [][]int32, opts Options) (*Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// Query fingerprint sets are built once and shared read-only by
	// all workers.
	var sets []match.Set
	if opts.Algorithm != AlgoNaive {
		sets = make([]match.Set, len(queries))
		for i, q := range queries {
			sets[i] = match.Fingerprints(q, opts.N, strategyFor(opts.Algorithm))
		}
	}

	result := &Result{
		Counts:       make([]int64, len(queries)),
		MatchedFiles: make([][]string, len(queries)),
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sequences, err := fileSequences(path, opts.Cache)
		if err != nil {
			return nil, err
		}

		fileCounts, err := scanFile(ctx, sequences, queries, sets, opts, workers)
		if err != nil {
			return nil, err
		}

		for q, c := range fileCounts {
			if c > 0 {
				result.Counts[q] += c
				result.MatchedFiles[q] = append(result.MatchedFiles[q], path)
			}
		}
		result.Files++
		result.Records += len(sequences)
		if opts.Progress != nil {
			opts.Progress(path, len(sequences))
		}
	}
	return result, nil
}

// scanFile dispatches every (record, query) pair of one file across
// the worker pool and returns per-query match counts.
func scanFile(ctx context.Context, sequences [][]int32, queries [][]int32, sets []match.Set, opts Options, workers int) ([]int64, error) {
	counts := make([]atomic.Int64, len(queries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, doc := range sequences {
		doc := doc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for q, query := range queries {
				var found bool
				if opts.Algorithm == AlgoNaive {
					found = match.HasNearDuplicateNaive(doc, query, opts.Threshold)
				} else {
					found = match.HasNearDuplicate(doc, query, sets[q], opts.Threshold, opts.N, strategyFor(opts.Algorithm))
				}
				if found {
					counts[q].Add(1)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]int64, len(queries))
	for i := range counts {
		out[i] = counts[i].Load()
	}
	return out, nil
}

func fileSequences(path string, cache *FileCache) ([][]int32, error) {
	if cache != nil {
		if sequences, ok := cache.Lookup(path); ok {
			return sequences, nil
		}
	}
	records, err := ReadRecords(path)
	if err != nil {
		return nil, err
	}
	sequences := make([][]int32, len(records))
	for i, rec := range records {
		sequences[i] = rec.TokenIDs
	}
	if cache != nil {
		cache.Store(path, sequences)
	}
	return sequences, nil
}

func strategyFor(a Algorithm) match.Strategy {
	if a == AlgoRolling {
		return match.StrategyRolling
	}
	return match.StrategyDirect
}
