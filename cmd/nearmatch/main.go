package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/nearmatch/nearmatch/internal/corpus"
)

func main() {
	searchDir := flag.String("search-dir", ".", "Directory to search for record files")
	queryPath := flag.String("query", "", "Path to the query record file (jsonl or jsonl.gz)")
	threshold := flag.Float64("threshold", 0.6, "Similarity threshold (0.0-1.0)")
	n := flag.Int("n", 10, "N-gram width for the fingerprint prefilter")
	strategy := flag.String("strategy", "direct", "Scan strategy: direct, rolling, or naive")
	startFileIdx := flag.Int("start-file-idx", 0, "First shard index (inclusive, in thousands)")
	endFileIdx := flag.Int("end-file-idx", 142, "Last shard index (inclusive, in thousands)")
	workers := flag.Int("workers", runtime.NumCPU(), "Scan goroutines per file")
	noCache := flag.Bool("no-cache", false, "Disable the decoded-record cache, force full re-parse")
	report := flag.Bool("report", false, "Render a per-query match report to the terminal")
	flag.Parse()

	if *queryPath == "" {
		fmt.Fprintf(os.Stderr, "Error: -query is required\n")
		os.Exit(1)
	}
	if *threshold < 0.0 || *threshold > 1.0 {
		fmt.Fprintf(os.Stderr, "Error: -threshold must be in [0.0, 1.0], got %v\n", *threshold)
		os.Exit(1)
	}
	if *n < 1 {
		fmt.Fprintf(os.Stderr, "Error: -n must be at least 1, got %d\n", *n)
		os.Exit(1)
	}
	algo, err := corpus.ParseAlgorithm(*strategy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	startTime := time.Now()

	queries, err := corpus.LoadQueries(*queryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading queries: %v\n", err)
		os.Exit(1)
	}
	PrintQueriesLoaded(len(queries), *queryPath)

	allFiles, err := corpus.ListFiles(*searchDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking directory: %v\n", err)
		os.Exit(1)
	}
	files := corpus.FilterShardRange(allFiles, *startFileIdx, *endFileIdx)
	if len(files) == 0 {
		fmt.Printf("No record files in shard range %d-%d under %s\n", *startFileIdx, *endFileIdx, *searchDir)
		os.Exit(0)
	}
	PrintScanStart(len(files), len(queries), *workers, algo)

	var cache *corpus.FileCache
	if !*noCache {
		cache = corpus.LoadCache(*searchDir)
	}

	result, err := corpus.Search(context.Background(), files, queries, corpus.Options{
		Threshold: *threshold,
		N:         *n,
		Algorithm: algo,
		Workers:   *workers,
		Cache:     cache,
		Progress:  PrintFileDone,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching: %v\n", err)
		os.Exit(1)
	}

	if cache != nil {
		corpus.SaveCache(*searchDir, cache)
	}

	PrintCounts(queries, result)
	PrintTotalSummary(result, time.Since(startTime))

	if err := WriteJSONResults(*searchDir, queries, result, *threshold, *n, algo); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing results: %v\n", err)
		os.Exit(1)
	}

	if *report {
		RenderReport(queries, result, *threshold)
	}
}
