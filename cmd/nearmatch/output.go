package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/nearmatch/nearmatch/internal/corpus"
)

// Theme defines the color scheme for console output
type Theme struct {
	Count    lipgloss.Style
	Query    lipgloss.Style
	Location lipgloss.Style
	Summary  lipgloss.Style
	Dim      lipgloss.Style
}

// DefaultTheme is the default color scheme
var DefaultTheme = Theme{
	Count:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
	Query:    lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
	Location: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	Summary:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")),
	Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Current theme (can be changed at runtime)
var theme = DefaultTheme

// PrintQueriesLoaded prints how many queries came from the query file
func PrintQueriesLoaded(count int, path string) {
	fmt.Printf("Loaded %s queries from %s\n",
		theme.Summary.Render(fmt.Sprintf("%d", count)),
		theme.Location.Render(path))
}

// PrintScanStart prints the initial scanning message
func PrintScanStart(fileCount, queryCount, workerCount int, algo corpus.Algorithm) {
	fmt.Printf("Scanning %d files against %d queries using %d workers (%s strategy)...\n",
		fileCount, queryCount, workerCount, algo)
}

// PrintFileDone prints per-file progress
func PrintFileDone(path string, records int) {
	fmt.Printf("  %s %s\n",
		theme.Location.Render(path),
		theme.Dim.Render(fmt.Sprintf("(%d records)", records)))
}

// PrintCounts prints the per-query match counts
func PrintCounts(queries [][]int32, result *corpus.Result) {
	fmt.Println()
	for i := range queries {
		line := fmt.Sprintf("%s %s %s",
			theme.Query.Render(fmt.Sprintf("query %3d", i)),
			theme.Dim.Render(fmt.Sprintf("[%d tokens]", len(queries[i]))),
			theme.Count.Render(fmt.Sprintf("%d matches", result.Counts[i])))
		fmt.Println(line)
		for _, path := range result.MatchedFiles[i] {
			fmt.Printf("    %s\n", theme.Location.Render(path))
		}
	}
}

// PrintTotalSummary prints the final summary line
func PrintTotalSummary(result *corpus.Result, elapsed time.Duration) {
	var total int64
	for _, c := range result.Counts {
		total += c
	}
	fmt.Printf("\nTotal: %s matches in %s files (%s records) in %s\n",
		theme.Summary.Render(fmt.Sprintf("%d", total)),
		theme.Summary.Render(fmt.Sprintf("%d", result.Files)),
		theme.Summary.Render(fmt.Sprintf("%d", result.Records)),
		theme.Summary.Render(elapsed.Round(time.Millisecond).String()))
}

// JSON output structures

type JSONQuery struct {
	Index   int      `json:"index"`
	Tokens  int      `json:"tokens"`
	Matches int64    `json:"matches"`
	Files   []string `json:"files,omitempty"`
}

type JSONOutput struct {
	Threshold      float64     `json:"threshold"`
	N              int         `json:"n"`
	Strategy       string      `json:"strategy"`
	FilesScanned   int         `json:"files_scanned"`
	RecordsScanned int         `json:"records_scanned"`
	TotalMatches   int64       `json:"total_matches"`
	Queries        []JSONQuery `json:"queries"`
}

// WriteJSONResults writes the per-query results under the search dir
func WriteJSONResults(dir string, queries [][]int32, result *corpus.Result, threshold float64, n int, algo corpus.Algorithm) error {
	output := JSONOutput{
		Threshold:      threshold,
		N:              n,
		Strategy:       algo.String(),
		FilesScanned:   result.Files,
		RecordsScanned: result.Records,
		Queries:        make([]JSONQuery, 0, len(queries)),
	}
	for i := range queries {
		output.TotalMatches += result.Counts[i]
		output.Queries = append(output.Queries, JSONQuery{
			Index:   i,
			Tokens:  len(queries[i]),
			Matches: result.Counts[i],
			Files:   result.MatchedFiles[i],
		})
	}

	outputDir := filepath.Join(dir, ".nearmatch")
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}

	outputPath := filepath.Join(outputDir, "results.json")
	if err := os.WriteFile(outputPath, jsonData, 0o644); err != nil {
		return fmt.Errorf("writing JSON file: %w", err)
	}

	fmt.Printf("Results written to: %s\n", theme.Location.Render(outputPath))
	return nil
}
