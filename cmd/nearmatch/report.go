package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/nearmatch/nearmatch/internal/corpus"
)

// buildReport assembles a markdown summary of the run, one section per
// query that matched.
func buildReport(queries [][]int32, result *corpus.Result, threshold float64) string {
	var sb strings.Builder

	sb.WriteString("# Near-duplicate matches\n\n")

	matched := 0
	for i := range queries {
		if result.Counts[i] > 0 {
			matched++
		}
	}
	sb.WriteString(fmt.Sprintf("%d of %d queries matched at threshold %.2f across %d files (%d records).\n\n",
		matched, len(queries), threshold, result.Files, result.Records))

	if matched == 0 {
		sb.WriteString("No near-duplicate spans found.\n")
		return sb.String()
	}

	for i := range queries {
		if result.Counts[i] == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("## Query %d\n\n", i))
		sb.WriteString(fmt.Sprintf("**Tokens:** %d  **Matching records:** %d\n\n",
			len(queries[i]), result.Counts[i]))
		for _, path := range result.MatchedFiles[i] {
			sb.WriteString(fmt.Sprintf("- `%s`\n", path))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// RenderReport renders the markdown report to the terminal
func RenderReport(queries [][]int32, result *corpus.Result, threshold float64) {
	markdown := buildReport(queries, result, threshold)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		fmt.Print(markdown)
		return
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		// Fallback to plain output if rendering fails
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
