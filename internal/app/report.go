package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/hyperifyio/webquery/internal/rank"
)

// reportMeta captures run provenance for the results footer.
type reportMeta struct {
	Model       string
	LLMBaseURL  string
	GeneratedAt time.Time
}

// buildResultsMarkdown renders ranked entries as a Markdown document: the
// query, one numbered section per result in rank order, and a provenance
// footer.
func buildResultsMarkdown(query string, entries []rank.Entry, meta reportMeta) string {
	var sb strings.Builder
	sb.WriteString("# Web query results\n\n")
	sb.WriteString("Query: ")
	sb.WriteString(strings.TrimSpace(query))
	sb.WriteString("\n\n")

	if len(entries) == 0 {
		sb.WriteString("_No results: no page yielded extractable content._\n\n")
	}
	for i, e := range entries {
		sb.WriteString(fmt.Sprintf("## Result %d: %s\n\n", i+1, e.URL))
		sb.WriteString(e.Answer)
		sb.WriteString("\n\n")
	}

	sb.WriteString("---\n\n")
	sb.WriteString(fmt.Sprintf("Model: %s", meta.Model))
	if meta.LLMBaseURL != "" {
		sb.WriteString(fmt.Sprintf(" · Endpoint: %s", meta.LLMBaseURL))
	}
	sb.WriteString(fmt.Sprintf(" · Results: %d · Generated: %s\n", len(entries), meta.GeneratedAt.Format(time.RFC3339)))
	return sb.String()
}
