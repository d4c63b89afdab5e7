package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"controlstates/pkg/core/utils"
)

// WriteArtifacts saves the aggregated record collections as JSON files in
// outputDir, one file per destination table.
func WriteArtifacts(results []*DocumentResult, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	sales, categories, comments := Aggregate(results)
	files := []struct {
		name string
		data interface{}
	}{
		{"sales_fact.json", sales},
		{"brand_category_data.json", categories},
		{"commentary.json", comments},
	}

	for _, f := range files {
		data, err := json.MarshalIndent(f.data, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal %s: %w", f.name, err)
		}
		path := filepath.Join(outputDir, f.name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", f.name, err)
		}
		fmt.Printf("  Saved %s\n", path)
	}
	return nil
}

// WriteSummary renders a run summary as markdown and HTML next to the JSON
// artifacts.
func WriteSummary(results []*DocumentResult, stats RunStats, outputDir string) error {
	md := summaryMarkdown(results, stats)

	if err := os.WriteFile(filepath.Join(outputDir, "run_summary.md"), []byte(md), 0644); err != nil {
		return fmt.Errorf("write run summary: %w", err)
	}

	html, err := utils.MarkdownToHTML(md)
	if err != nil {
		return fmt.Errorf("render run summary: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outputDir, "run_summary.html"), []byte(html), 0644); err != nil {
		return fmt.Errorf("write run summary html: %w", err)
	}
	return nil
}

func summaryMarkdown(results []*DocumentResult, stats RunStats) string {
	var sb strings.Builder
	sb.WriteString("# Control States Pipeline Run\n\n")
	fmt.Fprintf(&sb, "- Run: %s\n", stats.RunID)
	fmt.Fprintf(&sb, "- Completed: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(&sb, "- Documents: %d succeeded, %d failed\n", stats.Succeeded, stats.Failed)
	fmt.Fprintf(&sb, "- Records: %d sales, %d category, %d commentary\n\n", stats.Sales, stats.Categories, stats.Commentary)

	sb.WriteString("| Document | Period | Sales | Category | Commentary |\n")
	sb.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, res := range results {
		fmt.Fprintf(&sb, "| %s | %s | %d | %d | %d |\n",
			res.Name, res.Period, len(res.Sales), len(res.Categories), commentaryCount(res))
	}
	return sb.String()
}
