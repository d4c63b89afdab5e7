package pipeline

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"controlstates/pkg/core/ingest"
	"controlstates/pkg/models"
)

// Uploader is the persistence collaborator. It owns the delete-then-insert
// per-month semantics that keep repeated runs from accumulating duplicates.
type Uploader interface {
	DeleteMonth(ctx context.Context, year, month int) error
	InsertSales(ctx context.Context, recs []models.SalesRecord) (uploaded, failed int, err error)
	InsertCategories(ctx context.Context, recs []models.CategoryRecord) (uploaded, failed int, err error)
	InsertCommentary(ctx context.Context, recs []models.CommentaryRecord) (uploaded, failed int, err error)
}

// RunStats summarizes one pipeline run.
type RunStats struct {
	RunID      string
	Succeeded  int
	Failed     int
	Sales      int
	Categories int
	Commentary int
}

// Runner processes every document a source offers, optionally restricted to
// a set of report months. Documents are independent: one bad document is
// counted and skipped, never aborts the run.
type Runner struct {
	source ingest.DocumentSource
	runID  string
}

// NewRunner creates a runner over a document source.
func NewRunner(source ingest.DocumentSource) *Runner {
	return &Runner{source: source, runID: uuid.New().String()}
}

// RunID identifies this run in logs and the run summary.
func (r *Runner) RunID() string { return r.runID }

// Run fetches, classifies and expands every matching document. months is an
// optional filter keyed by "YYYY-MM" period strings; nil means all.
func (r *Runner) Run(ctx context.Context, months map[string]bool) ([]*DocumentResult, RunStats, error) {
	stats := RunStats{RunID: r.runID}

	names, err := r.source.List(ctx)
	if err != nil {
		return nil, stats, fmt.Errorf("list documents: %w", err)
	}

	var results []*DocumentResult
	for i, name := range names {
		period, err := ingest.ParsePeriod(name)
		if err != nil {
			fmt.Printf("  [%d/%d] %s: %v, skipping\n", i+1, len(names), name, err)
			stats.Failed++
			continue
		}
		if months != nil && !months[period.String()] {
			continue
		}

		fmt.Printf("  [%d/%d] Processing %s (%s)\n", i+1, len(names), name, period)
		doc, err := r.source.Fetch(ctx, name)
		if err != nil {
			fmt.Printf("    WARNING: %v, skipping\n", err)
			stats.Failed++
			continue
		}

		result := ProcessDocument(period, doc.Tables, doc.Lines)
		result.Name = name
		fmt.Printf("    Extracted: %d sales, %d category, %d commentary\n",
			len(result.Sales), len(result.Categories), commentaryCount(result))

		results = append(results, result)
		stats.Succeeded++
		stats.Sales += len(result.Sales)
		stats.Categories += len(result.Categories)
		stats.Commentary += commentaryCount(result)
	}

	return results, stats, nil
}

// Upload clears every processed month and inserts the aggregated records.
// Returns total uploaded and failed record counts.
func Upload(ctx context.Context, uploader Uploader, results []*DocumentResult) (int, int, error) {
	months := make(map[models.ReportPeriod]bool)
	for _, res := range results {
		months[res.Period] = true
	}

	var periods []models.ReportPeriod
	for p := range months {
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool {
		if periods[i].Year != periods[j].Year {
			return periods[i].Year < periods[j].Year
		}
		return periods[i].Month < periods[j].Month
	})

	fmt.Println("  Clearing existing data for processed months...")
	for _, p := range periods {
		fmt.Printf("    Clearing %s...\n", p)
		if err := uploader.DeleteMonth(ctx, p.Year, p.Month); err != nil {
			// A month that cannot be cleared must not be re-inserted.
			return 0, 0, err
		}
	}

	sales, categories, comments := Aggregate(results)

	var uploaded, failed int
	fmt.Printf("  Uploading %d sales records...\n", len(sales))
	up, fail, err := uploader.InsertSales(ctx, sales)
	logUpload(up, fail, err)
	uploaded, failed = uploaded+up, failed+fail

	fmt.Printf("  Uploading %d category records...\n", len(categories))
	up, fail, err = uploader.InsertCategories(ctx, categories)
	logUpload(up, fail, err)
	uploaded, failed = uploaded+up, failed+fail

	fmt.Printf("  Uploading %d commentary records...\n", len(comments))
	up, fail, err = uploader.InsertCommentary(ctx, comments)
	logUpload(up, fail, err)
	uploaded, failed = uploaded+up, failed+fail

	return uploaded, failed, nil
}

// Aggregate flattens per-document results into the three upload collections.
func Aggregate(results []*DocumentResult) ([]models.SalesRecord, []models.CategoryRecord, []models.CommentaryRecord) {
	var sales []models.SalesRecord
	var categories []models.CategoryRecord
	var comments []models.CommentaryRecord
	for _, res := range results {
		sales = append(sales, res.Sales...)
		categories = append(categories, res.Categories...)
		if res.Commentary != nil {
			comments = append(comments, *res.Commentary)
		}
	}
	return sales, categories, comments
}

func commentaryCount(res *DocumentResult) int {
	if res.Commentary != nil {
		return 1
	}
	return 0
}

func logUpload(uploaded, failed int, err error) {
	if err != nil {
		fmt.Printf("    ERROR uploading batch: %v\n", err)
	}
	fmt.Printf("    %d uploaded, %d failed\n", uploaded, failed)
}
