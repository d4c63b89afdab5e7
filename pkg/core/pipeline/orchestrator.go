// Package pipeline drives extraction end to end: classify a document's
// tables, expand every data row, filter the commentary, and hand the record
// collections to the upload layer.
package pipeline

import (
	"controlstates/pkg/core/commentary"
	"controlstates/pkg/core/extract"
	"controlstates/pkg/models"
)

// DocumentResult is everything extracted from one report document.
type DocumentResult struct {
	Name       string                   `json:"name"`
	Period     models.ReportPeriod      `json:"period"`
	Sales      []models.SalesRecord     `json:"sales"`
	Categories []models.CategoryRecord  `json:"categories"`
	Commentary *models.CommentaryRecord `json:"commentary,omitempty"`
}

// ProcessDocument runs the extraction core over one document. It never
// fails: malformed tables and rows degrade to zero records, so the result is
// the maximum honest extraction for the document.
func ProcessDocument(period models.ReportPeriod, tables []models.RawTable, lines []string) *DocumentResult {
	result := &DocumentResult{Period: period}

	for _, table := range extract.Classify(tables) {
		for _, row := range table.DataRows() {
			sales, categories := extract.Expand(row, period, table.Type)
			result.Sales = append(result.Sales, sales...)
			result.Categories = append(result.Categories, categories...)
		}
	}

	result.Commentary = commentary.Extract(lines, period)
	return result
}
