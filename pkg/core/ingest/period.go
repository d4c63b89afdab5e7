// Package ingest adapts the output of the external document-analysis service
// into the grids and line lists the extraction core consumes, and derives
// the report period from document filenames.
package ingest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"controlstates/pkg/models"
)

// monthTokens maps the month spellings seen in report filenames, checked in
// this order. Longer spellings share a prefix with the short token except
// September, which appears only as SEPT.
var monthTokens = []struct {
	token string
	month int
}{
	{"JAN", 1}, {"JANUARY", 1},
	{"FEB", 2}, {"FEBRUARY", 2},
	{"MAR", 3}, {"MARCH", 3},
	{"APR", 4}, {"APRIL", 4},
	{"MAY", 5},
	{"JUN", 6}, {"JUNE", 6},
	{"JUL", 7}, {"JULY", 7},
	{"AUG", 8}, {"AUGUST", 8},
	{"SEPT", 9}, {"SEPTEMBER", 9},
	{"OCT", 10}, {"OCTOBER", 10},
	{"NOV", 11}, {"NOVEMBER", 11},
	{"DEC", 12}, {"DECEMBER", 12},
}

var yearRe = regexp.MustCompile(`20\d{2}`)

// ParsePeriod derives the report period from a filename such as
// CSResults_DEC2025_rev.pdf. The trailing revision marker and extension are
// ignored. A filename without a recognizable month and 20xx year is a
// precondition failure for the whole document: every record's time key would
// be wrong, so the caller must not proceed.
func ParsePeriod(filename string) (models.ReportPeriod, error) {
	name := strings.ReplaceAll(filename, ".pdf", "")
	name = strings.ReplaceAll(name, ".json", "")
	name = strings.ReplaceAll(name, "_rev", "")
	upper := strings.ToUpper(name)

	for _, mt := range monthTokens {
		if !strings.Contains(upper, mt.token) {
			continue
		}
		if year := yearRe.FindString(name); year != "" {
			y, _ := strconv.Atoi(year)
			return models.ReportPeriod{Year: y, Month: mt.month}, nil
		}
	}
	return models.ReportPeriod{}, fmt.Errorf("no report period in filename %q", filename)
}
