// Package commentary assembles the narrative text of a report from the raw
// extracted line list, filtering out structural, tabular and header noise.
package commentary

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"controlstates/pkg/core/extract"
	"controlstates/pkg/models"
)

// MinNarrativeLen is the minimum assembled length (in characters) for a
// document to carry a commentary record at all.
const MinNarrativeLen = 50

var (
	// Report-title boilerplate, bare page numbers and "Page N" lines.
	boilerplateRe = regexp.MustCompile(`(?i)^NABCA Monthly Report|Control States Results$|^\d+$|^Page \d+`)
	// Three or more comma-grouped multi-digit numbers: a table row that was
	// flattened into running text.
	tabularRowRe = regexp.MustCompile(`\d+,\d+.*\d+,\d+.*\d+,\d+`)
	// Column-label tokens from the data tables.
	columnTokenRe = regexp.MustCompile(`(9L|CMTY|R12TY|Shelf \$)`)
	// Lines made only of digits and numeric punctuation.
	numericOnlyRe = regexp.MustCompile(`^[0-9$%\s,\-\.]+$`)
)

// FilterNarrative drops every non-narrative line and joins the survivors, in
// original order, into a single paragraph. The result may be arbitrarily
// short; Extract applies the length threshold.
func FilterNarrative(lines []string) string {
	var kept []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if dropLine(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, " ")
}

// dropLine applies the removal rules in order. The generic length cut runs
// last so longer narrative sentences survive even when they contain a short
// numeric fragment.
func dropLine(line string) bool {
	if boilerplateRe.MatchString(line) {
		return true
	}
	if tabularRowRe.MatchString(line) {
		return true
	}
	n := utf8.RuneCountInString(line)
	if n < 50 && columnTokenRe.MatchString(line) {
		return true
	}
	if n < 40 && containsVocabLabel(line) {
		return true
	}
	if numericOnlyRe.MatchString(line) {
		return true
	}
	return n <= 40
}

// containsVocabLabel reports whether the line carries a state or spirit
// category name, the signature of a short row label rendered as text.
func containsVocabLabel(line string) bool {
	for state := range extract.StateCodes {
		if strings.Contains(line, state) {
			return true
		}
	}
	upper := strings.ToUpper(line)
	for _, cat := range extract.SpiritCategories {
		if strings.Contains(upper, cat) {
			return true
		}
	}
	return false
}

// Extract builds the document's commentary record, or nil when the filtered
// narrative is shorter than MinNarrativeLen characters.
func Extract(lines []string, period models.ReportPeriod) *models.CommentaryRecord {
	content := FilterNarrative(lines)
	if utf8.RuneCountInString(content) < MinNarrativeLen {
		return nil
	}
	return &models.CommentaryRecord{
		CommentaryID: models.CommentaryID(period),
		Year:         period.Year,
		Month:        period.Month,
		ReportDate:   period.ReportDate(),
		Section:      models.SectionFullReport,
		Content:      content,
	}
}
