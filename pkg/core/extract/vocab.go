// Package extract turns raw report table grids into typed sales and
// category records: value normalization, document-scoped table
// classification and per-row record expansion.
package extract

import "strings"

// StateCodes maps the control-state spellings that appear in the reports to
// their postal codes. "West Virgina" is a recurring typo in the source PDFs
// and "Mont Co" is Montgomery County, MD. "Total Control" maps to the empty
// code because it is the aggregate row, not a state.
var StateCodes = map[string]string{
	"Alabama":        "AL",
	"Iowa":           "IA",
	"Idaho":          "ID",
	"Mont Co":        "MD",
	"Maine":          "ME",
	"Michigan":       "MI",
	"Mississippi":    "MS",
	"Montana":        "MT",
	"North Carolina": "NC",
	"New Hampshire":  "NH",
	"Ohio":           "OH",
	"Oregon":         "OR",
	"Pennsylvania":   "PA",
	"Utah":           "UT",
	"Virginia":       "VA",
	"Vermont":        "VT",
	"West Virginia":  "WV",
	"West Virgina":   "WV",
	"Wyoming":        "WY",
	"Total Control":  "",
}

// SpiritCategories are the category labels of the spirit categories table.
var SpiritCategories = []string{
	"VODKA", "TEQUILA", "WHISKEY", "RUM", "GIN", "BRANDY",
	"COGNAC", "CORDIALS", "COCKTAILS", "CANADIAN",
}

// totalControlLabel is the canonical form entity names are compared against.
const totalControlLabel = "TOTAL CONTROL"

// CanonicalEntity collapses runs of whitespace and uppercases an entity name
// so comparisons are case- and whitespace-insensitive.
func CanonicalEntity(name string) string {
	return strings.ToUpper(strings.Join(strings.Fields(name), " "))
}

// IsTotalControl reports whether an entity name is the aggregate
// "Total Control" row under any casing or spacing.
func IsTotalControl(name string) bool {
	return CanonicalEntity(name) == totalControlLabel
}

// IsSpiritCategory reports whether an entity name exactly matches one of the
// known spirit category labels.
func IsSpiritCategory(name string) bool {
	c := CanonicalEntity(name)
	for _, cat := range SpiritCategories {
		if c == cat {
			return true
		}
	}
	return false
}

// IsStateName reports whether an entity name exactly matches one of the
// known control-state spellings (excluding the Total Control aggregate).
func IsStateName(name string) bool {
	c := CanonicalEntity(name)
	if c == totalControlLabel {
		return false
	}
	for state := range StateCodes {
		if c == strings.ToUpper(state) {
			return true
		}
	}
	return false
}
