package extract

import (
	"log"
	"strings"

	"controlstates/pkg/models"
)

// provisionalType is the first-pass verdict on a table. markets tags a table
// that looked like one of the two spirits market tables; which one it is can
// only be decided once every table in the document has been seen.
type provisionalType struct {
	resolved models.TableType
	markets  bool
}

// Classify assigns a semantic type to every table of one document. It runs
// in two phases: a per-table provisional pass, then a document-wide
// reassignment of the spirits market tables. The PDF layout conveys which
// market table is on-premise only through table order (first is total, last
// is on-premise), so the final decision is deferred until all tables are
// seen.
func Classify(tables []models.RawTable) []models.ClassifiedTable {
	provisional := make([]provisionalType, len(tables))
	for i, table := range tables {
		provisional[i] = classifyOne(table)
	}

	var markets []int
	for i, p := range provisional {
		if p.markets {
			markets = append(markets, i)
		}
	}

	switch {
	case len(markets) == 1:
		// A lone markets table is always the total-market table.
		provisional[markets[0]].resolved = models.TableSpiritsMarkets
	case len(markets) >= 2:
		provisional[markets[0]].resolved = models.TableSpiritsMarkets
		provisional[markets[len(markets)-1]].resolved = models.TableSpiritsOnPremise
		// Middle occurrences have no unambiguous row layout. Demote them
		// rather than guess; three or more markets tables in one report is a
		// data-quality problem upstream.
		for _, idx := range markets[1 : len(markets)-1] {
			provisional[idx].resolved = models.TableUnknown
			log.Printf("warning: table %d looks like a spirits market table but is neither first nor last; treating as unknown", idx)
		}
	}

	classified := make([]models.ClassifiedTable, len(tables))
	for i, table := range tables {
		classified[i] = models.ClassifiedTable{Rows: table, Type: provisional[i].resolved}
	}
	return classified
}

// classifyOne evaluates the provisional rules in strict priority order
// against the header row and the first data row.
func classifyOne(table models.RawTable) provisionalType {
	unknown := provisionalType{resolved: models.TableUnknown}
	if len(table) < 2 {
		return unknown
	}

	header := strings.ToUpper(strings.Join(table[0], " "))
	firstEntity := ""
	if len(table[1]) > 0 {
		firstEntity = strings.TrimSpace(table[1][0])
	}

	if strings.Contains(header, "WINE") {
		return provisionalType{resolved: models.TableWine}
	}
	if strings.Contains(header, "CATEGORIES") || strings.Contains(header, "CATEGORY") {
		return provisionalType{resolved: models.TableSpiritsCategories}
	}
	if IsSpiritCategory(firstEntity) {
		return provisionalType{resolved: models.TableSpiritsCategories}
	}
	if strings.Contains(header, "SPIRITS") || strings.Contains(header, "MARKETS") ||
		IsStateName(firstEntity) || IsTotalControl(firstEntity) {
		return provisionalType{resolved: models.TableUnknown, markets: true}
	}
	return unknown
}
