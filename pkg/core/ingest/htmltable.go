package ingest

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"controlstates/pkg/models"
)

// ParseHTMLReport converts an HTML rendition of a report into table grids
// and text lines. Some months are published as HTML rather than the analysis
// service's block output; this adapter makes those renditions
// indistinguishable to the core.
//
// Tables are laid onto a virtual grid so colspan/rowspan cells land in the
// right columns; spanned slots stay empty so value columns keep their index.
func ParseHTMLReport(html string) ([]models.RawTable, []string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil, err
	}

	var tables []models.RawTable
	doc.Find("table").Each(func(_ int, sel *goquery.Selection) {
		if grid := tableGrid(sel); len(grid) > 0 {
			tables = append(tables, grid)
		}
	})

	var lines []string
	doc.Find("p, li, h1, h2, h3, h4").Each(func(_ int, sel *goquery.Selection) {
		text := strings.Join(strings.Fields(sel.Text()), " ")
		if text != "" {
			lines = append(lines, text)
		}
	})

	return tables, lines, nil
}

func tableGrid(table *goquery.Selection) models.RawTable {
	rows := table.Find("tr")
	rowCount := rows.Length()
	if rowCount == 0 {
		return nil
	}

	// Pre-scan to size the grid: the widest row, counting colspans.
	maxCols := 0
	rows.Each(func(_ int, tr *goquery.Selection) {
		cols := 0
		tr.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			cols += spanAttr(cell, "colspan")
		})
		if cols > maxCols {
			maxCols = cols
		}
	})
	if maxCols == 0 {
		return nil
	}

	grid := make([][]string, rowCount)
	occupied := make([][]bool, rowCount)
	for i := range grid {
		grid[i] = make([]string, maxCols)
		occupied[i] = make([]bool, maxCols)
	}

	rowIdx := 0
	rows.Each(func(_ int, tr *goquery.Selection) {
		colIdx := 0
		tr.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			// Skip slots claimed by rowspans from the rows above.
			for colIdx < maxCols && occupied[rowIdx][colIdx] {
				colIdx++
			}
			if colIdx >= maxCols {
				return
			}

			colspan := spanAttr(cell, "colspan")
			rowspan := spanAttr(cell, "rowspan")
			text := strings.Join(strings.Fields(cell.Text()), " ")

			for r := 0; r < rowspan && rowIdx+r < rowCount; r++ {
				for c := 0; c < colspan && colIdx+c < maxCols; c++ {
					occupied[rowIdx+r][colIdx+c] = true
					if r == 0 && c == 0 {
						grid[rowIdx+r][colIdx+c] = text
					}
				}
			}
			colIdx += colspan
		})
		rowIdx++
	})

	return grid
}

func spanAttr(cell *goquery.Selection, name string) int {
	n, err := strconv.Atoi(cell.AttrOr(name, "1"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
