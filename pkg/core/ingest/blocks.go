package ingest

import (
	"fmt"
	"sort"
	"strings"

	"controlstates/pkg/core/utils"
	"controlstates/pkg/models"
)

// Block is one node of the analysis service's block graph. Tables are TABLE
// blocks whose CHILD relationships point at CELL blocks, which in turn point
// at WORD blocks; free text arrives as LINE blocks.
type Block struct {
	ID            string         `json:"Id"`
	BlockType     string         `json:"BlockType"`
	Text          string         `json:"Text,omitempty"`
	RowIndex      int            `json:"RowIndex,omitempty"`
	ColumnIndex   int            `json:"ColumnIndex,omitempty"`
	Relationships []Relationship `json:"Relationships,omitempty"`
}

// Relationship links a block to its children.
type Relationship struct {
	Type string   `json:"Type"`
	IDs  []string `json:"Ids"`
}

// AnalysisDocument is the decoded output of one analyzed report.
type AnalysisDocument struct {
	Blocks []Block `json:"Blocks"`
}

// DecodeDocument decodes a saved analysis response. Cached files are
// sometimes trimmed or annotated by hand, so decoding falls back to repair
// before giving up.
func DecodeDocument(data []byte) (*AnalysisDocument, error) {
	var doc AnalysisDocument
	if err := utils.TolerantUnmarshal(data, &doc); err == nil && doc.Blocks != nil {
		return &doc, nil
	}
	// Some exports are the bare block array rather than the full response.
	var blocks []Block
	if err := utils.TolerantUnmarshal(data, &blocks); err != nil {
		return nil, fmt.Errorf("decode analysis document: %w", err)
	}
	return &AnalysisDocument{Blocks: blocks}, nil
}

// Tables assembles the document's TABLE blocks into cell grids, in document
// order. Cell text is the space-joined text of the cell's WORD children.
func (d *AnalysisDocument) Tables() []models.RawTable {
	byID := make(map[string]*Block, len(d.Blocks))
	for i := range d.Blocks {
		byID[d.Blocks[i].ID] = &d.Blocks[i]
	}

	var tables []models.RawTable
	for i := range d.Blocks {
		table := &d.Blocks[i]
		if table.BlockType != "TABLE" || len(table.Relationships) == 0 {
			continue
		}

		// row index -> column index -> text
		cellMap := make(map[int]map[int]string)
		for _, rel := range table.Relationships {
			if rel.Type != "CHILD" {
				continue
			}
			for _, id := range rel.IDs {
				cell := byID[id]
				if cell == nil || cell.BlockType != "CELL" {
					continue
				}
				if cellMap[cell.RowIndex] == nil {
					cellMap[cell.RowIndex] = make(map[int]string)
				}
				cellMap[cell.RowIndex][cell.ColumnIndex] = cellText(cell, byID)
			}
		}

		var rowIdxs []int
		for r := range cellMap {
			rowIdxs = append(rowIdxs, r)
		}
		sort.Ints(rowIdxs)

		var rows models.RawTable
		for _, r := range rowIdxs {
			var colIdxs []int
			for c := range cellMap[r] {
				colIdxs = append(colIdxs, c)
			}
			sort.Ints(colIdxs)
			row := make([]string, 0, len(colIdxs))
			for _, c := range colIdxs {
				row = append(row, cellMap[r][c])
			}
			rows = append(rows, row)
		}
		if len(rows) > 0 {
			tables = append(tables, rows)
		}
	}
	return tables
}

func cellText(cell *Block, byID map[string]*Block) string {
	var words []string
	for _, rel := range cell.Relationships {
		if rel.Type != "CHILD" {
			continue
		}
		for _, id := range rel.IDs {
			if word := byID[id]; word != nil && word.BlockType == "WORD" {
				words = append(words, word.Text)
			}
		}
	}
	return strings.TrimSpace(strings.Join(words, " "))
}

// Lines returns every LINE block's text in document order.
func (d *AnalysisDocument) Lines() []string {
	var lines []string
	for _, b := range d.Blocks {
		if b.BlockType == "LINE" {
			lines = append(lines, b.Text)
		}
	}
	return lines
}
