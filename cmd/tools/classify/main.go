// Command classify inspects one saved analysis document: it prints the
// derived period, each table's classified type and the record counts the
// pipeline would extract. Useful when a report month comes back with
// unexpected totals.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"controlstates/pkg/core/extract"
	"controlstates/pkg/core/ingest"
	"controlstates/pkg/core/pipeline"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <document.json|document.html>", filepath.Base(os.Args[0]))
	}
	path := os.Args[1]

	period, err := ingest.ParsePeriod(filepath.Base(path))
	if err != nil {
		log.Fatal(err)
	}

	source := ingest.NewLocalSource(filepath.Dir(path))
	doc, err := source.Fetch(context.Background(), filepath.Base(path))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Document: %s\n", doc.Name)
	fmt.Printf("Period:   %s\n", period)
	fmt.Printf("Tables:   %d\n", len(doc.Tables))
	fmt.Printf("Lines:    %d\n\n", len(doc.Lines))

	for i, table := range extract.Classify(doc.Tables) {
		fmt.Printf("  table %d: %-22s %d rows x %d cols\n", i, table.Type, len(table.Rows), width(table.Rows))
	}

	result := pipeline.ProcessDocument(period, doc.Tables, doc.Lines)
	fmt.Printf("\nWould extract: %d sales, %d category records\n", len(result.Sales), len(result.Categories))
	if result.Commentary != nil {
		fmt.Printf("Commentary: %s (%d chars)\n", result.Commentary.CommentaryID, len(result.Commentary.Content))
	} else {
		fmt.Println("Commentary: none")
	}
}

func width(rows [][]string) int {
	max := 0
	for _, row := range rows {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}
