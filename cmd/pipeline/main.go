// Command pipeline extracts sales, category and commentary records from
// analyzed control-states reports and uploads them to the reporting
// database.
//
// Usage:
//
//	pipeline                          process every document in the input dir
//	pipeline 2025-12                  process one month
//	pipeline 2025-10 2025-11 -no-upload
//
// Environment:
//
//	DATABASE_URL     Postgres connection string (required unless -no-upload)
//	REPORT_SCHEMA    destination schema (default: nabca)
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"regexp"

	"github.com/joho/godotenv"

	"controlstates/pkg/core/ingest"
	"controlstates/pkg/core/pipeline"
	"controlstates/pkg/core/store"
)

var monthArgRe = regexp.MustCompile(`^(20\d{2})-(0[1-9]|1[0-2])$`)

func main() {
	noUpload := flag.Bool("no-upload", false, "extract only: save JSON artifacts but skip the database upload")
	inputDir := flag.String("input-dir", "", "directory of saved analysis documents (overrides config)")
	outputDir := flag.String("output-dir", "", "directory for JSON artifacts (overrides config)")
	configPath := flag.String("config", "config/pipeline.yaml", "pipeline config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, assuming environment variables are set.")
	}

	cfg, err := pipeline.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *inputDir != "" {
		cfg.InputDir = *inputDir
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	months, err := parseMonthArgs(flag.Args())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Control States Pipeline")
	if months == nil {
		fmt.Printf("  Target: all documents in %s\n", cfg.InputDir)
	} else {
		fmt.Printf("  Target months: %v\n", flag.Args())
	}

	ctx := context.Background()
	runner := pipeline.NewRunner(ingest.NewLocalSource(cfg.InputDir))

	results, stats, err := runner.Run(ctx, months)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\n  Extraction complete: %d succeeded, %d failed\n", stats.Succeeded, stats.Failed)
	fmt.Printf("  Total records: %d sales, %d category, %d commentary\n\n", stats.Sales, stats.Categories, stats.Commentary)

	if len(results) == 0 {
		log.Fatal("No data extracted.")
	}

	if err := pipeline.WriteArtifacts(results, cfg.OutputDir); err != nil {
		log.Fatal(err)
	}
	if err := pipeline.WriteSummary(results, stats, cfg.OutputDir); err != nil {
		log.Fatal(err)
	}

	if *noUpload {
		fmt.Println("\n  -no-upload set. Skipping database upload.")
		return
	}

	if err := store.InitDB(ctx); err != nil {
		log.Fatalf("database init: %v", err)
	}
	defer store.Close()

	repo := store.NewReportRepo(store.GetPool(), cfg.Schema)
	uploaded, failed, err := pipeline.Upload(ctx, repo, results)
	if err != nil {
		log.Fatalf("upload: %v", err)
	}
	fmt.Printf("\n  Upload complete: %d uploaded, %d failed\n", uploaded, failed)
}

// parseMonthArgs turns positional YYYY-MM arguments into the runner's month
// filter. No arguments means no filter.
func parseMonthArgs(args []string) (map[string]bool, error) {
	if len(args) == 0 {
		return nil, nil
	}
	months := make(map[string]bool, len(args))
	for _, arg := range args {
		if !monthArgRe.MatchString(arg) {
			return nil, fmt.Errorf("invalid month %q: use YYYY-MM (e.g. 2025-12)", arg)
		}
		months[arg] = true
	}
	return months, nil
}
