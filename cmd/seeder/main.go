package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	"datagen-api/internal/config"
	"datagen-api/internal/dataset"
	"datagen-api/internal/export"
	"datagen-api/internal/service"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

func main() {
	locale := flag.String("locale", "", "Locale to generate records for (e.g. pl, de)")
	count := flag.Int("count", 100, "Number of records to generate")
	table := flag.String("table", "", "Target table name (single-table mode)")
	mode := flag.String("mode", "single-table", "SQL shape: single-table or two-table")
	flag.Parse()

	if *locale == "" {
		fmt.Println("Error: --locale flag is required")
		os.Exit(1)
	}

	sqlMode := export.ModeSingleTable
	switch *mode {
	case "single-table":
	case "two-table":
		sqlMode = export.ModeTwoTable
	default:
		fmt.Printf("Error: unknown mode %q\n", *mode)
		os.Exit(1)
	}

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *table == "" {
		*table = cfg.DefaultTable
	}

	fmt.Printf("Generating %d %s records\n", *count, *locale)

	loader := dataset.NewLoader(cfg.DataDir, log.Logger)
	svc := service.NewDataGenService(loader, log.Logger)

	records, err := svc.Generate(*locale, *count, nil)
	if err != nil {
		fmt.Printf("Error generating records: %v\n", err)
		os.Exit(1)
	}

	script, err := svc.ExportSQL(records, nil, sqlMode, *table)
	if err != nil {
		fmt.Printf("Error rendering SQL: %v\n", err)
		os.Exit(1)
	}

	// Connect to DB
	db, err := sql.Open("postgres", cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// Execute generated script
	if _, err := db.Exec(script); err != nil {
		fmt.Printf("Error executing seed script: %v\n", err)
		os.Exit(1)
	}

	// Verify data
	if err := verifySeed(db, sqlMode, *table, len(records)); err != nil {
		fmt.Printf("Error verifying seed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully seeded %d records\n", len(records))
}

func verifySeed(db *sql.DB, mode export.SQLMode, table string, expected int) error {
	if mode == export.ModeTwoTable {
		table = "persons"
	}

	var count int
	if err := db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count); err != nil {
		return fmt.Errorf("failed to count rows: %w", err)
	}

	if count < expected {
		return fmt.Errorf("row count mismatch: expected at least %d, got %d", expected, count)
	}
	return nil
}
