package service

import (
	"fmt"
	"math/rand/v2"

	"datagen-api/internal/dataset"
	"datagen-api/internal/export"
	"datagen-api/internal/generator"
	"datagen-api/internal/models"

	"github.com/rs/zerolog"
)

// DataGenService contains the core business logic for locale discovery,
// record generation and export.
type DataGenService struct {
	store  DatasetStore
	logger zerolog.Logger
}

// Store interface for dependency injection
type DatasetStore interface {
	DiscoverLocales() []string
	HasLocale(locale string) bool
	LoadCategories(locale string) dataset.Dataset
}

// NewDataGenService creates a new data generation service
func NewDataGenService(store DatasetStore, logger zerolog.Logger) *DataGenService {
	return &DataGenService{store: store, logger: logger}
}

// ListLocales returns the available locale tags; empty when the data root
// is absent.
func (s *DataGenService) ListLocales() []string {
	return s.store.DiscoverLocales()
}

// Generate produces count records for the locale. When fields is
// non-empty, each record is trimmed to the requested fields (matched
// case- and space-insensitively). A fresh generator with its own random
// source is built per call, so concurrent requests never share one.
func (s *DataGenService) Generate(locale string, count int, fields []string) ([]*models.Record, error) {
	if count < 1 {
		return nil, &models.InvalidArgumentError{Msg: fmt.Sprintf("count must be a positive integer, got %d", count)}
	}
	if !s.store.HasLocale(locale) {
		return nil, &models.UnknownLocaleError{Locale: locale}
	}

	data := s.store.LoadCategories(locale)
	gen := generator.New(locale, data, newRand(), s.logger)

	records, err := gen.GenerateBatch(count)
	if err != nil {
		return nil, fmt.Errorf("service: failed to generate batch: %w", err)
	}

	if len(fields) > 0 {
		for i, record := range records {
			records[i] = record.Filter(fields)
		}
	}
	return records, nil
}

// ExportCSV renders records as CSV text (lenient field matching).
func (s *DataGenService) ExportCSV(records []*models.Record, fields []string) string {
	return export.RenderCSV(records, fields)
}

// ExportSQL renders records as a SQL script in the given mode (strict
// field matching).
func (s *DataGenService) ExportSQL(records []*models.Record, fields []string, mode export.SQLMode, table string) (string, error) {
	script, err := export.RenderSQL(records, fields, mode, table)
	if err != nil {
		return "", fmt.Errorf("service: failed to render sql: %w", err)
	}
	return script, nil
}

// newRand seeds an independent pseudo-random source for one generation
// request.
func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
