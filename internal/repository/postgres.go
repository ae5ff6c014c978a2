package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedRepository loads exporter-produced SQL into PostgreSQL.
type SeedRepository struct {
	db *pgxpool.Pool
}

// NewSeedRepository creates a new PostgreSQL seed repository
func NewSeedRepository(db *pgxpool.Pool) *SeedRepository {
	return &SeedRepository{db: db}
}

// ExecScript executes a generated SQL script. The exporter emits plain
// statements with literal values, so the whole script runs as one simple
// query batch.
func (r *SeedRepository) ExecScript(ctx context.Context, script string) error {
	if _, err := r.db.Exec(ctx, script); err != nil {
		return fmt.Errorf("repository: failed to execute seed script: %w", err)
	}
	return nil
}

// CountRows returns the number of rows in a seeded table.
func (r *SeedRepository) CountRows(ctx context.Context, table string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to count rows in %s: %w", table, err)
	}
	return count, nil
}
