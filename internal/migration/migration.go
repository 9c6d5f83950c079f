package migration

import (
	"context"

	"github.com/jmoiron/sqlx"

	"copulagof/internal/errors"
)

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createRunsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create gof_runs table")
	}

	if err := r.createScoresTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create gof_scores table")
	}

	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create indexes")
	}

	return nil
}

func (r *MigrationRunner) createRunsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS gof_runs (
			id TEXT PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			sample_size INTEGER NOT NULL,
			alpha DOUBLE PRECISION NOT NULL,
			correction TEXT NOT NULL
		)`)
	return err
}

func (r *MigrationRunner) createScoresTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS gof_scores (
			run_id TEXT NOT NULL REFERENCES gof_runs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			family INTEGER NOT NULL,
			vuong_score INTEGER NOT NULL,
			clarke_score INTEGER NOT NULL,
			PRIMARY KEY (run_id, position)
		)`)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_gof_runs_created_at ON gof_runs(created_at DESC)`)
	return err
}
