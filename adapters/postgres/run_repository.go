package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"copulagof/domain/copula"
	"copulagof/domain/core"
	"copulagof/domain/gof"
)

// RunRepository persists scoring runs and their score cells
type RunRepository struct {
	db *sqlx.DB
}

// NewRunRepository creates a new run repository
func NewRunRepository(db *sqlx.DB) *RunRepository {
	return &RunRepository{db: db}
}

type runRow struct {
	ID         string    `db:"id"`
	CreatedAt  time.Time `db:"created_at"`
	SampleSize int       `db:"sample_size"`
	Alpha      float64   `db:"alpha"`
	Correction string    `db:"correction"`
}

type scoreRow struct {
	RunID    string `db:"run_id"`
	Position int    `db:"position"`
	Family   int    `db:"family"`
	Vuong    int    `db:"vuong_score"`
	Clarke   int    `db:"clarke_score"`
}

// SaveRun stores a completed run and its score matrix in one transaction
func (r *RunRepository) SaveRun(ctx context.Context, run *gof.ScoringRun) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO gof_runs (id, created_at, sample_size, alpha, correction)
		VALUES ($1, $2, $3, $4, $5)`,
		run.ID.String(), run.CreatedAt.Time(), run.SampleSize, run.Alpha, run.Correction.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	for i, family := range run.Matrix.Families {
		vuong, clarke := run.Matrix.Column(i)
		_, err = tx.ExecContext(ctx, `
			INSERT INTO gof_scores (run_id, position, family, vuong_score, clarke_score)
			VALUES ($1, $2, $3, $4, $5)`,
			run.ID.String(), i, int(family), vuong, clarke,
		)
		if err != nil {
			return fmt.Errorf("failed to insert score for family %s: %w", family, err)
		}
	}

	return tx.Commit()
}

// GetRun loads a stored run with its full score matrix
func (r *RunRepository) GetRun(ctx context.Context, id core.RunID) (*gof.ScoringRun, error) {
	var row runRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, created_at, sample_size, alpha, correction
		FROM gof_runs WHERE id = $1`, id.String())
	if err == sql.ErrNoRows {
		return nil, core.NewNotFoundError("run", id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load run: %w", err)
	}

	var cells []scoreRow
	err = r.db.SelectContext(ctx, &cells, `
		SELECT run_id, position, family, vuong_score, clarke_score
		FROM gof_scores WHERE run_id = $1 ORDER BY position`, id.String())
	if err != nil {
		return nil, fmt.Errorf("failed to load scores: %w", err)
	}

	return rowToRun(row, cells)
}

// ListRuns returns the most recent runs, newest first
func (r *RunRepository) ListRuns(ctx context.Context, limit int) ([]*gof.ScoringRun, error) {
	if limit <= 0 {
		limit = 20
	}

	var rows []runRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, created_at, sample_size, alpha, correction
		FROM gof_runs ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	runs := make([]*gof.ScoringRun, 0, len(rows))
	for _, row := range rows {
		var cells []scoreRow
		err = r.db.SelectContext(ctx, &cells, `
			SELECT run_id, position, family, vuong_score, clarke_score
			FROM gof_scores WHERE run_id = $1 ORDER BY position`, row.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load scores for run %s: %w", row.ID, err)
		}
		run, err := rowToRun(row, cells)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, nil
}

func rowToRun(row runRow, cells []scoreRow) (*gof.ScoringRun, error) {
	correction, err := gof.ParseCorrection(row.Correction)
	if err != nil {
		return nil, fmt.Errorf("stored run %s has invalid correction: %w", row.ID, err)
	}

	families := make([]copula.Family, len(cells))
	for i, cell := range cells {
		families[i] = copula.Family(cell.Family)
	}
	matrix := gof.NewScoreMatrix(families)
	for i, cell := range cells {
		matrix.SetColumn(i, cell.Vuong, cell.Clarke)
	}

	return &gof.ScoringRun{
		ID:         core.RunID(row.ID),
		CreatedAt:  core.NewTimestamp(row.CreatedAt),
		SampleSize: row.SampleSize,
		Alpha:      row.Alpha,
		Correction: correction,
		Matrix:     matrix,
	}, nil
}
