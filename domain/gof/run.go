package gof

import (
	"copulagof/domain/core"
)

// ScoringRun records one completed score-matrix computation for
// persistence and reporting.
type ScoringRun struct {
	ID         core.RunID     `json:"id"`
	CreatedAt  core.Timestamp `json:"created_at"`
	SampleSize int            `json:"sample_size"`
	Alpha      float64        `json:"alpha"`
	Correction Correction     `json:"correction"`
	Matrix     *ScoreMatrix   `json:"matrix"`
}

// NewScoringRun stamps a fresh run record around a completed matrix
func NewScoringRun(n int, p Params, matrix *ScoreMatrix) *ScoringRun {
	return &ScoringRun{
		ID:         core.NewRunID(),
		CreatedAt:  core.Now(),
		SampleSize: n,
		Alpha:      p.Alpha(),
		Correction: p.Correction(),
		Matrix:     matrix,
	}
}
