package ports

import (
	"context"

	"copulagof/domain/core"
	"copulagof/domain/gof"
)

// ScoreLedger persists completed scoring runs
type ScoreLedger interface {
	SaveRun(ctx context.Context, run *gof.ScoringRun) error
	GetRun(ctx context.Context, id core.RunID) (*gof.ScoringRun, error)
	ListRuns(ctx context.Context, limit int) ([]*gof.ScoringRun, error)
}
