package gof

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"copulagof/domain/copula"
	"copulagof/domain/core"
	domain "copulagof/domain/gof"
	"copulagof/internal"
	"copulagof/ports"
)

// Engine drives the all-pairs comparison: every family in the set takes
// a turn as reference against every other candidate, under both tests.
type Engine struct {
	evaluator ports.ModelEvaluator
	vuong     PairwiseTest
	clarke    PairwiseTest
	logger    *internal.Logger

	// MaxParallel bounds the number of reference families evaluated
	// concurrently; zero means sequential.
	MaxParallel int
}

// NewEngine creates a scoring engine over the given evaluator
func NewEngine(evaluator ports.ModelEvaluator, logger *internal.Logger) *Engine {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	return &Engine{
		evaluator: evaluator,
		vuong:     NewVuongTest(),
		clarke:    NewClarkeTest(),
		logger:    logger,
	}
}

// CompareAll evaluates one reference family against every candidate in
// order, running both tests per pair. The reference log-likelihoods are
// computed once; each candidate recomputes its own. A candidate equal to
// the reference yields the absent sentinel for both tests. A failed
// candidate evaluation is isolated to its own cell: the sentinel is
// recorded and the run continues.
func (e *Engine) CompareAll(ctx context.Context, u, v []float64, reference copula.Family, candidates []copula.Family, p domain.Params) (vuong, clarke []domain.TestResult, err error) {
	if len(u) != len(v) {
		return nil, nil, core.ErrLengthMismatch
	}
	if len(u) < 2 {
		return nil, nil, core.ErrInsufficientData
	}

	refLL, refParams, err := e.evaluator.Evaluate(ctx, u, v, reference)
	if err != nil {
		return nil, nil, fmt.Errorf("evaluating reference family %s: %w", reference, err)
	}

	vuong = make([]domain.TestResult, len(candidates))
	clarke = make([]domain.TestResult, len(candidates))

	for i, candidate := range candidates {
		if candidate == reference {
			vuong[i] = domain.AbsentResult(candidate, domain.KindVuong)
			clarke[i] = domain.AbsentResult(candidate, domain.KindClarke)
			continue
		}

		candLL, candParams, evalErr := e.evaluator.Evaluate(ctx, u, v, candidate)
		if evalErr != nil {
			// One bad pair must not abort the rest of the run
			e.logger.Warn("comparison %s vs %s skipped: %v", reference, candidate, evalErr)
			vuong[i] = domain.AbsentResult(candidate, domain.KindVuong)
			clarke[i] = domain.AbsentResult(candidate, domain.KindClarke)
			continue
		}

		c := Comparison{
			First:        refLL,
			Second:       candLL,
			FirstParams:  refParams,
			SecondParams: candParams,
			Correction:   p.Correction(),
			Alpha:        p.Alpha(),
		}

		vr := e.vuong.Compare(c)
		vr.Candidate = candidate
		vuong[i] = vr

		cr := e.clarke.Compare(c)
		cr.Candidate = candidate
		clarke[i] = cr
	}

	return vuong, clarke, nil
}

// ScoreMatrix runs the full scoring loop: each family in the parameter
// set serves as reference against the whole set, and each of its two
// result vectors reduces to one signed score. Reference iterations are
// independent and write only their own column, so they fan out across an
// errgroup; cancellation is observed between reference iterations.
func (e *Engine) ScoreMatrix(ctx context.Context, u, v []float64, p domain.Params) (*domain.ScoreMatrix, error) {
	if len(u) != len(v) {
		return nil, core.ErrLengthMismatch
	}
	if len(u) < 2 {
		return nil, core.ErrInsufficientData
	}

	families := p.Families()
	matrix := domain.NewScoreMatrix(families)

	g, gctx := errgroup.WithContext(ctx)
	if e.MaxParallel > 0 {
		g.SetLimit(e.MaxParallel)
	} else {
		g.SetLimit(1)
	}

	for i, reference := range families {
		i, reference := i, reference
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			vuong, clarke, err := e.CompareAll(gctx, u, v, reference, families, p)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				// Column stays zero; other references keep running
				e.logger.Warn("reference family %s failed: %v", reference, err)
				return nil
			}
			matrix.SetColumn(i, Score(vuong), Score(clarke))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return matrix, nil
}
