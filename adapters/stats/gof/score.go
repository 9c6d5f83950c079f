package gof

import (
	domain "copulagof/domain/gof"
)

// Score reduces one reference family's decision vector to its signed
// score: wins (decisions favoring the reference) minus losses (decisions
// favoring the candidate). Undecided comparisons and absent self-pair
// placeholders contribute to neither term.
func Score(results []domain.TestResult) int {
	score := 0
	for _, r := range results {
		switch r.Decision {
		case domain.DecisionFirst:
			score++
		case domain.DecisionSecond:
			score--
		}
	}
	return score
}
