package gof

import (
	"math"

	"github.com/montanaflynn/stats"
)

// Kurtosis computes the diagnostic attached to every pairwise result:
// sum((x-mean)^4 / var^2) / n, with var the (N-1) sample variance.
// Returns NaN when the variance is zero (constant vector) so the caller's
// degenerate-case policy applies instead of a division blowing up.
func Kurtosis(data []float64) float64 {
	if len(data) < 2 {
		return math.NaN()
	}

	mean, _ := stats.Mean(data)
	variance, _ := stats.SampleVariance(data)
	if variance == 0 {
		return math.NaN()
	}

	sum := 0.0
	for _, x := range data {
		d := x - mean
		sum += (d * d * d * d) / (variance * variance)
	}
	return sum / float64(len(data))
}

// meanAndSampleVariance returns the mean and (N-1)-denominator variance
// of data in one pass over the library calls.
func meanAndSampleVariance(data []float64) (float64, float64) {
	mean, _ := stats.Mean(data)
	variance, _ := stats.SampleVariance(data)
	return mean, variance
}
