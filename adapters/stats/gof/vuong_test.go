package gof

import (
	"math"
	"testing"

	domain "copulagof/domain/gof"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func zeros(n int) []float64 {
	return make([]float64, n)
}

func TestVuongStatistic(t *testing.T) {
	test := NewVuongTest()

	// L1 - L2 = [1,2,3,4]: mean 2.5, sample variance 5/3, so
	// nu = 2*2.5 / sqrt((3/4)*(5/3)) = 4.472136
	c := Comparison{
		First:        []float64{1, 2, 3, 4},
		Second:       zeros(4),
		FirstParams:  1,
		SecondParams: 1,
		Correction:   domain.CorrectionNone,
		Alpha:        0.05,
	}

	result := test.Compare(c)
	if !almostEqual(result.Statistic, 4.472136, 1e-5) {
		t.Errorf("Expected statistic 4.472136, got %v", result.Statistic)
	}
	if result.Decision != domain.DecisionFirst {
		t.Errorf("Expected favor-first, got %v", result.Decision)
	}
	if result.PValue >= 1e-4 {
		t.Errorf("Expected tiny p-value, got %v", result.PValue)
	}
	if result.DisplayStatistic() != 4.472 {
		t.Errorf("Expected display statistic 4.472, got %v", result.DisplayStatistic())
	}
}

func TestVuongMirrorSymmetry(t *testing.T) {
	test := NewVuongTest()

	first := []float64{1.2, 0.8, 1.5, 0.3, 0.9, 1.1}
	second := []float64{0.2, 0.4, 0.1, 0.5, 0.3, 0.2}

	forward := test.Compare(Comparison{
		First: first, Second: second,
		FirstParams: 1, SecondParams: 1,
		Alpha: 0.05,
	})
	mirrored := test.Compare(Comparison{
		First: second, Second: first,
		FirstParams: 1, SecondParams: 1,
		Alpha: 0.05,
	})

	if !almostEqual(forward.Statistic, -mirrored.Statistic, 1e-12) {
		t.Errorf("Expected negated statistic: %v vs %v", forward.Statistic, mirrored.Statistic)
	}
	if forward.Decision == domain.DecisionFirst && mirrored.Decision != domain.DecisionSecond {
		t.Errorf("Expected mirrored decision, got %v and %v", forward.Decision, mirrored.Decision)
	}
	if !almostEqual(forward.PValue, mirrored.PValue, 1e-12) {
		t.Errorf("Expected identical p-values: %v vs %v", forward.PValue, mirrored.PValue)
	}
}

func TestVuongDegenerateVariance(t *testing.T) {
	test := NewVuongTest()

	t.Run("identical log-likelihoods", func(t *testing.T) {
		ll := []float64{0.5, 0.7, 0.2, 0.9, 0.4}
		result := test.Compare(Comparison{
			First: ll, Second: ll,
			FirstParams: 1, SecondParams: 1,
			Alpha: 0.05,
		})

		if result.Decision != domain.DecisionNone {
			t.Errorf("Expected no decision, got %v", result.Decision)
		}
		if !math.IsNaN(result.Statistic) {
			t.Errorf("Expected NaN statistic, got %v", result.Statistic)
		}
		if !math.IsNaN(result.Kurtosis) {
			t.Errorf("Expected NaN kurtosis for constant differences, got %v", result.Kurtosis)
		}
	})

	t.Run("constant nonzero difference", func(t *testing.T) {
		result := test.Compare(Comparison{
			First:  []float64{2, 2, 2, 2},
			Second: zeros(4),
			FirstParams: 1, SecondParams: 1,
			Alpha: 0.05,
		})
		if result.Decision != domain.DecisionNone {
			t.Errorf("Expected no decision for zero-variance differences, got %v", result.Decision)
		}
		if !math.IsNaN(result.Statistic) {
			t.Errorf("Expected NaN statistic, got %v", result.Statistic)
		}
	})
}

func TestVuongCorrections(t *testing.T) {
	test := NewVuongTest()
	first := []float64{1, 2, 3, 4}
	second := zeros(4)

	t.Run("equal parameter counts cancel", func(t *testing.T) {
		// When p1 == p2 the penalty vanishes, so every correction mode
		// must agree with no correction
		base := test.Compare(Comparison{
			First: first, Second: second,
			FirstParams: 2, SecondParams: 2,
			Correction: domain.CorrectionNone, Alpha: 0.05,
		})
		for _, corr := range []domain.Correction{domain.CorrectionAkaike, domain.CorrectionSchwarz} {
			got := test.Compare(Comparison{
				First: first, Second: second,
				FirstParams: 2, SecondParams: 2,
				Correction: corr, Alpha: 0.05,
			})
			if !almostEqual(got.Statistic, base.Statistic, 1e-12) {
				t.Errorf("correction %v changed statistic: %v vs %v", corr, got.Statistic, base.Statistic)
			}
		}
	})

	t.Run("akaike penalizes extra parameter", func(t *testing.T) {
		// penalty (2-1)/4 = 0.25 per observation: mean drops to 2.25,
		// variance unchanged, nu = 2*2.25/sqrt(1.25) = 4.024922
		result := test.Compare(Comparison{
			First: first, Second: second,
			FirstParams: 2, SecondParams: 1,
			Correction: domain.CorrectionAkaike, Alpha: 0.05,
		})
		if !almostEqual(result.Statistic, 4.024922, 1e-5) {
			t.Errorf("Expected statistic 4.024922, got %v", result.Statistic)
		}
	})

	t.Run("schwarz scales by log n", func(t *testing.T) {
		// penalty (2-1)*ln(4)/8 = 0.173287: mean 2.326713,
		// nu = 2*2.326713/sqrt(1.25) = 4.162151
		result := test.Compare(Comparison{
			First: first, Second: second,
			FirstParams: 2, SecondParams: 1,
			Correction: domain.CorrectionSchwarz, Alpha: 0.05,
		})
		if !almostEqual(result.Statistic, 4.162151, 1e-5) {
			t.Errorf("Expected statistic 4.162151, got %v", result.Statistic)
		}
	})
}

func TestVuongAlphaMonotonicity(t *testing.T) {
	test := NewVuongTest()
	first := []float64{1, 2, 3, 4}
	second := zeros(4)

	// A favor-first at a strict alpha must stay favor-first at any
	// looser alpha
	strict := test.Compare(Comparison{
		First: first, Second: second,
		FirstParams: 1, SecondParams: 1,
		Alpha: 0.001,
	})
	if strict.Decision != domain.DecisionFirst {
		t.Fatalf("Expected favor-first at alpha 0.001, got %v", strict.Decision)
	}
	for _, alpha := range []float64{0.01, 0.05, 0.1, 0.3} {
		loose := test.Compare(Comparison{
			First: first, Second: second,
			FirstParams: 1, SecondParams: 1,
			Alpha: alpha,
		})
		if loose.Decision != domain.DecisionFirst {
			t.Errorf("alpha %v flipped decision to %v", alpha, loose.Decision)
		}
	}
}

func TestVuongWeakEvidence(t *testing.T) {
	test := NewVuongTest()

	// Small, noisy differences: no decision at conventional alpha
	result := test.Compare(Comparison{
		First:  []float64{0.1, -0.2, 0.15, -0.1, 0.05, -0.05},
		Second: zeros(6),
		FirstParams: 1, SecondParams: 1,
		Alpha: 0.05,
	})
	if result.Decision != domain.DecisionNone {
		t.Errorf("Expected no decision for weak evidence, got %v", result.Decision)
	}
	if result.PValue <= 0.05 {
		t.Errorf("Expected p-value above alpha, got %v", result.PValue)
	}
}
