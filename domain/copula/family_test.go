package copula

import (
	"testing"
)

func TestParamCount(t *testing.T) {
	oneParam := []Family{Independence, Gaussian, Clayton, Gumbel, Frank, Joe, 13, 14, 16, 23, 24, 26, 33, 34, 36}
	twoParam := []Family{StudentT, BB1, BB6, BB7, BB8, 17, 18, 19, 20, 27, 28, 29, 30, 37, 38, 39, 40}

	for _, f := range oneParam {
		if f.ParamCount() != 1 {
			t.Errorf("Expected 1 parameter for %s (%d), got %d", f, int(f), f.ParamCount())
		}
	}
	for _, f := range twoParam {
		if f.ParamCount() != 2 {
			t.Errorf("Expected 2 parameters for %s (%d), got %d", f, int(f), f.ParamCount())
		}
	}
}

func TestIsValid(t *testing.T) {
	for _, f := range All() {
		if !f.IsValid() {
			t.Errorf("Catalog family %d reported invalid", int(f))
		}
	}

	for _, f := range []Family{-1, 11, 12, 15, 21, 22, 25, 31, 32, 35, 41, 100} {
		if f.IsValid() {
			t.Errorf("Expected %d to be invalid", int(f))
		}
	}
}

func TestRotations(t *testing.T) {
	t.Run("asymmetric families rotate", func(t *testing.T) {
		got := Clayton.Rotations()
		want := []Family{13, 23, 33}
		if len(got) != len(want) {
			t.Fatalf("Expected %d rotations, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Rotation %d: expected %d, got %d", i, int(want[i]), int(got[i]))
			}
		}
	})

	t.Run("symmetric families do not", func(t *testing.T) {
		for _, f := range []Family{Independence, Gaussian, StudentT, Frank} {
			if len(f.Rotations()) != 0 {
				t.Errorf("Expected no rotations for %s", f)
			}
		}
	})

	t.Run("rotated codes do not rotate again", func(t *testing.T) {
		if len(Family(13).Rotations()) != 0 {
			t.Error("Expected no rotations for an already rotated code")
		}
	})
}

func TestExpandRotations(t *testing.T) {
	got := ExpandRotations([]Family{Gaussian, Clayton})
	want := []Family{Gaussian, Clayton, 13, 23, 33}

	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: expected %d, got %d", i, int(want[i]), int(got[i]))
		}
	}

	t.Run("deduplicates", func(t *testing.T) {
		got := ExpandRotations([]Family{Clayton, 13, Clayton})
		if len(got) != 4 {
			t.Errorf("Expected 4 unique families, got %v", got)
		}
	})
}

func TestParse(t *testing.T) {
	t.Run("valid list", func(t *testing.T) {
		got, err := Parse("1, 3,4")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		want := []Family{Gaussian, Clayton, Gumbel}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Position %d: expected %s, got %s", i, want[i], got[i])
			}
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		if _, err := Parse("1,99"); err == nil {
			t.Error("Expected error for unknown code")
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := Parse("1,abc"); err == nil {
			t.Error("Expected error for non-numeric code")
		}
	})
}

func TestNames(t *testing.T) {
	cases := map[Family]string{
		Independence: "Independence",
		Gaussian:     "Gaussian",
		Clayton:      "Clayton",
		BB1:          "BB1",
		13:           "Clayton 180°",
		23:           "Clayton 90°",
		33:           "Clayton 270°",
	}
	for f, want := range cases {
		if f.Name() != want {
			t.Errorf("Expected name %q for %d, got %q", want, int(f), f.Name())
		}
	}
}
