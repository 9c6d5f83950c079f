package excel

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"copulagof/domain/copula"
	"copulagof/domain/gof"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pairs.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing temp csv: %v", err)
	}
	return path
}

func TestPairReaderCSV(t *testing.T) {
	t.Run("with header", func(t *testing.T) {
		path := writeTempCSV(t, "u,v\n0.1,0.2\n0.5,0.6\n0.9,0.8\n")
		u, v, err := NewPairReader(path).ReadPairs()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(u) != 3 || len(v) != 3 {
			t.Fatalf("Expected 3 rows, got %d/%d", len(u), len(v))
		}
		if u[0] != 0.1 || v[2] != 0.8 {
			t.Errorf("Wrong values: %v %v", u, v)
		}
	})

	t.Run("without header", func(t *testing.T) {
		path := writeTempCSV(t, "0.1,0.2\n0.5,0.6\n")
		u, _, err := NewPairReader(path).ReadPairs()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(u) != 2 {
			t.Errorf("Expected 2 rows, got %d", len(u))
		}
	})

	t.Run("unparseable cells become NaN", func(t *testing.T) {
		path := writeTempCSV(t, "0.1,0.2\noops,0.6\n")
		u, _, err := NewPairReader(path).ReadPairs()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !math.IsNaN(u[1]) {
			t.Errorf("Expected NaN for bad cell, got %v", u[1])
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		if _, _, err := NewPairReader("data.txt").ReadPairs(); err == nil {
			t.Error("Expected error for unsupported format")
		}
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeTempCSV(t, "")
		if _, _, err := NewPairReader(path).ReadPairs(); err == nil {
			t.Error("Expected error for empty file")
		}
	})
}

func TestPairReaderXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.xlsx")

	f := excelize.NewFile()
	f.SetCellValue("Sheet1", "A1", "u")
	f.SetCellValue("Sheet1", "B1", "v")
	f.SetCellValue("Sheet1", "A2", 0.25)
	f.SetCellValue("Sheet1", "B2", 0.75)
	f.SetCellValue("Sheet1", "A3", 0.4)
	f.SetCellValue("Sheet1", "B3", 0.6)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("saving xlsx fixture: %v", err)
	}
	f.Close()

	u, v, err := NewPairReader(path).ReadPairs()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(u) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(u))
	}
	if u[0] != 0.25 || v[1] != 0.6 {
		t.Errorf("Wrong values: %v %v", u, v)
	}
}

func TestScoreWriter(t *testing.T) {
	params, err := gof.NewParams(
		[]copula.Family{copula.Gaussian, copula.Clayton},
		gof.CorrectionNone, 0.05, false,
	)
	if err != nil {
		t.Fatalf("building params: %v", err)
	}

	matrix := gof.NewScoreMatrix(params.Families())
	matrix.SetColumn(0, 1, 1)
	matrix.SetColumn(1, -1, -1)
	run := gof.NewScoringRun(25, params, matrix)

	path := filepath.Join(t.TempDir(), "scores.xlsx")
	if err := NewScoreWriter().Write(path, run); err != nil {
		t.Fatalf("writing workbook: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer f.Close()

	checks := map[string]string{
		"B1": "Gaussian",
		"C1": "Clayton",
		"A2": "Vuong",
		"B2": "1",
		"C2": "-1",
		"A3": "Clarke",
	}
	for cell, want := range checks {
		got, err := f.GetCellValue("Scores", cell)
		if err != nil {
			t.Fatalf("reading cell %s: %v", cell, err)
		}
		if got != want {
			t.Errorf("Cell %s: expected %q, got %q", cell, want, got)
		}
	}
}
