package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"copulagof/domain/gof"
	"copulagof/internal/errors"
)

// ScoreWriter exports a scoring run to an .xlsx workbook: one sheet,
// family columns, one row per test kind.
type ScoreWriter struct{}

// NewScoreWriter creates a score matrix writer
func NewScoreWriter() *ScoreWriter {
	return &ScoreWriter{}
}

// Write saves the run's score matrix to filePath
func (w *ScoreWriter) Write(filePath string, run *gof.ScoringRun) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Scores"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return errors.Wrap(err, "failed to create sheet")
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	// Header row: blank corner cell, then one column per family
	if err := f.SetCellValue(sheet, "A1", "test"); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	for i, family := range run.Matrix.Families {
		cell, _ := excelize.CoordinatesToCellName(i+2, 1)
		if err := f.SetCellValue(sheet, cell, family.Name()); err != nil {
			return errors.Wrap(err, "failed to write header")
		}
	}

	rows := []struct {
		label  string
		scores []int
	}{
		{"Vuong", run.Matrix.Vuong},
		{"Clarke", run.Matrix.Clarke},
	}
	for r, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetCellValue(sheet, cell, row.label); err != nil {
			return errors.Wrap(err, "failed to write row label")
		}
		for i, score := range row.scores {
			cell, _ := excelize.CoordinatesToCellName(i+2, r+2)
			if err := f.SetCellValue(sheet, cell, score); err != nil {
				return errors.Wrap(err, "failed to write score cell")
			}
		}
	}

	meta := fmt.Sprintf("n=%d alpha=%v correction=%s", run.SampleSize, run.Alpha, run.Correction)
	if err := f.SetCellValue(sheet, "A5", meta); err != nil {
		return errors.Wrap(err, "failed to write run metadata")
	}

	if err := f.SaveAs(filePath); err != nil {
		return errors.Wrap(err, "failed to save workbook")
	}
	return nil
}
