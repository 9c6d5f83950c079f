package excel

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"copulagof/internal/errors"
)

// PairReader loads paired pseudo-observations from an .xlsx or .csv
// file. The first two columns are taken as (u, v); a non-numeric first
// row is treated as a header and skipped. Unparseable cells become NaN
// so the preprocessing step can drop them as missing.
type PairReader struct {
	filePath string
}

// NewPairReader creates a reader for the given file
func NewPairReader(filePath string) *PairReader {
	return &PairReader{filePath: filePath}
}

// ReadPairs loads the two observation columns
func (r *PairReader) ReadPairs() (u, v []float64, err error) {
	ext := strings.ToLower(filepath.Ext(r.filePath))
	switch ext {
	case ".xlsx", ".xlsm":
		return r.readExcelPairs()
	case ".csv":
		return r.readCSVPairs()
	default:
		return nil, nil, errors.InvalidInput("unsupported file format: " + ext)
	}
}

func (r *PairReader) readExcelPairs() ([]float64, []float64, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open Excel file")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, errors.InvalidInput("Excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read rows")
	}

	return parsePairRows(rows)
}

func (r *PairReader) readCSVPairs() ([]float64, []float64, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open CSV file")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to parse CSV")
	}

	return parsePairRows(rows)
}

func parsePairRows(rows [][]string) ([]float64, []float64, error) {
	if len(rows) == 0 {
		return nil, nil, errors.InvalidInput("file contains no rows")
	}

	start := 0
	if len(rows[0]) >= 2 {
		if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][0]), 64); err != nil {
			start = 1 // header row
		}
	}

	u := make([]float64, 0, len(rows)-start)
	v := make([]float64, 0, len(rows)-start)
	for _, row := range rows[start:] {
		if len(row) < 2 {
			continue
		}
		u = append(u, parseCell(row[0]))
		v = append(v, parseCell(row[1]))
	}

	if len(u) == 0 {
		return nil, nil, errors.InvalidInput("file contains no observation rows")
	}

	return u, v, nil
}

func parseCell(s string) float64 {
	val, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return val
}
