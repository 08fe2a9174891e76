package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Geetheshwar420/RandomWalk/internal/model"
)

// ErrTooFewColumns rejects uploads that cannot supply Time and Price.
var ErrTooFewColumns = errors.New("file must have at least 2 columns")

// Load parses an uploaded CSV or XLSX file into a Series. Only the
// first two columns are kept, positionally, regardless of their
// original names; the first row is treated as a header. Any parse
// failure leaves no dataset loaded.
func Load(filename string, r io.Reader) (model.Series, error) {
	var rows [][]string
	var err error

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		rows, err = readCSV(r)
	case ".xlsx", ".xlsm":
		rows, err = readXLSX(r)
	case ".xls":
		return nil, errors.New("legacy .xls is not supported, save the sheet as .xlsx or .csv")
	default:
		return nil, fmt.Errorf("unsupported file type %q", ext)
	}
	if err != nil {
		return nil, err
	}
	return normalize(rows)
}

func readCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return rows, nil
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("spreadsheet has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

// normalize keeps the first two columns of every row as Time and Price.
func normalize(rows [][]string) (model.Series, error) {
	if len(rows) == 0 {
		return nil, errors.New("file is empty")
	}
	if len(rows[0]) < 2 {
		return nil, ErrTooFewColumns
	}

	var series model.Series
	for i, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("row %d: %w", i+2, ErrTooFewColumns)
		}
		t, err := parseTime(row[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid price %q", i+2, row[1])
		}
		series = append(series, model.Point{Time: t, Price: price})
	}
	if len(series) == 0 {
		return nil, errors.New("file has no data rows")
	}
	return series, nil
}

// ParseEdited parses the edit form's "time,price" lines into a Series.
// Blank lines are skipped; the edited data may reorder, grow, or
// shrink the series freely.
func ParseEdited(text string) (model.Series, error) {
	var series model.Series
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ",", 2)
		if len(parts) < 2 {
			return nil, fmt.Errorf("line %d: expected \"time,price\", got %q", i+1, line)
		}
		t, err := parseTime(parts[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid price %q", i+1, parts[1])
		}
		series = append(series, model.Point{Time: t, Price: price})
	}
	if len(series) == 0 {
		return nil, errors.New("no data rows")
	}
	return series, nil
}

func parseTime(s string) (int, error) {
	s = strings.TrimSpace(s)
	if t, err := strconv.Atoi(s); err == nil {
		return t, nil
	}
	// Spreadsheets often render integers as "3.0".
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return int(f), nil
}
