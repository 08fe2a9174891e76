package dataset

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestLoad_CSV(t *testing.T) {
	in := "Date,Close,Volume\n0,100.5,1000\n1,101.25,2000\n2,99.0,1500\n"
	s, err := Load("prices.csv", strings.NewReader(in))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(s) != 3 {
		t.Fatalf("expected 3 points, got %d", len(s))
	}
	// Extra columns are dropped, first two kept positionally.
	if s[0].Time != 0 || s[0].Price != 100.5 {
		t.Errorf("unexpected first point: %+v", s[0])
	}
	if s[2].Time != 2 || s[2].Price != 99.0 {
		t.Errorf("unexpected last point: %+v", s[2])
	}
}

func TestLoad_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Day", "Close", "Volume"},
		{0, 100.5, 1000},
		{1, 101.25, 2000},
	}
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatal(err)
			}
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}

	s, err := Load("prices.xlsx", &buf)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(s) != 2 {
		t.Fatalf("expected 2 points, got %d", len(s))
	}
	if s[0].Time != 0 || s[0].Price != 100.5 {
		t.Errorf("unexpected first point: %+v", s[0])
	}
}

func TestLoad_SingleColumnRejected(t *testing.T) {
	in := "Price\n100\n101\n"
	_, err := Load("prices.csv", strings.NewReader(in))
	if !errors.Is(err, ErrTooFewColumns) {
		t.Fatalf("expected ErrTooFewColumns, got %v", err)
	}
}

func TestLoad_FloatTimes(t *testing.T) {
	in := "Time,Price\n0.0,100\n1.0,102\n"
	s, err := Load("prices.csv", strings.NewReader(in))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s[1].Time != 1 {
		t.Errorf("expected time 1, got %d", s[1].Time)
	}
}

func TestLoad_BadValues(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"non-integer time", "Time,Price\n1.5,100\n"},
		{"non-numeric time", "Time,Price\nabc,100\n"},
		{"non-numeric price", "Time,Price\n0,abc\n"},
		{"header only", "Time,Price\n"},
		{"empty file", ""},
	}
	for _, tt := range tests {
		if _, err := Load("prices.csv", strings.NewReader(tt.in)); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestParseEdited(t *testing.T) {
	s, err := ParseEdited("0,100\r\n1,98.5\n\n5,103\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(s) != 3 {
		t.Fatalf("expected 3 points, got %d", len(s))
	}
	// Times are free to jump after editing.
	if s[2].Time != 5 || s[2].Price != 103 {
		t.Errorf("unexpected last point: %+v", s[2])
	}

	for _, in := range []string{"", "0\n", "0,abc\n", "x,100\n"} {
		if _, err := ParseEdited(in); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	if _, err := Load("prices.txt", strings.NewReader("a,b\n1,2\n")); err == nil {
		t.Error("expected error for .txt")
	}
	if _, err := Load("prices.xls", strings.NewReader("")); err == nil {
		t.Error("expected error for legacy .xls")
	}
}
