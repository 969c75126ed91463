package dataset

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadMatrixStructured(t *testing.T) {
	p := writeFile(t, "grid.csv", "corner,1,2,3\n10,5,6,7\n20,8,9,4\n")
	m, err := LoadMatrix(p)
	if err != nil {
		t.Fatalf("LoadMatrix: %v", err)
	}
	if m.Fallback {
		t.Fatalf("structured file loaded as fallback")
	}
	if m.Rows() != 2 || m.Cols() != 3 {
		t.Fatalf("shape = %dx%d, want 2x3", m.Rows(), m.Cols())
	}
	wantX := []float64{1, 2, 3}
	for i, v := range wantX {
		if m.XCoords[i] != v {
			t.Fatalf("XCoords = %v, want %v", m.XCoords, wantX)
		}
	}
	wantY := []float64{10, 20}
	for i, v := range wantY {
		if m.YCoords[i] != v {
			t.Fatalf("YCoords = %v, want %v", m.YCoords, wantY)
		}
	}
	if m.Data[1][2] != 4 {
		t.Errorf("Data[1][2] = %v, want 4", m.Data[1][2])
	}
	if m.CoordWarning != "" {
		t.Errorf("unexpected coordinate warning: %q", m.CoordWarning)
	}
}

func TestLoadMatrixFallback(t *testing.T) {
	// a single whitespace row cannot carry a header and an index
	p := writeFile(t, "vals.txt", "1 2 3\n")
	m, err := LoadMatrix(p)
	if err != nil {
		t.Fatalf("LoadMatrix: %v", err)
	}
	if !m.Fallback {
		t.Fatalf("expected fallback parse")
	}
	if m.Rows() != 1 || m.Cols() != 3 {
		t.Fatalf("shape = %dx%d, want 1x3", m.Rows(), m.Cols())
	}
	for j, v := range m.XCoords {
		if v != float64(j) {
			t.Fatalf("positional XCoords = %v", m.XCoords)
		}
	}
}

func TestLoadMatrixRaggedFallsBack(t *testing.T) {
	p := writeFile(t, "ragged.txt", "0 1 2\n10 5 6\n20 7\n")
	m, err := LoadMatrix(p)
	if err != nil {
		t.Fatalf("LoadMatrix: %v", err)
	}
	if !m.Fallback {
		t.Fatalf("ragged file should fall back to raw parse")
	}
	if m.Cols() != 3 {
		t.Fatalf("cols = %d, want widest row", m.Cols())
	}
	if !math.IsNaN(m.Data[2][2]) {
		t.Errorf("missing cell = %v, want NaN", m.Data[2][2])
	}
}

func TestLoadMatrixCoordWarning(t *testing.T) {
	p := writeFile(t, "grid.csv", "c,1,foo\n10,1,2\n20,3,4\n")
	m, err := LoadMatrix(p)
	if err != nil {
		t.Fatalf("LoadMatrix: %v", err)
	}
	if m.Fallback {
		t.Fatalf("partially numeric header should still parse structured")
	}
	if m.CoordWarning == "" {
		t.Errorf("expected a coordinate conversion warning")
	}
	if !math.IsNaN(m.XCoords[1]) {
		t.Errorf("XCoords = %v, want NaN at index 1", m.XCoords)
	}
}

func TestLoadMatrixErrors(t *testing.T) {
	if _, err := LoadMatrix(filepath.Join(t.TempDir(), "image.png")); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("png: err = %v, want ErrUnsupportedType", err)
	}
	p := writeFile(t, "empty.csv", "")
	if _, err := LoadMatrix(p); !errors.Is(err, ErrEmptyFile) {
		t.Errorf("empty: err = %v, want ErrEmptyFile", err)
	}
	if _, err := LoadMatrix(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Errorf("missing file: expected an error")
	}
}

func TestLoadTableWithHeader(t *testing.T) {
	p := writeFile(t, "data.csv", "time,value\n1,2\n3,4\n")
	tbl, err := LoadTable(p)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	if tbl.Cols() != 2 || tbl.RowCount() != 2 {
		t.Fatalf("shape = %dx%d", tbl.Cols(), tbl.RowCount())
	}
	if tbl.Name(0) != "time" || tbl.Name(1) != "value" {
		t.Errorf("names = %q, %q", tbl.Name(0), tbl.Name(1))
	}
	vals := tbl.Numeric(1)
	if vals[0] != 2 || vals[1] != 4 {
		t.Errorf("Numeric(1) = %v", vals)
	}
}

func TestLoadTableHeaderless(t *testing.T) {
	p := writeFile(t, "data.txt", "1 2\n3 4\n")
	tbl, err := LoadTable(p)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	if tbl.RowCount() != 2 {
		t.Fatalf("numeric first row must be data, got %d rows", tbl.RowCount())
	}
	if tbl.Name(0) != "0" || tbl.Name(1) != "1" {
		t.Errorf("positional names = %q, %q", tbl.Name(0), tbl.Name(1))
	}
}

func TestLoadTableRaggedRows(t *testing.T) {
	p := writeFile(t, "data.txt", "a b\n1\n2 3\n")
	tbl, err := LoadTable(p)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	vals := tbl.Numeric(1)
	if !math.IsNaN(vals[0]) {
		t.Errorf("missing cell = %v, want NaN", vals[0])
	}
	if vals[1] != 3 {
		t.Errorf("Numeric(1) = %v", vals)
	}
}

func TestLoadTableUnsupportedType(t *testing.T) {
	if _, err := LoadTable(filepath.Join(t.TempDir(), "notes.pdf")); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("err = %v, want ErrUnsupportedType", err)
	}
}

func TestFormatCell(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{1.234, "1.23"},
		{-0.5, "-0.50"},
		{0, "0.00"},
		{math.NaN(), "NaN"},
	}
	for _, tc := range cases {
		if got := FormatCell(tc.v); got != tc.want {
			t.Errorf("FormatCell(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestFormatColumns(t *testing.T) {
	got := FormatColumns([]string{"x", "value"}, [][]float64{{1}, {2.5, 3}})
	want := "   x  value\n1.00   2.50\n NaN   3.00"
	if got != want {
		t.Errorf("FormatColumns mismatch:\n got:\n%s\nwant:\n%s", got, want)
	}

	if FormatColumns(nil, nil) != "" {
		t.Errorf("empty input should render nothing")
	}
	if FormatColumns([]string{"a"}, nil) != "" {
		t.Errorf("mismatched input should render nothing")
	}
}
