// Package dataset loads tabular data files (CSV or whitespace separated)
// into either a 2D matrix with coordinate vectors or a column table, with
// best-effort numeric coercion: any cell that does not parse as a number
// becomes NaN rather than failing the whole load.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Debdip1007/DashBoardApp/src/logging"
)

// ErrUnsupportedType marks file extensions the 2D loader refuses outright.
var ErrUnsupportedType = errors.New("unsupported file type")

// ErrEmptyFile marks files with no parseable rows.
var ErrEmptyFile = errors.New("file is empty or contains no valid data")

// Matrix is a loaded 2D dataset: row-major values plus one coordinate per
// row (YCoords) and one per column (XCoords).
type Matrix struct {
	Data    [][]float64
	XCoords []float64
	YCoords []float64

	// Fallback is set when the structured header/index parse failed and the
	// file was re-read as a raw value matrix with positional coordinates.
	Fallback bool
	// CoordWarning carries a non-fatal message when some (not all)
	// coordinate cells failed numeric conversion.
	CoordWarning string
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return len(m.Data) }

// Cols returns the column count.
func (m *Matrix) Cols() int {
	if len(m.Data) == 0 {
		return 0
	}
	return len(m.Data[0])
}

// Row returns row i as a value slice. The slice aliases the matrix.
func (m *Matrix) Row(i int) []float64 { return m.Data[i] }

// Col returns column j as a freshly allocated value slice.
func (m *Matrix) Col(j int) []float64 {
	out := make([]float64, len(m.Data))
	for i := range m.Data {
		out[i] = m.Data[i][j]
	}
	return out
}

// Table is a loaded 1D dataset: ordered named columns of raw cells.
// Numeric interpretation is deferred to Numeric so that column validity can
// be judged per series at recompute time.
type Table struct {
	Names []string
	cells [][]string // column-major
}

// NewTable builds a table from named column-major cells. Short columns are
// padded with empty cells up to the longest column.
func NewTable(names []string, columns [][]string) *Table {
	rows := 0
	for _, col := range columns {
		if len(col) > rows {
			rows = len(col)
		}
	}
	cells := make([][]string, len(columns))
	for j, col := range columns {
		c := make([]string, rows)
		copy(c, col)
		cells[j] = c
	}
	return &Table{Names: names, cells: cells}
}

// Cols returns the column count.
func (t *Table) Cols() int { return len(t.cells) }

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	if len(t.cells) == 0 {
		return 0
	}
	return len(t.cells[0])
}

// Name returns the display name of column i.
func (t *Table) Name(i int) string {
	if i >= 0 && i < len(t.Names) {
		return t.Names[i]
	}
	return fmt.Sprintf("Column %d", i)
}

// Numeric returns column i coerced to float64, NaN for non-numeric cells.
func (t *Table) Numeric(i int) []float64 {
	raw := t.cells[i]
	out := make([]float64, len(raw))
	for k, cell := range raw {
		out[k] = coerce(cell)
	}
	return out
}

// coerce parses a cell as a float, returning NaN on failure.
func coerce(cell string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// isCSV reports whether the path should be read comma-separated.
func isCSV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".csv")
}

// readRecords reads the whole file as rows of string cells. CSV files go
// through encoding/csv (ragged rows are a hard error there); anything else
// is split on whitespace and rows may be ragged.
func readRecords(path string) ([][]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if isCSV(path) {
		r := csv.NewReader(strings.NewReader(string(raw)))
		r.TrimLeadingSpace = true
		recs, err := r.ReadAll()
		if err != nil {
			return nil, err
		}
		return recs, nil
	}
	var recs [][]string
	for _, line := range strings.Split(string(raw), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		recs = append(recs, fields)
	}
	return recs, nil
}

// LoadMatrix loads a 2D data file. The structured interpretation treats the
// first row (minus the corner cell) as X coordinates and the first column as
// Y coordinates. When that shape is implausible the whole file is re-read as
// a raw value matrix with 0..n-1 coordinates and Fallback is set.
func LoadMatrix(path string) (*Matrix, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".csv" && ext != ".txt" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, filepath.Base(path))
	}
	recs, err := readRecords(path)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, ErrEmptyFile
	}
	if m, ok := structuredMatrix(recs); ok {
		return m, nil
	}
	logging.Warnf("structured 2D parse failed for %s, falling back to raw matrix", filepath.Base(path))
	return rawMatrix(recs)
}

// structuredMatrix attempts the header+index interpretation. It reports
// false when the file is too small or neither coordinate vector contains a
// single parseable number.
func structuredMatrix(recs [][]string) (*Matrix, bool) {
	if len(recs) < 2 || len(recs[0]) < 2 {
		return nil, false
	}
	width := len(recs[0])
	for _, rec := range recs[1:] {
		if len(rec) != width {
			return nil, false
		}
	}
	xs := make([]float64, width-1)
	xValid := 0
	for j := 1; j < width; j++ {
		xs[j-1] = coerce(recs[0][j])
		if !math.IsNaN(xs[j-1]) {
			xValid++
		}
	}
	ys := make([]float64, len(recs)-1)
	yValid := 0
	data := make([][]float64, len(recs)-1)
	for i, rec := range recs[1:] {
		ys[i] = coerce(rec[0])
		if !math.IsNaN(ys[i]) {
			yValid++
		}
		row := make([]float64, width-1)
		for j := 1; j < width; j++ {
			row[j-1] = coerce(rec[j])
		}
		data[i] = row
	}
	if xValid == 0 || yValid == 0 {
		return nil, false
	}
	m := &Matrix{Data: data, XCoords: xs, YCoords: ys}
	if xValid < len(xs) || yValid < len(ys) {
		m.CoordWarning = "Some non-numeric values were found in X or Y coordinates and converted to NaN. These might affect plotting accuracy."
	}
	return m, true
}

// rawMatrix reads every cell as a value and assigns positional coordinates.
func rawMatrix(recs [][]string) (*Matrix, error) {
	width := 0
	for _, rec := range recs {
		if len(rec) > width {
			width = len(rec)
		}
	}
	if width == 0 {
		return nil, ErrEmptyFile
	}
	data := make([][]float64, len(recs))
	for i, rec := range recs {
		row := make([]float64, width)
		for j := 0; j < width; j++ {
			if j < len(rec) {
				row[j] = coerce(rec[j])
			} else {
				row[j] = math.NaN()
			}
		}
		data[i] = row
	}
	m := &Matrix{Data: data, Fallback: true}
	m.XCoords = make([]float64, width)
	for j := range m.XCoords {
		m.XCoords[j] = float64(j)
	}
	m.YCoords = make([]float64, len(recs))
	for i := range m.YCoords {
		m.YCoords[i] = float64(i)
	}
	return m, nil
}

// LoadTable loads a 1D data file into named columns. A header row is
// assumed when any cell of the first row fails numeric parsing; headerless
// files get positional column names ("0", "1", ...).
func LoadTable(path string) (*Table, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".csv" && ext != ".txt" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, filepath.Base(path))
	}
	recs, err := readRecords(path)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, ErrEmptyFile
	}
	width := 0
	for _, rec := range recs {
		if len(rec) > width {
			width = len(rec)
		}
	}
	if width == 0 {
		return nil, ErrEmptyFile
	}
	header := false
	for _, cell := range recs[0] {
		if math.IsNaN(coerce(cell)) {
			header = true
			break
		}
	}
	names := make([]string, width)
	body := recs
	if header {
		for j := 0; j < width; j++ {
			if j < len(recs[0]) && strings.TrimSpace(recs[0][j]) != "" {
				names[j] = strings.TrimSpace(recs[0][j])
			} else {
				names[j] = strconv.Itoa(j)
			}
		}
		body = recs[1:]
	} else {
		for j := 0; j < width; j++ {
			names[j] = strconv.Itoa(j)
		}
	}
	if len(body) == 0 {
		return nil, ErrEmptyFile
	}
	cells := make([][]string, width)
	for j := 0; j < width; j++ {
		col := make([]string, len(body))
		for i, rec := range body {
			if j < len(rec) {
				col[i] = rec[j]
			}
		}
		cells[j] = col
	}
	return &Table{Names: names, cells: cells}, nil
}
