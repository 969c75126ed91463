package dataset

import (
	"math"
	"strconv"
	"strings"
)

// FormatCell renders one value the way previews display numbers: two
// decimals, or "NaN" for missing values.
func FormatCell(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatColumns renders named columns as one right-aligned fixed-width text
// table. Shorter columns are padded with NaN so the result is rectangular.
func FormatColumns(headers []string, cols [][]float64) string {
	if len(headers) == 0 || len(headers) != len(cols) {
		return ""
	}
	rows := 0
	for _, c := range cols {
		if len(c) > rows {
			rows = len(c)
		}
	}
	widths := make([]int, len(headers))
	rendered := make([][]string, len(cols))
	for j, c := range cols {
		widths[j] = len(headers[j])
		rendered[j] = make([]string, rows)
		for i := 0; i < rows; i++ {
			s := "NaN"
			if i < len(c) {
				s = FormatCell(c[i])
			}
			rendered[j][i] = s
			if len(s) > widths[j] {
				widths[j] = len(s)
			}
		}
	}
	var b strings.Builder
	for j, h := range headers {
		if j > 0 {
			b.WriteString("  ")
		}
		pad(&b, h, widths[j])
	}
	for i := 0; i < rows; i++ {
		b.WriteByte('\n')
		for j := range rendered {
			if j > 0 {
				b.WriteString("  ")
			}
			pad(&b, rendered[j][i], widths[j])
		}
	}
	return b.String()
}

func pad(b *strings.Builder, s string, width int) {
	for n := width - len(s); n > 0; n-- {
		b.WriteByte(' ')
	}
	b.WriteString(s)
}
