package render

import (
	"math"
	"testing"

	"github.com/Debdip1007/DashBoardApp/src/dataset"
)

func testMatrix() *dataset.Matrix {
	return &dataset.Matrix{
		Data: [][]float64{
			{1, 2, 3},
			{4, 5, 6},
			{7, 8, 9},
			{10, 11, 12},
		},
		XCoords: []float64{1, 2, 3},
		YCoords: []float64{10, 20, 30, 40},
	}
}

func TestTurboEndpoints(t *testing.T) {
	lo := Turbo(0)
	hi := Turbo(1)
	if lo == hi {
		t.Fatalf("colormap endpoints identical: %v", lo)
	}
	if Turbo(-0.5) != lo || Turbo(1.5) != hi {
		t.Errorf("out-of-range inputs must clamp to the endpoints")
	}
	if TurboReversed(0) != hi || TurboReversed(1) != lo {
		t.Errorf("reversed map is not a mirror")
	}
}

func TestPaletteColorCycles(t *testing.T) {
	n := len(palette)
	if PaletteColor(0) != PaletteColor(n) {
		t.Errorf("slot %d should wrap to slot 0", n)
	}
	if PaletteColor(-3) != PaletteColor(0) {
		t.Errorf("negative slots should clamp to 0")
	}
	if PaletteColor(0) == PaletteColor(1) {
		t.Errorf("adjacent slots must differ")
	}
}

func TestLinesRendersRequestedSize(t *testing.T) {
	img := Lines([]Series{
		{Xs: []float64{1, 2, 3}, Ys: []float64{4, 5, 6}, Label: "a"},
		{Xs: []float64{1, 2, 3}, Ys: []float64{1, 2, 1}, Label: "b", Secondary: true, ColorSlot: 1},
	}, Labels{Title: "t", X: "x", Y: "y"}, 400, 300)
	b := img.Bounds()
	if b.Dx() != 400 || b.Dy() != 300 {
		t.Fatalf("size = %dx%d, want 400x300", b.Dx(), b.Dy())
	}
}

func TestLinesEmptyAndSinglePoint(t *testing.T) {
	// all-NaN series: no drawable data, blank fallback
	img := Lines([]Series{{Xs: []float64{math.NaN()}, Ys: []float64{1}}}, Labels{}, 120, 80)
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 80 {
		t.Fatalf("blank size = %dx%d", b.Dx(), b.Dy())
	}

	// a single surviving point still renders rather than erroring out
	img = Lines([]Series{{Xs: []float64{2}, Ys: []float64{3}, Label: "pt"}}, Labels{}, 200, 150)
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 150 {
		t.Fatalf("single point size = %dx%d", b.Dx(), b.Dy())
	}
}

func TestHeatmapCellMapping(t *testing.T) {
	m := testMatrix()
	w, h := 300, 200
	x0, y0 := HeatMarginLeft, HeatMarginTop
	x1, y1 := w-HeatMarginRight, h-HeatMarginBottom

	// bottom-left pixel of the plot area shows row 0, col 0 (origin lower)
	row, col, ok := HeatmapCell(m, w, h, x0, y1-1)
	if !ok || row != 0 || col != 0 {
		t.Errorf("bottom-left = (%d,%d,%v), want (0,0,true)", row, col, ok)
	}
	// top-right pixel shows the last row and column
	row, col, ok = HeatmapCell(m, w, h, x1-1, y0)
	if !ok || row != m.Rows()-1 || col != m.Cols()-1 {
		t.Errorf("top-right = (%d,%d,%v), want (%d,%d,true)", row, col, ok, m.Rows()-1, m.Cols()-1)
	}
	// outside the plot area
	if _, _, ok := HeatmapCell(m, w, h, 5, 5); ok {
		t.Errorf("margin pixel mapped to a cell")
	}
	if _, _, ok := HeatmapCell(nil, w, h, x0, y0); ok {
		t.Errorf("nil matrix mapped to a cell")
	}
}

func TestHeatmapRenders(t *testing.T) {
	img := Heatmap(testMatrix(), HeatLabels{Title: "t", X: "x", Y: "y", Value: "v"}, 320, 240)
	b := img.Bounds()
	if b.Dx() != 320 || b.Dy() != 240 {
		t.Fatalf("size = %dx%d, want 320x240", b.Dx(), b.Dy())
	}

	if img := Heatmap(nil, HeatLabels{}, 100, 80); img.Bounds().Dx() != 100 {
		t.Errorf("nil matrix should render a blank of the requested size")
	}
}

func TestHeatmapAllNaN(t *testing.T) {
	m := &dataset.Matrix{
		Data:    [][]float64{{math.NaN(), math.NaN()}, {math.NaN(), math.NaN()}},
		XCoords: []float64{0, 1},
		YCoords: []float64{0, 1},
	}
	img := Heatmap(m, HeatLabels{}, 260, 180)
	if img.Bounds().Dx() != 260 {
		t.Fatalf("all-NaN matrix must still render")
	}
}
