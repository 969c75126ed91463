// Package render turns loaded data into chart images for the viewer
// canvases: multi-series line charts via go-chart, and heatmaps drawn
// directly into an RGBA image with a turbo colorbar.
package render

import (
	"bytes"
	"image"
	"image/color"
	png "image/png"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Debdip1007/DashBoardApp/src/logging"
)

// Labels carries the editable captions for a line chart.
type Labels struct {
	Title string
	X     string
	Y     string
}

// Series is one line to draw. ColorSlot indexes the fixed palette; skipped
// specs upstream still consume a slot so colors stay stable under edits.
type Series struct {
	Xs, Ys    []float64
	Label     string
	Secondary bool
	ColorSlot int
}

// palette mirrors the classic single-letter matplotlib color cycle.
var palette = []drawing.Color{
	{R: 0, G: 0, B: 255, A: 255},     // b
	{R: 0, G: 128, B: 0, A: 255},     // g
	{R: 255, G: 0, B: 0, A: 255},     // r
	{R: 0, G: 191, B: 191, A: 255},   // c
	{R: 191, G: 0, B: 191, A: 255},   // m
	{R: 191, G: 191, B: 0, A: 255},   // y
	{R: 0, G: 0, B: 0, A: 255},       // k
	{R: 128, G: 0, B: 128, A: 255},   // purple
	{R: 255, G: 165, B: 0, A: 255},   // orange
}

// PaletteColor returns the line color for a series position, cycling
// through the fixed palette.
func PaletteColor(slot int) drawing.Color {
	if slot < 0 {
		slot = 0
	}
	return palette[slot%len(palette)]
}

func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 2,
		StrokeColor: col,
	}
}

// Lines renders the given series onto one shared chart. Primary-axis series
// share one y-scale; secondary-flagged series share a single secondary
// y-scale created on first use. Rows with NaN in either coordinate are
// dropped per series; an empty result renders as a blank image.
func Lines(series []Series, lab Labels, w, h int) image.Image {
	var chs []chart.Series
	hasSecondary := false
	for _, s := range series {
		xs, ys := finitePairs(s.Xs, s.Ys)
		if len(xs) == 0 {
			continue
		}
		// go-chart refuses single-point series; duplicate the point with a
		// nudged x so it still draws.
		if len(xs) == 1 {
			xs = append(xs, xs[0]+1)
			ys = append(ys, ys[0])
		}
		cs := chart.ContinuousSeries{
			Name:    s.Label,
			XValues: xs,
			YValues: ys,
			Style:   lineStyle(PaletteColor(s.ColorSlot)),
		}
		if s.Secondary {
			cs.YAxis = chart.YAxisSecondary
			hasSecondary = true
		}
		chs = append(chs, cs)
	}
	if len(chs) == 0 {
		return Blank(w, h)
	}
	ch := chart.Chart{
		Title:      lab.Title,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis:      chart.XAxis{Name: lab.X},
		YAxis:      chart.YAxis{Name: lab.Y},
		Series:     chs,
		Width:      w,
		Height:     h,
	}
	if hasSecondary {
		ch.YAxisSecondary = chart.YAxis{Name: "Secondary Y-axis"}
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		logging.Errorf("line chart render error: %v; showing blank fallback", err)
		return Blank(w, h)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		logging.Errorf("line chart decode error: %v; showing blank fallback", err)
		return Blank(w, h)
	}
	return img
}

// Blank returns a subtle dark placeholder image.
func Blank(w, h int) image.Image {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 18, G: 18, B: 18, A: 255})
		}
	}
	return img
}

// finitePairs drops rows where either coordinate is NaN or infinite.
func finitePairs(xs, ys []float64) ([]float64, []float64) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	outX := make([]float64, 0, n)
	outY := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) || math.IsInf(xs[i], 0) || math.IsInf(ys[i], 0) {
			continue
		}
		outX = append(outX, xs[i])
		outY = append(outY, ys[i])
	}
	return outX, outY
}
