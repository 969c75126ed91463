package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// turboAnchors approximates the turbo colormap with evenly spaced key
// colors; intermediate values are blended in RGB space.
var turboAnchors = []colorful.Color{
	{R: 0.190, G: 0.072, B: 0.232}, // deep purple
	{R: 0.276, G: 0.412, B: 0.859}, // blue
	{R: 0.150, G: 0.736, B: 0.882}, // cyan
	{R: 0.326, G: 0.929, B: 0.579}, // green
	{R: 0.636, G: 0.990, B: 0.234}, // yellow-green
	{R: 0.929, G: 0.812, B: 0.227}, // yellow
	{R: 0.976, G: 0.443, B: 0.188}, // orange
	{R: 0.843, G: 0.220, B: 0.055}, // red
	{R: 0.478, G: 0.016, B: 0.011}, // dark red
}

// Turbo maps t in [0,1] onto the turbo colormap.
func Turbo(t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	pos := t * float64(len(turboAnchors)-1)
	lo := int(pos)
	if lo >= len(turboAnchors)-1 {
		lo = len(turboAnchors) - 2
	}
	frac := pos - float64(lo)
	c := turboAnchors[lo].BlendRgb(turboAnchors[lo+1], frac)
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// TurboReversed maps t in [0,1] onto the reversed turbo colormap, the scale
// the heatmap uses (high values dark, low values warm).
func TurboReversed(t float64) color.RGBA {
	return Turbo(1 - t)
}
