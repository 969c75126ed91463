package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Debdip1007/DashBoardApp/src/dataset"
)

// Heatmap plot-area margins in image pixels. Exported so the hover overlay
// can map mouse positions back onto cells.
const (
	HeatMarginLeft   = 64
	HeatMarginTop    = 28
	HeatMarginRight  = 96
	HeatMarginBottom = 44
)

// HeatLabels carries the editable captions for the heatmap.
type HeatLabels struct {
	Title string
	X     string
	Y     string
	Value string
}

var (
	heatBG   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	heatText = color.RGBA{R: 32, G: 32, B: 32, A: 255}
	heatNaN  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// Heatmap renders the matrix as a colormapped image with origin at the
// lower-left (row 0 at the bottom), plus a labeled colorbar and the
// coordinate extents along both axes.
func Heatmap(m *dataset.Matrix, lab HeatLabels, w, h int) image.Image {
	if m == nil || m.Rows() == 0 || m.Cols() == 0 {
		return Blank(w, h)
	}
	if w < HeatMarginLeft+HeatMarginRight+40 {
		w = HeatMarginLeft + HeatMarginRight + 40
	}
	if h < HeatMarginTop+HeatMarginBottom+40 {
		h = HeatMarginTop + HeatMarginBottom + 40
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(heatBG), image.Point{}, draw.Src)

	rows, cols := m.Rows(), m.Cols()
	minV, maxV, any := valueRange(m)
	x0, y0 := HeatMarginLeft, HeatMarginTop
	x1, y1 := w-HeatMarginRight, h-HeatMarginBottom
	plotW, plotH := x1-x0, y1-y0

	for py := 0; py < plotH; py++ {
		// origin lower: the top pixel row shows the last matrix row
		row := (plotH - 1 - py) * rows / plotH
		for px := 0; px < plotW; px++ {
			col := px * cols / plotW
			v := m.Data[row][col]
			c := heatNaN
			if any && !math.IsNaN(v) {
				c = TurboReversed((v - minV) / (maxV - minV))
			}
			img.SetRGBA(x0+px, y0+py, c)
		}
	}

	drawColorbar(img, x1, y0, y1, minV, maxV, any, lab.Value)

	// title and axis captions
	drawStringCentered(img, lab.Title, (x0+x1)/2, y0-10)
	drawStringCentered(img, lab.X, (x0+x1)/2, h-8)
	drawString(img, lab.Y, 4, y0-10)

	// coordinate extents
	if len(m.XCoords) > 0 {
		drawStringCentered(img, FormatTick(m.XCoords[0]), x0, y1+14)
		drawStringCentered(img, FormatTick(m.XCoords[len(m.XCoords)-1]), x1, y1+14)
	}
	if len(m.YCoords) > 0 {
		drawString(img, FormatTick(m.YCoords[0]), 4, y1)
		drawString(img, FormatTick(m.YCoords[len(m.YCoords)-1]), 4, y0+10)
	}
	return img
}

// HeatmapCell maps a pixel position inside a rendered heatmap image back to
// the matrix cell it displays. ok is false outside the plot area.
func HeatmapCell(m *dataset.Matrix, w, h, px, py int) (row, col int, ok bool) {
	if m == nil || m.Rows() == 0 || m.Cols() == 0 {
		return 0, 0, false
	}
	x0, y0 := HeatMarginLeft, HeatMarginTop
	x1, y1 := w-HeatMarginRight, h-HeatMarginBottom
	if px < x0 || px >= x1 || py < y0 || py >= y1 {
		return 0, 0, false
	}
	plotW, plotH := x1-x0, y1-y0
	row = (plotH - 1 - (py - y0)) * m.Rows() / plotH
	col = (px - x0) * m.Cols() / plotW
	return row, col, true
}

// valueRange scans for the finite min/max; any is false when no finite
// value exists.
func valueRange(m *dataset.Matrix) (minV, maxV float64, any bool) {
	minV = math.MaxFloat64
	maxV = -math.MaxFloat64
	for _, row := range m.Data {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
			any = true
		}
	}
	if any && maxV <= minV {
		maxV = minV + 1
	}
	return minV, maxV, any
}

// drawColorbar paints the vertical scale to the right of the plot area with
// nice tick labels.
func drawColorbar(img *image.RGBA, plotRight, y0, y1 int, minV, maxV float64, any bool, caption string) {
	barX0 := plotRight + 14
	barX1 := barX0 + 16
	barH := y1 - y0
	for py := 0; py < barH; py++ {
		t := float64(barH-1-py) / float64(barH-1)
		c := TurboReversed(t)
		if !any {
			c = heatNaN
		}
		for px := barX0; px < barX1; px++ {
			img.SetRGBA(px, y0+py, c)
		}
	}
	drawString(img, caption, barX0, y0-10)
	if !any {
		return
	}
	for _, tick := range NiceTicks(minV, maxV, 5) {
		if tick < minV || tick > maxV {
			continue
		}
		t := (tick - minV) / (maxV - minV)
		py := y1 - int(t*float64(barH-1))
		drawString(img, FormatTick(tick), barX1+4, py+4)
	}
}

// drawString draws text with the fixed 7x13 face; (x, y) is the baseline
// origin.
func drawString(img *image.RGBA, text string, x, y int) {
	if text == "" {
		return
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(heatText),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

// drawStringCentered centers text horizontally on x.
func drawStringCentered(img *image.RGBA, text string, x, y int) {
	if text == "" {
		return
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(heatText),
		Face: basicfont.Face7x13,
	}
	tw := d.MeasureString(text).Ceil()
	d.Dot = fixed.Point26_6{X: fixed.I(x - tw/2), Y: fixed.I(y)}
	d.DrawString(text)
}
