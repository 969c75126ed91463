package main

import (
	"fmt"
	"image/color"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/Debdip1007/DashBoardApp/src/dataset"
	"github.com/Debdip1007/DashBoardApp/src/render"
)

// hoverOverlay sits on top of the heatmap canvas and shows the hovered
// cell's coordinates and value in a small tooltip near the cursor.
type hoverOverlay struct {
	widget.BaseWidget
	state    *uiState
	mouse    fyne.Position
	hovering bool
}

func newHoverOverlay(state *uiState) *hoverOverlay {
	o := &hoverOverlay{state: state}
	o.ExtendBaseWidget(o)
	return o
}

func (o *hoverOverlay) CreateRenderer() fyne.WidgetRenderer {
	// transparent background to claim the full hover hit-area
	bg := canvas.NewRectangle(color.RGBA{})
	labelBG := canvas.NewRectangle(color.RGBA{R: 0, G: 0, B: 0, A: 180})
	label := canvas.NewText("", color.RGBA{R: 255, G: 255, B: 255, A: 255})
	label.TextSize = 12
	return &hoverRenderer{
		o:       o,
		bg:      bg,
		labelBG: labelBG,
		label:   label,
		objs:    []fyne.CanvasObject{bg, labelBG, label},
	}
}

type hoverRenderer struct {
	o       *hoverOverlay
	bg      *canvas.Rectangle
	labelBG *canvas.Rectangle
	label   *canvas.Text
	objs    []fyne.CanvasObject
}

func (r *hoverRenderer) Destroy() {}

func (r *hoverRenderer) MinSize() fyne.Size { return fyne.NewSize(10, 10) }

func (r *hoverRenderer) Objects() []fyne.CanvasObject { return r.objs }

func (r *hoverRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))

	text, ok := r.hoverText(size)
	if !ok {
		r.label.Text = ""
		r.labelBG.Resize(fyne.NewSize(0, 0))
		r.labelBG.Move(fyne.NewPos(-1000, -1000))
		r.label.Move(fyne.NewPos(-1000, -1000))
		return
	}
	r.label.Text = text
	ts := r.label.MinSize()
	pad := float32(5)
	tx := r.o.mouse.X + 10
	ty := r.o.mouse.Y + 10
	if tx+ts.Width+2*pad > size.Width {
		tx = size.Width - ts.Width - 2*pad
	}
	if ty+ts.Height+2*pad > size.Height {
		ty = size.Height - ts.Height - 2*pad
	}
	r.labelBG.Resize(fyne.NewSize(ts.Width+2*pad, ts.Height+2*pad))
	r.labelBG.Move(fyne.NewPos(tx, ty))
	r.label.Move(fyne.NewPos(tx+pad, ty+pad))
}

// hoverText maps the mouse position through the contain-fit scaling of the
// heatmap image back to a matrix cell.
func (r *hoverRenderer) hoverText(size fyne.Size) (string, bool) {
	st := r.o.state
	if !r.o.hovering || st == nil || st.nav == nil {
		return "", false
	}
	m := st.nav.Matrix()
	if m == nil || st.heatCanvas == nil || st.heatCanvas.Image == nil {
		return "", false
	}
	b := st.heatCanvas.Image.Bounds()
	imgW, imgH := float32(b.Dx()), float32(b.Dy())
	if imgW <= 0 || imgH <= 0 || size.Width <= 0 || size.Height <= 0 {
		return "", false
	}
	scale := size.Width / imgW
	if s := size.Height / imgH; s < scale {
		scale = s
	}
	drawW, drawH := imgW*scale, imgH*scale
	drawX := (size.Width - drawW) / 2
	drawY := (size.Height - drawH) / 2
	px := int((r.o.mouse.X - drawX) / scale)
	py := int((r.o.mouse.Y - drawY) / scale)
	row, col, ok := render.HeatmapCell(m, b.Dx(), b.Dy(), px, py)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("x=%s  y=%s  value=%s",
		render.FormatTick(m.XCoords[col]),
		render.FormatTick(m.YCoords[row]),
		dataset.FormatCell(m.Data[row][col])), true
}

func (r *hoverRenderer) Refresh() {
	r.Layout(r.o.Size())
	r.labelBG.Refresh()
	r.label.Refresh()
}

func (o *hoverOverlay) MouseIn(ev *desktop.MouseEvent) {
	o.hovering = true
	o.mouse = ev.Position
	o.Refresh()
}

func (o *hoverOverlay) MouseMoved(ev *desktop.MouseEvent) {
	o.hovering = true
	o.mouse = ev.Position
	o.Refresh()
}

func (o *hoverOverlay) MouseOut() {
	o.hovering = false
	o.Refresh()
}

var _ desktop.Hoverable = (*hoverOverlay)(nil)
