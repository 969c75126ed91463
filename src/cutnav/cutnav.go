// Package cutnav maintains the two bounded cut cursors into a loaded 2D
// matrix and keeps the derived slice plots, text previews, and editable
// index fields consistent with them. It owns no widgets: the GUI shell
// plugs in behind small collaborator interfaces, which keeps the
// synchronization rules testable without a display.
package cutnav

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Debdip1007/DashBoardApp/src/dataset"
)

// Axis selects which cut cursor an operation applies to.
type Axis int

const (
	// AxisRow is the row cursor: it fixes a row and yields the X-cut
	// (value vs X coordinate).
	AxisRow Axis = iota
	// AxisCol is the column cursor: it fixes a column and yields the Y-cut
	// (value vs Y coordinate).
	AxisCol
)

// Slice is one extracted cut, ready for a single-series line plot and a
// text preview.
type Slice struct {
	Xs, Ys []float64
	Title  string
	XLabel string
	YLabel string
	// Preview is the full text block: the fixed coordinate line followed by
	// the coordinate/value table.
	Preview string
}

// CutView receives the derived slice plots and previews.
type CutView interface {
	ShowXCut(s Slice)
	ShowYCut(s Slice)
	// ClearCuts blanks both slice plots and both previews.
	ClearCuts()
}

// FieldSetter is an editable index field. SetQuiet must update the
// displayed text without re-triggering the edit callback; without that
// guarantee a programmatic refresh of one field can cascade into further
// recomputes and spurious warnings.
type FieldSetter interface {
	SetQuiet(text string)
}

// Alerter surfaces non-fatal conditions to the user.
type Alerter interface {
	Warn(title, message string)
}

// Labels are the current axis captions, read from the shell's editable
// label fields at recompute time.
type Labels struct {
	X     string
	Y     string
	Value string
}

// Navigator is the cut navigation state machine. All methods run on the
// UI's single event thread; there is no locking.
type Navigator struct {
	view     CutView
	rowField FieldSetter
	colField FieldSetter
	alert    Alerter
	labels   func() Labels

	mat    *dataset.Matrix
	rowCut int
	colCut int
}

// New creates a navigator with no matrix loaded.
func New(view CutView, rowField, colField FieldSetter, alert Alerter) *Navigator {
	return &Navigator{
		view:     view,
		rowField: rowField,
		colField: colField,
		alert:    alert,
		labels:   func() Labels { return Labels{X: "X-axis", Y: "Y-axis", Value: "Value"} },
	}
}

// SetLabelSource installs the provider for axis captions.
func (n *Navigator) SetLabelSource(fn func() Labels) {
	if fn != nil {
		n.labels = fn
	}
}

// RowCut returns the current row cursor.
func (n *Navigator) RowCut() int { return n.rowCut }

// ColCut returns the current column cursor.
func (n *Navigator) ColCut() int { return n.colCut }

// Matrix returns the currently loaded matrix, nil when none.
func (n *Navigator) Matrix() *dataset.Matrix { return n.mat }

// SetMatrix replaces the loaded matrix and resets both cursors to 0. A nil
// matrix clears all derived state. Prior state is fully replaced before any
// redraw happens.
func (n *Navigator) SetMatrix(m *dataset.Matrix) {
	n.mat = m
	n.rowCut = 0
	n.colCut = 0
	n.Recompute()
}

// SetRowCut applies a text commit to the row cursor. Invalid or
// out-of-range input reverts the field to the current value and warns;
// an unchanged value does not recompute.
func (n *Navigator) SetRowCut(raw string) {
	n.setCut(AxisRow, raw)
}

// SetColCut applies a text commit to the column cursor.
func (n *Navigator) SetColCut(raw string) {
	n.setCut(AxisCol, raw)
}

func (n *Navigator) setCut(axis Axis, raw string) {
	if n.mat == nil {
		return
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		// Mid-edit empty field: leave it alone until real input arrives.
		return
	}
	cur, field, bound, what := n.axisState(axis)
	v, err := strconv.Atoi(raw)
	if err != nil {
		field.SetQuiet(strconv.Itoa(cur))
		n.alert.Warn("Invalid Input", "Please enter a valid integer.")
		return
	}
	if v < 0 || v > bound {
		field.SetQuiet(strconv.Itoa(cur))
		n.alert.Warn(fmt.Sprintf("Invalid %s Index", what),
			fmt.Sprintf("%s index must be between 0 and %d.", what, bound))
		return
	}
	if v == cur {
		return
	}
	if axis == AxisRow {
		n.rowCut = v
	} else {
		n.colCut = v
	}
	n.Recompute()
}

// Navigate moves one cursor by direction (-1 or +1), clamped to the valid
// range. It always recomputes and rewrites both fields, even when the
// cursor was already at the bound.
func (n *Navigator) Navigate(axis Axis, direction int) {
	if n.mat == nil {
		return
	}
	if axis == AxisRow {
		n.rowCut = clamp(n.rowCut+direction, 0, n.mat.Rows()-1)
	} else {
		n.colCut = clamp(n.colCut+direction, 0, n.mat.Cols()-1)
	}
	n.Recompute()
}

// Recompute clamps both cursors, rewrites both index fields, and pushes
// freshly extracted slices to the view. With no matrix loaded it clears the
// view and displays "0" in both fields without warnings.
func (n *Navigator) Recompute() {
	if n.mat == nil {
		n.view.ClearCuts()
		n.rowField.SetQuiet("0")
		n.colField.SetQuiet("0")
		return
	}
	n.rowCut = clamp(n.rowCut, 0, n.mat.Rows()-1)
	n.colCut = clamp(n.colCut, 0, n.mat.Cols()-1)
	n.rowField.SetQuiet(strconv.Itoa(n.rowCut))
	n.colField.SetQuiet(strconv.Itoa(n.colCut))

	lab := n.labels()
	n.view.ShowXCut(n.xCutSlice(lab))
	n.view.ShowYCut(n.yCutSlice(lab))
}

// xCutSlice extracts the fixed-row slice: value vs X coordinate.
func (n *Navigator) xCutSlice(lab Labels) Slice {
	yc := n.mat.YCoords[n.rowCut]
	ys := n.mat.Row(n.rowCut)
	return Slice{
		Xs:     n.mat.XCoords,
		Ys:     ys,
		Title:  fmt.Sprintf("X-Cut at Y-coord %.2f", yc),
		XLabel: lab.X,
		YLabel: lab.Value,
		Preview: fmt.Sprintf("Y-Coordinate: %.2f\n", yc) +
			dataset.FormatColumns([]string{lab.X, lab.Value}, [][]float64{n.mat.XCoords, ys}),
	}
}

// yCutSlice extracts the fixed-column slice: value vs Y coordinate.
func (n *Navigator) yCutSlice(lab Labels) Slice {
	xc := n.mat.XCoords[n.colCut]
	vals := n.mat.Col(n.colCut)
	return Slice{
		Xs:     n.mat.YCoords,
		Ys:     vals,
		Title:  fmt.Sprintf("Y-Cut at X-coord %.2f", xc),
		XLabel: lab.Y,
		YLabel: lab.Value,
		Preview: fmt.Sprintf("X-Coordinate: %.2f\n", xc) +
			dataset.FormatColumns([]string{lab.Y, lab.Value}, [][]float64{n.mat.YCoords, vals}),
	}
}

func (n *Navigator) axisState(axis Axis) (cur int, field FieldSetter, bound int, what string) {
	if axis == AxisRow {
		return n.rowCut, n.rowField, n.mat.Rows() - 1, "Row"
	}
	return n.colCut, n.colField, n.mat.Cols() - 1, "Column"
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
