package cutnav

import (
	"strings"
	"testing"

	"github.com/Debdip1007/DashBoardApp/src/dataset"
)

type fakeField struct {
	texts []string
}

func (f *fakeField) SetQuiet(s string) { f.texts = append(f.texts, s) }

func (f *fakeField) last() string {
	if len(f.texts) == 0 {
		return ""
	}
	return f.texts[len(f.texts)-1]
}

type fakeView struct {
	xcuts, ycuts []Slice
	clears       int
}

func (v *fakeView) ShowXCut(s Slice) { v.xcuts = append(v.xcuts, s) }
func (v *fakeView) ShowYCut(s Slice) { v.ycuts = append(v.ycuts, s) }
func (v *fakeView) ClearCuts()       { v.clears++ }

type fakeAlert struct {
	titles []string
}

func (a *fakeAlert) Warn(title, message string) { a.titles = append(a.titles, title) }

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

func newTestNav() (*Navigator, *fakeView, *fakeField, *fakeField, *fakeAlert) {
	view := &fakeView{}
	row := &fakeField{}
	col := &fakeField{}
	alert := &fakeAlert{}
	nav := New(view, row, col, alert)
	return nav, view, row, col, alert
}

func TestSetMatrixResetsCursorsAndRecomputes(t *testing.T) {
	nav, view, row, col, alert := newTestNav()
	nav.SetMatrix(testMatrix())

	if nav.RowCut() != 0 || nav.ColCut() != 0 {
		t.Fatalf("cursors = (%d,%d), want (0,0)", nav.RowCut(), nav.ColCut())
	}
	if row.last() != "0" || col.last() != "0" {
		t.Fatalf("fields = (%q,%q), want (\"0\",\"0\")", row.last(), col.last())
	}
	if len(view.xcuts) != 1 || len(view.ycuts) != 1 {
		t.Fatalf("got %d xcuts, %d ycuts, want 1 each", len(view.xcuts), len(view.ycuts))
	}
	if got := view.xcuts[0].Title; got != "X-Cut at Y-coord 10.00" {
		t.Errorf("xcut title = %q", got)
	}
	if got := view.ycuts[0].Title; got != "Y-Cut at X-coord 1.00" {
		t.Errorf("ycut title = %q", got)
	}
	if len(alert.titles) != 0 {
		t.Errorf("unexpected warnings: %v", alert.titles)
	}
}

func TestSetRowCutValid(t *testing.T) {
	nav, view, row, _, alert := newTestNav()
	nav.SetMatrix(testMatrix())
	nav.SetRowCut("2")

	if nav.RowCut() != 2 {
		t.Fatalf("row cut = %d, want 2", nav.RowCut())
	}
	if row.last() != "2" {
		t.Errorf("row field = %q, want \"2\"", row.last())
	}
	s := view.xcuts[len(view.xcuts)-1]
	if s.Title != "X-Cut at Y-coord 30.00" {
		t.Errorf("title = %q", s.Title)
	}
	want := []float64{7, 8, 9}
	for i, v := range want {
		if s.Ys[i] != v {
			t.Fatalf("Ys = %v, want %v", s.Ys, want)
		}
	}
	if !strings.HasPrefix(s.Preview, "Y-Coordinate: 30.00\n") {
		t.Errorf("preview prefix wrong:\n%s", s.Preview)
	}
	if len(alert.titles) != 0 {
		t.Errorf("unexpected warnings: %v", alert.titles)
	}
}

func TestSetColCutValid(t *testing.T) {
	nav, view, _, _, _ := newTestNav()
	nav.SetMatrix(testMatrix())
	nav.SetColCut("1")

	s := view.ycuts[len(view.ycuts)-1]
	if s.Title != "Y-Cut at X-coord 2.00" {
		t.Errorf("title = %q", s.Title)
	}
	want := []float64{2, 5, 8, 11}
	if len(s.Ys) != len(want) {
		t.Fatalf("Ys = %v, want %v", s.Ys, want)
	}
	for i, v := range want {
		if s.Ys[i] != v {
			t.Fatalf("Ys = %v, want %v", s.Ys, want)
		}
	}
	if !strings.HasPrefix(s.Preview, "X-Coordinate: 2.00\n") {
		t.Errorf("preview prefix wrong:\n%s", s.Preview)
	}
}

func TestSetCutUnchangedValueDoesNotRecompute(t *testing.T) {
	nav, view, _, _, _ := newTestNav()
	nav.SetMatrix(testMatrix())
	before := len(view.xcuts)

	nav.SetRowCut("0")
	if len(view.xcuts) != before {
		t.Fatalf("recompute ran for an unchanged value")
	}
}

func TestSetCutInvalidInputRevertsAndWarns(t *testing.T) {
	nav, view, row, _, alert := newTestNav()
	nav.SetMatrix(testMatrix())
	nav.SetRowCut("2")
	before := len(view.xcuts)

	nav.SetRowCut("abc")
	if nav.RowCut() != 2 {
		t.Fatalf("row cut changed to %d on invalid input", nav.RowCut())
	}
	if row.last() != "2" {
		t.Errorf("field not reverted, shows %q", row.last())
	}
	if len(view.xcuts) != before {
		t.Errorf("recompute ran on invalid input")
	}
	if len(alert.titles) != 1 || alert.titles[0] != "Invalid Input" {
		t.Errorf("warnings = %v", alert.titles)
	}
}

func TestSetCutOutOfRangeRevertsAndWarns(t *testing.T) {
	cases := []struct {
		name      string
		set       func(n *Navigator, raw string)
		raw       string
		wantTitle string
	}{
		{"row too high", (*Navigator).SetRowCut, "7", "Invalid Row Index"},
		{"row negative", (*Navigator).SetRowCut, "-1", "Invalid Row Index"},
		{"col too high", (*Navigator).SetColCut, "3", "Invalid Column Index"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			nav, _, row, col, alert := newTestNav()
			nav.SetMatrix(testMatrix())
			tc.set(nav, tc.raw)
			if nav.RowCut() != 0 || nav.ColCut() != 0 {
				t.Fatalf("cursor moved: (%d,%d)", nav.RowCut(), nav.ColCut())
			}
			if row.last() != "0" || col.last() != "0" {
				t.Errorf("fields = (%q,%q), want reverted to \"0\"", row.last(), col.last())
			}
			if len(alert.titles) != 1 || alert.titles[0] != tc.wantTitle {
				t.Errorf("warnings = %v, want [%s]", alert.titles, tc.wantTitle)
			}
		})
	}
}

func TestSetCutEmptyTextIgnored(t *testing.T) {
	nav, view, _, _, alert := newTestNav()
	nav.SetMatrix(testMatrix())
	before := len(view.xcuts)

	nav.SetRowCut("")
	nav.SetRowCut("   ")
	if len(view.xcuts) != before || len(alert.titles) != 0 {
		t.Fatalf("mid-edit empty text was not ignored: %d recomputes, warns %v",
			len(view.xcuts)-before, alert.titles)
	}
}

func TestNavigateMovesAndClamps(t *testing.T) {
	nav, view, _, _, alert := newTestNav()
	nav.SetMatrix(testMatrix())

	nav.Navigate(AxisRow, +1)
	if nav.RowCut() != 1 {
		t.Fatalf("row cut = %d after next, want 1", nav.RowCut())
	}

	// already at the lower bound: stays put but still refreshes
	nav.Navigate(AxisCol, -1)
	if nav.ColCut() != 0 {
		t.Fatalf("col cut = %d, want 0", nav.ColCut())
	}
	before := len(view.ycuts)
	nav.Navigate(AxisCol, -1)
	if nav.ColCut() != 0 {
		t.Fatalf("col cut moved below 0")
	}
	if len(view.ycuts) != before+1 {
		t.Errorf("clamped navigation should still recompute")
	}
	if len(alert.titles) != 0 {
		t.Errorf("navigation must never warn, got %v", alert.titles)
	}
}

func TestNilMatrixBehaviour(t *testing.T) {
	nav, view, row, col, alert := newTestNav()

	nav.SetRowCut("3")
	nav.Navigate(AxisRow, +1)
	if len(alert.titles) != 0 || len(view.xcuts) != 0 {
		t.Fatalf("operations on empty navigator had effects")
	}

	nav.SetMatrix(testMatrix())
	nav.SetRowCut("2")
	nav.SetMatrix(nil)
	if view.clears == 0 {
		t.Fatalf("clearing the matrix did not clear the view")
	}
	if row.last() != "0" || col.last() != "0" {
		t.Errorf("fields = (%q,%q), want \"0\" after clear", row.last(), col.last())
	}
	if len(alert.titles) != 0 {
		t.Errorf("clearing warned: %v", alert.titles)
	}
}

func TestRecomputeUsesCurrentLabels(t *testing.T) {
	nav, view, _, _, _ := newTestNav()
	labels := Labels{X: "Time", Y: "Depth", Value: "Signal"}
	nav.SetLabelSource(func() Labels { return labels })
	nav.SetMatrix(testMatrix())

	x := view.xcuts[len(view.xcuts)-1]
	if x.XLabel != "Time" || x.YLabel != "Signal" {
		t.Errorf("xcut labels = (%q,%q)", x.XLabel, x.YLabel)
	}
	y := view.ycuts[len(view.ycuts)-1]
	if y.XLabel != "Depth" || y.YLabel != "Signal" {
		t.Errorf("ycut labels = (%q,%q)", y.XLabel, y.YLabel)
	}

	labels.Value = "Amplitude"
	nav.Recompute()
	x = view.xcuts[len(view.xcuts)-1]
	if x.YLabel != "Amplitude" {
		t.Errorf("label change not picked up on recompute: %q", x.YLabel)
	}
}
