// Package seriescfg maintains the ordered, dynamically resizable list of
// series specs for the 1D line plot and recomputes the composite plot plus
// the combined text preview whenever the list or any spec changes.
//
// Column indices are stored as raw text and validated per spec at recompute
// time, because validity depends on the currently loaded table's column
// count, which changes independently of what the user typed.
package seriescfg

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Debdip1007/DashBoardApp/src/dataset"
	"github.com/Debdip1007/DashBoardApp/src/logging"
)

// Spec is one user-configurable series: two column index fields and the
// secondary-axis flag. Fields are mutated in place by the owning row's
// controls.
type Spec struct {
	XText     string
	YText     string
	Secondary bool
}

// Series is one resolved, plottable series. ColorSlot is the spec's
// position in the original list, so skipped specs still consume a color and
// colors stay stable while specs are edited.
type Series struct {
	Xs, Ys    []float64
	Label     string
	Secondary bool
	ColorSlot int
}

// View receives the composite plot and the combined preview table.
type View interface {
	ShowSeries(series []Series, preview string)
	// Clear blanks the plot and the preview.
	Clear()
}

// Alerter surfaces non-fatal conditions to the user.
type Alerter interface {
	Warn(title, message string)
}

// Configurator is the series list state machine. Single-threaded, like the
// rest of the UI core.
type Configurator struct {
	view  View
	alert Alerter

	table *dataset.Table
	specs []*Spec

	// OnSpecsChanged fires after any list-shape mutation (add, remove,
	// clear, dataset defaults) and before the recompute that follows, so
	// the shell can rebuild its row widgets from Specs. The widget list is
	// a projection of the spec list, never the other way around.
	OnSpecsChanged func()
}

// New creates a configurator with no table loaded and no specs.
func New(view View, alert Alerter) *Configurator {
	return &Configurator{view: view, alert: alert}
}

// Specs returns the live spec list in display order. Callers may mutate
// individual specs in place and must call Recompute afterwards.
func (c *Configurator) Specs() []*Spec { return c.specs }

// Table returns the currently loaded table, nil when none.
func (c *Configurator) Table() *dataset.Table { return c.table }

// Add appends a spec initialized to the given defaults and recomputes when
// a table is loaded.
func (c *Configurator) Add(defaultX, defaultY int, secondary bool) {
	c.specs = append(c.specs, &Spec{
		XText:     strconv.Itoa(defaultX),
		YText:     strconv.Itoa(defaultY),
		Secondary: secondary,
	})
	c.notify()
	if c.table != nil {
		c.Recompute()
	}
}

// RemoveLast removes the tail spec and recomputes. Removing from an empty
// list is reported, not fatal.
func (c *Configurator) RemoveLast() {
	if len(c.specs) == 0 {
		c.alert.Warn("No Series to Remove", "There are no plot series to remove.")
		return
	}
	c.specs = c.specs[:len(c.specs)-1]
	c.notify()
	c.Recompute()
}

// ClearAll empties the list without recomputing; callers recompute once
// after repopulating.
func (c *Configurator) ClearAll() {
	c.specs = nil
	c.notify()
}

// SetTable replaces the backing table, clears all specs, and appends the
// load-time defaults: columns 0 vs 1 on the primary axis when the table has
// at least two columns, additionally 0 vs 3 on the secondary axis with at
// least four, and a single 0 vs 0 spec as a fallback so the user always has
// an editable starting point. Ends with one recompute.
func (c *Configurator) SetTable(t *dataset.Table) {
	c.table = t
	c.specs = nil
	cols := 0
	if t != nil {
		cols = t.Cols()
	}
	if t == nil || cols >= 2 {
		c.specs = append(c.specs, &Spec{XText: "0", YText: "1"})
	}
	if t == nil || cols >= 4 {
		c.specs = append(c.specs, &Spec{XText: "0", YText: "3", Secondary: true})
	}
	if len(c.specs) == 0 && cols >= 1 {
		c.specs = append(c.specs, &Spec{XText: "0", YText: "0"})
	}
	c.notify()
	c.Recompute()
}

// Recompute resolves every spec against the current table, in order. A spec
// with a non-integer or out-of-range index, or with no valid numeric rows,
// is skipped with a report; the remaining specs still render. With no table
// loaded this is a silent clear.
func (c *Configurator) Recompute() {
	if c.table == nil {
		c.view.Clear()
		return
	}
	cols := c.table.Cols()
	var out []Series
	var names []string
	var values [][]float64
	seen := map[string]bool{}

	for i, sp := range c.specs {
		xi, errX := strconv.Atoi(strings.TrimSpace(sp.XText))
		yi, errY := strconv.Atoi(strings.TrimSpace(sp.YText))
		if errX != nil || errY != nil {
			c.alert.Warn("Invalid Column Index",
				fmt.Sprintf("Series %d: please enter valid integer numbers for column indices.", i+1))
			continue
		}
		if xi < 0 || xi >= cols {
			c.alert.Warn("Column Index Out of Bounds",
				fmt.Sprintf("Series %d: X column index %d is out of bounds. Max index is %d.", i+1, xi, cols-1))
			continue
		}
		if yi < 0 || yi >= cols {
			c.alert.Warn("Column Index Out of Bounds",
				fmt.Sprintf("Series %d: Y column index %d is out of bounds. Max index is %d.", i+1, yi, cols-1))
			continue
		}
		xs, ys := dropNaNPairs(c.table.Numeric(xi), c.table.Numeric(yi))
		if len(xs) == 0 {
			c.alert.Warn("No Plottable Data",
				fmt.Sprintf("Series %d: no valid numeric data points found for the selected columns.", i+1))
			continue
		}
		xName, yName := c.table.Name(xi), c.table.Name(yi)
		out = append(out, Series{
			Xs:        xs,
			Ys:        ys,
			Label:     fmt.Sprintf("(%s vs %s)", xName, yName),
			Secondary: sp.Secondary,
			ColorSlot: i,
		})
		if !seen[xName] {
			seen[xName] = true
			names = append(names, xName)
			values = append(values, xs)
		}
		if !seen[yName] {
			seen[yName] = true
			names = append(names, yName)
			values = append(values, ys)
		}
	}

	if len(out) == 0 {
		c.view.Clear()
		c.alert.Warn("No Plottable Series", "No valid series configured or found to plot.")
		return
	}
	logging.Debugf("recomputed %d of %d series", len(out), len(c.specs))
	c.view.ShowSeries(out, dataset.FormatColumns(names, values))
}

func (c *Configurator) notify() {
	if c.OnSpecsChanged != nil {
		c.OnSpecsChanged()
	}
}

// dropNaNPairs filters both slices down to the rows where both coordinates
// are numeric.
func dropNaNPairs(xs, ys []float64) ([]float64, []float64) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	outX := make([]float64, 0, n)
	outY := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		outX = append(outX, xs[i])
		outY = append(outY, ys[i])
	}
	return outX, outY
}
