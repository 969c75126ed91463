package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/Debdip1007/DashBoardApp/src/cutnav"
	"github.com/Debdip1007/DashBoardApp/src/dataset"
	"github.com/Debdip1007/DashBoardApp/src/logging"
	"github.com/Debdip1007/DashBoardApp/src/render"
	"github.com/Debdip1007/DashBoardApp/src/seriescfg"
)

type uiState struct {
	app    fyne.App
	window fyne.Window

	dir2d string
	dir1d string

	nav *cutnav.Navigator
	cfg *seriescfg.Configurator

	tabs *container.AppTabs

	tree2d, tree1d         *widget.Tree
	dir2dLabel, dir1dLabel *widget.Label

	heatCanvas  *canvas.Image
	xcutCanvas  *canvas.Image
	ycutCanvas  *canvas.Image
	lineCanvas  *canvas.Image
	heatOverlay *hoverOverlay

	xcutPreview *widget.Label
	ycutPreview *widget.Label
	preview1d   *widget.Label

	rowEntry, colEntry *silentEntry

	title2d, xlab2d, ylab2d, cbar2d *widget.Entry
	title1d, xlab1d, ylab1d         *widget.Entry

	seriesBox *fyne.Container

	darkMode bool
}

// dark theme wrapper
type darkTheme struct{}

func (d *darkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
func (d *darkTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (d *darkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (d *darkTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

// light theme wrapper
type lightTheme struct{}

func (l *lightTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantLight)
}
func (l *lightTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}
func (l *lightTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (l *lightTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

func applyTheme(state *uiState) {
	if state.darkMode {
		state.app.Settings().SetTheme(&darkTheme{})
	} else {
		state.app.Settings().SetTheme(&lightTheme{})
	}
}

// cutView renders the navigator's slices onto the two cut canvases.
type cutView struct{ st *uiState }

func (v *cutView) ShowXCut(s cutnav.Slice) {
	w, h := cutChartSize(v.st)
	v.st.xcutCanvas.Image = render.Lines(
		[]render.Series{{Xs: s.Xs, Ys: s.Ys, Label: "X-Cut Data"}},
		render.Labels{Title: s.Title, X: s.XLabel, Y: s.YLabel}, w, h)
	v.st.xcutCanvas.Refresh()
	v.st.xcutPreview.SetText(s.Preview)
}

func (v *cutView) ShowYCut(s cutnav.Slice) {
	w, h := cutChartSize(v.st)
	v.st.ycutCanvas.Image = render.Lines(
		[]render.Series{{Xs: s.Xs, Ys: s.Ys, Label: "Y-Cut Data", ColorSlot: 2}},
		render.Labels{Title: s.Title, X: s.XLabel, Y: s.YLabel}, w, h)
	v.st.ycutCanvas.Refresh()
	v.st.ycutPreview.SetText(s.Preview)
}

func (v *cutView) ClearCuts() {
	w, h := cutChartSize(v.st)
	v.st.xcutCanvas.Image = render.Blank(w, h)
	v.st.ycutCanvas.Image = render.Blank(w, h)
	v.st.xcutCanvas.Refresh()
	v.st.ycutCanvas.Refresh()
	v.st.xcutPreview.SetText("")
	v.st.ycutPreview.SetText("")
}

// lineView renders the configurator's composite plot onto the 1D canvas.
type lineView struct{ st *uiState }

func (v *lineView) ShowSeries(series []seriescfg.Series, preview string) {
	rs := make([]render.Series, 0, len(series))
	for _, s := range series {
		rs = append(rs, render.Series{
			Xs:        s.Xs,
			Ys:        s.Ys,
			Label:     s.Label,
			Secondary: s.Secondary,
			ColorSlot: s.ColorSlot,
		})
	}
	w, h := lineChartSize(v.st)
	v.st.lineCanvas.Image = render.Lines(rs, render.Labels{
		Title: v.st.title1d.Text,
		X:     v.st.xlab1d.Text,
		Y:     v.st.ylab1d.Text,
	}, w, h)
	v.st.lineCanvas.Refresh()
	v.st.preview1d.SetText(preview)
}

func (v *lineView) Clear() {
	w, h := lineChartSize(v.st)
	v.st.lineCanvas.Image = render.Blank(w, h)
	v.st.lineCanvas.Refresh()
	v.st.preview1d.SetText("")
}

// alerter routes core warnings to modal dialogs.
type alerter struct{ st *uiState }

func (a *alerter) Warn(title, message string) {
	logging.Warnf("%s: %s", title, message)
	dialog.ShowInformation(title, message, a.st.window)
}

func main() {
	var dir2dFlag, dir1dFlag, logLevel string
	flag.StringVar(&dir2dFlag, "dir2d", "", "Initial folder for 2D data files")
	flag.StringVar(&dir1dFlag, "dir1d", "", "Initial folder for 1D data files")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	flag.Parse()
	logging.SetLevel(logLevel)

	a := app.NewWithID("com.debdip.dashboardapp")
	w := a.NewWindow("Advanced Data Dashboard")
	w.Resize(fyne.NewSize(1280, 820))

	state := &uiState{app: a, window: w}
	state.darkMode = a.Preferences().BoolWithFallback("darkMode", true)
	applyTheme(state)

	// chart placeholders
	state.heatCanvas = canvas.NewImageFromImage(render.Blank(100, 60))
	state.heatCanvas.FillMode = canvas.ImageFillContain
	state.heatCanvas.SetMinSize(fyne.NewSize(340, 300))
	state.xcutCanvas = canvas.NewImageFromImage(render.Blank(100, 60))
	state.xcutCanvas.FillMode = canvas.ImageFillContain
	state.xcutCanvas.SetMinSize(fyne.NewSize(340, 300))
	state.ycutCanvas = canvas.NewImageFromImage(render.Blank(100, 60))
	state.ycutCanvas.FillMode = canvas.ImageFillContain
	state.ycutCanvas.SetMinSize(fyne.NewSize(340, 300))
	state.lineCanvas = canvas.NewImageFromImage(render.Blank(100, 60))
	state.lineCanvas.FillMode = canvas.ImageFillContain
	state.lineCanvas.SetMinSize(fyne.NewSize(640, 420))
	state.heatOverlay = newHoverOverlay(state)

	state.xcutPreview = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Monospace: true})
	state.ycutPreview = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Monospace: true})
	state.preview1d = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Monospace: true})

	// editable plot labels; committing any of them redraws
	state.title2d = newLabelEntry("2D Image Plot")
	state.xlab2d = newLabelEntry("X-axis")
	state.ylab2d = newLabelEntry("Y-axis")
	state.cbar2d = newLabelEntry("Intensity")
	state.title1d = newLabelEntry("1D Line Plot")
	state.xlab1d = newLabelEntry("X-axis")
	state.ylab1d = newLabelEntry("Y-axis")

	state.rowEntry = newSilentEntry("0")
	state.colEntry = newSilentEntry("0")

	state.nav = cutnav.New(&cutView{state}, state.rowEntry, state.colEntry, &alerter{state})
	state.nav.SetLabelSource(func() cutnav.Labels {
		return cutnav.Labels{X: state.xlab2d.Text, Y: state.ylab2d.Text, Value: state.cbar2d.Text}
	})
	state.rowEntry.onEdit = func(s string) { state.nav.SetRowCut(s) }
	state.colEntry.onEdit = func(s string) { state.nav.SetColCut(s) }

	state.cfg = seriescfg.New(&lineView{state}, &alerter{state})
	state.cfg.OnSpecsChanged = func() { rebuildSeriesRows(state) }

	// redraw hooks for the label entries, now that nav and cfg exist
	redraw2d := func(string) {
		redrawHeatmap(state)
		state.nav.Recompute()
	}
	state.title2d.OnSubmitted = redraw2d
	state.xlab2d.OnSubmitted = redraw2d
	state.ylab2d.OnSubmitted = redraw2d
	state.cbar2d.OnSubmitted = redraw2d
	redraw1d := func(string) { state.cfg.Recompute() }
	state.title1d.OnSubmitted = redraw1d
	state.xlab1d.OnSubmitted = redraw1d
	state.ylab1d.OnSubmitted = redraw1d

	// folder panels
	state.dir2dLabel = widget.NewLabel("(no folder selected)")
	state.dir1dLabel = widget.NewLabel("(no folder selected)")
	state.tree2d = newFileTree(func() string { return state.dir2d }, func(p string) { loadMatrixFile(state, p) })
	state.tree1d = newFileTree(func() string { return state.dir1d }, func(p string) { loadTableFile(state, p) })

	panel2d := container.NewBorder(container.NewVBox(
		widget.NewLabelWithStyle("2D Data Files", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewButton("Browse…", func() { selectFolder(state, true) }),
		state.dir2dLabel,
	), nil, nil, nil, state.tree2d)
	panel1d := container.NewBorder(container.NewVBox(
		widget.NewLabelWithStyle("1D Data Files", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewButton("Browse…", func() { selectFolder(state, false) }),
		state.dir1dLabel,
	), nil, nil, nil, state.tree1d)
	sidebar := container.NewVSplit(panel2d, panel1d)

	// 2D tab
	prevRow := widget.NewButton("<", func() { state.nav.Navigate(cutnav.AxisRow, -1) })
	nextRow := widget.NewButton(">", func() { state.nav.Navigate(cutnav.AxisRow, +1) })
	prevCol := widget.NewButton("<", func() { state.nav.Navigate(cutnav.AxisCol, -1) })
	nextCol := widget.NewButton(">", func() { state.nav.Navigate(cutnav.AxisCol, +1) })
	cutControls := container.NewVBox(
		widget.NewLabelWithStyle("Plot Labels", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewForm(
			widget.NewFormItem("Title", state.title2d),
			widget.NewFormItem("X-axis", state.xlab2d),
			widget.NewFormItem("Y-axis", state.ylab2d),
			widget.NewFormItem("Colorbar", state.cbar2d),
		),
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Cut Navigation", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(
			widget.NewLabel("Row (X-Cut):"), prevRow,
			container.NewGridWrap(fyne.NewSize(64, 38), state.rowEntry), nextRow,
		),
		container.NewHBox(
			widget.NewLabel("Col (Y-Cut):"), prevCol,
			container.NewGridWrap(fyne.NewSize(64, 38), state.colEntry), nextCol,
		),
	)
	xcutScroll := container.NewVScroll(state.xcutPreview)
	xcutScroll.SetMinSize(fyne.NewSize(300, 220))
	ycutScroll := container.NewVScroll(state.ycutPreview)
	ycutScroll.SetMinSize(fyne.NewSize(300, 220))
	tab2d := container.NewVScroll(container.NewVBox(
		container.NewGridWithColumns(3,
			container.NewStack(state.heatCanvas, state.heatOverlay),
			state.xcutCanvas,
			state.ycutCanvas,
		),
		container.NewGridWithColumns(3, cutControls, xcutScroll, ycutScroll),
	))

	// 1D tab
	state.seriesBox = container.NewVBox()
	seriesScroll := container.NewVScroll(state.seriesBox)
	seriesScroll.SetMinSize(fyne.NewSize(360, 180))
	preview1dScroll := container.NewVScroll(state.preview1d)
	preview1dScroll.SetMinSize(fyne.NewSize(360, 240))
	rightCol := container.NewVBox(
		widget.NewLabelWithStyle("Plot Labels", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewForm(
			widget.NewFormItem("Title", state.title1d),
			widget.NewFormItem("X-axis", state.xlab1d),
			widget.NewFormItem("Y-axis", state.ylab1d),
		),
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Series", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		seriesScroll,
		container.NewHBox(
			widget.NewButton("Add Series", func() { state.cfg.Add(0, 1, false) }),
			widget.NewButton("Remove Series", func() { state.cfg.RemoveLast() }),
		),
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Data Preview", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		preview1dScroll,
	)
	tab1d := container.NewBorder(nil, nil, nil, container.NewVScroll(rightCol), state.lineCanvas)

	state.tabs = container.NewAppTabs(
		container.NewTabItem("2D Data", tab2d),
		container.NewTabItem("1D Data", tab1d),
	)
	state.tabs.SetTabLocation(container.TabLocationTop)

	themeChk := widget.NewCheck("Dark mode", nil)
	themeChk.SetChecked(state.darkMode)
	themeChk.OnChanged = func(b bool) {
		state.darkMode = b
		applyTheme(state)
		savePrefs(state)
	}
	top := container.NewHBox(themeChk)

	split := container.NewHSplit(sidebar, container.NewBorder(top, nil, nil, nil, state.tabs))
	split.SetOffset(0.2)
	w.SetContent(split)

	loadPrefs(state)
	if dir2dFlag != "" {
		state.dir2d = dir2dFlag
	}
	if dir1dFlag != "" {
		state.dir1d = dir1dFlag
	}
	refreshFolderPanels(state)

	redrawHeatmap(state)
	state.nav.Recompute()

	w.ShowAndRun()
}

func newLabelEntry(text string) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(text)
	return e
}

// newFileTree lists the current folder recursively; selecting a regular file
// hands its path to onFile.
func newFileTree(root func() string, onFile func(path string)) *widget.Tree {
	tree := widget.NewTree(
		func(uid widget.TreeNodeID) []widget.TreeNodeID {
			dir := string(uid)
			if dir == "" {
				dir = root()
			}
			if dir == "" {
				return nil
			}
			entries, err := os.ReadDir(dir)
			if err != nil {
				logging.Warnf("cannot list %s: %v", dir, err)
				return nil
			}
			out := make([]widget.TreeNodeID, 0, len(entries))
			for _, e := range entries {
				out = append(out, widget.TreeNodeID(filepath.Join(dir, e.Name())))
			}
			return out
		},
		func(uid widget.TreeNodeID) bool {
			p := string(uid)
			if p == "" {
				return true
			}
			fi, err := os.Stat(p)
			return err == nil && fi.IsDir()
		},
		func(branch bool) fyne.CanvasObject {
			return widget.NewLabel("file")
		},
		func(uid widget.TreeNodeID, branch bool, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(filepath.Base(string(uid)))
		},
	)
	tree.OnSelected = func(uid widget.TreeNodeID) {
		p := string(uid)
		fi, err := os.Stat(p)
		if err != nil || fi.IsDir() {
			return
		}
		onFile(p)
	}
	return tree
}

// selectFolder replaces one panel's folder. Re-selecting also resets the
// dependent plotting state, so stale data never outlives its folder.
func selectFolder(state *uiState, is2D bool) {
	dialog.ShowFolderOpen(func(lu fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, state.window)
			return
		}
		if lu == nil {
			return
		}
		if is2D {
			state.dir2d = lu.Path()
			state.nav.SetMatrix(nil)
			redrawHeatmap(state)
		} else {
			state.dir1d = lu.Path()
			state.cfg.SetTable(nil)
		}
		refreshFolderPanels(state)
		savePrefs(state)
	}, state.window)
}

func refreshFolderPanels(state *uiState) {
	if state.dir2d != "" {
		state.dir2dLabel.SetText(truncatePath(state.dir2d, 40))
	}
	if state.dir1d != "" {
		state.dir1dLabel.SetText(truncatePath(state.dir1d, 40))
	}
	state.tree2d.Refresh()
	state.tree1d.Refresh()
}

func loadMatrixFile(state *uiState, path string) {
	logging.Infof("loading 2D file %s", path)
	m, err := dataset.LoadMatrix(path)
	if err != nil {
		if errors.Is(err, dataset.ErrUnsupportedType) {
			dialog.ShowInformation("Unsupported File Type",
				fmt.Sprintf("%q is not a supported 2D data file (.csv, .txt).", filepath.Base(path)), state.window)
			return
		}
		state.nav.SetMatrix(nil)
		redrawHeatmap(state)
		dialog.ShowError(fmt.Errorf("failed to load 2D data from %q: %w", filepath.Base(path), err), state.window)
		return
	}
	if m.Fallback {
		dialog.ShowInformation("2D Data Format Warning",
			"Could not interpret the first row/column as coordinates; using row and column positions instead.", state.window)
	}
	if m.CoordWarning != "" {
		dialog.ShowInformation("Coordinate Conversion Warning", m.CoordWarning, state.window)
	}
	state.title2d.SetText(filepath.Base(path))
	state.nav.SetMatrix(m)
	redrawHeatmap(state)
	state.tabs.SelectIndex(0)
}

func loadTableFile(state *uiState, path string) {
	logging.Infof("loading 1D file %s", path)
	t, err := dataset.LoadTable(path)
	if err != nil {
		if errors.Is(err, dataset.ErrUnsupportedType) {
			dialog.ShowInformation("Unsupported File Type",
				fmt.Sprintf("%q is not a supported 1D data file (.csv, .txt).", filepath.Base(path)), state.window)
			return
		}
		state.cfg.SetTable(nil)
		dialog.ShowError(fmt.Errorf("failed to load 1D data from %q: %w", filepath.Base(path), err), state.window)
		return
	}
	state.cfg.SetTable(t)
	state.tabs.SelectIndex(1)
}

func redrawHeatmap(state *uiState) {
	w, h := cutChartSize(state)
	m := state.nav.Matrix()
	if m == nil {
		state.heatCanvas.Image = render.Blank(w, h)
	} else {
		state.heatCanvas.Image = render.Heatmap(m, render.HeatLabels{
			Title: state.title2d.Text,
			X:     state.xlab2d.Text,
			Y:     state.ylab2d.Text,
			Value: state.cbar2d.Text,
		}, w, h)
	}
	state.heatCanvas.Refresh()
	state.heatOverlay.Refresh()
}

// rebuildSeriesRows projects the spec list into one row of controls per
// spec. Called from OnSpecsChanged; the spec list is the source of truth.
func rebuildSeriesRows(state *uiState) {
	if state.seriesBox == nil {
		return
	}
	state.seriesBox.Objects = nil
	for i, sp := range state.cfg.Specs() {
		sp := sp
		xEntry := widget.NewEntry()
		xEntry.SetText(sp.XText)
		xEntry.OnSubmitted = func(s string) {
			sp.XText = s
			state.cfg.Recompute()
		}
		yEntry := widget.NewEntry()
		yEntry.SetText(sp.YText)
		yEntry.OnSubmitted = func(s string) {
			sp.YText = s
			state.cfg.Recompute()
		}
		// set the checkbox state before wiring the callback, otherwise the
		// rebuild itself would trigger a recompute
		chk := widget.NewCheck("2nd axis", nil)
		chk.SetChecked(sp.Secondary)
		chk.OnChanged = func(b bool) {
			sp.Secondary = b
			state.cfg.Recompute()
		}
		state.seriesBox.Add(container.NewHBox(
			widget.NewLabel(fmt.Sprintf("Series %d", i+1)),
			widget.NewLabel("X col:"),
			container.NewGridWrap(fyne.NewSize(56, 38), xEntry),
			widget.NewLabel("Y col:"),
			container.NewGridWrap(fyne.NewSize(56, 38), yEntry),
			chk,
		))
	}
	state.seriesBox.Refresh()
}

// cutChartSize sizes the three 2D-tab charts, which share a row.
func cutChartSize(state *uiState) (int, int) {
	if state == nil || state.window == nil || state.window.Canvas() == nil {
		return 420, 320
	}
	sz := state.window.Canvas().Size()
	w := int(sz.Width*0.8)/3 - 12
	if w < 340 {
		w = 340
	}
	h := int(float32(w) * 0.85)
	if h < 280 {
		h = 280
	}
	if h > 440 {
		h = 440
	}
	return w, h
}

// lineChartSize sizes the 1D composite chart.
func lineChartSize(state *uiState) (int, int) {
	if state == nil || state.window == nil || state.window.Canvas() == nil {
		return 760, 480
	}
	sz := state.window.Canvas().Size()
	w := int(sz.Width*0.8) - 420
	if w < 640 {
		w = 640
	}
	h := int(float32(w) * 0.62)
	if h < 360 {
		h = 360
	}
	if h > 560 {
		h = 560
	}
	return w, h
}

// prefs
func savePrefs(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	prefs.SetString("lastDir2D", state.dir2d)
	prefs.SetString("lastDir1D", state.dir1d)
	prefs.SetBool("darkMode", state.darkMode)
}

func loadPrefs(state *uiState) {
	prefs := state.app.Preferences()
	state.dir2d = prefs.StringWithFallback("lastDir2D", "")
	state.dir1d = prefs.StringWithFallback("lastDir1D", "")
}

func truncatePath(p string, n int) string {
	if len(p) <= n {
		return p
	}
	base := filepath.Base(p)
	if len(base)+4 >= n {
		return "..." + base
	}
	dir := filepath.Dir(p)
	left := n - len(base) - 4
	if len(dir) > left {
		dir = dir[:left]
	}
	return dir + "/..." + base
}
