package main

import (
	"fyne.io/fyne/v2/widget"
)

// silentEntry is an Entry whose programmatic updates do not re-trigger the
// edit callback. The cut index fields are two-way bound: user edits drive
// the navigator, and the navigator rewrites the field text after every
// mutation. Without suppression each rewrite would re-enter the handler and
// cascade into further recomputes and spurious range warnings.
type silentEntry struct {
	widget.Entry
	suppress bool
	onEdit   func(text string)
}

func newSilentEntry(text string) *silentEntry {
	e := &silentEntry{}
	e.ExtendBaseWidget(e)
	e.Entry.OnChanged = func(s string) {
		if e.suppress || e.onEdit == nil {
			return
		}
		e.onEdit(s)
	}
	e.suppress = true
	e.SetText(text)
	e.suppress = false
	return e
}

// SetQuiet updates the displayed text without notifying the edit callback.
// The whole UI runs on one event thread, so a plain flag is enough.
func (e *silentEntry) SetQuiet(text string) {
	if e.Text == text {
		return
	}
	e.suppress = true
	e.SetText(text)
	e.suppress = false
}
