package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"number-converter/internal/converter"
)

// NumberEntry is a single-line entry that only accepts characters valid
// for the source base of its mode, up to the mode's input limit.
type NumberEntry struct {
	widget.Entry
	mode converter.Mode
}

// NewNumberEntry creates an entry filtered for mode
func NewNumberEntry(mode converter.Mode) *NumberEntry {
	entry := &NumberEntry{mode: mode}
	entry.ExtendBaseWidget(entry)
	entry.SetPlaceHolder(placeholderFor(mode))
	return entry
}

// SetMode switches the filter and clears the text
func (e *NumberEntry) SetMode(mode converter.Mode) {
	e.mode = mode
	e.SetPlaceHolder(placeholderFor(mode))
	e.SetText("")
}

// Mode returns the mode the entry filters for
func (e *NumberEntry) Mode() converter.Mode {
	return e.mode
}

// TypedRune drops characters the mode does not accept
func (e *NumberEntry) TypedRune(r rune) {
	selected := e.SelectedText()
	pos := e.CursorColumn
	if selected != "" && selected == e.Text {
		pos = 0
	}

	if selected == "" && len([]rune(e.Text)) >= e.mode.InputLimit() {
		return
	}
	if !e.mode.AcceptsRune(r, pos) {
		return
	}
	e.Entry.TypedRune(r)
}

// TypedKey clears the entry on Escape
func (e *NumberEntry) TypedKey(key *fyne.KeyEvent) {
	if key.Name == fyne.KeyEscape {
		e.SetText("")
		return
	}
	e.Entry.TypedKey(key)
}

// TypedShortcut runs pasted text through the same filter as typing
func (e *NumberEntry) TypedShortcut(shortcut fyne.Shortcut) {
	if paste, ok := shortcut.(*fyne.ShortcutPaste); ok {
		if paste.Clipboard == nil {
			return
		}
		for _, r := range paste.Clipboard.Content() {
			e.TypedRune(r)
		}
		return
	}
	e.Entry.TypedShortcut(shortcut)
}

// SelectAll selects the whole text so the next keystroke replaces it
func (e *NumberEntry) SelectAll() {
	e.Entry.TypedShortcut(&fyne.ShortcutSelectAll{})
}

func placeholderFor(mode converter.Mode) string {
	switch mode.Source() {
	case converter.Binary:
		return "e.g. 101101"
	case converter.Hex:
		return "e.g. FA0F34"
	default:
		return "e.g. 1234"
	}
}
