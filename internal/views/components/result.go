package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// DefaultResultText is shown before the first conversion
const DefaultResultText = "Enter a number to convert."

// ResultBar displays the outcome of the last conversion
type ResultBar struct {
	container   *fyne.Container
	resultLabel *widget.Label
}

// NewResultBar creates a new result bar component
func NewResultBar() *ResultBar {
	rb := &ResultBar{}
	rb.createComponents()
	rb.buildLayout()
	return rb
}

func (rb *ResultBar) createComponents() {
	rb.resultLabel = widget.NewLabel(DefaultResultText)
	rb.resultLabel.Alignment = fyne.TextAlignCenter
	rb.resultLabel.Truncation = fyne.TextTruncateEllipsis
}

func (rb *ResultBar) buildLayout() {
	rb.container = container.NewStack(rb.resultLabel)
}

// SetResult updates the displayed line
func (rb *ResultBar) SetResult(text string) {
	rb.resultLabel.SetText(text)
}

// GetResult returns the displayed line
func (rb *ResultBar) GetResult() string {
	return rb.resultLabel.Text
}

// Reset restores the initial prompt
func (rb *ResultBar) Reset() {
	rb.resultLabel.SetText(DefaultResultText)
}

// GetContainer returns the result bar container
func (rb *ResultBar) GetContainer() *fyne.Container {
	return rb.container
}
