package views

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"number-converter/internal/converter"
	"number-converter/internal/views/components"
)

func newTestView(t *testing.T) *MainView {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	window := app.NewWindow("Number Converter")
	return NewMainView(window)
}

func TestMainViewInitialState(t *testing.T) {
	view := newTestView(t)

	assert.Equal(t, "Decimal to Binary", view.modeSelect.Selected)
	assert.Equal(t, converter.ModeNames(), view.modeSelect.Options)
	assert.Equal(t, components.DefaultResultText, view.Result())
	assert.Equal(t, "Convert", view.convertButton.Text)
	require.NotNil(t, view.GetContainer())
}

func TestMainViewConvertTriggers(t *testing.T) {
	view := newTestView(t)

	calls := 0
	view.SetConvertHandler(func() { calls++ })

	test.Tap(view.convertButton)
	assert.Equal(t, 1, calls)

	view.input.OnSubmitted(view.input.Text)
	assert.Equal(t, 2, calls)
}

func TestMainViewForwardsInput(t *testing.T) {
	view := newTestView(t)

	var got string
	view.SetInputChangeHandler(func(text string) { got = text })

	test.Type(view.input, "12x")
	assert.Equal(t, "12", got)
}

func TestMainViewModeChange(t *testing.T) {
	view := newTestView(t)

	var selected []string
	view.SetModeChangeHandler(func(name string) {
		selected = append(selected, name)
		view.ClearInput()
	})

	test.Type(view.input, "42")
	view.modeSelect.SetSelected("Hex to Decimal")

	assert.Equal(t, []string{"Hex to Decimal"}, selected)
	assert.Empty(t, view.input.Text)
	assert.Equal(t, converter.HexToDecimal, view.input.Mode())

	test.Type(view.input, "fz")
	assert.Equal(t, "f", view.input.Text)
}

func TestMainViewSetMode(t *testing.T) {
	view := newTestView(t)

	view.SetMode(converter.BinaryToDecimal)

	assert.Equal(t, "Binary to Decimal", view.modeSelect.Selected)
	assert.Equal(t, converter.BinaryToDecimal, view.input.Mode())
}

func TestMainViewSetResult(t *testing.T) {
	view := newTestView(t)

	view.SetResult("Hex: 1A > Decimal: 26.")
	assert.Equal(t, "Hex: 1A > Decimal: 26.", view.Result())
}

func TestMainViewSelectInputReplacesOnTyping(t *testing.T) {
	view := newTestView(t)
	view.SetMode(converter.HexToDecimal)

	test.Type(view.input, "123456789")
	view.SelectInput()
	test.Type(view.input, "A")

	assert.Equal(t, "A", view.input.Text)
}
