package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"number-converter/internal/converter"
	"number-converter/internal/logger"
	"number-converter/internal/models"
)

type dialog struct {
	title   string
	message string
}

type fakeView struct {
	modeHandler    func(string)
	inputHandler   func(string)
	convertHandler func()

	mode     converter.Mode
	input    string
	selected bool
	result   string
	dialogs  []dialog
}

func (f *fakeView) SetModeChangeHandler(handler func(string))  { f.modeHandler = handler }
func (f *fakeView) SetInputChangeHandler(handler func(string)) { f.inputHandler = handler }
func (f *fakeView) SetConvertHandler(handler func())           { f.convertHandler = handler }
func (f *fakeView) SetMode(mode converter.Mode)                { f.mode = mode }
func (f *fakeView) ClearInput()                                { f.input = "" }
func (f *fakeView) SelectInput()                               { f.selected = true }
func (f *fakeView) SetResult(text string)                      { f.result = text }
func (f *fakeView) ShowError(title, message string) {
	f.dialogs = append(f.dialogs, dialog{title, message})
}

func (f *fakeView) typeText(text string) {
	f.input = text
	f.inputHandler(text)
}

func newController(t *testing.T, mode converter.Mode) (*MainController, *fakeView) {
	t.Helper()
	service := converter.NewService(converter.NewFormatter(language.English), logger.NoOpLogger{})
	mc := NewMainController(service, models.NewConversionState(mode), nil)
	view := &fakeView{}
	mc.SetMainView(view)

	require.NotNil(t, view.modeHandler)
	require.NotNil(t, view.inputHandler)
	require.NotNil(t, view.convertHandler)
	return mc, view
}

func TestSetMainViewShowsInitialMode(t *testing.T) {
	_, view := newController(t, converter.HexToDecimal)
	assert.Equal(t, converter.HexToDecimal, view.mode)
}

func TestConvertShowsResult(t *testing.T) {
	mc, view := newController(t, converter.HexToDecimal)

	view.typeText("1A")
	view.convertHandler()

	assert.Equal(t, "Hex: 1A > Decimal: 26.", view.result)
	assert.True(t, view.selected)
	assert.Empty(t, view.dialogs)

	state := mc.GetApplicationState()
	assert.Equal(t, 1, state.Conversions)
	assert.Equal(t, "Hex: 1A > Decimal: 26.", state.LastDisplay)
}

func TestConvertShowsErrorDialog(t *testing.T) {
	tests := []struct {
		mode    converter.Mode
		input   string
		message string
	}{
		{converter.DecimalToBinary, "", "Enter a valid number."},
		{converter.DecimalToBinary, "2147483648", "That number is too big! (Max = 2,147,483,647)"},
		{converter.BinaryToDecimal, "102", "That is not a binary number!"},
		{converter.HexToDecimal, "123456789", "That number is too big! (Max = 7FFFFFFF)"},
		{converter.DecimalToHex, "12a", "That is not a number!"},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String()+"/"+tt.input, func(t *testing.T) {
			mc, view := newController(t, tt.mode)
			view.typeText(tt.input)
			view.convertHandler()

			require.Len(t, view.dialogs, 1)
			assert.Equal(t, "Invalid number", view.dialogs[0].title)
			assert.Equal(t, tt.message, view.dialogs[0].message)
			assert.Empty(t, view.result)
			assert.Zero(t, mc.GetApplicationState().Conversions)
		})
	}
}

func TestChangeModeClearsInput(t *testing.T) {
	mc, view := newController(t, converter.DecimalToBinary)
	view.typeText("101")

	view.modeHandler("Binary to Decimal")

	assert.Empty(t, view.input)
	state := mc.GetApplicationState()
	assert.Equal(t, converter.BinaryToDecimal, state.Mode)
	assert.Empty(t, state.Input)
}

func TestChangeModeUnknownNameKeepsMode(t *testing.T) {
	mc, view := newController(t, converter.DecimalToHex)
	view.typeText("15")

	view.modeHandler("Octal to Decimal")

	state := mc.GetApplicationState()
	assert.Equal(t, converter.DecimalToHex, state.Mode)
	assert.Equal(t, "15", state.Input)
}

func TestModeIsReadPerRequest(t *testing.T) {
	_, view := newController(t, converter.DecimalToBinary)

	view.typeText("255")
	view.convertHandler()
	assert.Equal(t, "Decimal: 255 > Binary: 11111111.", view.result)

	view.modeHandler("Decimal to Hex")
	view.typeText("255")
	view.convertHandler()
	assert.Equal(t, "Decimal: 255 > Hex: FF.", view.result)
}

func TestControllerWithoutView(t *testing.T) {
	service := converter.NewService(converter.NewFormatter(language.English), nil)
	mc := NewMainController(service, models.NewConversionState(converter.BinaryToDecimal), nil)

	mc.UpdateInput("11")
	mc.Convert()
	mc.ChangeMode("hex2dec")
	mc.Shutdown()

	state := mc.GetApplicationState()
	assert.Equal(t, 1, state.Conversions)
	assert.Equal(t, converter.HexToDecimal, state.Mode)
}
