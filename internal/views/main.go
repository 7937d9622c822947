package views

import (
	"number-converter/internal/converter"
	"number-converter/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// MainView is the converter form: mode selector, input, convert button and result line
type MainView struct {
	// UI Components
	window        fyne.Window
	mainContainer *fyne.Container
	modeSelect    *widget.Select
	input         *components.NumberEntry
	convertButton *widget.Button
	resultBar     *components.ResultBar

	// Event handlers - connected to controller
	modeChangeHandler  func(string)
	inputChangeHandler func(string)
	convertHandler     func()
}

// NewMainView creates the form and sets it as the window content
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

// initializeComponents creates all UI components
func (mv *MainView) initializeComponents() {
	mv.modeSelect = widget.NewSelect(converter.ModeNames(), nil)
	mv.modeSelect.SetSelected(converter.DecimalToBinary.String())

	mv.input = components.NewNumberEntry(converter.DecimalToBinary)

	mv.convertButton = widget.NewButton("Convert", nil)
	mv.convertButton.Importance = widget.HighImportance

	mv.resultBar = components.NewResultBar()
}

// buildLayout constructs the main layout
func (mv *MainView) buildLayout() {
	inputRow := container.NewBorder(
		nil,              // top
		nil,              // bottom
		mv.modeSelect,    // left
		mv.convertButton, // right
		mv.input,         // center
	)

	mv.mainContainer = container.NewVBox(
		inputRow,
		mv.resultBar.GetContainer(),
	)

	mv.window.SetContent(mv.mainContainer)
}

// setupEventHandlers connects internal component events
func (mv *MainView) setupEventHandlers() {
	mv.modeSelect.OnChanged = func(name string) {
		if mv.modeChangeHandler != nil {
			mv.modeChangeHandler(name)
		}
	}

	mv.input.OnChanged = func(text string) {
		if mv.inputChangeHandler != nil {
			mv.inputChangeHandler(text)
		}
	}

	mv.input.OnSubmitted = func(string) {
		mv.triggerConvert()
	}

	mv.convertButton.OnTapped = mv.triggerConvert
}

func (mv *MainView) triggerConvert() {
	if mv.convertHandler != nil {
		mv.convertHandler()
	}
}

// Event handler setters - called by controller

// SetModeChangeHandler sets the handler for mode selection
func (mv *MainView) SetModeChangeHandler(handler func(string)) {
	mv.modeChangeHandler = handler
}

// SetInputChangeHandler sets the handler for edits to the input field
func (mv *MainView) SetInputChangeHandler(handler func(string)) {
	mv.inputChangeHandler = handler
}

// SetConvertHandler sets the handler for the convert button and Enter key
func (mv *MainView) SetConvertHandler(handler func()) {
	mv.convertHandler = handler
}

// UI update methods - called by controller

// SetMode selects mode in the selector and refilters the input
func (mv *MainView) SetMode(mode converter.Mode) {
	if mv.input.Mode() != mode {
		mv.input.SetMode(mode)
	}
	mv.modeSelect.SetSelected(mode.String())
}

// ClearInput empties the input field and refilters it for the selected mode
func (mv *MainView) ClearInput() {
	if mode, err := converter.ParseMode(mv.modeSelect.Selected); err == nil && mode != mv.input.Mode() {
		mv.input.SetMode(mode)
		return
	}
	mv.input.SetText("")
}

// SelectInput selects the input text so the next number replaces it
func (mv *MainView) SelectInput() {
	mv.window.Canvas().Focus(mv.input)
	mv.input.SelectAll()
}

// SetResult updates the result line
func (mv *MainView) SetResult(text string) {
	mv.resultBar.SetResult(text)
}

// Result returns the result line
func (mv *MainView) Result() string {
	return mv.resultBar.GetResult()
}

// ShowError displays a modal error message
func (mv *MainView) ShowError(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// ShowConfirm displays a confirmation dialog
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, mv.window)
}

// Show displays the main window
func (mv *MainView) Show() {
	mv.window.Show()
}

// GetContainer returns the main container
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}
