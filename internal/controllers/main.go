package controllers

import (
	"sync"

	"number-converter/internal/converter"
	"number-converter/internal/logger"
	"number-converter/internal/models"
)

const component = "MainController"

// View is the form the controller drives
type View interface {
	SetModeChangeHandler(handler func(string))
	SetInputChangeHandler(handler func(string))
	SetConvertHandler(handler func())

	SetMode(mode converter.Mode)
	ClearInput()
	SelectInput()
	SetResult(text string)
	ShowError(title, message string)
}

// MainController connects the form to the conversion service
type MainController struct {
	service *converter.Service
	state   *models.ConversionState
	logger  logger.Logger

	mu       sync.RWMutex
	mainView View
}

// NewMainController creates a new main controller
func NewMainController(service *converter.Service, state *models.ConversionState, log logger.Logger) *MainController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &MainController{
		service: service,
		state:   state,
		logger:  log,
	}
}

// SetMainView associates the view with this controller and shows the current mode
func (mc *MainController) SetMainView(view View) {
	mc.mu.Lock()
	mc.mainView = view
	mc.mu.Unlock()

	view.SetModeChangeHandler(mc.ChangeMode)
	view.SetInputChangeHandler(mc.UpdateInput)
	view.SetConvertHandler(mc.Convert)
	view.SetMode(mc.state.Mode())
}

func (mc *MainController) view() View {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.mainView
}

// ChangeMode switches the conversion direction by display name and clears the input
func (mc *MainController) ChangeMode(name string) {
	mode, err := converter.ParseMode(name)
	if err != nil {
		mc.logger.Error(component, err, map[string]interface{}{"mode": name})
		return
	}

	if mc.state.SetMode(mode) {
		mc.logger.Debug(component, "mode changed", map[string]interface{}{"mode": mode.String()})
	}

	if v := mc.view(); v != nil {
		v.ClearInput()
	}
}

// UpdateInput mirrors the input field into the model
func (mc *MainController) UpdateInput(input string) {
	mc.state.SetInput(input)
}

// Convert runs the current request and shows the summary line or an error dialog
func (mc *MainController) Convert() {
	mode, input := mc.state.Request()
	v := mc.view()

	result, err := mc.service.Convert(mode, input)
	if err != nil {
		if v != nil {
			v.ShowError(converter.DialogTitle, converter.UserMessage(err))
		}
		return
	}

	mc.state.RecordResult(result)
	if v != nil {
		v.SetResult(result.Display)
		v.SelectInput()
	}
}

// ApplicationState is a snapshot used for diagnostics
type ApplicationState struct {
	Mode        converter.Mode
	Input       string
	LastDisplay string
	Conversions int
}

// GetApplicationState returns the current state of the form
func (mc *MainController) GetApplicationState() ApplicationState {
	mode, input := mc.state.Request()
	stats := mc.state.GetStats()

	state := ApplicationState{
		Mode:        mode,
		Input:       input,
		Conversions: stats.Conversions,
	}
	if last, ok := mc.state.LastResult(); ok {
		state.LastDisplay = last.Display
	}
	return state
}

// Shutdown logs a final summary
func (mc *MainController) Shutdown() {
	stats := mc.state.GetStats()
	mc.logger.Info(component, "controller shutdown", map[string]interface{}{
		"conversions": stats.Conversions,
		"mode":        stats.CurrentMode,
	})
}
