package app

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"number-converter/internal/config"
	"number-converter/internal/controllers"
	"number-converter/internal/converter"
	"number-converter/internal/logger"
	"number-converter/internal/models"
	"number-converter/internal/shutdown"
	"number-converter/internal/views"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

const (
	AppName    = "Number Converter"
	AppID      = "com.numberconverter.desktop"
	AppVersion = "1.0.0"
)

const component = "Application"

// Application owns the window and the MVC components behind it
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	config  config.Config

	controller *controllers.MainController
	view       *views.MainView
	state      *models.ConversionState
	service    *converter.Service

	shutdown *shutdown.Manager
	running  atomic.Bool
}

// NewApplication creates the Fyne application and wires every component
func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	return NewApplicationWithDriver(fyneapp.NewWithID(AppID), cfg, log)
}

// NewApplicationWithDriver wires the components onto an existing Fyne app
func NewApplicationWithDriver(fyneApp fyne.App, cfg config.Config, log logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	formatter, err := converter.NewFormatterForLocale(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrConfig, err)
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.SetFixedSize(true)
	window.CenterOnScreen()

	service := converter.NewService(formatter, log)
	state := models.NewConversionState(cfg.Mode())
	controller := controllers.NewMainController(service, state, log)
	view := views.NewMainView(window)
	controller.SetMainView(view)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		config:     cfg,
		controller: controller,
		view:       view,
		state:      state,
		service:    service,
		shutdown:   shutdown.NewManager(log),
	}
	application.registerShutdown()

	log.Info(component, "application initialized", map[string]interface{}{
		"version":      AppVersion,
		"mode":         state.Mode().String(),
		"locale":       formatter.Locale().String(),
		"window_size":  fmt.Sprintf("%.0fx%.0f", cfg.Window.Width, cfg.Window.Height),
		"go_version":   runtime.Version(),
		"fyne_version": "v2.6.1",
	})

	return application, nil
}

// Run shows the window and blocks until the application quits or ctx is cancelled
func (a *Application) Run(ctx context.Context) error {
	stop := a.shutdown.Listen(ctx)
	defer stop()

	a.logger.Info(component, "starting UI", nil)
	a.view.Show()
	a.running.Store(true)
	a.fyneApp.Run()
	a.running.Store(false)

	a.shutdown.Shutdown()
	return nil
}

// Controller exposes the controller for callers that drive the form programmatically
func (a *Application) Controller() *controllers.MainController {
	return a.controller
}

// Window returns the main window
func (a *Application) Window() fyne.Window {
	return a.window
}
