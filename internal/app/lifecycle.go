package app

import (
	"fyne.io/fyne/v2"

	"number-converter/internal/shutdown"
)

// registerShutdown orders teardown: quit the UI first, then log the controller summary
func (a *Application) registerShutdown() {
	a.shutdown.Register("controller", a.controller)
	a.shutdown.Register("ui", shutdown.Func(func() {
		if a.running.Load() {
			fyne.Do(a.fyneApp.Quit)
		}
	}))

	a.window.SetOnClosed(func() {
		a.logger.Info(component, "window closed", nil)
		go a.shutdown.Shutdown()
	})
}

// Shutdown tears the application down once; safe to call repeatedly
func (a *Application) Shutdown() {
	a.shutdown.Shutdown()
}

// Done is closed once shutdown has started
func (a *Application) Done() <-chan struct{} {
	return a.shutdown.Done()
}
