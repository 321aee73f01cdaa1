package app

import (
	"context"
	"sync"
)

// Version is set at build time with -ldflags "-X ...app.Version=v1.2.3".
var Version = "dev"

var (
	defaultMu   sync.Mutex
	defaultApp  *Application
	optionHooks []func(*Options)
)

// Configure registers a change to the options used by Default. It has no
// effect once Default has built the application.
func Configure(fn func(*Options)) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	optionHooks = append(optionHooks, fn)
}

// Default returns the process-wide application, building it on first use.
// Commands that never touch the theme (help, version) never open storage.
func Default() *Application {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultApp == nil {
		opts := DefaultOptions()
		for _, fn := range optionHooks {
			fn(&opts)
		}
		defaultApp = New(context.Background(), opts)
	}
	return defaultApp
}

// CloseDefault closes the application built by Default, if any.
func CloseDefault() error {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultApp == nil {
		return nil
	}
	err := defaultApp.Close()
	defaultApp = nil
	optionHooks = nil
	return err
}
