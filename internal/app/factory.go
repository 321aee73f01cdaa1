package app

import (
	"context"
	"strings"
	"sync"

	"github.com/amicly/appearance/internal/config"
	"github.com/amicly/appearance/internal/domain"
	"github.com/amicly/appearance/internal/log"
	"github.com/amicly/appearance/internal/paths"
	"github.com/amicly/appearance/internal/scale"
	"github.com/amicly/appearance/internal/state"
	"github.com/amicly/appearance/internal/store"
	"github.com/amicly/appearance/internal/typography"
	"github.com/amicly/appearance/internal/ui"
	"github.com/amicly/appearance/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	// Storage selects the preference gateway: sqlite, file or memory.
	Storage string
	DBPath  string

	LogEnabled bool
	LogLevel   string

	StyleEnabled bool

	// Config supplies viewport_width and viewport_height.
	Config map[string]string
}

// DefaultOptions builds options from the merged configuration.
func DefaultOptions() Options {
	cfg, _ := config.GetAll()

	return Options{
		Storage:      cfg["storage"],
		DBPath:       cfg["db_path"],
		LogEnabled:   cfg["enable_log"] == "true",
		LogLevel:     cfg["log_level"],
		StyleEnabled: true,
		Config:       cfg,
	}
}

// Application holds the wired components used by the actions.
type Application struct {
	Themes     *state.Store
	Gateway    domain.PreferenceStore
	Scaler     scale.Scaler
	Typography *typography.Resolver
	Logger     domain.Logger
	Output     domain.OutputWriter

	// Startup is the outcome of the rehydrate run by New.
	Startup state.Result

	unsubscribe func()
	done        chan struct{}
	closeOnce   sync.Once
}

// New creates an Application with all dependencies wired up and the stored
// theme rehydrated. Storage problems never fail New: an unusable database
// falls back to in-memory storage and is logged.
func New(ctx context.Context, opts Options) *Application {
	logger := newLogger(opts)

	scaler := scale.New(scale.CaptureViewport(opts.Config))
	gateway := openGateway(opts, logger)
	themes := state.New(gateway, state.WithLogger(logger))

	a := &Application{
		Themes:     themes,
		Gateway:    gateway,
		Scaler:     scaler,
		Typography: typography.NewResolver(scaler),
		Logger:     logger,
		Output:     ui.NewWriter(),
		done:       make(chan struct{}),
	}

	a.Startup = themes.Rehydrate(ctx)
	style.Init(opts.StyleEnabled, a.Startup.State.Palette)

	updates, unsubscribe := themes.Subscribe()
	a.unsubscribe = unsubscribe
	go func() {
		defer close(a.done)
		for st := range updates {
			style.SetPalette(st.Palette)
		}
	}()

	return a
}

func newLogger(opts Options) domain.Logger {
	if !opts.LogEnabled {
		return log.NopLogger{}
	}

	l, err := log.New(paths.LogFilePath(), log.ParseLevel(opts.LogLevel))
	if err != nil {
		return log.NopLogger{}
	}

	log.SetDefault(l)
	return l
}

func openGateway(opts Options, logger domain.Logger) domain.PreferenceStore {
	switch strings.ToLower(strings.TrimSpace(opts.Storage)) {
	case domain.StorageMemory:
		return store.NewMemory()
	case domain.StorageFile:
		return config.NewGateway()
	}

	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = paths.DBFilePath()
	}

	s, err := store.New(dbPath)
	if err != nil {
		logger.Warn("app: could not open %s, theme choices will not be saved: %v", dbPath, err)
		return store.NewMemory()
	}
	return s
}

// Close stops the style updates and releases the gateway and logger.
func (a *Application) Close() error {
	a.closeOnce.Do(func() {
		if a.unsubscribe != nil {
			a.unsubscribe()
			<-a.done
		}
		if a.Gateway != nil {
			_ = a.Gateway.Close()
		}
		if a.Logger != nil {
			_ = a.Logger.Close()
		}
		log.SetDefault(nil)
	})
	return nil
}
