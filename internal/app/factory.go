// Package app wires configuration, logging, styling, storage, the
// registries and the dispatcher into a ready-to-run application.
package app

import (
	"fmt"

	"github.com/vane-tools/vanectl/internal/actions"
	"github.com/vane-tools/vanectl/internal/command"
	"github.com/vane-tools/vanectl/internal/config"
	"github.com/vane-tools/vanectl/internal/dispatchers"
	"github.com/vane-tools/vanectl/internal/domain"
	"github.com/vane-tools/vanectl/internal/log"
	"github.com/vane-tools/vanectl/internal/paths"
	"github.com/vane-tools/vanectl/internal/registry"
	"github.com/vane-tools/vanectl/internal/store"
	"github.com/vane-tools/vanectl/internal/ui"
	"github.com/vane-tools/vanectl/internal/ui/style"
	"github.com/vane-tools/vanectl/internal/world"
)

// Version is set at build time with -ldflags "-X ...app.Version=v1.2.3".
var Version = "dev"

// Options configures the application factory.
type Options struct {
	// DBPath overrides the db_path setting.
	DBPath string

	// Log options
	LogEnabled bool
	LogPath    string
	LogLevel   log.Level

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string

	// Dispatch options
	Policy       command.Policy
	HideCommands bool
	ShowUsage    bool
}

// DefaultOptions reads the options from the configuration file. Invalid
// values fall back to their defaults.
func DefaultOptions() Options {
	styleConfig, _ := config.GetAll()
	dbPath, _ := config.Get("db_path")
	policyName, _ := config.Get("diagnostic_policy")
	levelName, _ := config.Get("log_level")

	policy, err := command.ParsePolicy(policyName)
	if err != nil {
		log.Warn("config: %v", err)
	}

	return Options{
		DBPath:       dbPath,
		LogEnabled:   config.GetBool("enable_log", true),
		LogPath:      paths.LogFilePath(),
		LogLevel:     log.ParseLevel(levelName),
		StyleEnabled: true,
		StyleConfig:  styleConfig,
		Policy:       policy,
		HideCommands: config.GetBool("hide_commands", false),
		ShowUsage:    config.GetBool("show_usage", true),
	}
}

// App holds the wired components.
type App struct {
	Config     domain.ConfigProvider
	Logger     domain.Logger
	Store      *store.Store
	Modules    *registry.Modules
	Actors     *registry.Actors
	World      *world.World
	Dispatcher *dispatchers.Dispatcher
	Styler     domain.Styler

	// Output collects what commands print until the host moves it to the
	// screen.
	Output *ui.Buffer
}

// New creates an App with all dependencies wired up.
func New(opts Options) (*App, error) {
	logger := domain.Logger(log.NopLogger{})
	if opts.LogEnabled {
		// Logging is best effort; without a log file the NopLogger stays.
		if err := log.Init(opts.LogPath, opts.LogLevel); err == nil {
			logger = log.Component("vanectl")
		}
	}

	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = paths.DBFilePath()
	}
	s, err := store.New(dbPath)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}
	logger.Info("app: opened %s", dbPath)

	style.Init(opts.StyleEnabled, opts.StyleConfig)

	return wire(opts, s, config.NewProvider(), logger)
}

// NewWithStore wires an App around an existing store and configuration,
// without touching the log file or the terminal styling.
func NewWithStore(opts Options, s *store.Store, cfg domain.ConfigProvider) (*App, error) {
	return wire(opts, s, cfg, log.NopLogger{})
}

func wire(opts Options, s *store.Store, cfg domain.ConfigProvider, logger domain.Logger) (*App, error) {
	styler := domain.Styler(style.NopStyler{})
	if opts.StyleEnabled && style.Enabled() {
		styler = style.NewStyler()
	}

	a := &App{
		Config:  cfg,
		Logger:  logger,
		Store:   s,
		Modules: registry.NewModules(),
		Actors:  registry.NewActors(s, componentLogger(logger, "actors")),
		World:   world.New(),
		Styler:  styler,
		Output:  &ui.Buffer{},
	}

	a.Dispatcher = dispatchers.New(
		dispatchers.WithPermissions(dispatchers.StorePermissions{Store: s, Logger: componentLogger(logger, "permissions")}),
		dispatchers.WithRecorder(s),
		dispatchers.WithLogger(componentLogger(logger, "dispatch")),
		dispatchers.WithStyler(styler),
		dispatchers.WithPolicy(opts.Policy),
		dispatchers.WithHideCommands(opts.HideCommands),
		dispatchers.WithShowUsage(opts.ShowUsage),
	)

	err := actions.Register(actions.Deps{
		Out:        a.Output,
		Styler:     styler,
		Dispatcher: a.Dispatcher,
		Modules:    a.Modules,
		Actors:     a.Actors,
		Store:      s,
		History:    s,
		Config:     cfg,
		World:      a.World,
		Logger:     componentLogger(logger, "actions"),
		ApplyTheme: func(values map[string]string) {
			style.Init(style.Enabled(), values)
		},
		Version: func() string { return Version },
	})
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	return a, nil
}

// componentLogger tags lines from the file logger; other loggers are
// returned as they are.
func componentLogger(l domain.Logger, component string) domain.Logger {
	if fl, ok := l.(*log.Logger); ok {
		return fl.With(component)
	}
	return l
}

// Sender resolves the --as flag: the console when name is empty,
// otherwise the named actor, which must have connected before.
func (a *App) Sender(name string) (domain.Sender, error) {
	if name == "" {
		return domain.Console{}, nil
	}
	actor, ok := a.Actors.Known(name)
	if !ok {
		return nil, fmt.Errorf("unknown actor %q: connect it first", name)
	}
	return actor, nil
}

// Close releases the store and the log file.
func (a *App) Close() error {
	var first error
	if a.Store != nil {
		first = a.Store.Close()
	}
	if a.Logger != nil {
		if err := a.Logger.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
