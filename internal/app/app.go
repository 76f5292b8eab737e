package app

import (
	"fmt"
	"os"

	"nixclean/internal/clean"
	"nixclean/internal/config"
	"nixclean/internal/fs"
	"nixclean/internal/run"
	"nixclean/internal/sys"
)

// App is the application layer between the CLI and the cleanup service.
// It constructs all collaborators from config and manages the log file
// lifecycle on Close.
type App struct {
	cfg     *config.Config
	service *clean.Service
	logger  clean.Logger
	logFile *os.File
}

// New creates a fully wired App. The caller must call Close when done.
func New(verbose bool) (*App, error) {
	defaults, err := GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"], config.NewConfig(defaults["log_dir"]))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	runID := clean.UUIDGenerator{}.New()
	slogger, logFile, err := newLogger(cfg.LogDir, runID, verbose)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	logger := &slogAdapter{l: slogger}

	layout := clean.Layout{
		ProfilesDir:         cfg.Paths.ProfilesDir,
		PerUserDir:          cfg.Paths.PerUserDir,
		StateProfilesSubdir: cfg.Paths.StateProfilesSubdir,
		GcRootsDir:          cfg.Paths.GcRootsDir,
		GcRootPatterns:      cfg.GcRoots.Patterns,
	}

	service := clean.NewService(
		fs.NewOSFilesystem(),
		sys.NewOSSystem(),
		run.NewExecRunner(logger),
		NewTerminalPrompter(),
		clean.RealClock{},
		logger,
		layout,
		os.Stdout,
	)

	return &App{
		cfg:     cfg,
		service: service,
		logger:  logger,
		logFile: logFile,
	}, nil
}

// Config returns the loaded configuration (defaults merged with the file).
func (a *App) Config() *config.Config {
	return a.cfg
}

// Clean runs one full cleanup in the given mode.
func (a *App) Clean(mode clean.Mode, opts clean.Options) error {
	a.logger.Debug("starting cleanup",
		"mode", mode.Kind.String(),
		"keep", opts.Policy.Keep,
		"keep_since", opts.Policy.KeepSince.String(),
		"dry", opts.Dry,
	)
	return a.service.Run(mode, opts)
}

// Close releases the log file.
func (a *App) Close() error {
	if a.logFile != nil {
		return a.logFile.Close()
	}
	return nil
}
