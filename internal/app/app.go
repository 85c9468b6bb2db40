package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/recetas/internal/config"
	"github.com/five82/recetas/internal/logging"
	"github.com/five82/recetas/internal/prefs"
	"github.com/five82/recetas/internal/recipe"
	"github.com/five82/recetas/internal/ui"
)

// Options configure the recetas application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/recetas/prefs.toml
	Theme      string // overrides config and saved prefs
	Query      string // initial search text
	LogFile    string // overrides log_file from config
	Verbose    bool
}

// runUI is replaced in tests.
var runUI = ui.Run

// Run boots the recetas TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	uiOpts, logger, err := prepare(opts)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	uiOpts.Context = ctx
	logger.Info("starting",
		zap.String("theme", uiOpts.ThemeName),
		zap.Int("recipes", uiOpts.Store.Len()),
	)
	if err := runUI(uiOpts); err != nil {
		logger.Error("ui exited", zap.Error(err))
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("stopped")
	return nil
}

func prepare(opts Options) (ui.Options, *zap.Logger, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return ui.Options{}, nil, fmt.Errorf("load config: %w", err)
	}

	prefsFile, err := prefs.Open(opts.PrefsPath)
	if err != nil {
		return ui.Options{}, nil, err
	}
	saved := prefsFile.Load()

	logFile := cfg.LogFile
	if opts.LogFile != "" {
		logFile = opts.LogFile
	}
	logger, err := logging.New(logFile, opts.Verbose)
	if err != nil {
		return ui.Options{}, nil, fmt.Errorf("init logger: %w", err)
	}

	return ui.Options{
		Store:         recipe.Default(),
		Logger:        logger,
		Prefs:         prefsFile,
		ThemeName:     prefs.ResolveTheme(opts.Theme, cfg.Theme, saved),
		Placeholder:   cfg.Placeholder,
		InitialQuery:  opts.Query,
		ShowEmptyHint: cfg.ShowEmptyHint,
	}, logger, nil
}
