package main

import (
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"ShapeBoard/internal/config"
	"ShapeBoard/internal/logging"
	"ShapeBoard/internal/state"
	"ShapeBoard/internal/storage"
	"ShapeBoard/internal/ui"
)

const (
	AppID    = "io.shapeboard.app"
	AppTitle = "Shape Board"
)

func main() {
	dir := configDir()
	cfg, cfgErr := config.Load(dir)
	if cfgErr != nil {
		cfg = config.Default(dir)
	}

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		log.Printf("Falling back to no logging: %v", err)
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()
	if cfgErr != nil {
		logger.Warn("Config unusable, using defaults", zap.String("dir", dir), zap.Error(cfgErr))
	}

	a := app.NewWithID(AppID)
	slot, closeSlot := openStorage(cfg, a, logger.Named("storage"))
	defer closeSlot()

	store := state.NewStore(slot,
		state.WithLogger(logger.Named("store")),
		state.WithStorageKey(cfg.StorageKey),
	)

	logger.Info("Starting", zap.String("backend", cfg.Backend), zap.Int("shapes", len(store.State().Shapes)))
	ui.RunApp(a, store, ui.Options{
		Title:     AppTitle,
		Width:     cfg.WindowWidth,
		Height:    cfg.WindowHeight,
		ExportDir: cfg.ExportDir,
	}, logger.Named("ui"))
}

func configDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "shapeboard")
}

// openStorage picks the configured slot. A SQLite file that cannot be opened
// falls back to the app preferences.
func openStorage(cfg config.Config, a fyne.App, logger *zap.Logger) (state.Storage, func()) {
	switch cfg.Backend {
	case config.BackendSQLite:
		db, err := storage.OpenSQLite(cfg.StoragePath)
		if err == nil {
			return db, func() {
				if err := db.Close(); err != nil {
					logger.Warn("Closing storage failed", zap.Error(err))
				}
			}
		}
		logger.Warn("SQLite storage unavailable, using preferences", zap.String("path", cfg.StoragePath), zap.Error(err))
	case config.BackendMemory:
		return storage.NewMemory(), func() {}
	}
	return storage.NewPreferences(a.Preferences()), func() {}
}
