// Package config loads the board settings from config.yaml.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"ShapeBoard/internal/state"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	keyBackend      = "storage.backend"
	keyStoragePath  = "storage.path"
	keyStorageKey   = "storage.key"
	keyExportDir    = "export.dir"
	keyWindowWidth  = "window.width"
	keyWindowHeight = "window.height"
	keyLogDebug     = "log.debug"
)

// Storage backends.
const (
	BackendPreferences = "preferences"
	BackendSQLite      = "sqlite"
	BackendMemory      = "memory"
)

type Config struct {
	Backend      string
	StoragePath  string
	StorageKey   string
	ExportDir    string
	WindowWidth  float32
	WindowHeight float32
	Debug        bool
}

// Default returns the settings used when config.yaml is absent.
func Default(dir string) Config {
	return Config{
		Backend:      BackendPreferences,
		StoragePath:  filepath.Join(dir, "shapes.db"),
		StorageKey:   state.DefaultStorageKey,
		ExportDir:    filepath.Join(dir, "exports"),
		WindowWidth:  640,
		WindowHeight: 480,
	}
}

// Load reads config.yaml from dir. A missing file is not an error; unset
// keys take their value from Default.
func Load(dir string) (Config, error) {
	def := Default(dir)
	v := viper.New()
	v.SetDefault(keyBackend, def.Backend)
	v.SetDefault(keyStoragePath, def.StoragePath)
	v.SetDefault(keyStorageKey, def.StorageKey)
	v.SetDefault(keyExportDir, def.ExportDir)
	v.SetDefault(keyWindowWidth, def.WindowWidth)
	v.SetDefault(keyWindowHeight, def.WindowHeight)
	v.SetDefault(keyLogDebug, def.Debug)

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Backend:      v.GetString(keyBackend),
		StoragePath:  v.GetString(keyStoragePath),
		StorageKey:   v.GetString(keyStorageKey),
		ExportDir:    v.GetString(keyExportDir),
		WindowWidth:  float32(v.GetFloat64(keyWindowWidth)),
		WindowHeight: float32(v.GetFloat64(keyWindowHeight)),
		Debug:        v.GetBool(keyLogDebug),
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Backend {
	case BackendPreferences, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Backend)
	}
	if c.StorageKey == "" {
		return errors.New("storage key must not be empty")
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size %vx%v must be positive", c.WindowWidth, c.WindowHeight)
	}
	return nil
}
