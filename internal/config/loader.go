package config

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// FileSystem is an abstraction for file system operations.
// This allows for easy testing with in-memory file systems.
type FileSystem interface {
	fs.FS
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// Open implements fs.FS.
func (OSFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Load reads configuration from the given path, layering the file's values
// over the defaults and environment variables over both. A nonexistent
// file yields the defaults.
func Load(path string) (Config, error) {
	return LoadWithFS(OSFS{}, path)
}

// LoadWithFS is Load with a custom file system.
func LoadWithFS(fsys FileSystem, path string) (Config, error) {
	cfg := Default()

	data, err := fsys.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		}
	} else if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	applyEnv(&cfg)

	// Fail now rather than at decoration time.
	if _, err := cfg.StyleConfig(); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// applyEnv overlays DRAWERTIDY_* environment variables onto the config.
func applyEnv(cfg *Config) {
	if v := os.Getenv("DRAWERTIDY_TOP_STYLE"); v != "" {
		cfg.Styles.Top = v
	}
	if v := os.Getenv("DRAWERTIDY_GENERAL_STYLE"); v != "" {
		cfg.Styles.General = v
	}
	if v := os.Getenv("DRAWERTIDY_INLINE_SYMBOL"); v != "" {
		cfg.Styles.InlineSymbol = v
	}
	if v := os.Getenv("DRAWERTIDY_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
