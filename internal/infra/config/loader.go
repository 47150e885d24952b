// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/okikae/mdtask/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	mdtaskDir     string // Path to the project's .mdtask directory
	globalConfDir string // Path to the global config directory
}

// NewLoader creates a new Loader.
func NewLoader(mdtaskDir string) *Loader {
	return &Loader{
		mdtaskDir:     mdtaskDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a Loader with a custom global config
// directory. This is useful for testing.
func NewLoaderWithGlobalDir(mdtaskDir, globalConfDir string) *Loader {
	return &Loader{
		mdtaskDir:     mdtaskDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration.
// Precedence: defaults < global < repo.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	if l.globalConfDir != "" {
		global, err := l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if global != nil {
			base = mergeConfigs(base, global)
		}
	}

	repo, err := l.loadFile(filepath.Join(l.mdtaskDir, domain.ConfigFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if repo != nil {
		base = mergeConfigs(base, repo)
	}

	return base, nil
}

// loadFile reads and decodes a single TOML config file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is derived from well-known locations
	if err != nil {
		return nil, err
	}
	var cfg domain.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// mergeConfigs overlays non-zero fields of over onto base.
func mergeConfigs(base, over *domain.Config) *domain.Config {
	merged := *base
	if over.File != "" {
		merged.File = over.File
	}
	if over.Test.Command != "" {
		merged.Test.Command = over.Test.Command
	}
	if len(over.Cleanup.Patterns) > 0 {
		merged.Cleanup.Patterns = over.Cleanup.Patterns
	}
	if over.Commit.Type != "" {
		merged.Commit.Type = over.Commit.Type
	}
	if over.Commit.Template != "" {
		merged.Commit.Template = over.Commit.Template
	}
	if over.Commit.AskTicket {
		merged.Commit.AskTicket = true
	}
	if over.Log.Level != "" {
		merged.Log.Level = over.Log.Level
	}
	return &merged
}
