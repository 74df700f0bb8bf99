package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	apperrors "github.com/treykane/cli-studies/internal/errors"
	"github.com/treykane/cli-studies/internal/layout"
	"github.com/treykane/cli-studies/internal/logging"
)

const (
	configDirName  = ".cli-studies"
	configFileName = "config.yaml"
)

var ErrNotConfigured = errors.New("cli-studies is not configured")

var log = logging.New("config")

// Config stores user-defined CLI Studies settings.
type Config struct {
	// DefaultLayout is the preset the viewer opens with.
	DefaultLayout string `yaml:"default_layout"`
	// Keybindings maps action names to key overrides.
	Keybindings map[string]string `yaml:"keybindings,omitempty"`
	// DisableMouse turns off mouse tracking in the TUI.
	DisableMouse bool `yaml:"disable_mouse,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{DefaultLayout: string(layout.DefaultPreset)}
}

// Layout returns the validated default layout preset.
func (c Config) Layout() layout.Preset {
	p, err := layout.ParsePreset(c.DefaultLayout)
	if err != nil {
		return layout.DefaultPreset
	}
	return p
}

// Store reads and writes the config file on a filesystem.
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore returns a store for the config file at path on fs.
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// DefaultStore returns a store for the default config path on the OS
// filesystem.
func DefaultStore() (*Store, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return NewStore(afero.NewOsFs(), path), nil
}

// ConfigPath returns the default configuration file path.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the config file exists.
func (s *Store) Exists() (bool, error) {
	ok, err := afero.Exists(s.fs, s.path)
	if err != nil {
		return false, fmt.Errorf("stat config path: %w", err)
	}
	return ok, nil
}

// Load reads and validates the saved configuration.
func (s *Store) Load() (Config, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, ErrNotConfigured
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "parse config")
	}
	if err := normalize(&cfg); err != nil {
		return Config{}, err
	}

	log.Debug("loaded config", "path", s.path, "default_layout", cfg.DefaultLayout)
	return cfg, nil
}

// LoadOrDefault is Load with ErrNotConfigured mapped to Default.
func (s *Store) LoadOrDefault() (Config, error) {
	cfg, err := s.Load()
	if errors.Is(err, ErrNotConfigured) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes configuration to disk.
func (s *Store) Save(cfg Config) error {
	if err := normalize(&cfg); err != nil {
		return err
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := afero.WriteFile(s.fs, s.path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	log.Info("saved config", "path", s.path)
	return nil
}

func normalize(cfg *Config) error {
	name := strings.TrimSpace(cfg.DefaultLayout)
	if name == "" {
		cfg.DefaultLayout = string(layout.DefaultPreset)
	} else {
		p, err := layout.ParsePreset(name)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "invalid default_layout")
		}
		cfg.DefaultLayout = string(p)
	}

	if len(cfg.Keybindings) == 0 {
		cfg.Keybindings = nil
		return nil
	}
	cleaned := make(map[string]string, len(cfg.Keybindings))
	for action, key := range cfg.Keybindings {
		action = strings.TrimSpace(action)
		key = strings.TrimSpace(key)
		if action == "" || key == "" {
			continue
		}
		cleaned[action] = key
	}
	cfg.Keybindings = cleaned
	return nil
}
