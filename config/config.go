// Package config loads and persists the settings of the menu command.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/ka2n/menu/format"
	"github.com/ka2n/menu/log"
	"github.com/morikuni/failure/v2"
	"gopkg.in/yaml.v3"
)

// ErrorCode defines error types for config operations
type ErrorCode string

const (
	// ConfigPersistenceFailure represents errors reading or writing the settings file
	ConfigPersistenceFailure ErrorCode = "ConfigPersistenceFailure"
	// InputValidationFailure represents invalid settings or setup answers
	InputValidationFailure ErrorCode = "InputValidationFailure"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

const (
	// AppName names the directory holding the settings file
	AppName = "menu-cli"
	// EnvConfig overrides the settings file location
	EnvConfig = "MENU_CONFIG"
)

var validate = validator.New()

// Config is the persisted settings file
type Config struct {
	APIRemote     string        `yaml:"api_remote" validate:"omitempty,url"`
	WebsiteRemote string        `yaml:"website_remote" validate:"omitempty,url"`
	DisplayLinks  bool          `yaml:"display_links"`
	Format        format.Config `yaml:"format"`
}

// Default returns the settings of a first run: no remotes, no links, default styling
func Default() Config {
	return Config{
		Format: format.DefaultConfig(),
	}
}

// LinkBase returns the website root to link menus to, or "" if links are disabled
func (c Config) LinkBase() string {
	if !c.DisplayLinks {
		return ""
	}
	return c.WebsiteRemote
}

// NeedsSetup reports whether neither remote has been configured yet
func (c Config) NeedsSetup() bool {
	return c.APIRemote == "" && c.WebsiteRemote == ""
}

// Path returns the settings file location following platform conventions
func Path() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", failure.New(ConfigPersistenceFailure,
			failure.Message("Failed to locate config directory"),
			failure.Context{"error": err.Error()},
		)
	}
	return filepath.Join(dir, AppName, "config.yml"), nil
}

// Load reads the settings at path. Keys missing from the file keep their defaults.
// A missing file is created with the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug("Creating default config", "path", path)
		if err := Save(path, cfg); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}
	if err != nil {
		return Config{}, failure.New(ConfigPersistenceFailure,
			failure.Message("Failed to read config"),
			failure.Context{"path": path, "error": err.Error()},
		)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, failure.New(ConfigPersistenceFailure,
			failure.Message("Failed to read config"),
			failure.Context{"path": path, "error": err.Error()},
		)
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, failure.New(InputValidationFailure,
			failure.Message("Invalid config at "+path+": "+err.Error()),
			failure.Context{"path": path},
		)
	}

	if len(cfg.Format.LabelText) != len(cfg.Format.LabelANSI) {
		log.Warn("label_text and label_ansi differ in length, missing entries use defaults",
			"label_text", len(cfg.Format.LabelText),
			"label_ansi", len(cfg.Format.LabelANSI),
		)
	}

	log.Debug("Loaded config", "path", path)
	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return failure.New(ConfigPersistenceFailure,
			failure.Message("Failed to save config"),
			failure.Context{"error": err.Error()},
		)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return failure.New(ConfigPersistenceFailure,
			failure.Message("Failed to save config"),
			failure.Context{"path": path, "error": err.Error()},
		)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return failure.New(ConfigPersistenceFailure,
			failure.Message("Failed to save config"),
			failure.Context{"path": path, "error": err.Error()},
		)
	}
	return nil
}
