package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"emojied/internal/eventbus"
)

// Defaults for the search and interaction policy
const (
	DefaultThreshold      = 0.3
	DefaultResultCap      = 40
	DefaultNotificationMS = 1500
	DefaultExportSize     = 128
	DefaultDistance       = 100
	DefaultAlgorithm      = "bitap"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Version int             `toml:"version"`
	Search  SearchSettings  `toml:"search"`
	UI      UISettings      `toml:"ui"`
	Export  ExportSettings  `toml:"export"`
	Dataset DatasetSettings `toml:"dataset"`
	Log     LogSettings     `toml:"log"`
}

// SearchSettings controls the matcher
type SearchSettings struct {
	Threshold        float64 `toml:"threshold"`  // 0 = exact, 1 = anything
	ResultCap        int     `toml:"result_cap"` // results shown
	Algorithm        string  `toml:"algorithm"`  // bitap or levenshtein
	Distance         int     `toml:"distance"`   // bitap location tolerance
	IgnoreDiacritics bool    `toml:"ignore_diacritics"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	NotificationMS int    `toml:"notification_ms"`
	StartMode      string `toml:"start_mode"` // copy or export
	ShowAbout      bool   `toml:"show_about"` // open the About popup on start
	OSC52          bool   `toml:"osc52"`      // fall back to terminal clipboard
}

// ExportSettings controls PNG export
type ExportSettings struct {
	Dir      string `toml:"dir"`
	Size     int    `toml:"size"`
	FontPath string `toml:"font_path"` // empty: first system emoji font, then Go Regular
	Color    string `toml:"color"`     // hex fill for outline fonts
}

// DatasetSettings selects the emoji dataset
type DatasetSettings struct {
	Path  string `toml:"path"` // empty: embedded dataset
	Watch bool   `toml:"watch"`
}

// LogSettings controls the log file
type LogSettings struct {
	File  string `toml:"file"`
	Level string `toml:"level"` // debug, info, warn, error
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "emojied", "config.toml")
}

// NewConfigService creates a config service for the default path
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service bound to path
func NewConfigServiceAt(path string) ConfigService {
	if path == "" {
		return NewConfigService()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigServiceAt(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, or defaults when there is none
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publish(eventbus.ConfigLoadedEvent{Path: ""})
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	cs.publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	cs.publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	return nil
}

// LoadFromPath loads configuration from a specific path.
// Missing keys keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("failed to parse config: %s", strict.String())
		}
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (cs *configService) publish(e eventbus.DomainEvent) {
	if cs.bus != nil {
		cs.bus.Publish(e)
	}
}

// Validate reports the first out-of-range setting
func (c *Config) Validate() error {
	switch {
	case c.Search.Threshold < 0 || c.Search.Threshold > 1:
		return fmt.Errorf("%w: search.threshold must be within [0,1], got %v", ErrInvalidConfig, c.Search.Threshold)
	case c.Search.ResultCap < 1:
		return fmt.Errorf("%w: search.result_cap must be positive, got %d", ErrInvalidConfig, c.Search.ResultCap)
	case c.Search.Distance < 0:
		return fmt.Errorf("%w: search.distance must not be negative", ErrInvalidConfig)
	case c.Search.Algorithm != "bitap" && c.Search.Algorithm != "levenshtein":
		return fmt.Errorf("%w: unknown search.algorithm %q", ErrInvalidConfig, c.Search.Algorithm)
	case c.UI.NotificationMS < 1:
		return fmt.Errorf("%w: ui.notification_ms must be positive", ErrInvalidConfig)
	case c.Export.Size < 8:
		return fmt.Errorf("%w: export.size must be at least 8", ErrInvalidConfig)
	}
	if c.UI.StartMode != "" && c.UI.StartMode != "copy" && c.UI.StartMode != "export" {
		return fmt.Errorf("%w: ui.start_mode must be copy or export", ErrInvalidConfig)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	exportDir := "."
	if home, err := os.UserHomeDir(); err == nil {
		exportDir = filepath.Join(home, "Downloads")
	}

	return &Config{
		Version: 1,
		Search: SearchSettings{
			Threshold: DefaultThreshold,
			ResultCap: DefaultResultCap,
			Algorithm: DefaultAlgorithm,
			Distance:  DefaultDistance,
		},
		UI: UISettings{
			NotificationMS: DefaultNotificationMS,
			StartMode:      "copy",
			OSC52:          true,
		},
		Export: ExportSettings{
			Dir:   exportDir,
			Size:  DefaultExportSize,
			Color: "#000000",
		},
		Log: LogSettings{
			File:  "emojied.log",
			Level: "info",
		},
	}
}
