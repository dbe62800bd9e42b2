package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"searchwidget/internal/domain"
)

// EnvPrefix is the prefix of environment overrides, e.g. SEARCHWIDGET_PLACEHOLDER
const EnvPrefix = "SEARCHWIDGET"

// ErrEmptyLabel is returned by Validate for options that cannot be displayed
var ErrEmptyLabel = errors.New("option has an empty label")

// Config represents the application configuration
type Config struct {
	Version     int             `mapstructure:"version" toml:"version"`
	Placeholder string          `mapstructure:"placeholder" toml:"placeholder"`
	Options     []domain.Option `mapstructure:"options" toml:"options"`
	UI          UISettings      `mapstructure:"ui" toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowIcons    bool `mapstructure:"show_icons" toml:"show_icons"`
	Suggest      bool `mapstructure:"suggest" toml:"suggest"`
	ExitOnSelect bool `mapstructure:"exit_on_select" toml:"exit_on_select"`
	Width        int  `mapstructure:"width" toml:"width"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	v        *viper.Viper
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
	return filepath.Join(configDir, "searchwidget", "config.toml")
}

// NewConfigService creates a new config service reading DefaultPath
func NewConfigService() ConfigService {
	return NewConfigServiceWithViper(nil, "")
}

// NewConfigServiceWithViper creates a config service on top of v, so that
// flags bound to v take precedence over env, file and defaults.
// An empty path means DefaultPath.
func NewConfigServiceWithViper(v *viper.Viper, path string) ConfigService {
	if v == nil {
		v = viper.New()
	}
	if path == "" {
		path = DefaultPath()
	}
	return &configService{v: v, filePath: path}
}

// Load loads the configuration, falling back to defaults when the file is missing
func (cs *configService) Load() (*Config, error) {
	return cs.load(cs.filePath, false)
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path, which must exist
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	return cs.load(path, true)
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
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

func (cs *configService) load(path string, requireFile bool) (*Config, error) {
	v := cs.v
	setDefaults(v)

	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if requireFile {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if len(cfg.Options) == 0 && !v.InConfig("options") {
		cfg.Options = DefaultOptions()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("version", d.Version)
	v.SetDefault("placeholder", d.Placeholder)
	v.SetDefault("ui.show_icons", d.UI.ShowIcons)
	v.SetDefault("ui.suggest", d.UI.Suggest)
	v.SetDefault("ui.exit_on_select", d.UI.ExitOnSelect)
	v.SetDefault("ui.width", d.UI.Width)
}

// Validate checks that every option can be displayed and matched.
// Duplicate values are allowed.
func (c *Config) Validate() error {
	for i, opt := range c.Options {
		if strings.TrimSpace(opt.Label) == "" {
			return fmt.Errorf("option %d (value %q): %w", i, opt.Value, ErrEmptyLabel)
		}
	}
	return nil
}

// DefaultOptions returns the demo option list
func DefaultOptions() []domain.Option {
	return []domain.Option{
		{Value: "react", Label: "React"},
		{Value: "angular", Label: "Angular"},
		{Value: "vue", Label: "Vue"},
		{Value: "react-native", Label: "React Native"},
		{Value: "javascript", Label: "Javascript"},
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:     1,
		Placeholder: "Search",
		Options:     DefaultOptions(),
		UI: UISettings{
			ShowIcons: true,
			Suggest:   true,
			Width:     40,
		},
	}
}
