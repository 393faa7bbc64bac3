package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	log "github.com/sirupsen/logrus"

	"adscout/internal/domain"
)

// DefaultAPIBaseURL is the collaborator API used when nothing is configured
const DefaultAPIBaseURL = "https://ad-research-api.onrender.com"

// Environment variables that override file values
const (
	EnvAPIBaseURL = "ADSCOUT_API_BASE_URL"
	EnvCountry    = "ADSCOUT_COUNTRY"
	EnvTimeout    = "ADSCOUT_TIMEOUT"
	EnvLogFile    = "ADSCOUT_LOG_FILE"
)

// Config represents the application configuration
type Config struct {
	APIBaseURL     string     `toml:"api_base_url"`
	DefaultCountry string     `toml:"default_country"`
	RequestTimeout Duration   `toml:"request_timeout"`
	LogFile        string     `toml:"log_file"`
	UISettings     UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Columns    int  `toml:"columns"`     // max card columns
	ShowImages bool `toml:"show_images"` // print the avatar URI on cards
}

// Duration is a time.Duration stored as a string like "30s"
type Duration struct {
	time.Duration
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
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
	filePath string
}

// NewConfigService creates a config service backed by the default path
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service backed by path
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// DefaultPath returns $XDG_CONFIG_HOME/adscout/config.toml or its
// platform equivalent
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
	return filepath.Join(configDir, "adscout", "config.toml")
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields defaults.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		log.WithField("path", cs.filePath).Info("No config file, using defaults")
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Fields absent
// from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
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

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		APIBaseURL:     DefaultAPIBaseURL,
		DefaultCountry: domain.DefaultCountry,
		RequestTimeout: Duration{30 * time.Second},
		LogFile:        "adscout.log",
		UISettings: UISettings{
			Columns:    3,
			ShowImages: false,
		},
	}
}

// LoadDotEnv loads .env files into the process environment. Missing files
// are ignored; variables already set are not overwritten.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overrides config values from ADSCOUT_* environment variables
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv(EnvCountry); v != "" {
		c.DefaultCountry = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		var d Duration
		if err := d.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		c.RequestTimeout = d
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.LogFile = v
	}
	return nil
}

// Validate checks the configuration. Unknown country codes are allowed and
// only logged; they are forwarded to the API unchanged.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return errors.New("api_base_url must not be empty")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("invalid api_base_url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api_base_url must be an absolute http(s) URL, got %q", c.APIBaseURL)
	}
	if c.RequestTimeout.Duration <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %s", c.RequestTimeout.Duration)
	}
	if c.UISettings.Columns < 1 {
		c.UISettings.Columns = 1
	}
	if c.DefaultCountry == "" {
		c.DefaultCountry = domain.DefaultCountry
	}
	if _, ok := domain.LookupCountry(c.DefaultCountry); !ok {
		log.WithField("country", c.DefaultCountry).Warn("Default country is not in the selector list, forwarding as-is")
	}
	return nil
}
