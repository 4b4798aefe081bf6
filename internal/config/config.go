// Package config loads and validates shelfview configuration.
//
// Values are resolved in this order, later sources winning:
// built-in defaults, the YAML config file, a .env file in the working
// directory, process environment variables, and finally CLI flags (applied
// by the cli package).
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"slices"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultEndpoint           = "https://api.escuelajs.co/api/v1/products"
	DefaultTimeout            = 15 * time.Second
	DefaultMinRefreshInterval = 2 * time.Second
	DefaultPageSize           = 10
	DefaultLocale             = "en-US"
	DefaultCurrency           = "USD"
	DefaultOutputFormat       = "table"
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "json"
)

// Output formats understood by the products commands.
const (
	OutputTable  = "table"
	OutputJSON   = "json"
	OutputNDJSON = "ndjson"
)

// configFileName is the file looked up inside the config directory.
const configFileName = "config.yaml"

// Validation errors.
var (
	ErrInvalidEndpoint     = errors.New("catalog endpoint must be an absolute http(s) URL")
	ErrInvalidTimeout      = errors.New("catalog timeout must be positive")
	ErrInvalidRefresh      = errors.New("catalog min_refresh_interval cannot be negative")
	ErrInvalidPageSize     = errors.New("view page_size must be one of page_size_options")
	ErrInvalidPageOptions  = errors.New("view page_size_options must contain only positive values")
	ErrInvalidOutputFormat = errors.New("output default_format must be table, json, or ndjson")
	ErrInvalidLocale       = errors.New("display locale is not a valid BCP 47 tag")
	ErrInvalidCurrency     = errors.New("display currency is not a valid ISO 4217 code")
)

// Config is the complete shelfview configuration.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	View    ViewConfig    `yaml:"view"`
	Display DisplayConfig `yaml:"display"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// CatalogConfig configures the remote product catalog.
type CatalogConfig struct {
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
	// MinRefreshInterval throttles repeated fetches (0 disables throttling).
	MinRefreshInterval time.Duration `yaml:"min_refresh_interval"`
}

// ViewConfig configures paging defaults.
type ViewConfig struct {
	PageSize        int   `yaml:"page_size"`
	PageSizeOptions []int `yaml:"page_size_options"`
}

// DisplayConfig configures locale-sensitive presentation.
type DisplayConfig struct {
	Locale   string `yaml:"locale"`
	Currency string `yaml:"currency"`
}

// OutputConfig configures non-interactive output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Endpoint:           DefaultEndpoint,
			Timeout:            DefaultTimeout,
			MinRefreshInterval: DefaultMinRefreshInterval,
		},
		View: ViewConfig{
			PageSize:        DefaultPageSize,
			PageSizeOptions: []int{5, 10, 20, 50},
		},
		Display: DisplayConfig{
			Locale:   DefaultLocale,
			Currency: DefaultCurrency,
		},
		Output: OutputConfig{
			DefaultFormat: DefaultOutputFormat,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load builds a Config from defaults and the YAML file at path.
// An empty path means the default location, where a missing file is not an error.
// An explicit path that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := New()

	explicit := path != ""
	if !explicit {
		defaultPath, err := GetConfigPath()
		if err != nil {
			return cfg, nil //nolint:nilerr // No home directory means no config file to read.
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err = ensureParentDir(path); err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

// Marshal renders cfg as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	return data, nil
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Catalog.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidEndpoint, c.Catalog.Endpoint)
	}
	if c.Catalog.Timeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, c.Catalog.Timeout)
	}
	if c.Catalog.MinRefreshInterval < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidRefresh, c.Catalog.MinRefreshInterval)
	}

	if len(c.View.PageSizeOptions) == 0 {
		return ErrInvalidPageOptions
	}
	for _, opt := range c.View.PageSizeOptions {
		if opt < 1 {
			return fmt.Errorf("%w: %d", ErrInvalidPageOptions, opt)
		}
	}
	if !slices.Contains(c.View.PageSizeOptions, c.View.PageSize) {
		return fmt.Errorf("%w: %d not in %v", ErrInvalidPageSize, c.View.PageSize, c.View.PageSizeOptions)
	}

	switch c.Output.DefaultFormat {
	case OutputTable, OutputJSON, OutputNDJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutputFormat, c.Output.DefaultFormat)
	}

	if _, err = c.Display.Tag(); err != nil {
		return err
	}
	if _, err = c.Display.Unit(); err != nil {
		return err
	}
	return nil
}

// Tag parses the display locale.
func (d DisplayConfig) Tag() (language.Tag, error) {
	tag, err := language.Parse(d.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q", ErrInvalidLocale, d.Locale)
	}
	return tag, nil
}

// Unit parses the display currency.
func (d DisplayConfig) Unit() (currency.Unit, error) {
	unit, err := currency.ParseISO(d.Currency)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("%w: %q", ErrInvalidCurrency, d.Currency)
	}
	return unit, nil
}

// NextPageSize returns the option following current, wrapping around.
// An unknown current value yields the first option.
func (v ViewConfig) NextPageSize(current int) int {
	if len(v.PageSizeOptions) == 0 {
		return current
	}
	idx := slices.Index(v.PageSizeOptions, current)
	return v.PageSizeOptions[(idx+1)%len(v.PageSizeOptions)]
}
