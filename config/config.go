package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server" toml:"server"`
	Backend BackendConfig `yaml:"backend" toml:"backend"`
	Site    SiteConfig    `yaml:"site" toml:"site"`
	Poll    PollConfig    `yaml:"poll" toml:"poll"`
	Session SessionConfig `yaml:"session" toml:"session"`
	Log     LogConfig     `yaml:"log" toml:"log"`
}

type ServerConfig struct {
	Port int `yaml:"port" toml:"port"`
	// GenerateRateLimit caps form submissions per client IP per minute
	GenerateRateLimit int `yaml:"generate_rate_limit" toml:"generate_rate_limit"`
}

// BackendConfig describes the article generation API this site renders.
type BackendConfig struct {
	APIURL  string   `yaml:"api_url" toml:"api_url"`
	Timeout Duration `yaml:"timeout" toml:"timeout"`
}

type SiteConfig struct {
	BaseURL string `yaml:"base_url" toml:"base_url"`
	Name    string `yaml:"name" toml:"name"`
}

type PollConfig struct {
	Interval Duration `yaml:"interval" toml:"interval"`
	// MaxBackoff caps the exponential delay after failed polls; set it to Interval for a fixed rate
	MaxBackoff Duration `yaml:"max_backoff" toml:"max_backoff"`
	MaxWatches int      `yaml:"max_watches" toml:"max_watches"`
}

type SessionConfig struct {
	Secret string `yaml:"secret" toml:"secret"`
	Name   string `yaml:"name" toml:"name"`
}

type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"` // json, text, auto
}

// Duration accepts Go duration strings ("3s", "5m") in config files.
type Duration time.Duration

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

const (
	DefaultPort              = 3000
	DefaultAPIURL            = "http://localhost:8000"
	DefaultSiteURL           = "http://localhost:3000"
	DefaultSiteName          = "AI Writer"
	DefaultTimeout           = 5 * time.Minute
	DefaultPollInterval      = 3 * time.Second
	DefaultMaxBackoff        = 30 * time.Second
	DefaultMaxWatches        = 200
	DefaultGenerateRateLimit = 10
	DefaultSessionName       = "aiwriter_session"

	// DefaultSessionSecret signs cookies when none is configured. Anyone
	// can forge flashes against it, so only use it in development.
	DefaultSessionSecret = "aiwriter-dev-secret"
)

// Load reads the config file at path (YAML or TOML by extension), then
// applies .env and environment overrides. An empty path yields defaults
// plus environment.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := decode(path, data, &cfg); err != nil {
			return nil, err
		}
	}

	// .env is optional
	_ = godotenv.Load()
	applyEnv(&cfg)
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse toml config %s: %w", path, err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse yaml config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	return nil
}

func applyEnv(cfg *Config) {
	getEnv := func(keys ...string) string {
		for _, k := range keys {
			if v := strings.TrimSpace(os.Getenv(k)); v != "" {
				return v
			}
		}
		return ""
	}

	if v := getEnv("AIWRITER_API_URL", "NEXT_PUBLIC_API_URL"); v != "" {
		cfg.Backend.APIURL = v
	}
	if v := getEnv("AIWRITER_SITE_URL", "NEXT_PUBLIC_SITE_URL"); v != "" {
		cfg.Site.BaseURL = v
	}
	if v := getEnv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := getEnv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := getEnv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := getEnv("SESSION_SECRET"); v != "" {
		cfg.Session.Secret = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Server.GenerateRateLimit == 0 {
		cfg.Server.GenerateRateLimit = DefaultGenerateRateLimit
	}
	if cfg.Backend.APIURL == "" {
		cfg.Backend.APIURL = DefaultAPIURL
	}
	cfg.Backend.APIURL = strings.TrimRight(cfg.Backend.APIURL, "/")
	if cfg.Backend.Timeout == 0 {
		cfg.Backend.Timeout = Duration(DefaultTimeout)
	}
	if cfg.Site.BaseURL == "" {
		cfg.Site.BaseURL = DefaultSiteURL
	}
	cfg.Site.BaseURL = strings.TrimRight(cfg.Site.BaseURL, "/")
	if cfg.Site.Name == "" {
		cfg.Site.Name = DefaultSiteName
	}
	if cfg.Poll.Interval == 0 {
		cfg.Poll.Interval = Duration(DefaultPollInterval)
	}
	if cfg.Poll.MaxBackoff == 0 {
		cfg.Poll.MaxBackoff = Duration(DefaultMaxBackoff)
	}
	if cfg.Poll.MaxWatches == 0 {
		cfg.Poll.MaxWatches = DefaultMaxWatches
	}
	if cfg.Session.Name == "" {
		cfg.Session.Name = DefaultSessionName
	}
	if cfg.Session.Secret == "" {
		cfg.Session.Secret = DefaultSessionSecret
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}

// Warnings lists settings that are valid but unsafe outside development.
func (c *Config) Warnings() []string {
	var warnings []string
	if c.Session.Secret == DefaultSessionSecret {
		warnings = append(warnings, "session.secret is unset, cookies are signed with the built-in development secret; set SESSION_SECRET")
	}
	return warnings
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if err := checkURL("backend.api_url", c.Backend.APIURL); err != nil {
		return err
	}
	if err := checkURL("site.base_url", c.Site.BaseURL); err != nil {
		return err
	}
	if c.Backend.Timeout < 0 {
		return fmt.Errorf("backend.timeout must be positive, got %s", c.Backend.Timeout)
	}
	if c.Poll.Interval < 0 {
		return fmt.Errorf("poll.interval must be positive, got %s", c.Poll.Interval)
	}
	if c.Poll.MaxBackoff < 0 {
		return fmt.Errorf("poll.max_backoff must not be negative, got %s", c.Poll.MaxBackoff)
	}
	if c.Poll.MaxWatches < 0 {
		return fmt.Errorf("poll.max_watches must not be negative, got %d", c.Poll.MaxWatches)
	}
	return nil
}

func checkURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: invalid url: %w", field, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s: url scheme must be http or https, got %q", field, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%s: url host is required", field)
	}
	return nil
}
