package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"TickerBoard/internal/domain/models"

	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment" default:"development"`
	Server      struct {
		Host            string        `yaml:"host" default:"0.0.0.0"`
		Port            int           `yaml:"port" default:"8080"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"10s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
		CORS            bool          `yaml:"cors" default:"true"`
	} `yaml:"server"`
	Logger struct {
		Level      string `yaml:"level" default:"info"`
		Format     string `yaml:"format" default:"json"`
		Output     string `yaml:"output" default:"stdout"`
		TimeFormat string `yaml:"time_format"`
	} `yaml:"logger"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`
	AlphaVantage struct {
		APIKey  string `yaml:"api_key" default:"demo"`
		BaseURL string `yaml:"base_url" default:"https://www.alphavantage.co/query"`
		// Zero disables the request timeout.
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"alphavantage"`
	Board struct {
		InitialTickers []string `yaml:"initial_tickers" default:"[\"AAPL\",\"GOOGL\",\"MSFT\"]"`
	} `yaml:"board"`
	Stream struct {
		PingInterval time.Duration `yaml:"ping_interval" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"5s"`
	} `yaml:"stream"`
	RateLimit struct {
		Capacity     float64 `yaml:"capacity" default:"20"`
		RefillPerSec float64 `yaml:"refill_per_sec" default:"5"`
	} `yaml:"ratelimit"`
}

// envOverrides lists the variables that win over the YAML file.
type envOverrides struct {
	APIKey    string   `envconfig:"ALPHAVANTAGE_API_KEY"`
	BaseURL   string   `envconfig:"ALPHAVANTAGE_BASE_URL"`
	Tickers   []string `envconfig:"TICKERS"`
	Port      int      `envconfig:"PORT"`
	LogLevel  string   `envconfig:"LOG_LEVEL"`
	LogFormat string   `envconfig:"LOG_FORMAT"`
}

// Load applies defaults, then overlays the YAML file at path. An empty path
// yields the defaults alone.
func Load(path string) (*Config, error) {
	c, err := read(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// LoadWithEnv loads config like Load and overrides it with environment
// variables, reading a local .env file first when one exists.
func LoadWithEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	c, err := read(path)
	if err != nil {
		return nil, err
	}

	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	c.apply(env)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

func read(path string) (*Config, error) {
	c := &Config{}
	if err := defaults.Set(c); err != nil {
		return nil, fmt.Errorf("set defaults: %w", err)
	}
	if path == "" {
		return c, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}

func (c *Config) apply(env envOverrides) {
	if env.APIKey != "" {
		c.AlphaVantage.APIKey = env.APIKey
	}
	if env.BaseURL != "" {
		c.AlphaVantage.BaseURL = env.BaseURL
	}
	if len(env.Tickers) > 0 {
		c.Board.InitialTickers = env.Tickers
	}
	if env.Port != 0 {
		c.Server.Port = env.Port
	}
	if env.LogLevel != "" {
		c.Logger.Level = env.LogLevel
	}
	if env.LogFormat != "" {
		c.Logger.Format = env.LogFormat
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return errors.New("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	switch strings.ToLower(c.Logger.Level) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return fmt.Errorf("logger.level %q is not supported", c.Logger.Level)
	}
	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("logger.format must be 'json' or 'console', got '%s'", c.Logger.Format)
	}
	if c.AlphaVantage.APIKey == "" {
		return errors.New("alphavantage.api_key is required")
	}
	if u, err := url.Parse(c.AlphaVantage.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("alphavantage.base_url %q is not an absolute URL", c.AlphaVantage.BaseURL)
	}
	if c.AlphaVantage.Timeout < 0 {
		return errors.New("alphavantage.timeout cannot be negative")
	}
	for _, t := range c.Board.InitialTickers {
		if _, ok := models.ParseTicker(t); !ok {
			return fmt.Errorf("board.initial_tickers: invalid ticker %q", t)
		}
	}
	if c.RateLimit.Capacity < 1 || c.RateLimit.RefillPerSec <= 0 {
		return errors.New("ratelimit.capacity must be >= 1 and refill_per_sec > 0")
	}
	return nil
}
