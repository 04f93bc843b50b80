package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Marvel    MarvelConfig    `mapstructure:"marvel"`
	Transport TransportConfig `mapstructure:"transport"`
}

// AppConfig holds presentation and logging settings
type AppConfig struct {
	Language string `mapstructure:"language"`
	LogLevel string `mapstructure:"log_level"`
}

// MarvelConfig holds Marvel API configuration
type MarvelConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	PageLimit int    `mapstructure:"page_limit"`

	// Authentication
	PublicKey  string `mapstructure:"public_key"`
	PrivateKey string `mapstructure:"private_key"`
}

// TransportConfig holds HTTP client configuration
type TransportConfig struct {
	Timeout              int      `mapstructure:"timeout"`
	MaxRequestsPerSecond int      `mapstructure:"max_requests_per_second"`
	UserAgent            string   `mapstructure:"user_agent"`
	Proxies              []string `mapstructure:"proxies"`
}

// Load reads config.yaml from the given directories (the working directory
// when none are given) with environment variable overrides. A missing file is
// not an error: defaults and the environment are used instead.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	if c.Marvel.BaseURL == "" {
		return fmt.Errorf("marvel.base_url must be set")
	}
	if c.Marvel.PageLimit <= 0 {
		return fmt.Errorf("marvel.page_limit must be positive, got %d", c.Marvel.PageLimit)
	}
	if c.Transport.Timeout <= 0 {
		return fmt.Errorf("transport.timeout must be positive, got %d", c.Transport.Timeout)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.language", "en")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("marvel.base_url", "https://gateway.marvel.com")
	v.SetDefault("marvel.page_limit", 20)
	v.SetDefault("marvel.public_key", "")
	v.SetDefault("marvel.private_key", "")

	v.SetDefault("transport.timeout", 30)
	v.SetDefault("transport.max_requests_per_second", 5)
	v.SetDefault("transport.user_agent", "superhero-directory/1.0")
	v.SetDefault("transport.proxies", []string{})
}
