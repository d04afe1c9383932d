// Package config loads runtime settings from the environment. The form-relay
// access key in particular must be injected here rather than inlined in a
// handler or template.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime knob for the web process.
type Config struct {
	Addr string `env:"CLINIC_WEB_ADDR"`
	Port string `env:"PORT" envDefault:"8080"`
	Env  string `env:"CLINIC_WEB_ENV" envDefault:"dev"`

	TemplatesDir string `env:"CLINIC_WEB_TEMPLATES_DIR" envDefault:"templates"`
	PublicDir    string `env:"CLINIC_WEB_PUBLIC_DIR" envDefault:"public"`
	LocalesDir   string `env:"CLINIC_WEB_LOCALES_DIR" envDefault:"locales"`
	ContentDir   string `env:"CLINIC_WEB_CONTENT_DIR" envDefault:"content"`

	DefaultLang    string   `env:"CLINIC_WEB_DEFAULT_LANG" envDefault:"es"`
	SupportedLangs []string `env:"CLINIC_WEB_LANGS" envDefault:"es,en" envSeparator:","`

	RelayEndpoint  string `env:"CLINIC_WEB_RELAY_ENDPOINT"`
	RelayAccessKey string `env:"CLINIC_WEB_RELAY_ACCESS_KEY"`

	BaseURL string `env:"CLINIC_WEB_BASE_URL" envDefault:"https://clinicaacosta.org"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Addr == "" {
		cfg.Addr = ":" + cfg.Port
	}
	return cfg, nil
}

// Dev reports whether the process runs outside production.
func (c Config) Dev() bool { return c.Env != "prod" }
