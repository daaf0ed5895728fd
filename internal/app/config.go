package app

import (
	"github.com/vk/contactbook/internal/config"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // settings file or directory, informational

	WindowDays int
	LogFormat  string
	LogLevel   string
	Prompt     string
	Greeting   string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if err := cfg.settings().Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ConfigFromSettings converts resolved settings into an app configuration.
func ConfigFromSettings(path string, s config.Settings) Config {
	return Config{
		ConfigPath: path,
		WindowDays: s.WindowDays,
		LogFormat:  s.LogFormat,
		LogLevel:   s.LogLevel,
		Prompt:     s.Prompt,
		Greeting:   s.Greeting,
	}
}

func (c Config) settings() config.Settings {
	return config.Settings{
		WindowDays: c.WindowDays,
		LogLevel:   c.LogLevel,
		LogFormat:  c.LogFormat,
		Prompt:     c.Prompt,
		Greeting:   c.Greeting,
	}
}
