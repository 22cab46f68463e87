// Package config loads the process configuration the examples share.
//
// Two environment values are read, both required:
//
//	API_KEY  — API authentication key (non-empty string)
//	TIMEOUT  — request timeout in seconds (positive integer)
//
// Loading happens once, in the composition root, before any wiring. A
// missing or malformed value is a di.ConfigurationError and the caller is
// expected to exit non-zero without attempting any resolution.
package config

import (
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"

	"github.com/SyNeto/godi/di"
)

// Config carries the configuration injected into the example providers.
type Config struct {
	// APIKey authenticates requests made by the API client.
	APIKey string

	// Timeout is the request timeout in seconds.
	Timeout int
}

// Validate checks the required fields. APIKey must be non-empty and Timeout
// must be a positive number of seconds.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.APIKey, validation.Required),
		validation.Field(&c.Timeout, validation.Required, validation.Min(1)),
	)
}

// Load reads Config from the environment.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	if err := v.BindEnv("api_key", "API_KEY"); err != nil {
		return Config{}, di.ConfigurationError{Subject: "API_KEY", Reason: err.Error()}
	}
	if err := v.BindEnv("timeout", "TIMEOUT"); err != nil {
		return Config{}, di.ConfigurationError{Subject: "TIMEOUT", Reason: err.Error()}
	}

	cfg := Config{APIKey: v.GetString("api_key")}

	// Parse the timeout by hand: viper's GetInt would silently turn a
	// malformed value into 0, which must be a configuration failure here.
	if raw := v.GetString("timeout"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, di.ConfigurationError{Subject: "TIMEOUT", Reason: "not an integer: " + strconv.Quote(raw)}
		}
		cfg.Timeout = seconds
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, di.ConfigurationError{Subject: "config", Reason: err.Error()}
	}
	return cfg, nil
}
