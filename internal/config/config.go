// Package config loads application settings from an optional YAML file
// and environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.yaml.in/yaml/v4"
	"golang.org/x/text/language"

	"number-converter/internal/converter"
	"number-converter/internal/logger"
)

// ErrConfig indicates an invalid configuration.
var ErrConfig = errors.New("configuration error")

const (
	DefaultWidth  = 403
	DefaultHeight = 100
)

// Config holds runtime settings for the converter application.
type Config struct {
	LogLevel    string `yaml:"log_level" validate:"oneof=debug info warn warning error"`
	JSONLogs    bool   `yaml:"json_logs"`
	Locale      string `yaml:"locale" validate:"required,locale"`
	DefaultMode string `yaml:"default_mode" validate:"required,mode"`
	Window      Window `yaml:"window"`
}

// Window is the initial main window size.
type Window struct {
	Width  float32 `yaml:"width" validate:"gte=200,lte=4000"`
	Height float32 `yaml:"height" validate:"gte=80,lte=4000"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:    "info",
		Locale:      "en",
		DefaultMode: converter.DecimalToBinary.String(),
		Window: Window{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/number-converter/config.yaml or the
// platform equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "number-converter", "config.yaml")
}

// Load reads path on top of the defaults, applies environment overrides
// and validates the result. A missing file is not an error; an empty
// path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("%w: read %s: %v", ErrConfig, path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("%w: parse %s: %v", ErrConfig, path, err)
			}
		}
	}

	cfg.applyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv("NUMCONV_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if getenv("DEBUG") == "1" {
		c.LogLevel = "debug"
	}
	if v := getenv("NUMCONV_JSON_LOGS"); v != "" {
		c.JSONLogs = v == "1" || strings.EqualFold(v, "true")
	}
	if v := getenv("NUMCONV_LOCALE"); v != "" {
		c.Locale = v
	}
	if v := getenv("NUMCONV_DEFAULT_MODE"); v != "" {
		c.DefaultMode = v
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("mode", func(fl validator.FieldLevel) bool {
		_, err := converter.ParseMode(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
		_, err := language.Parse(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks every field and reports the first failures wrapped in ErrConfig.
func (c Config) Validate() error {
	c.LogLevel = strings.ToLower(c.LogLevel)
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		problems := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			problems = append(problems, fmt.Sprintf("%s fails %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
		}
		return fmt.Errorf("%w: %s", ErrConfig, strings.Join(problems, "; "))
	}
	return fmt.Errorf("%w: %v", ErrConfig, err)
}

// Level returns the parsed log level.
func (c Config) Level() logger.LogLevel {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return logger.InfoLevel
	}
	return level
}

// Mode returns the parsed default mode.
func (c Config) Mode() converter.Mode {
	mode, err := converter.ParseMode(c.DefaultMode)
	if err != nil {
		return converter.DecimalToBinary
	}
	return mode
}

// Language returns the parsed locale tag.
func (c Config) Language() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}
