// Package config provides Viper-based configuration loading for the adventure.
package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Colour modes for the console.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Wrap width bounds; zero disables wrapping.
const (
	MinWrapWidth = 20
	MaxWrapWidth = 200
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// ConsoleConfig holds the interactive terminal settings.
type ConsoleConfig struct {
	// Prompt is printed before every command is read.
	Prompt string `mapstructure:"prompt"`
	// Color is "auto", "always" or "never".
	Color string `mapstructure:"color"`
	// WrapWidth wraps narrative output at this column; 0 disables wrapping.
	WrapWidth int `mapstructure:"wrap_width"`
	// ShowIntro prints the backstory before the first room.
	ShowIntro bool `mapstructure:"show_intro"`
}

// MCPConfig holds the Model Context Protocol endpoint settings.
type MCPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	// Path is the HTTP path the endpoint is mounted on.
	Path string `mapstructure:"path"`
	// Token, when non-empty, is required as a bearer token on every request.
	Token string `mapstructure:"token"`
	// Origins lists the allowed Origin header values. Requests without an
	// Origin header are always allowed.
	Origins []string `mapstructure:"origins"`
	// JSONResponse answers with application/json instead of an SSE stream.
	JSONResponse bool `mapstructure:"json_response"`
	// Stateless disables MCP session tracking.
	Stateless bool `mapstructure:"stateless"`
}

// Addr returns the "host:port" listen address.
//
// Postcondition: Returns a non-empty string in "host:port" format.
func (m MCPConfig) Addr() string {
	return net.JoinHostPort(m.Host, strconv.Itoa(m.Port))
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Console ConsoleConfig `mapstructure:"console"`
	MCP     MCPConfig     `mapstructure:"mcp"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateConsole(c.Console); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateMCP(c.MCP); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateConsole(c ConsoleConfig) error {
	var errs []string
	validColors := map[string]bool{ColorAuto: true, ColorAlways: true, ColorNever: true}
	if !validColors[c.Color] {
		errs = append(errs, fmt.Sprintf("console.color must be one of [auto, always, never], got %q", c.Color))
	}
	if c.WrapWidth != 0 && (c.WrapWidth < MinWrapWidth || c.WrapWidth > MaxWrapWidth) {
		errs = append(errs, fmt.Sprintf("console.wrap_width must be 0 or %d-%d, got %d", MinWrapWidth, MaxWrapWidth, c.WrapWidth))
	}
	if strings.TrimSpace(c.Prompt) == "" {
		errs = append(errs, "console.prompt must not be blank")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateMCP(m MCPConfig) error {
	var errs []string
	if m.Port < 1 || m.Port > 65535 {
		errs = append(errs, fmt.Sprintf("mcp.port must be 1-65535, got %d", m.Port))
	}
	if !strings.HasPrefix(m.Path, "/") {
		errs = append(errs, fmt.Sprintf("mcp.path must start with \"/\", got %q", m.Path))
	}
	for _, o := range m.Origins {
		if o == "" {
			errs = append(errs, "mcp.origins must not contain empty entries")
			break
		}
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and the
// environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with RUBY_ prefix
	v.SetEnvPrefix("RUBY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")

	v.SetDefault("console.prompt", "WHAT NOW? ")
	v.SetDefault("console.color", ColorAuto)
	v.SetDefault("console.wrap_width", 0)
	v.SetDefault("console.show_intro", true)

	v.SetDefault("mcp.host", "127.0.0.1")
	v.SetDefault("mcp.port", 8765)
	v.SetDefault("mcp.path", "/mcp")
	v.SetDefault("mcp.token", "")
	v.SetDefault("mcp.origins", []string{})
	v.SetDefault("mcp.json_response", true)
	v.SetDefault("mcp.stateless", false)
}
