package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Console: ConsoleConfig{
			Prompt:    "WHAT NOW? ",
			Color:     ColorAuto,
			WrapWidth: 0,
			ShowIntro: true,
		},
		MCP: MCPConfig{
			Host: "127.0.0.1",
			Port: 8765,
			Path: "/mcp",
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "WHAT NOW? ", cfg.Console.Prompt)
	assert.Equal(t, ColorAuto, cfg.Console.Color)
	assert.True(t, cfg.Console.ShowIntro)
	assert.Equal(t, "/mcp", cfg.MCP.Path)
}

func TestMCPAddr(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, "127.0.0.1:8765", cfg.MCP.Addr())

	cfg.MCP.Host = "::1"
	assert.Equal(t, "[::1]:8765", cfg.MCP.Addr())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: console
console:
  color: never
  wrap_width: 40
  show_intro: false
mcp:
  port: 9001
  token: secret
  origins:
    - http://localhost:3000
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, ColorNever, cfg.Console.Color)
	assert.Equal(t, 40, cfg.Console.WrapWidth)
	assert.False(t, cfg.Console.ShowIntro)
	assert.Equal(t, "WHAT NOW? ", cfg.Console.Prompt)
	assert.Equal(t, 9001, cfg.MCP.Port)
	assert.Equal(t, "secret", cfg.MCP.Token)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.MCP.Origins)
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("RUBY_CONSOLE_COLOR", "always")
	t.Setenv("RUBY_MCP_PORT", "9100")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ColorAlways, cfg.Console.Color)
	assert.Equal(t, 9100, cfg.MCP.Port)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("console:\n  color: rainbow\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "console.color")
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingFormat(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		cfg := validConfig()
		cfg.Logging.Format = format
		assert.NoError(t, cfg.Validate(), "format %q should be valid", format)
	}
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidateConsoleColor(t *testing.T) {
	for _, color := range []string{ColorAuto, ColorAlways, ColorNever} {
		cfg := validConfig()
		cfg.Console.Color = color
		assert.NoError(t, cfg.Validate(), "color %q should be valid", color)
	}
	cfg := validConfig()
	cfg.Console.Color = "sometimes"
	assert.Error(t, cfg.Validate())
}

func TestValidateConsolePromptBlank(t *testing.T) {
	cfg := validConfig()
	cfg.Console.Prompt = "  "
	assert.Error(t, cfg.Validate())
}

func TestValidateMCPPath(t *testing.T) {
	cfg := validConfig()
	cfg.MCP.Path = "mcp"
	assert.Error(t, cfg.Validate())
}

func TestValidateMCPOrigins(t *testing.T) {
	cfg := validConfig()
	cfg.MCP.Origins = []string{"http://localhost", ""}
	assert.Error(t, cfg.Validate())
}

func TestValidateCollectsAllViolations(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "loud"
	cfg.Console.WrapWidth = 5
	cfg.MCP.Port = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "console.wrap_width")
	assert.Contains(t, err.Error(), "mcp.port")
}

// Property-based tests

func TestPropertyValidPortRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		port := rapid.IntRange(1, 65535).Draw(t, "port")
		cfg := validConfig()
		cfg.MCP.Port = port
		err := cfg.Validate()
		if err != nil {
			t.Fatalf("valid port %d rejected: %v", port, err)
		}
	})
}

func TestPropertyInvalidPortRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		port := rapid.OneOf(
			rapid.IntRange(-1000, 0),
			rapid.IntRange(65536, 100000),
		).Draw(t, "port")
		cfg := validConfig()
		cfg.MCP.Port = port
		err := cfg.Validate()
		if err == nil {
			t.Fatalf("invalid port %d accepted", port)
		}
	})
}

func TestPropertyWrapWidth(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(-50, 400).Draw(t, "width")
		cfg := validConfig()
		cfg.Console.WrapWidth = width
		err := cfg.Validate()
		valid := width == 0 || (width >= MinWrapWidth && width <= MaxWrapWidth)
		if valid && err != nil {
			t.Fatalf("valid wrap width %d rejected: %v", width, err)
		}
		if !valid && err == nil {
			t.Fatalf("invalid wrap width %d accepted", width)
		}
	})
}
