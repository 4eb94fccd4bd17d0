package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "app:\n  name: test\n"))
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.App.Name)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "mock", cfg.AI.DefaultBackend)
	assert.Equal(t, 800, cfg.AI.MaxTokens)
	assert.InDelta(t, 0.7, cfg.AI.Temperature, 1e-9)
	assert.Equal(t, 60*time.Second, cfg.AI.Timeout)
	assert.Equal(t, "chromedp", cfg.Renderer.Engine)
	assert.Equal(t, "modern", cfg.Renderer.DefaultTheme)
}

func TestLoadFile_FileValues(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, `
server:
  port: 8080
ai:
  default_backend: groq
  timeout: 30s
renderer:
  engine: playwright
  output_dir: /tmp/cvs
`))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "groq", cfg.AI.DefaultBackend)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
	assert.Equal(t, "playwright", cfg.Renderer.Engine)
	assert.Equal(t, "/tmp/cvs", cfg.Renderer.OutputDir)
}

func TestLoadFile_EnvOverrides(t *testing.T) {
	t.Setenv("CVGEN_SERVER_PORT", "9090")
	t.Setenv("CVGEN_AI_DEFAULT_BACKEND", "ollama_local")
	t.Setenv("CVGEN_LOGGING_LEVEL", "debug")

	cfg, err := LoadFile(writeConfig(t, "server:\n  port: 8080\n"))
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "ollama_local", cfg.AI.DefaultBackend)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFile_Invalid(t *testing.T) {
	_, err := LoadFile(writeConfig(t, "renderer:\n  engine: wkhtmltopdf\nai:\n  max_tokens: 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "renderer.engine")
	assert.Contains(t, err.Error(), "ai.max_tokens")

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
