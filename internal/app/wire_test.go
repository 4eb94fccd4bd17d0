package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"cv-builder/internal/config"
	"cv-builder/internal/usecase"
)

func baseConfig() *config.Config {
	return &config.Config{
		AI:       config.AIConfig{DefaultBackend: "mock", MaxTokens: 800, Temperature: 0.7, Timeout: time.Minute},
		Renderer: config.RendererConfig{Engine: "chromedp", Timeout: time.Minute, OutputDir: os.TempDir()},
	}
}

func TestBuild(t *testing.T) {
	a, err := Build(baseConfig(), zaptest.NewLogger(t), "")
	require.NoError(t, err)
	assert.NotNil(t, a.Processor)
	_, ok := a.Registry.Lookup("anthropic")
	assert.True(t, ok)
	assert.Empty(t, a.Processor.OutputDir(), "configured output_dir is not applied implicitly")
}

func TestBuild_ProcessorDefaults(t *testing.T) {
	cfg := baseConfig()
	cfg.AI.DefaultModel = "mock-creative"
	cfg.Renderer.DefaultTheme = "executive"
	dir := t.TempDir()

	a, err := Build(cfg, zaptest.NewLogger(t), dir)
	require.NoError(t, err)
	assert.Equal(t, usecase.Defaults{Backend: "mock", Model: "mock-creative", Theme: "executive"}, a.Processor.Defaults())
	assert.Equal(t, dir, a.Processor.OutputDir())
}

func TestBuild_Errors(t *testing.T) {
	cfg := baseConfig()
	cfg.AI.DefaultBackend = "nope"
	_, err := Build(cfg, zaptest.NewLogger(t), "")
	assert.Error(t, err)

	cfg = baseConfig()
	cfg.Renderer.Engine = "wkhtmltopdf"
	_, err = Build(cfg, zaptest.NewLogger(t), "")
	assert.Error(t, err)

	cfg = baseConfig()
	cfg.AI.RegistryFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = Build(cfg, zaptest.NewLogger(t), "")
	assert.Error(t, err)
}

func TestBuild_CustomRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- {id: mock, name: Mock, kind: mock, models: [{id: m, name: M}]}\n"), 0o644))
	cfg := baseConfig()
	cfg.AI.RegistryFile = path

	a, err := Build(cfg, zaptest.NewLogger(t), "")
	require.NoError(t, err)
	assert.Len(t, a.Registry.All(), 1)
}
