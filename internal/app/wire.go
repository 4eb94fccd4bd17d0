// Package app assembles the pipeline from configuration. Both binaries use it.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"cv-builder/internal/config"
	"cv-builder/internal/fallback"
	"cv-builder/internal/render"
	"cv-builder/internal/sector"
	"cv-builder/internal/usecase"
	"cv-builder/pkg/ai"
	"cv-builder/pkg/ai/backends"
	infra "cv-builder/pkg/infrastructure"
)

type App struct {
	Registry  *backends.Registry
	Service   *ai.Service
	Renderer  *render.Renderer
	Processor *usecase.Processor
}

// Build loads the registry and keyword catalog once and wires every
// component. Documents are written to outDir only when it is non-empty.
func Build(cfg *config.Config, logger *zap.Logger, outDir string) (*App, error) {
	registry, err := backends.LoadRegistry(cfg.AI.RegistryFile)
	if err != nil {
		return nil, err
	}
	catalog, err := sector.LoadCatalog(cfg.Sector.CatalogFile)
	if err != nil {
		return nil, err
	}

	svc := ai.NewService(registry, fallback.New(catalog),
		ai.WithLogger(logger.Named("ai")),
		ai.WithSettings(backends.Settings{
			MaxTokens:   cfg.AI.MaxTokens,
			Temperature: cfg.AI.Temperature,
			Timeout:     cfg.AI.Timeout,
		}),
	)

	engine, err := infra.NewPDFEngine(cfg.Renderer.Engine, cfg.Renderer.ChromePath, cfg.Renderer.Timeout)
	if err != nil {
		return nil, err
	}
	renderer, err := render.New(engine, logger.Named("render"))
	if err != nil {
		return nil, err
	}

	if _, ok := registry.Lookup(cfg.AI.DefaultBackend); !ok {
		return nil, fmt.Errorf("default backend %q is not in the registry", cfg.AI.DefaultBackend)
	}

	return &App{
		Registry:  registry,
		Service:   svc,
		Renderer:  renderer,
		Processor: usecase.NewProcessor(svc, renderer, outDir, logger.Named("usecase")).WithDefaults(usecase.Defaults{
			Backend: cfg.AI.DefaultBackend,
			Model:   cfg.AI.DefaultModel,
			Theme:   cfg.Renderer.DefaultTheme,
		}),
	}, nil
}
