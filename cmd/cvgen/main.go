package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"cv-builder/internal/app"
	"cv-builder/internal/config"
	"cv-builder/internal/domain"
	"cv-builder/internal/logger"
	"cv-builder/internal/model"
	"cv-builder/internal/render"
	"cv-builder/internal/validator"
)

func main() {
	var (
		input      = flag.StringP("input", "i", "candidate.json", "candidate form as JSON")
		configFile = flag.StringP("config", "c", "", "config file (default: ./configs/config.yaml when present)")
		backend    = flag.StringP("backend", "b", "", "content backend id (default from config)")
		modelID    = flag.StringP("model", "m", "", "backend model (default: first listed)")
		theme      = flag.StringP("theme", "t", "", "modern, executive, creative or technical")
		outDir     = flag.StringP("out", "o", "", "output directory (default from config)")
		preview    = flag.Bool("preview", false, "print the document text instead of writing a PDF")
		verbose    = flag.BoolP("verbose", "v", false, "debug logging")
	)
	flag.Parse()

	if err := run(*input, *configFile, *backend, *modelID, *theme, *outDir, *preview, *verbose); err != nil {
		var verr *validator.Error
		if errors.As(err, &verr) {
			fmt.Fprintln(os.Stderr, verr.Message)
			os.Exit(3)
		}
		fmt.Fprintf(os.Stderr, "cvgen: %v\n", err)
		os.Exit(2)
	}
}

func run(input, configFile, backend, modelID, theme, outDir string, preview, verbose bool) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	log := logger.Must(level, cfg.Logging.Format)
	defer log.Sync()

	b, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read candidate: %w", err)
	}
	var candidate model.CandidateInput
	if err := json.Unmarshal(b, &candidate); err != nil {
		return fmt.Errorf("decode candidate: %w", err)
	}

	if outDir == "" {
		outDir = cfg.Renderer.OutputDir
	}
	a, err := app.Build(cfg, log, outDir)
	if err != nil {
		return err
	}
	// keys come from the environment only; never from flags
	job := domain.NewCVJob(candidate, backend, modelID, "", theme)
	ctx := context.Background()

	if preview {
		return printPreview(ctx, a, job)
	}
	if _, err := a.Processor.Process(ctx, job); err != nil {
		return err
	}
	fmt.Println(job.Message)
	fmt.Printf("wrote %s\n", job.OutputPath)
	return nil
}

func printPreview(ctx context.Context, a *app.App, job *domain.CVJob) error {
	cv, err := a.Processor.Content(ctx, job)
	if err != nil {
		return err
	}
	t, err := render.ParseTheme(job.Theme)
	if err != nil {
		return err
	}
	html, err := a.Renderer.RenderHTML(job.Candidate, cv, t)
	if err != nil {
		return err
	}
	text, err := render.PlainText(html)
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}
