package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"cv-builder/internal/domain"
	"cv-builder/internal/metrics"
	"cv-builder/internal/model"
	"cv-builder/internal/render"
	"cv-builder/internal/validator"
)

// ContentGenerator never fails; it falls back to template content itself.
type ContentGenerator interface {
	Generate(ctx context.Context, in model.CandidateInput, backendID, modelID, apiKey string) model.StructuredCV
}

type DocumentRenderer interface {
	Render(ctx context.Context, in model.CandidateInput, cv model.StructuredCV, theme render.Theme) ([]byte, error)
}

// Defaults fill the job fields a request leaves empty. Model only applies
// when the job ends up on the default backend.
type Defaults struct {
	Backend string
	Model   string
	Theme   string
}

type Processor struct {
	content  ContentGenerator
	renderer DocumentRenderer
	outDir   string
	defaults Defaults
	logger   *zap.Logger
}

// NewProcessor wires the pipeline. outDir may be empty, in which case
// Process only returns the document bytes.
func NewProcessor(content ContentGenerator, renderer DocumentRenderer, outDir string, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{content: content, renderer: renderer, outDir: outDir, logger: logger}
}

// WithDefaults sets the values used for empty backend, model and theme.
func (p *Processor) WithDefaults(d Defaults) *Processor {
	p.defaults = d
	return p
}

func (p *Processor) Defaults() Defaults { return p.defaults }

// OutputDir is where Process writes documents; empty means nothing is written.
func (p *Processor) OutputDir() string { return p.outDir }

func (p *Processor) applyDefaults(job *domain.CVJob) {
	if job.Backend == "" {
		job.Backend = p.defaults.Backend
	}
	if job.Model == "" && job.Backend == p.defaults.Backend {
		job.Model = p.defaults.Model
	}
	if job.Theme == "" {
		job.Theme = p.defaults.Theme
	}
}

// Validate rejects the job before any work is done. Rejections are
// *validator.Error values.
func (p *Processor) Validate(job *domain.CVJob) error {
	p.applyDefaults(job)
	if err := validator.ValidateCandidate(job.Candidate); err != nil {
		var verr *validator.Error
		if errors.As(err, &verr) {
			metrics.ValidationRejections.WithLabelValues(verr.Field).Inc()
		}
		job.SetStatus(domain.StatusRejected)
		return err
	}
	return nil
}

// Content validates the job and fills job.Content unless it is already set.
func (p *Processor) Content(ctx context.Context, job *domain.CVJob) (model.StructuredCV, error) {
	if err := p.Validate(job); err != nil {
		return model.StructuredCV{}, err
	}
	if job.Content == nil {
		cv := p.content.Generate(ctx, job.Candidate, job.Backend, job.Model, job.APIKey)
		job.Content = &cv
	}
	job.Message = SuccessMessage(job.Backend, job.Content.Summary)
	return *job.Content, nil
}

// Process runs validation, content generation and rendering, and writes the
// document to the output directory when one is configured.
func (p *Processor) Process(ctx context.Context, job *domain.CVJob) ([]byte, error) {
	p.applyDefaults(job)
	log := p.logger.With(zap.String("job_id", job.ID.String()), zap.String("backend", job.Backend))

	theme, err := render.ParseTheme(job.Theme)
	if err != nil {
		job.SetStatus(domain.StatusRejected)
		return nil, err
	}

	cv, err := p.Content(ctx, job)
	if err != nil {
		log.Info("job rejected", zap.Error(err))
		return nil, err
	}

	start := time.Now()
	pdf, err := p.renderer.Render(ctx, job.Candidate, cv, theme)
	if err != nil {
		job.SetStatus(domain.StatusFailed)
		log.Error("render failed", zap.Error(err))
		return nil, err
	}

	if p.outDir != "" {
		path, err := render.WriteFile(p.outDir, job.ID, pdf)
		if err != nil {
			job.SetStatus(domain.StatusFailed)
			log.Error("write failed", zap.Error(err))
			return nil, err
		}
		job.OutputPath = path
	}

	job.Metadata["theme"] = string(theme)
	job.Metadata["bytes"] = len(pdf)
	job.Metadata["render_ms"] = time.Since(start).Milliseconds()
	job.SetStatus(domain.StatusCompleted)
	log.Info("cv generated", zap.String("theme", string(theme)), zap.Int("bytes", len(pdf)), zap.String("output", job.OutputPath))
	return pdf, nil
}
