// Package ai turns candidate data into StructuredCV content by prompting one
// of the registered backends, and falls back to template content whenever the
// backend cannot deliver a valid reply.
package ai

import (
	"context"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"cv-builder/internal/metrics"
	"cv-builder/internal/model"
	"cv-builder/pkg/ai/backends"
)

// Fallback produces content without any network access.
type Fallback interface {
	Generate(in model.CandidateInput) model.StructuredCV
}

// Factory builds the backend for a registry entry.
type Factory func(spec backends.Spec, settings backends.Settings) (backends.Backend, error)

type Service struct {
	registry   *backends.Registry
	fallback   Fallback
	settings   backends.Settings
	newBackend Factory
	lookupEnv  func(string) string
	logger     *zap.Logger
}

type Option func(*Service)

func WithSettings(s backends.Settings) Option { return func(svc *Service) { svc.settings = s } }

func WithLogger(l *zap.Logger) Option { return func(svc *Service) { svc.logger = l } }

// WithFactory replaces backend construction, mainly for tests.
func WithFactory(f Factory) Option { return func(svc *Service) { svc.newBackend = f } }

// WithEnv replaces os.Getenv for API key lookup.
func WithEnv(lookup func(string) string) Option { return func(svc *Service) { svc.lookupEnv = lookup } }

func NewService(registry *backends.Registry, fallback Fallback, opts ...Option) *Service {
	s := &Service{
		registry:   registry,
		fallback:   fallback,
		settings:   backends.DefaultSettings(),
		newBackend: backends.New,
		lookupEnv:  os.Getenv,
		logger:     zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) Registry() *backends.Registry { return s.registry }

// ResolveKey returns the explicit key when given, else the value of the
// backend's key environment variable.
func (s *Service) ResolveKey(spec backends.Spec, explicit string) string {
	if k := strings.TrimSpace(explicit); k != "" {
		return k
	}
	if spec.KeyEnv == "" {
		return ""
	}
	return strings.TrimSpace(s.lookupEnv(spec.KeyEnv))
}

// Generate never fails: any problem with the backend yields fallback content.
func (s *Service) Generate(ctx context.Context, in model.CandidateInput, backendID, modelID, apiKey string) model.StructuredCV {
	cv, reason := s.generate(ctx, in, backendID, modelID, apiKey)
	if reason == "" {
		metrics.ContentGenerations.WithLabelValues(backendID, metrics.SourceAI).Inc()
		return cv
	}
	metrics.ContentGenerations.WithLabelValues(backendID, metrics.SourceFallback).Inc()
	metrics.FallbackReasons.WithLabelValues(backendID, reason).Inc()
	return s.fallback.Generate(in)
}

// generate returns the parsed reply, or a non-empty fallback reason.
func (s *Service) generate(ctx context.Context, in model.CandidateInput, backendID, modelID, apiKey string) (model.StructuredCV, string) {
	log := s.logger.With(zap.String("backend", backendID))

	spec, ok := s.registry.Lookup(backendID)
	if !ok {
		log.Warn("unknown backend, using template content")
		return model.StructuredCV{}, "unknown_backend"
	}
	key := s.ResolveKey(spec, apiKey)
	if spec.RequiresKey && key == "" {
		log.Warn("no api key available, using template content", zap.String("key_env", spec.KeyEnv))
		return model.StructuredCV{}, "missing_key"
	}
	if modelID == "" {
		modelID = spec.DefaultModel()
	}
	log = log.With(zap.String("model", modelID))

	backend, err := s.newBackend(spec, s.settings)
	if err != nil {
		log.Error("backend construction failed", zap.Error(err))
		return model.StructuredCV{}, "unsupported"
	}

	ctx, cancel := context.WithTimeout(ctx, s.settings.TimeoutFor(spec))
	defer cancel()

	start := time.Now()
	reply, err := backend.Send(ctx, BuildPrompt(in), modelID, key)
	metrics.BackendDuration.WithLabelValues(backendID).Observe(time.Since(start).Seconds())
	if err != nil {
		log.Warn("backend call failed, using template content", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return model.StructuredCV{}, "transport"
	}

	reply = strings.TrimSpace(reply)
	switch reply {
	case backends.MockReply:
		log.Debug("mock reply, using template content")
		return model.StructuredCV{}, "mock"
	case "":
		log.Info("backend returned no content, using template content")
		return model.StructuredCV{}, "empty_reply"
	}

	cv, err := model.ParseStructuredCV([]byte(cleanReply(reply)))
	if err != nil {
		log.Warn("backend reply rejected, using template content", zap.Error(err), zap.Int("reply_bytes", len(reply)))
		return model.StructuredCV{}, "invalid_reply"
	}
	log.Info("content generated", zap.Duration("elapsed", time.Since(start)))
	return cv, ""
}
