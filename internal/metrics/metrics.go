package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

var (
	ContentGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cv_content_generations_total",
			Help: "Structured CV generations by backend and by where the content came from",
		},
		[]string{"backend", "source"},
	)

	FallbackReasons = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cv_content_fallbacks_total",
			Help: "Fallbacks to template content by reason",
		},
		[]string{"backend", "reason"},
	)

	BackendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cv_backend_request_duration_seconds",
			Help:    "Duration of content backend calls in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"backend"},
	)

	DocumentsRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cv_documents_rendered_total",
			Help: "Rendered CV documents by theme",
		},
		[]string{"theme"},
	)

	RenderFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cv_render_failures_total",
			Help: "Failed renders by theme",
		},
		[]string{"theme"},
	)

	RenderDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "cv_render_duration_seconds",
			Help: "Duration of HTML to PDF conversion in seconds",
		},
	)

	ValidationRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cv_validation_rejections_total",
			Help: "Rejected candidate forms by field",
		},
		[]string{"field"},
	)
)
