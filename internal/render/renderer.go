// Package render lays a StructuredCV out as an A4 document in one of the
// visual themes. HTML is built here; an Engine turns it into PDF.
package render

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cv-builder/internal/metrics"
	"cv-builder/internal/model"
)

var (
	ErrMissingName  = errors.New("render: candidate name is required")
	ErrUnknownTheme = errors.New("render: unknown theme")
	ErrInvalidPDF   = errors.New("render: engine output is not a PDF")
)

var pdfMagic = []byte("%PDF")

// Engine prints an HTML document to PDF bytes.
type Engine interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

//go:embed templates/cv.html.tmpl
var documentTemplate string

type Renderer struct {
	engine Engine
	tpl    *template.Template
	labels Labels
	logger *zap.Logger
}

func New(engine Engine, logger *zap.Logger) (*Renderer, error) {
	tpl, err := template.New("cv.html").Parse(documentTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse document template: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{engine: engine, tpl: tpl, labels: DefaultLabels(), logger: logger}, nil
}

type roleView struct {
	Heading string
	Bullets []string
}

type skillLine struct {
	Label string
	Items string
}

type documentView struct {
	Theme     Theme
	CSS       template.CSS
	Title     string
	Name      string
	Contact   []string
	Summary   string
	Roles     []roleView
	Education []string
	Skills    []skillLine
	Languages []string
	Labels    Labels
}

// RenderHTML builds the themed HTML document. Sections without content are
// left out entirely.
func (r *Renderer) RenderHTML(in model.CandidateInput, cv model.StructuredCV, theme Theme) (string, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return "", ErrMissingName
	}
	css, err := StyleOf(theme).CSS()
	if err != nil {
		return "", fmt.Errorf("render theme css: %w", err)
	}

	v := documentView{
		Theme:     theme,
		CSS:       template.CSS(css),
		Title:     name,
		Name:      strings.ToUpper(name),
		Contact:   nonBlank(in.Email, in.Phone, in.Location, in.ProfileURL),
		Summary:   strings.TrimSpace(cv.Summary),
		Roles:     roles(cv.Experience),
		Education: lines(in.Education),
		Skills:    r.skillLines(cv.Skills),
		Languages: lines(in.Languages),
		Labels:    r.labels,
	}

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("execute document template: %w", err)
	}
	return buf.String(), nil
}

// Render produces the PDF bytes of the document.
func (r *Renderer) Render(ctx context.Context, in model.CandidateInput, cv model.StructuredCV, theme Theme) ([]byte, error) {
	html, err := r.RenderHTML(in, cv, theme)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	pdf, err := r.engine.RenderHTMLToPDF(ctx, html)
	metrics.RenderDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RenderFailures.WithLabelValues(string(theme)).Inc()
		r.logger.Error("pdf conversion failed", zap.String("theme", string(theme)), zap.Error(err))
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	if !bytes.HasPrefix(pdf, pdfMagic) {
		metrics.RenderFailures.WithLabelValues(string(theme)).Inc()
		return nil, ErrInvalidPDF
	}
	metrics.DocumentsRendered.WithLabelValues(string(theme)).Inc()
	r.logger.Debug("document rendered", zap.String("theme", string(theme)), zap.Int("bytes", len(pdf)))
	return pdf, nil
}

// RenderToFile writes the PDF to a new uniquely named file in dir and
// returns its path.
func (r *Renderer) RenderToFile(ctx context.Context, in model.CandidateInput, cv model.StructuredCV, theme Theme, dir string) (string, error) {
	pdf, err := r.Render(ctx, in, cv, theme)
	if err != nil {
		return "", err
	}
	return WriteFile(dir, uuid.New(), pdf)
}

// WriteFile stores pdf as dir/cv-<id>.pdf, creating dir if needed.
func WriteFile(dir string, id uuid.UUID, pdf []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, "cv-"+id.String()+".pdf")
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	return path, nil
}

func (r *Renderer) skillLines(s model.Skills) []skillLine {
	var out []skillLine
	add := func(label string, items []string) {
		if items = nonBlank(items...); len(items) > 0 {
			out = append(out, skillLine{Label: label, Items: strings.Join(items, ", ")})
		}
	}
	add(r.labels.Technical, s.Technical)
	add(r.labels.Tools, s.Tools)
	add(r.labels.Soft, s.Soft)
	return out
}

func roles(in []model.Role) []roleView {
	out := make([]roleView, 0, len(in))
	for _, role := range in {
		heading := strings.Join(nonBlank(role.Title, role.Organization), " - ")
		if heading == "" {
			continue
		}
		if p := strings.TrimSpace(role.Period); p != "" {
			heading += " (" + p + ")"
		}
		out = append(out, roleView{Heading: heading, Bullets: nonBlank(role.Bullets...)})
	}
	return out
}

// lines splits raw multi-line text into its non-blank lines.
func lines(raw string) []string {
	return nonBlank(strings.Split(raw, "\n")...)
}

func nonBlank(values ...string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
