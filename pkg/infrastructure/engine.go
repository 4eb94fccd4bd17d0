package infrastructure

import (
	"context"
	"fmt"
	"time"
)

const (
	EngineChromedp   = "chromedp"
	EnginePlaywright = "playwright"
)

// PDFEngine is what the document renderer needs from a browser backend.
type PDFEngine interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// NewPDFEngine picks the engine by name.
func NewPDFEngine(name, chromePath string, timeout time.Duration) (PDFEngine, error) {
	switch name {
	case "", EngineChromedp:
		return NewChromedpRenderer(chromePath, timeout), nil
	case EnginePlaywright:
		return NewPlaywrightRenderer(timeout), nil
	}
	return nil, fmt.Errorf("unknown pdf engine %q", name)
}
