package infrastructure

import (
	"context"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// PlaywrightRenderer prints HTML through Playwright's Chromium. The driver and
// browser must be installed beforehand (playwright install chromium).
type PlaywrightRenderer struct {
	timeout time.Duration
}

func NewPlaywrightRenderer(timeout time.Duration) *PlaywrightRenderer {
	if timeout <= 0 {
		timeout = defaultTO
	}
	return &PlaywrightRenderer{timeout: timeout}
}

func (r *PlaywrightRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}
	defer pw.Stop()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
		Args:     []string{"--no-sandbox", "--disable-dev-shm-usage"},
	})
	if err != nil {
		return nil, fmt.Errorf("launch chromium: %w", err)
	}
	defer browser.Close()

	page, err := browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("new page: %w", err)
	}

	timeoutMs := float64(r.timeout.Milliseconds())
	if deadline, ok := ctx.Deadline(); ok {
		if left := float64(time.Until(deadline).Milliseconds()); left < timeoutMs {
			timeoutMs = left
		}
	}
	if err := page.SetContent(html, playwright.PageSetContentOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
		Timeout:   playwright.Float(timeoutMs),
	}); err != nil {
		return nil, fmt.Errorf("set content: %w", err)
	}

	margin := "2cm"
	pdf, err := page.PDF(playwright.PagePdfOptions{
		Format:            playwright.String("A4"),
		PrintBackground:   playwright.Bool(true),
		PreferCSSPageSize: playwright.Bool(true),
		Margin: &playwright.Margin{
			Top:    &margin,
			Bottom: &margin,
			Left:   &margin,
			Right:  &margin,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("print pdf: %w", err)
	}
	return pdf, nil
}
