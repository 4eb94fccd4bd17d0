package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Register mounts every route on app.
func (h *Handler) Register(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestLogger(h.logger))

	app.Get("/healthz", h.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")
	api.Get("/backends", h.ListBackends)
	api.Post("/cv/validate", h.ValidateForm)
	api.Post("/cv/content", h.GenerateContent)
	api.Post("/cv/render", h.RenderCV)
}

func requestLogger(l *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		l.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("elapsed", time.Since(start)),
		)
		return err
	}
}
