package http

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"cv-builder/internal/domain"
	"cv-builder/internal/model"
	"cv-builder/internal/render"
	"cv-builder/internal/usecase"
	"cv-builder/internal/validator"
	"cv-builder/pkg/ai/backends"
)

// KeyResolver reports which key a backend would use, without exposing it.
type KeyResolver interface {
	ResolveKey(spec backends.Spec, explicit string) string
}

// headerMessage carries the success message, percent-encoded since it is
// Spanish text.
const headerMessage = "X-CV-Message"

type Handler struct {
	processor *usecase.Processor
	registry  *backends.Registry
	keys      KeyResolver
	logger    *zap.Logger
}

func NewHandler(p *usecase.Processor, registry *backends.Registry, keys KeyResolver, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{processor: p, registry: registry, keys: keys, logger: logger}
}

type cvRequest struct {
	Candidate model.CandidateInput `json:"candidate"`
	Backend   string               `json:"backend,omitempty"`
	Model     string               `json:"model,omitempty"`
	APIKey    string               `json:"api_key,omitempty"`
	Theme     string               `json:"theme,omitempty"`
	Content   *model.StructuredCV  `json:"content,omitempty"`
}

type backendView struct {
	backends.Spec
	PricingLabel string `json:"pricing_label"`
	Configured   bool   `json:"configured"`
}

func (h *Handler) parse(c *fiber.Ctx) (*domain.CVJob, error) {
	var req cvRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, err
	}
	job := domain.NewCVJob(req.Candidate, req.Backend, req.Model, req.APIKey, req.Theme)
	job.Content = req.Content
	return job, nil
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) ListBackends(c *fiber.Ctx) error {
	specs := h.registry.All()
	out := make([]backendView, 0, len(specs))
	for _, s := range specs {
		out = append(out, backendView{
			Spec:         s,
			PricingLabel: s.Pricing.Label(),
			Configured:   !s.RequiresKey || h.keys.ResolveKey(s, "") != "",
		})
	}
	return c.JSON(fiber.Map{
		"backends": out,
		"free":     ids(h.registry.Free()),
		"paid":     ids(h.registry.Paid()),
		"default":  h.processor.Defaults().Backend,
	})
}

func ids(specs []backends.Spec) []string {
	out := make([]string, 0, len(specs))
	for _, s := range specs {
		out = append(out, s.ID)
	}
	return out
}

// ValidateForm checks the form only. Backend problems are reported as a
// warning because generation falls back to template content anyway.
func (h *Handler) ValidateForm(c *fiber.Ctx) error {
	job, err := h.parse(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := h.processor.Validate(job); err != nil {
		return h.fail(c, err)
	}
	resp := fiber.Map{"valid": true}
	spec, known := h.registry.Lookup(job.Backend)
	key := ""
	if known {
		key = h.keys.ResolveKey(spec, job.APIKey)
	}
	if err := validator.CheckAPIKey(known, spec.RequiresKey, spec.Name, key); err != nil {
		resp["warning"] = err.Error()
	} else if job.Model != "" && !spec.HasModel(job.Model) {
		resp["warning"] = fmt.Sprintf("El modelo %s no está disponible para %s.", job.Model, spec.Name)
	}
	return c.JSON(resp)
}

func (h *Handler) GenerateContent(c *fiber.Ctx) error {
	job, err := h.parse(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	cv, err := h.processor.Content(c.UserContext(), job)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"id": job.ID.String(), "content": cv, "message": job.Message})
}

func (h *Handler) RenderCV(c *fiber.Ctx) error {
	job, err := h.parse(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	pdf, err := h.processor.Process(c.UserContext(), job)
	if err != nil {
		return h.fail(c, err)
	}
	c.Attachment(usecase.DownloadName(job.Candidate.Name))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set("X-CV-Job", job.ID.String())
	c.Set(headerMessage, url.PathEscape(job.Message))
	return c.Send(pdf)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	var verr *validator.Error
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"valid": false, "field": verr.Field, "error": verr.Message})
	case errors.Is(err, render.ErrUnknownTheme):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, render.ErrMissingName):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	h.logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "document generation failed"})
}
