package resumeapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jinhyuk-lee/resumate/wizard/resume"
	"github.com/jinhyuk-lee/resumate/wizard/resume/resumesrv"
)

type Handlers struct {
	service  *resumesrv.Service
	validate *validator.Validate
}

func NewHandlers(service *resumesrv.Service) *Handlers {
	return &Handlers{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the resume generation route
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	app.Post("/api/generate-resume", handlers.GenerateResume)
}

// GenerateResume generates a tailored resume and returns the raw provider text
// POST /api/generate-resume
func (h *Handlers) GenerateResume(c *fiber.Ctx) error {
	var req resume.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return resume.ErrMissingInput()
	}
	if err := h.validate.Struct(req); err != nil {
		return resume.ErrMissingInput()
	}

	data, err := h.service.Generate(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(resume.GenerateResponse{Data: data})
}
