package companyapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jinhyuk-lee/resumate/wizard/company"
	"github.com/jinhyuk-lee/resumate/wizard/company/companysrv"
)

type Handlers struct {
	service  *companysrv.Service
	validate *validator.Validate
}

func NewHandlers(service *companysrv.Service) *Handlers {
	return &Handlers{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the company research route
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	app.Post("/api/company-research", handlers.ResearchCompany)
}

// ResearchCompany runs company research and returns the raw provider text
// POST /api/company-research
func (h *Handlers) ResearchCompany(c *fiber.Ctx) error {
	var req company.ResearchRequest
	if err := c.BodyParser(&req); err != nil {
		return company.ErrMissingCompany()
	}
	if err := h.validate.Struct(req); err != nil {
		return company.ErrMissingCompany()
	}

	result, err := h.service.Research(c.Context(), req.Company)
	if err != nil {
		return err
	}

	return c.JSON(company.ResearchResponse{Data: result.RawText})
}
