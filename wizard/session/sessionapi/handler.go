package sessionapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jinhyuk-lee/resumate/pkg/kernel"
	"github.com/jinhyuk-lee/resumate/wizard/session"
	"github.com/jinhyuk-lee/resumate/wizard/session/sessionsrv"
)

// Handlers provides HTTP handlers for wizard session operations
type Handlers struct {
	service  *sessionsrv.Service
	validate *validator.Validate
}

// NewHandlers creates a new session handlers instance
func NewHandlers(service *sessionsrv.Service) *Handlers {
	return &Handlers{
		service:  service,
		validate: validator.New(),
	}
}

// CreateSession starts a new wizard session
// POST /api/sessions
func (h *Handlers) CreateSession(c *fiber.Ctx) error {
	sess, err := h.service.CreateSession(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(session.ToSessionResponse(sess))
}

// GetSession retrieves the current session state
// GET /api/sessions/:id
func (h *Handlers) GetSession(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	sess, err := h.service.GetSession(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(session.ToSessionResponse(sess))
}

// GuardStep checks whether the session may enter a step
// GET /api/sessions/:id/steps/:step
func (h *Handlers) GuardStep(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}
	step := session.Step(c.Params("step"))

	target, err := h.service.GuardStep(c.Context(), id, step)
	if err != nil {
		return err
	}

	resp := session.GuardResponse{Step: step}
	if target != step {
		resp.Redirect = target
	}
	return c.JSON(resp)
}

// SubmitPersonalInfo stores the personal-info step and advances
// PUT /api/sessions/:id/personal-info
func (h *Handlers) SubmitPersonalInfo(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	var req session.SubmitPersonalInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return session.ErrInvalidData().WithDetail("parse_error", err.Error())
	}

	sess, err := h.service.SubmitPersonalInfo(c.Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(session.ToSessionResponse(sess))
}

// SubmitResumeInfo stores the target company and questions, then starts research
// PUT /api/sessions/:id/resume-info
func (h *Handlers) SubmitResumeInfo(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	var req session.SubmitResumeInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return session.ErrInvalidData().WithDetail("parse_error", err.Error())
	}
	if err := h.validate.Struct(req); err != nil {
		return session.ErrInvalidData().WithDetail("validation_error", err.Error())
	}

	sess, err := h.service.SubmitResumeInfo(c.Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(session.ToSessionResponse(sess))
}

// StartResearch re-enters company-loading; idempotent while research runs
// POST /api/sessions/:id/research
func (h *Handlers) StartResearch(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	sess, err := h.service.StartResearch(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(session.ToSessionResponse(sess))
}

// GetCompanyView returns the research output prepared for display
// GET /api/sessions/:id/company
func (h *Handlers) GetCompanyView(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	view, err := h.service.CompanyView(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// SelectJob records one posting out of the derived job list
// POST /api/sessions/:id/select-job
func (h *Handlers) SelectJob(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	var req session.SelectJobRequest
	if err := c.BodyParser(&req); err != nil {
		return session.ErrInvalidData().WithDetail("parse_error", err.Error())
	}
	if err := h.validate.Struct(req); err != nil {
		return session.ErrInvalidData().WithDetail("validation_error", err.Error())
	}

	sess, err := h.service.SelectJob(c.Context(), id, *req.JobIndex)
	if err != nil {
		return err
	}
	return c.JSON(session.ToSessionResponse(sess))
}

// CreateResume enters resume-loading and starts generation
// POST /api/sessions/:id/resume
func (h *Handlers) CreateResume(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	sess, err := h.service.CreateResume(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(session.ToSessionResponse(sess))
}

// GetResumeView returns the generated resume prepared for display
// GET /api/sessions/:id/resume
func (h *Handlers) GetResumeView(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	view, err := h.service.ResumeView(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// ExportResume downloads the generated resume as a markdown document
// GET /api/sessions/:id/resume/export
func (h *Handlers) ExportResume(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	filename, content, err := h.service.ExportMarkdown(c.Context(), id)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/markdown; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.SendString(content)
}

// Back navigates to an earlier step
// POST /api/sessions/:id/back
func (h *Handlers) Back(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	var req session.BackRequest
	if err := c.BodyParser(&req); err != nil {
		return session.ErrInvalidData().WithDetail("parse_error", err.Error())
	}
	if err := h.validate.Struct(req); err != nil {
		return session.ErrInvalidData().WithDetail("validation_error", err.Error())
	}

	sess, err := h.service.Back(c.Context(), id, req.Step)
	if err != nil {
		return err
	}
	return c.JSON(session.ToSessionResponse(sess))
}

// Reset clears the session back to its initial state
// POST /api/sessions/:id/reset
func (h *Handlers) Reset(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return err
	}

	sess, err := h.service.Reset(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(session.ToSessionResponse(sess))
}

func sessionID(c *fiber.Ctx) (kernel.SessionID, error) {
	id := kernel.SessionID(c.Params("id"))
	if id.IsEmpty() {
		return "", session.ErrSessionNotFound().WithDetail("id", "missing or empty")
	}
	return id, nil
}

// RegisterRoutes registers all wizard session routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/sessions")

	api.Post("/", handlers.CreateSession)
	api.Get("/:id", handlers.GetSession)
	api.Get("/:id/steps/:step", handlers.GuardStep)

	api.Put("/:id/personal-info", handlers.SubmitPersonalInfo)
	api.Put("/:id/resume-info", handlers.SubmitResumeInfo)

	api.Post("/:id/research", handlers.StartResearch)
	api.Get("/:id/company", handlers.GetCompanyView)
	api.Post("/:id/select-job", handlers.SelectJob)

	api.Post("/:id/resume", handlers.CreateResume)
	api.Get("/:id/resume", handlers.GetResumeView)
	api.Get("/:id/resume/export", handlers.ExportResume)

	api.Post("/:id/back", handlers.Back)
	api.Post("/:id/reset", handlers.Reset)
}
