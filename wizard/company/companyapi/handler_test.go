package companyapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jinhyuk-lee/resumate/pkg/errx"
	"github.com/jinhyuk-lee/resumate/wizard/company"
	"github.com/jinhyuk-lee/resumate/wizard/company/companysrv"
)

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*errx.Error); ok {
				return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
			}
			return fiber.DefaultErrorHandler(c, err)
		},
	})
	RegisterRoutes(app, NewHandlers(companysrv.NewService(nil)))
	return app
}

func TestResearchCompany_DemoMode(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodPost, "/api/company-research",
		strings.NewReader(`{"company": "네이버"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out company.ResearchResponse
	require.NoError(t, json.Unmarshal(payload, &out))
	assert.Contains(t, out.Data, "네이버 기업 정보 조사 결과")
}

func TestResearchCompany_MissingCompany(t *testing.T) {
	app := newTestApp()

	for _, body := range []string{`{}`, `{"company": ""}`, `not json`} {
		req := httptest.NewRequest(http.MethodPost, "/api/company-research", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body %q", body)
	}
}
