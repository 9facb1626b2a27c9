// Package provider wraps the hosted LLM service behind a plain
// text-in/text-out call.
package provider

import (
	"context"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"
	"github.com/openai/openai-go/v3/shared/constant"
)

const DefaultModel = "gpt-5"

// Research calls can run web searches server-side and take a long time;
// the provider deadline is the only timeout in the system.
const requestTimeout = time.Hour

// Client completes prompts through the OpenAI Responses API with the
// web-search and code-interpreter tool affordances enabled. Calls are
// stateless and independent: single combined prompt in, plain text out.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a provider client. The model falls back to DefaultModel
// when empty.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithRequestTimeout(requestTimeout),
	)

	return &Client{
		client: &client,
		model:  model,
	}
}

// Complete sends a single instruction prompt and returns the concatenated
// output text. An empty response body is not an error.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Responses.New(ctx, responses.ResponseNewParams{
		Model: shared.ResponsesModel(c.model),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(prompt),
		},
		Reasoning: shared.ReasoningParam{
			Effort: shared.ReasoningEffortMedium,
		},
		Tools: []responses.ToolUnionParam{
			{
				OfWebSearchPreview: &responses.WebSearchPreviewToolParam{
					Type: responses.WebSearchPreviewToolTypeWebSearchPreview,
				},
			},
			{
				OfCodeInterpreter: &responses.ToolCodeInterpreterParam{
					Container: responses.ToolCodeInterpreterContainerUnionParam{
						OfCodeInterpreterContainerAuto: &responses.ToolCodeInterpreterContainerCodeInterpreterContainerAutoParam{
							Type: constant.Auto("auto"),
						},
					},
				},
			},
		},
	})
	if err != nil {
		return "", err
	}

	return resp.OutputText(), nil
}
