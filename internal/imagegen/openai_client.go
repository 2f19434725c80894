package imagegen

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"pixelforge/internal/domain"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "dall-e-3"

	qualityStandard = "standard"
	formatURL       = "url"
)

type OpenAIOptions struct {
	BaseURL      string
	Organization string
	Model        string
	HTTPClient   *http.Client
}

// OpenAIClient calls the OpenAI images endpoint. The API key is supplied per
// call so a key added while the server runs is used by the next request.
type OpenAIClient struct {
	baseURL    string
	org        string
	model      string
	httpClient *http.Client
}

func NewOpenAIClient(opts OpenAIOptions) *OpenAIClient {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = DefaultModel
	}
	return &OpenAIClient{
		baseURL:    base + "/",
		org:        strings.TrimSpace(opts.Organization),
		model:      model,
		httpClient: opts.HTTPClient,
	}
}

// Generate issues exactly one generation request and returns the hosted URL.
func (c *OpenAIClient) Generate(ctx context.Context, apiKey string, req Request) (string, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return "", domain.ErrInvalidPrompt
	}

	client := openai.NewClient(c.requestOptions(apiKey)...)
	params := openai.ImageGenerateParams{
		Model:          openai.ImageModel(c.model),
		Prompt:         ComposePrompt(req.Prompt, req.Style),
		N:              openai.Int(1),
		Size:           openai.ImageGenerateParamsSize(NormalizeSize(req.Size)),
		Quality:        openai.ImageGenerateParamsQuality(qualityStandard),
		ResponseFormat: openai.ImageGenerateParamsResponseFormat(formatURL),
	}

	resp, err := client.Images.Generate(ctx, params)
	if err != nil {
		return "", wrapError(err)
	}
	if resp == nil || len(resp.Data) == 0 || strings.TrimSpace(resp.Data[0].URL) == "" {
		return "", domain.ErrEmptyResult
	}
	return resp.Data[0].URL, nil
}

func (c *OpenAIClient) requestOptions(apiKey string) []option.RequestOption {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(c.baseURL),
		option.WithMaxRetries(0),
	}
	if c.org != "" {
		opts = append(opts, option.WithOrganization(c.org))
	}
	if c.httpClient != nil {
		opts = append(opts, option.WithHTTPClient(c.httpClient))
	}
	return opts
}

// wrapError flags provider rejections of the key so callers can offer setup
// instructions.
func wrapError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return domain.NewGenerationError(err, true)
		}
	}
	return domain.NewGenerationError(err, false)
}

var _ Generator = (*OpenAIClient)(nil)
