package llm

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

// GeminiModel is the default Gemini model.
const GeminiModel = "gemini-2.5-flash"

// contentGenerator is the slice of the genai Models service the enhancer needs.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiClient enhances text through the Gemini API.
type GeminiClient struct {
	models  contentGenerator
	model   string
	timeout time.Duration
	now     func() time.Time
}

// NewGeminiClient creates a Gemini-backed enhancer.
func NewGeminiClient(ctx context.Context, apiKey, model string) (client *GeminiClient, err error) {
	if model == "" {
		model = GeminiModel
	}

	var gc *genai.Client
	gc, err = genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		err = errors.Wrap(err, "failed to create Gemini client")
		return client, err
	}

	client = &GeminiClient{
		models:  gc.Models,
		model:   model,
		timeout: RequestTimeout,
		now:     time.Now,
	}
	return client, err
}

// Enhance sends the prompt for req and returns the trimmed reply.
func (g *GeminiClient) Enhance(ctx context.Context, req Request) (text string, err error) {
	if req.Hints.ReferenceYear == 0 {
		req.Hints.ReferenceYear = g.now().Year()
	}

	var prompt string
	prompt, err = BuildPrompt(req)
	if err != nil {
		return text, err
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	var resp *genai.GenerateContentResponse
	resp, err = g.models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		MaxOutputTokens: MaxTokens,
	})
	if err != nil {
		err = errors.Wrapf(err, "%s request failed", req.Kind)
		return text, err
	}

	if resp == nil {
		err = errors.New("no content in Gemini response")
		return text, err
	}

	text = cleanReply(resp.Text())
	if text == "" {
		err = errors.Errorf("empty %s reply", req.Kind)
		return text, err
	}

	return text, err
}
