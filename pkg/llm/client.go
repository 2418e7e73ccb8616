package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	// ClaudeAPIEndpoint is the Anthropic API endpoint.
	ClaudeAPIEndpoint = "https://api.anthropic.com/v1/messages"
	// ClaudeModel is the model to use.
	ClaudeModel = "claude-sonnet-4-20250514"
	// ClaudeAPIVersion is the API version.
	ClaudeAPIVersion = "2023-06-01"
	// MaxTokens bounds every enhancement reply.
	MaxTokens = 1000
	// RequestTimeout bounds a single provider call.
	RequestTimeout = 60 * time.Second
)

// Client represents a Claude API client.
type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
	endpoint   string
	now        func() time.Time
}

// NewClient creates a new Claude API client.
func NewClient(apiKey, model string) (client *Client) {
	if model == "" {
		model = ClaudeModel
	}
	client = &Client{
		apiKey:   apiKey,
		model:    model,
		endpoint: ClaudeAPIEndpoint,
		httpClient: &http.Client{
			Timeout: RequestTimeout,
		},
		now: time.Now,
	}
	return client
}

// Enhance sends the prompt for req and returns the trimmed reply.
func (c *Client) Enhance(ctx context.Context, req Request) (text string, err error) {
	if req.Hints.ReferenceYear == 0 {
		req.Hints.ReferenceYear = c.now().Year()
	}

	var prompt string
	prompt, err = BuildPrompt(req)
	if err != nil {
		return text, err
	}

	var responseText string
	responseText, err = c.sendRequest(ctx, prompt)
	if err != nil {
		err = errors.Wrapf(err, "%s request failed", req.Kind)
		return text, err
	}

	text = cleanReply(responseText)
	if text == "" {
		err = errors.Errorf("empty %s reply", req.Kind)
		return text, err
	}

	return text, err
}

// sendRequest sends a request to Claude API.
func (c *Client) sendRequest(ctx context.Context, prompt string) (responseText string, err error) {
	claudeReq := ClaudeRequest{
		Model:     c.model,
		MaxTokens: MaxTokens,
		Messages: []Message{
			{
				Role:    "user",
				Content: prompt,
			},
		},
	}

	var reqBody []byte
	reqBody, err = json.Marshal(claudeReq)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal request")
		return responseText, err
	}

	var httpReq *http.Request
	httpReq, err = http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return responseText, err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Api-Key", c.apiKey)
	httpReq.Header.Set("Anthropic-Version", ClaudeAPIVersion)

	var resp *http.Response
	resp, err = c.httpClient.Do(httpReq)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return responseText, err
	}
	defer resp.Body.Close()

	var respBody []byte
	respBody, err = io.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return responseText, err
	}

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("API request failed with status %d: %s", resp.StatusCode, string(respBody))
		return responseText, err
	}

	var claudeResp ClaudeResponse
	err = json.Unmarshal(respBody, &claudeResp)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse Claude response: %s", string(respBody))
		return responseText, err
	}

	if len(claudeResp.Content) == 0 {
		err = errors.New("no content in Claude response")
		return responseText, err
	}

	if claudeResp.Content[0].Type != "" && claudeResp.Content[0].Type != "text" {
		err = errors.Errorf("unexpected content type %q in Claude response", claudeResp.Content[0].Type)
		return responseText, err
	}

	responseText = claudeResp.Content[0].Text

	return responseText, err
}

// cleanReply trims the reply and drops a surrounding code fence if the model added one.
func cleanReply(text string) (cleaned string) {
	cleaned = strings.TrimSpace(text)

	if strings.HasPrefix(cleaned, "```") && strings.HasSuffix(cleaned, "```") && len(cleaned) > 6 {
		inner := cleaned[3 : len(cleaned)-3]
		// Drop the info string on the opening fence line.
		if i := strings.IndexByte(inner, '\n'); i >= 0 {
			inner = inner[i+1:]
		}
		cleaned = strings.TrimSpace(inner)
	}

	return cleaned
}
