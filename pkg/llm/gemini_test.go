package llm

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	args := m.Called(ctx, model, contents, config)
	resp, _ := args.Get(0).(*genai.GenerateContentResponse)
	return resp, args.Error(1)
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: text}}}},
		},
	}
}

func newTestGemini(models contentGenerator) *GeminiClient {
	return &GeminiClient{
		models:  models,
		model:   GeminiModel,
		timeout: RequestTimeout,
		now:     func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) },
	}
}

func TestGeminiEnhance(t *testing.T) {
	gen := &mockGenerator{}
	gen.On("GenerateContent", mock.Anything, GeminiModel,
		mock.MatchedBy(func(contents []*genai.Content) bool {
			return len(contents) == 1 && strings.Contains(contents[0].Parts[0].Text, "2025年")
		}),
		mock.MatchedBy(func(cfg *genai.GenerateContentConfig) bool {
			return cfg.MaxOutputTokens == MaxTokens
		}),
	).Return(textResponse("  改善された職歴  \n"), nil).Once()

	text, err := newTestGemini(gen).Enhance(context.Background(), Request{
		Kind:  KindEnhanceExperience,
		Input: "営業",
	})
	require.NoError(t, err)
	assert.Equal(t, "改善された職歴", text)
	gen.AssertExpectations(t)
}

func TestGeminiEnhanceBoundsContext(t *testing.T) {
	gen := &mockGenerator{}
	gen.On("GenerateContent", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	}), mock.Anything, mock.Anything, mock.Anything).Return(textResponse("ok"), nil).Once()

	_, err := newTestGemini(gen).Enhance(context.Background(), Request{Kind: KindSuggestSkills, Input: "営業"})
	require.NoError(t, err)
	gen.AssertExpectations(t)
}

func TestGeminiEnhanceErrors(t *testing.T) {
	t.Run("provider failure", func(t *testing.T) {
		gen := &mockGenerator{}
		gen.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("quota exceeded")).Once()

		_, err := newTestGemini(gen).Enhance(context.Background(), Request{Kind: KindSuggestSkills, Input: "営業"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quota exceeded")
	})

	t.Run("empty reply", func(t *testing.T) {
		gen := &mockGenerator{}
		gen.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(&genai.GenerateContentResponse{}, nil).Once()

		_, err := newTestGemini(gen).Enhance(context.Background(), Request{Kind: KindSuggestSkills, Input: "営業"})
		assert.Error(t, err)
	})

	t.Run("invalid kind", func(t *testing.T) {
		gen := &mockGenerator{}

		_, err := newTestGemini(gen).Enhance(context.Background(), Request{Kind: "bogus"})
		assert.ErrorIs(t, err, ErrInvalidKind)
		gen.AssertNotCalled(t, "GenerateContent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestNewEnhancer(t *testing.T) {
	ctx := context.Background()

	_, err := NewEnhancer(ctx, Options{Provider: ProviderAnthropic})
	assert.ErrorIs(t, err, ErrNotConfigured)

	enhancer, err := NewEnhancer(ctx, Options{APIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &Client{}, enhancer)

	enhancer, err = NewEnhancer(ctx, Options{Provider: ProviderGemini, APIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &GeminiClient{}, enhancer)

	_, err = NewEnhancer(ctx, Options{Provider: "openai", APIKey: "k"})
	assert.Error(t, err)
}
