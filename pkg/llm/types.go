package llm

import (
	"context"

	"github.com/pkg/errors"
)

// Kind selects which enhancement prompt is sent.
type Kind string

const (
	KindEnhanceExperience     Kind = "enhance_experience"
	KindSuggestSkills         Kind = "suggest_skills"
	KindOptimizeEducation     Kind = "optimize_education"
	KindGenerateSummary       Kind = "generate_summary"
	KindImproveQualifications Kind = "improve_qualifications"
)

// DefaultAge is assumed when the caller does not know the user's age.
const DefaultAge = 30

var (
	// ErrInvalidKind is returned for an enhancement type outside the known set.
	ErrInvalidKind = errors.New("invalid enhancement type")
	// ErrNotConfigured is returned when no provider credentials are available.
	ErrNotConfigured = errors.New("text enhancer is not configured")
)

// Kinds returns every supported enhancement type.
func Kinds() (kinds []Kind) {
	kinds = []Kind{
		KindEnhanceExperience,
		KindSuggestSkills,
		KindOptimizeEducation,
		KindGenerateSummary,
		KindImproveQualifications,
	}
	return kinds
}

// ParseKind validates a wire value.
func ParseKind(s string) (kind Kind, err error) {
	for _, k := range Kinds() {
		if string(k) == s {
			kind = k
			return kind, err
		}
	}
	err = errors.Wrapf(ErrInvalidKind, "%q", s)
	return kind, err
}

// Hints carry what is known about the user beyond the text being enhanced.
type Hints struct {
	Age           int    `json:"age,omitempty"`
	ReferenceYear int    `json:"-"`
	Experience    string `json:"experience,omitempty"`
	Education     string `json:"education,omitempty"`
	Skills        string `json:"skills,omitempty"`
}

// Request is one enhancement call.
type Request struct {
	Kind  Kind   `json:"type"`
	Input string `json:"input"`
	Hints Hints  `json:"userInfo"`
}

// Enhancer rewrites résumé text. Implementations return replacement text only.
type Enhancer interface {
	Enhance(ctx context.Context, req Request) (text string, err error)
}

// ClaudeRequest represents the Claude API request format.
type ClaudeRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []Message `json:"messages"`
}

// ClaudeResponse represents the Claude API response format.
type ClaudeResponse struct {
	ID      string    `json:"id"`
	Type    string    `json:"type"`
	Role    string    `json:"role"`
	Content []Content `json:"content"`
	Model   string    `json:"model"`
	Usage   Usage     `json:"usage"`
}

// Message represents a message in the conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Content represents content in the response.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Usage represents token usage information.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}
