package llm

import (
	"context"

	"github.com/pkg/errors"
)

const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// Options select and authenticate an enhancement provider.
type Options struct {
	Provider string
	APIKey   string
	Model    string
}

// NewEnhancer builds the enhancer for opts.Provider, defaulting to Anthropic.
func NewEnhancer(ctx context.Context, opts Options) (enhancer Enhancer, err error) {
	if opts.APIKey == "" {
		err = ErrNotConfigured
		return enhancer, err
	}

	switch opts.Provider {
	case "", ProviderAnthropic:
		enhancer = NewClient(opts.APIKey, opts.Model)
	case ProviderGemini:
		var gemini *GeminiClient
		gemini, err = NewGeminiClient(ctx, opts.APIKey, opts.Model)
		if err != nil {
			return enhancer, err
		}
		enhancer = gemini
	default:
		err = errors.Errorf("unknown provider %q", opts.Provider)
	}

	return enhancer, err
}
