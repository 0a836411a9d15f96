package recipe

import (
	"github.com/socialchef/pantry/internal/config"
	"github.com/socialchef/pantry/internal/httpclient"
	"github.com/socialchef/pantry/internal/services/completion"
)

// NewProvider creates the completion provider selected by the configuration.
// Groq is the default; OpenAI speaks the same chat completions protocol.
func NewProvider(cfg config.CompletionConfig) CompletionProvider {
	name := "Groq"
	if cfg.Provider == config.ProviderOpenAI {
		name = "OpenAI"
	}

	return completion.NewClient(completion.Options{
		Name:        name,
		URL:         cfg.Endpoint(),
		APIKey:      cfg.APIKey(),
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		HTTPClient:  httpclient.NewInstrumentedClient(cfg.Timeout),
	})
}
