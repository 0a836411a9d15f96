package recipe

import (
	"testing"

	"github.com/socialchef/pantry/internal/config"
	"github.com/socialchef/pantry/internal/services/completion"
)

func TestFactory_Groq(t *testing.T) {
	cfg := config.CompletionConfig{
		Provider: "groq",
		GroqKey:  "test-groq-key",
	}

	provider := NewProvider(cfg)

	if _, ok := provider.(*completion.Client); !ok {
		t.Errorf("Expected completion.Client, got %T", provider)
	}
	if provider.Name() != "Groq" {
		t.Errorf("Expected provider name 'Groq', got '%s'", provider.Name())
	}
}

func TestFactory_OpenAI(t *testing.T) {
	cfg := config.CompletionConfig{
		Provider:  "openai",
		OpenAIKey: "test-openai-key",
	}

	provider := NewProvider(cfg)

	if provider.Name() != "OpenAI" {
		t.Errorf("Expected provider name 'OpenAI', got '%s'", provider.Name())
	}
}

func TestFactory_Default(t *testing.T) {
	provider := NewProvider(config.CompletionConfig{})

	if provider.Name() != "Groq" {
		t.Errorf("Expected default provider name 'Groq', got '%s'", provider.Name())
	}
}
