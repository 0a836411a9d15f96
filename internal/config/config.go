package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

const (
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"

	GroqCompletionURL   = "https://api.groq.com/openai/v1/chat/completions"
	OpenAICompletionURL = "https://api.openai.com/v1/chat/completions"
)

type Config struct {
	Env            string `env:"ENV" envDefault:"development"`
	ServiceName    string `env:"SERVICE_NAME" envDefault:"pantry"`
	ServiceVersion string `env:"SERVICE_VERSION" envDefault:"1.0.0"`
	Port           string `env:"PORT" envDefault:"5000"`
	ConfigFile     string `env:"CONFIG_FILE" envDefault:"config.yaml"`

	Database   DatabaseConfig
	Completion CompletionConfig

	OtelExporterOTLPEndpoint string            `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelExporterOTLPHeaders  map[string]string `env:"OTEL_EXPORTER_OTLP_HEADERS" envKeyValSeparator:"="`
	SentryDSN                string            `env:"SENTRY_DSN"`
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"root"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" envDefault:"recipe_db"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// URL renders the settings as a postgres connection string.
func (d DatabaseConfig) URL() string {
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   "/" + d.Name,
	}
	if d.Password != "" {
		u.User = url.UserPassword(d.User, d.Password)
	} else {
		u.User = url.User(d.User)
	}
	if d.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{d.SSLMode}}.Encode()
	}
	return u.String()
}

type CompletionConfig struct {
	Provider    string        `env:"COMPLETION_PROVIDER" envDefault:"groq"`
	URL         string        `env:"COMPLETION_URL"`
	Model       string        `env:"COMPLETION_MODEL" envDefault:"llama-3.1-8b-instant"`
	Temperature float64       `env:"COMPLETION_TEMPERATURE" envDefault:"0.7"`
	MaxTokens   int           `env:"COMPLETION_MAX_TOKENS" envDefault:"800"`
	Timeout     time.Duration `env:"COMPLETION_TIMEOUT" envDefault:"0s"`

	GroqKey   string `env:"GROQ_API_KEY"`
	OpenAIKey string `env:"OPENAI_API_KEY"`
}

// APIKey returns the credential of the selected provider.
func (c CompletionConfig) APIKey() string {
	if c.Provider == ProviderOpenAI {
		return c.OpenAIKey
	}
	return c.GroqKey
}

// Endpoint returns the chat completion URL, falling back to the provider default.
func (c CompletionConfig) Endpoint() string {
	if c.URL != "" {
		return c.URL
	}
	if c.Provider == ProviderOpenAI {
		return OpenAICompletionURL
	}
	return GroqCompletionURL
}

// Load reads the environment once and returns the process configuration.
// Callers receive a copy; nothing in the process mutates it afterwards.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.LoadFromYAML(cfg.ConfigFile); err != nil {
		return Config{}, fmt.Errorf("failed to load YAML config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// completionOverlay uses pointers so an explicit zero in the file still applies.
type completionOverlay struct {
	Provider    string         `yaml:"provider"`
	URL         string         `yaml:"url"`
	Model       string         `yaml:"model"`
	Temperature *float64       `yaml:"temperature"`
	MaxTokens   *int           `yaml:"max_tokens"`
	Timeout     *time.Duration `yaml:"timeout"`
}

// LoadFromYAML overlays the completion block of a YAML file. A missing file is ignored.
func (c *Config) LoadFromYAML(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var yamlConfig struct {
		Completion completionOverlay `yaml:"completion"`
	}

	if err := yaml.Unmarshal(data, &yamlConfig); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	overlay := yamlConfig.Completion
	if overlay.Provider != "" {
		c.Completion.Provider = overlay.Provider
	}
	if overlay.URL != "" {
		c.Completion.URL = overlay.URL
	}
	if overlay.Model != "" {
		c.Completion.Model = overlay.Model
	}
	if overlay.Temperature != nil {
		c.Completion.Temperature = *overlay.Temperature
	}
	if overlay.MaxTokens != nil {
		c.Completion.MaxTokens = *overlay.MaxTokens
	}
	if overlay.Timeout != nil {
		c.Completion.Timeout = *overlay.Timeout
	}

	return nil
}

func (c *Config) validate() error {
	switch c.Completion.Provider {
	case ProviderGroq:
		if c.Completion.GroqKey == "" {
			return fmt.Errorf("GROQ_API_KEY is required")
		}
	case ProviderOpenAI:
		if c.Completion.OpenAIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required")
		}
	default:
		return fmt.Errorf("unsupported completion provider %q", c.Completion.Provider)
	}
	if c.Completion.Temperature < 0 || c.Completion.Temperature > 2 {
		return fmt.Errorf("completion temperature must be within [0, 2], got %v", c.Completion.Temperature)
	}
	if c.Completion.MaxTokens <= 0 {
		return fmt.Errorf("completion max tokens must be positive, got %d", c.Completion.MaxTokens)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	return nil
}
