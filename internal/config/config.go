// ABOUTME: Centralized configuration for the vibe memory engine
// ABOUTME: Loads defaults, an optional config file, and environment variables via viper
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the memory and vibe engines. Keys in a
// config file use the lower-case environment variable names.
type Config struct {
	// Embedding tiers
	UseNetworkEmbeddings bool          `mapstructure:"use_network_embeddings"`
	OpenAIKey            string        `mapstructure:"openai_api_key"`
	EmbeddingModel       string        `mapstructure:"memory_embedding_model"`
	CompletionProvider   string        `mapstructure:"completion_provider"`
	CompletionKey        string        `mapstructure:"completion_api_key"`
	CompletionBaseURL    string        `mapstructure:"completion_base_url"`
	CompletionModel      string        `mapstructure:"completion_model"`
	AnthropicKey         string        `mapstructure:"anthropic_api_key"`
	Timeout              time.Duration `mapstructure:"openai_timeout"`
	MaxRetries           int           `mapstructure:"openai_max_retries"`
	RetryDelay           time.Duration `mapstructure:"openai_retry_delay"`
	FallbackDimension    int           `mapstructure:"fallback_dimension"`
	BatchSize            int           `mapstructure:"embedding_batch_size"`
	CacheSize            int64         `mapstructure:"embedding_cache_size"`

	// Search
	SearchThreshold  float64 `mapstructure:"search_threshold"`
	SearchMaxResults int     `mapstructure:"search_max_results"`

	// Vibes
	VibeEmbeddingMode   bool    `mapstructure:"vibe_embedding_mode"`
	VibeSimilarityFloor float64 `mapstructure:"vibe_similarity_floor"`
	VibeRecencyWeight   float64 `mapstructure:"vibe_recency_weight"`
	VibeWindowSize      int     `mapstructure:"vibe_window_size"`
	VibeLexiconPath     string  `mapstructure:"vibe_lexicon_path"`

	// Storage
	Backend       string `mapstructure:"memory_backend"`
	DBPath        string `mapstructure:"memory_db_path"`
	CharmHost     string `mapstructure:"charm_host"`
	CharmDBName   string `mapstructure:"charm_db"`
	CharmAutoSync bool   `mapstructure:"charm_auto_sync"`

	UserID   string `mapstructure:"memory_user_id"`
	LogLevel string `mapstructure:"log_level"`
}

// Completion providers
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("use_network_embeddings", false)
	v.SetDefault("openai_api_key", "")
	v.SetDefault("memory_embedding_model", "text-embedding-3-small")
	v.SetDefault("completion_provider", ProviderOpenAI)
	v.SetDefault("completion_api_key", "")
	v.SetDefault("completion_base_url", "")
	v.SetDefault("completion_model", "gpt-4o-mini")
	v.SetDefault("anthropic_api_key", "")
	v.SetDefault("openai_timeout", 30*time.Second)
	v.SetDefault("openai_max_retries", 3)
	v.SetDefault("openai_retry_delay", 2*time.Second)
	v.SetDefault("fallback_dimension", 20)
	v.SetDefault("embedding_batch_size", 10)
	v.SetDefault("embedding_cache_size", 1000)

	v.SetDefault("search_threshold", 0.7)
	v.SetDefault("search_max_results", 5)

	v.SetDefault("vibe_embedding_mode", false)
	v.SetDefault("vibe_similarity_floor", 0.3)
	v.SetDefault("vibe_recency_weight", 1.5)
	v.SetDefault("vibe_window_size", 10)
	v.SetDefault("vibe_lexicon_path", "")

	v.SetDefault("memory_backend", "sqlite")
	v.SetDefault("memory_db_path", "")
	v.SetDefault("charm_host", "cloud.charm.sh")
	v.SetDefault("charm_db", "vibes")
	v.SetDefault("charm_auto_sync", true)

	v.SetDefault("memory_user_id", "local")
	v.SetDefault("log_level", "info")
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile reads an optional YAML, TOML, or JSON file, then applies
// environment overrides
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.CompletionProvider = strings.ToLower(strings.TrimSpace(cfg.CompletionProvider))
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))

	return &cfg, cfg.Validate()
}

// Validate reports every out-of-range value at once
func (c *Config) Validate() error {
	var errs []error

	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		errs = append(errs, fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("OPENAI_TIMEOUT must be positive, got %v", c.Timeout))
	}
	if c.RetryDelay < 0 {
		errs = append(errs, fmt.Errorf("OPENAI_RETRY_DELAY cannot be negative, got %v", c.RetryDelay))
	}
	if c.CompletionProvider != ProviderOpenAI && c.CompletionProvider != ProviderAnthropic {
		errs = append(errs, fmt.Errorf("COMPLETION_PROVIDER must be openai or anthropic, got %q", c.CompletionProvider))
	}
	if c.FallbackDimension < 1 {
		errs = append(errs, fmt.Errorf("FALLBACK_DIMENSION must be positive, got %d", c.FallbackDimension))
	}
	if c.BatchSize < 1 {
		errs = append(errs, fmt.Errorf("EMBEDDING_BATCH_SIZE must be positive, got %d", c.BatchSize))
	}
	if c.CacheSize < 0 {
		errs = append(errs, fmt.Errorf("EMBEDDING_CACHE_SIZE cannot be negative, got %d", c.CacheSize))
	}
	if c.SearchThreshold < -1 || c.SearchThreshold > 1 {
		errs = append(errs, fmt.Errorf("SEARCH_THRESHOLD must be between -1 and 1, got %f", c.SearchThreshold))
	}
	if c.SearchMaxResults < 1 {
		errs = append(errs, fmt.Errorf("SEARCH_MAX_RESULTS must be positive, got %d", c.SearchMaxResults))
	}
	if c.VibeSimilarityFloor < 0 || c.VibeSimilarityFloor > 1 {
		errs = append(errs, fmt.Errorf("VIBE_SIMILARITY_FLOOR must be 0-1, got %f", c.VibeSimilarityFloor))
	}
	if c.VibeRecencyWeight < 0 {
		errs = append(errs, fmt.Errorf("VIBE_RECENCY_WEIGHT cannot be negative, got %f", c.VibeRecencyWeight))
	}
	if c.VibeWindowSize < 1 {
		errs = append(errs, fmt.Errorf("VIBE_WINDOW_SIZE must be positive, got %d", c.VibeWindowSize))
	}
	switch c.Backend {
	case "sqlite", "memory", "charm":
	default:
		errs = append(errs, fmt.Errorf("MEMORY_BACKEND must be sqlite, memory, or charm, got %q", c.Backend))
	}
	if strings.TrimSpace(c.UserID) == "" {
		errs = append(errs, fmt.Errorf("MEMORY_USER_ID cannot be empty"))
	}

	return errors.Join(errs...)
}

// CompletionAPIKey returns the key for the completion tier, falling back to
// the OpenAI key for OpenAI-compatible providers
func (c *Config) CompletionAPIKey() string {
	if c.CompletionProvider == ProviderAnthropic {
		if c.CompletionKey != "" {
			return c.CompletionKey
		}
		return c.AnthropicKey
	}
	if c.CompletionKey != "" {
		return c.CompletionKey
	}
	return c.OpenAIKey
}

// VibeEmbeddingsEnabled reports whether vibes use embedding mode. It needs
// network tiers; the offline hash carries no meaning.
func (c *Config) VibeEmbeddingsEnabled() bool {
	return c.VibeEmbeddingMode && c.UseNetworkEmbeddings
}
