// ABOUTME: Wires configuration into embedding tiers, storage, and engines
// ABOUTME: Every command builds its dependencies here and closes them when done
package commands

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sashabaranov/go-openai"

	"github.com/harper/vibe-memory/internal/charm"
	"github.com/harper/vibe-memory/internal/config"
	"github.com/harper/vibe-memory/internal/core"
	"github.com/harper/vibe-memory/internal/embedding"
	"github.com/harper/vibe-memory/internal/llm"
	"github.com/harper/vibe-memory/internal/storage"
	"github.com/harper/vibe-memory/internal/util"
)

// app holds the dependencies a command needs
type app struct {
	cfg      *config.Config
	gen      embedding.Generator
	chain    *embedding.Chain
	cache    *embedding.Cache
	store    storage.Store
	memories *core.MemoryEngine
	vibes    *core.VibeEngine
	userID   string
}

// loadApp reads configuration and builds engines. The store is only
// opened when withStore is set.
func loadApp(withStore bool) (*app, error) {
	// Load .env for API keys
	_ = godotenv.Load()

	cfg, err := config.LoadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if !verbose {
		util.SetLogLevel(cfg.LogLevel)
	}

	a := &app{cfg: cfg, userID: cfg.UserID}
	if userFlag != "" {
		a.userID = userFlag
	}

	a.chain = buildChain(cfg)
	a.gen = a.chain
	if cfg.CacheSize > 0 {
		cache, err := embedding.NewCache(a.chain, cfg.CacheSize)
		if err != nil {
			return nil, err
		}
		a.cache = cache
		a.gen = cache
	}

	lexicon, err := loadLexicon(cfg.VibeLexiconPath)
	if err != nil {
		a.Close()
		return nil, err
	}

	vibeOpts := core.VibeOptions{
		Lexicon:         lexicon,
		SimilarityFloor: cfg.VibeSimilarityFloor,
		RecencyWeight:   cfg.VibeRecencyWeight,
		WindowSize:      cfg.VibeWindowSize,
	}
	if cfg.VibeEmbeddingsEnabled() {
		vibeOpts.Generator = a.gen
	}
	a.vibes = core.NewVibeEngine(vibeOpts)
	a.memories = core.NewMemoryEngine(a.gen, cfg.BatchSize)

	if withStore {
		store, err := storage.Open(storage.Options{
			Backend: cfg.Backend,
			DBPath:  cfg.DBPath,
			Charm: &charm.Config{
				Host:     cfg.CharmHost,
				DBName:   cfg.CharmDBName,
				AutoSync: cfg.CharmAutoSync,
			},
		})
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("initializing storage: %w", err)
		}
		a.store = store
	}

	return a, nil
}

// Close releases the store and cache
func (a *app) Close() {
	if a.store != nil {
		_ = a.store.Close()
	}
	if a.cache != nil {
		a.cache.Close()
	}
}

func loadLexicon(path string) (core.Lexicon, error) {
	if path == "" {
		return nil, nil
	}
	lex, err := core.LoadLexicon(path)
	if err != nil {
		return nil, fmt.Errorf("loading vibe lexicon: %w", err)
	}
	return lex, nil
}

// buildChain assembles embedding tiers from configuration. Tiers whose
// credentials are missing are left out with a warning.
func buildChain(cfg *config.Config) *embedding.Chain {
	offline := embedding.NewHashEmbedder(cfg.FallbackDimension)
	if !cfg.UseNetworkEmbeddings {
		return embedding.NewChain(offline)
	}

	logger := util.NewLogger("embeddings")
	var tiers []embedding.Embedder

	if cfg.OpenAIKey != "" {
		client, err := llm.NewOpenAIClientWithConfig(&llm.ClientConfig{
			APIKey:         cfg.OpenAIKey,
			EmbeddingModel: openai.EmbeddingModel(cfg.EmbeddingModel),
			Timeout:        cfg.Timeout,
			MaxRetries:     cfg.MaxRetries,
			RetryDelay:     cfg.RetryDelay,
		})
		if err != nil {
			logger.Warn("primary tier disabled", "err", err)
		} else {
			tiers = append(tiers, embedding.NewProviderEmbedder(client))
		}
	} else {
		logger.Warn("OPENAI_API_KEY not set, primary tier disabled")
	}

	completer, err := buildCompleter(cfg)
	if err != nil {
		logger.Warn("completion tier disabled", "err", err)
	} else {
		tiers = append(tiers, embedding.NewCompletionEmbedder(completer, cfg.FallbackDimension))
	}

	return embedding.NewChain(offline, tiers...)
}

func buildCompleter(cfg *config.Config) (embedding.Completer, error) {
	key := cfg.CompletionAPIKey()

	if cfg.CompletionProvider == config.ProviderAnthropic {
		model := cfg.CompletionModel
		if strings.HasPrefix(model, "gpt-") {
			model = llm.DefaultAnthropicModel
		}
		return llm.NewAnthropicClient(llm.AnthropicConfig{
			APIKey:     key,
			Model:      model,
			Timeout:    cfg.Timeout,
			MaxRetries: cfg.MaxRetries,
			RetryDelay: cfg.RetryDelay,
		})
	}

	return llm.NewOpenAIClientWithConfig(&llm.ClientConfig{
		APIKey:     key,
		BaseURL:    cfg.CompletionBaseURL,
		ChatModel:  cfg.CompletionModel,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
		MaxTokens:  400,
	})
}
