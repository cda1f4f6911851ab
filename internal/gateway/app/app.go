package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/rabigarip/priceright/internal/gateway/config"
	"github.com/rabigarip/priceright/internal/gateway/handler"
	"github.com/rabigarip/priceright/internal/gateway/server"
	"github.com/rabigarip/priceright/internal/llmclient"
	"github.com/rabigarip/priceright/internal/pricing"
	"github.com/rabigarip/priceright/internal/ratelimit"
)

type App struct {
	server *server.Server
	client llmclient.Client
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	client, apiKey, err := newLLMClient(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	client = llmclient.Wrap(client,
		llmclient.WithLogging(nil),
		llmclient.Retry(2, 500*time.Millisecond),
	)

	store := ratelimit.NewStoreFromEnv(cfg.RateStoreDSN, cfg.MaxClients)
	gate := ratelimit.NewWindow(store, cfg.RateLimit, cfg.RateWindow)

	svc := pricing.New(client, log.Default())
	analyze := handler.NewAnalyzeHandler(gate, svc, apiKey)

	mux := server.NewMux(analyze)
	srv := server.New(cfg.Port, mux)

	return &App{server: srv, client: client}, nil
}

// newLLMClient picks the completion backend and the credential the handler
// checks per request. A missing key is not fatal here: requests answer 500
// until the operator sets it.
func newLLMClient(ctx context.Context, cfg *config.Config) (llmclient.Client, string, error) {
	switch cfg.Provider {
	case "fake":
		// Offline mode for local development; no credential involved.
		return llmclient.NewFakeClient(""), "offline", nil
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			log.Printf("LLM_PROVIDER=gemini but GEMINI_API_KEY is empty; analysis requests will be rejected")
			cli, err := llmclient.NewGroqClient("", cfg.GroqModel)
			return cli, "", err
		}
		cli, err := llmclient.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		return cli, cfg.GeminiAPIKey, err
	default:
		cli, err := llmclient.NewGroqClient(cfg.GroqAPIKey, cfg.GroqModel)
		return cli, cfg.GroqAPIKey, err
	}
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	if err := a.client.Close(); err != nil {
		log.Printf("closing LLM client: %v", err)
	}
	return a.server.Shutdown(ctx)
}
