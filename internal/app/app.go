package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/config"
	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/handler"
	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/llmclient"
	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/planner"
	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/risk"
	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/server"
	"github.com/olanajibah-ENG/SPM-OF-project-final/internal/store"
)

type App struct {
	server *server.Server
	store  store.Store
}

// New wires the full pipeline: OpenRouter for planning, Groq for risk
// derivation (Gemini replaces it when GEMINI_API_KEY is set), both behind
// retry and logging middleware, plus the config-selected document store.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := log.Default()

	planClient := llmclient.Wrap(
		llmclient.NewOpenRouterClient(cfg.LLM.OpenRouterKey, cfg.LLM.OpenRouterBase, cfg.LLM.OpenRouterModel),
		llmclient.Retry(3, 500*time.Millisecond),
		llmclient.WithLogging(logger),
	)

	var riskBase llmclient.Client
	if cfg.LLM.GeminiKey != "" {
		g, err := llmclient.NewGeminiClient(context.Background(), "")
		if err != nil {
			return nil, fmt.Errorf("init gemini client: %w", err)
		}
		riskBase = g
	} else {
		riskBase = llmclient.NewGroqClient(cfg.LLM.GroqKey, "")
	}
	riskClient := llmclient.Wrap(
		riskBase,
		llmclient.Retry(3, 500*time.Millisecond),
		llmclient.WithLogging(logger),
	)

	var archive *store.S3Config
	if cfg.Store.Archive.Enabled {
		archive = &store.S3Config{
			Endpoint:  cfg.Store.Archive.Endpoint,
			Region:    cfg.Store.Archive.Region,
			AccessKey: cfg.Store.Archive.AccessKey,
			SecretKey: cfg.Store.Archive.SecretKey,
			Bucket:    cfg.Store.Archive.Bucket,
			UseSSL:    cfg.Store.Archive.UseSSL,
		}
	}
	st := store.New(store.Config{
		DataDir:     cfg.DataDir,
		PostgresDSN: cfg.Store.PostgresDSN,
		Archive:     archive,
	})

	p := planner.New(planClient, logger)
	engine := risk.NewEngine(riskClient, nil)
	ai := risk.NewAI(riskClient, logger)

	svc := handler.New(p, engine, ai, st, logger)
	mux := server.NewMux(svc)
	srv := server.New(cfg.Port, mux)

	return &App{server: srv, store: st}, nil
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	if cerr := a.store.Close(); err == nil {
		err = cerr
	}
	return err
}
