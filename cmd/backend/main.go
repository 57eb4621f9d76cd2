package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	agent "github.com/auditmind/agent"
	"github.com/auditmind/agent/embedder"
	openaiembedder "github.com/auditmind/agent/embedder/openai"
	"github.com/auditmind/agent/generator"
	anthropicgenerator "github.com/auditmind/agent/generator/anthropic"
	googlegenerator "github.com/auditmind/agent/generator/google"
	openaigenerator "github.com/auditmind/agent/generator/openai"
	"github.com/auditmind/agent/internal/handler/backend"
	"github.com/auditmind/agent/reports"
	"github.com/auditmind/agent/retriever"
	memoryretriever "github.com/auditmind/agent/retriever/memory"
	postgresretriever "github.com/auditmind/agent/retriever/postgres"
	"github.com/auditmind/agent/server"
	httpserver "github.com/auditmind/agent/server/http"
	toolhandler "github.com/auditmind/agent/tool_handler"
	"github.com/auditmind/agent/tool_handler/auditsheet"
	utcptool "github.com/auditmind/agent/tool_handler/utcp"
)

var (
	cfg struct {
		// Server config
		Address string `help:"Listen address for the backend API" default:":5000"`

		// Generator config
		Provider      string `help:"Generator provider: openai, anthropic, or google" default:"openai"`
		ApiKey        string `help:"API key for the generator" env:"LLM_API_KEY" default:"ollama"`
		Model         string `help:"Model identifier for the generator" env:"LLM_MODEL" default:"gemma3"`
		OllamaApiBase string `help:"Base URL of the OpenAI-compatible endpoint" env:"OLLAMA_API_BASE" default:"http://host.docker.internal:11434"`

		// Memory config
		Retriever         string `help:"Retriever provider: memory or postgres" default:"memory"`
		RetrieverLocation string `help:"Postgres DSN for long-term memory" env:"RETRIEVER_LOCATION" default:""`
		Embedder          string `help:"Model identifier for embeddings" default:"nomic-embed-text"`
		Window            int    `help:"Short-term memory window size per session" default:"50"`

		// Agent config
		Context      int    `help:"Number of conversation turns to send to the model" default:"8"`
		SystemPrompt string `help:"System prompt for the agent" default:""`

		// Remote tools config
		UtcpProviders []string `help:"UTCP provider endpoints for remote tool discovery" env:"UTCP_PROVIDERS"`
		UtcpQuery     string   `help:"Discovery query for remote tools" default:""`
		UtcpLimit     int      `help:"Maximum number of remote tools to register" default:"10"`

		// Data config
		DataDir string `help:"Directory holding attack data and reports" env:"ATTACK_DATA_DIR" default:"/attack_data"`
	}
)

func main() {
	_ = godotenv.Load()
	_ = kong.Parse(&cfg)

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	adk := agent.New(
		newRetriever(),
		newGenerator(),
		newToolHandlers(),
		cfg.Context,
		cfg.SystemPrompt,
	)

	handler := backend.NewHandler(adk, reports.NewStore(cfg.DataDir))

	srv := httpserver.NewServer(
		handler.Router(),
		server.WithAddress(cfg.Address),
		httpserver.WithMiddleware(
			backend.RequestLogger,
			backend.CORS,
		),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-sigCh:
		slog.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Stop(ctx); err != nil {
			slog.Error("shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}

func newToolHandlers() []toolhandler.ToolHandler {
	handlers := auditsheet.All()

	if len(cfg.UtcpProviders) == 0 {
		return handlers
	}

	client := utcptool.NewClient(cfg.UtcpProviders)
	remote, err := utcptool.Discover(client, cfg.UtcpQuery, cfg.UtcpLimit)
	if err != nil {
		slog.Warn("remote tool discovery failed", "error", err)
		return handlers
	}

	slog.Info("registered remote tools", "count", len(remote))
	return append(handlers, remote...)
}

func newGenerator() generator.Generator {
	switch cfg.Provider {
	case "anthropic":
		return anthropicgenerator.NewGenerator(
			generator.WithApiKey(cfg.ApiKey),
			generator.WithModel(cfg.Model),
		)
	case "google":
		return googlegenerator.NewGenerator(
			generator.WithApiKey(cfg.ApiKey),
			generator.WithModel(cfg.Model),
		)
	default:
		return openaigenerator.NewGenerator(
			generator.WithApiKey(cfg.ApiKey),
			generator.WithBaseURL(cfg.OllamaApiBase),
			generator.WithModel(cfg.Model),
		)
	}
}

func newRetriever() retriever.Retriever {
	if cfg.Retriever == "postgres" {
		emb := newEmbedder()
		return postgresretriever.NewRetriever(
			retriever.WithLocation(cfg.RetrieverLocation),
			retriever.WithShortTermMemorySize(cfg.Window),
			postgresretriever.WithEmbedder(emb),
		)
	}

	return memoryretriever.NewRetriever(
		retriever.WithShortTermMemorySize(cfg.Window),
	)
}

func newEmbedder() embedder.Embedder {
	return openaiembedder.NewEmbedder(
		embedder.WithApiKey(cfg.ApiKey),
		embedder.WithBaseURL(cfg.OllamaApiBase),
		embedder.WithModel(cfg.Embedder),
	)
}
