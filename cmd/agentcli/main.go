package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	agent "github.com/auditmind/agent"
	"github.com/auditmind/agent/generator"
	openaigenerator "github.com/auditmind/agent/generator/openai"
	"github.com/auditmind/agent/retriever"
	memoryretriever "github.com/auditmind/agent/retriever/memory"
	"github.com/auditmind/agent/tool_handler/auditsheet"
)

var (
	cfg struct {
		// Generator config
		ApiKey        string `help:"API key for the generator" env:"LLM_API_KEY" default:"ollama"`
		Model         string `help:"Model identifier for the generator" env:"LLM_MODEL" default:"gemma3"`
		OllamaApiBase string `help:"Base URL of the OpenAI-compatible endpoint" env:"OLLAMA_API_BASE" default:"http://host.docker.internal:11434"`

		// Agent config
		Window       int    `help:"Short-term memory window size per session" default:"50"`
		Context      int    `help:"Number of conversation turns to send to the model" default:"8"`
		SystemPrompt string `help:"System prompt for the agent" default:""`

		// Session config
		SessionId string `help:"Optional fixed session identifier" default:""`
	}
)

func main() {
	_ = godotenv.Load()
	_ = kong.Parse(&cfg)
	ctx := context.Background()

	model := openaigenerator.NewGenerator(
		generator.WithApiKey(cfg.ApiKey),
		generator.WithBaseURL(cfg.OllamaApiBase),
		generator.WithModel(cfg.Model),
	)

	adk := agent.New(
		memoryretriever.NewRetriever(
			retriever.WithShortTermMemorySize(cfg.Window),
		),
		model,
		auditsheet.All(),
		cfg.Context,
		cfg.SystemPrompt,
	)

	sessionId, err := adk.CreateSession(ctx, cfg.SessionId)
	if err != nil {
		log.Fatalf("failed to start session: %v", err)
	}
	defer adk.FlushSession(ctx, sessionId)

	fmt.Println("Audit assistant. Type a message and press enter; empty input exits.")
	fmt.Printf("Session: %s\nTools: %s\n", sessionId, strings.Join(adk.ToolNames(), ", "))

	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("> ")
		input, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("Error reading input:", err)
			continue
		}
		input = strings.TrimSpace(input)
		if len(input) == 0 {
			fmt.Println("Goodbye!")
			return
		}

		rsp, err := adk.Generate(ctx, sessionId, input)
		if err != nil {
			fmt.Println("Error generating response:", err)
			continue
		}
		fmt.Printf("%s\n---\n", rsp)
	}
}
