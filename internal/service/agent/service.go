package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/auditmind/agent/generator"
	"github.com/auditmind/agent/retriever"
	toolhandler "github.com/auditmind/agent/tool_handler"
)

const defaultSystemPrompt = "You are an audit-data assistant. " +
	"When the user asks you to perform an action on the Excel audit data, " +
	"respond with exactly one JSON object to call the appropriate tool: " +
	`{"tool": "<tool_name>", "params": {...}}`

type Service struct {
	retriever    retriever.Retriever
	generator    generator.Generator
	catalog      *Catalog
	contextLimit int
	systemPrompt string
}

func (s *Service) Catalog() *Catalog {
	return s.catalog
}

// Respond runs one turn of the conversation. Direct `tool:<name> <json>`
// commands bypass the model; everything else goes through the
// generator, and a reply that parses as a tool call is executed before
// returning.
func (s *Service) Respond(ctx context.Context, sessionId string, userInput string) (string, error) {
	if len(strings.TrimSpace(userInput)) == 0 {
		return "", errors.New("user input is required")
	}

	s.addShortTerm(ctx, sessionId, "user", userInput, nil)

	if handled, output, err := s.handleCommand(ctx, sessionId, userInput); handled {
		if err != nil {
			s.addShortTerm(ctx, sessionId, "assistant", fmt.Sprintf("tool error: %v", err), map[string]any{"source": "tool"})
			return "", err
		}
		return output, nil
	}

	prompt, err := s.buildPrompt(ctx, sessionId, userInput)
	if err != nil {
		return "", err
	}

	reply, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	if name, params, ok := parseToolCall(reply); ok {
		output, err := s.invokeTool(ctx, sessionId, name, params)
		if err != nil {
			s.addShortTerm(ctx, sessionId, "assistant", fmt.Sprintf("tool error: %v", err), map[string]any{"source": "tool"})
			return "", err
		}
		return output, nil
	}

	s.addShortTerm(ctx, sessionId, "assistant", reply, nil)

	return reply, nil
}

// InvokeTool dispatches one tool by name, recording the result as a
// tool turn. This is what the backend's /api/run rides on.
func (s *Service) InvokeTool(ctx context.Context, sessionId string, name string, params map[string]any) (string, error) {
	return s.invokeTool(ctx, sessionId, name, params)
}

func (s *Service) Flush(ctx context.Context, sessionId string) error {
	return s.retriever.FlushToLongTerm(ctx, sessionId)
}

func (s *Service) addShortTerm(ctx context.Context, sessionId string, role string, input string, meta map[string]any) {
	parts := []retriever.Part{
		{Type: "text", Text: input, Meta: meta},
	}

	if err := s.retriever.AddShortTerm(ctx, sessionId, role, parts); err != nil {
		slog.WarnContext(ctx, "failed to record turn", "session", sessionId, "role", role, "error", err)
	}
}

func (s *Service) handleCommand(ctx context.Context, sessionId string, input string) (bool, string, error) {
	trimmed := strings.TrimSpace(input)
	lower := strings.ToLower(trimmed)

	if !strings.HasPrefix(lower, "tool:") {
		return false, "", nil
	}

	payload := strings.TrimSpace(trimmed[len("tool:"):])
	if len(payload) == 0 {
		return true, "", errors.New("tool name is missing")
	}

	name, args := splitCommand(payload)

	output, err := s.invokeTool(ctx, sessionId, name, parseToolArguments(args))

	return true, output, err
}

func (s *Service) invokeTool(ctx context.Context, sessionId string, name string, params map[string]any) (string, error) {
	th, spec, ok := s.catalog.Get(name)
	if !ok {
		return "", fmt.Errorf("tool '%s' not found, available tools: %s", name, strings.Join(s.catalog.Names(), ", "))
	}

	result, err := th.Invoke(ctx, toolhandler.ToolRequest{
		SessionId: sessionId,
		Arguments: params,
	})
	if err != nil {
		return "", err
	}

	meta := map[string]any{"source": "tool", "tool": spec.Name}
	for k, v := range result.Metadata {
		if len(strings.TrimSpace(k)) == 0 {
			continue
		}
		meta[k] = v
	}

	s.addShortTerm(ctx, sessionId, "tool", fmt.Sprintf("%s => %s", spec.Name, strings.TrimSpace(result.Content)), meta)

	return result.Content, nil
}

func (s *Service) buildPrompt(ctx context.Context, sessionId string, input string) (string, error) {
	shortTermMsgs, err := s.retriever.ListShortTerm(
		ctx,
		sessionId,
		retriever.WithShortTermLimit(s.contextLimit),
	)
	if err != nil {
		return "", fmt.Errorf("short-term error: %w", err)
	}

	longTermMsgs, err := s.retriever.SearchLongTerm(
		ctx,
		input,
		retriever.WithSearchLongTermLimit(s.contextLimit),
	)
	if err != nil {
		return "", fmt.Errorf("long-term error: %w", err)
	}

	isRelevant := make(map[string]bool)
	for _, msg := range longTermMsgs {
		isRelevant[msg.Id] = true
	}

	var uniqueShortTerm []retriever.Message
	for _, msg := range shortTermMsgs {
		if !isRelevant[msg.Id] {
			uniqueShortTerm = append(uniqueShortTerm, msg)
		}
	}

	var sb bytes.Buffer
	sb.WriteString(s.systemPrompt)

	if specs := s.catalog.ListSpecs(); len(specs) > 0 {
		sb.WriteString("\n\nAvailable tools:\n")
		for _, spec := range specs {
			sb.WriteString(fmt.Sprintf("- %s: %s\n", spec.Name, spec.Description))
			if len(spec.InputSchema) > 0 {
				schemaJSON, _ := json.MarshalIndent(spec.InputSchema, "  ", "  ")
				sb.WriteString("  Input schema: ")
				sb.Write(schemaJSON)
				sb.WriteString("\n")
			}
			if len(spec.Examples) > 0 {
				sb.WriteString("  Examples:\n")
				for _, ex := range spec.Examples {
					exJSON, _ := json.MarshalIndent(ex, "    ", "  ")
					sb.Write(exJSON)
					sb.WriteString("\n")
				}
			}
		}
		sb.WriteString("To call a tool, reply with exactly one JSON object of the form {\"tool\": \"<name>\", \"params\": {...}} and nothing else.\n")
	}

	if len(longTermMsgs) > 0 {
		sb.WriteString("\nRelevant Memories:\n")
		for i, msg := range longTermMsgs {
			if len(msg.Parts) > 0 {
				sb.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, msg.Role, msg.Parts[0].Text))
			}
		}
	}

	if len(uniqueShortTerm) > 0 {
		sb.WriteString("\nConversation History:\n")
		for _, msg := range uniqueShortTerm {
			if len(msg.Parts) > 0 {
				sb.WriteString(fmt.Sprintf("[%s]: %s\n", msg.Role, msg.Parts[0].Text))
			}
		}
	}

	sb.WriteString("\nCurrent user message:\n")
	sb.WriteString(strings.TrimSpace(input))
	sb.WriteString("\n\nCompose the best possible assistant reply.\n")

	return sb.String(), nil
}

func New(
	retriever retriever.Retriever,
	generator generator.Generator,
	toolHandlers []toolhandler.ToolHandler,
	contextLimit int,
	systemPrompt string,
) *Service {
	if retriever == nil {
		panic("retriever is required")
	}

	if generator == nil {
		panic("generator is required")
	}

	if contextLimit <= 0 {
		contextLimit = 8
	}

	if len(strings.TrimSpace(systemPrompt)) == 0 {
		systemPrompt = defaultSystemPrompt
	}

	return &Service{
		retriever:    retriever,
		generator:    generator,
		catalog:      NewCatalog(toolHandlers),
		contextLimit: contextLimit,
		systemPrompt: systemPrompt,
	}
}
