// Package agent wires the audit toolset, an LLM generator, and
// conversation memory into one development kit.
package agent

import (
	"context"

	"github.com/auditmind/agent/generator"
	agentservice "github.com/auditmind/agent/internal/service/agent"
	"github.com/auditmind/agent/internal/service/session"
	"github.com/auditmind/agent/retriever"
	toolhandler "github.com/auditmind/agent/tool_handler"
)

type ADK struct {
	agent   *agentservice.Service
	session *session.Service
}

func (a *ADK) CreateSession(ctx context.Context, id string) (string, error) {
	session, err := a.session.CreateSession(ctx, id)
	if err != nil {
		return "", err
	}
	return session.ID(), nil
}

func (a *ADK) ListSessionIds(ctx context.Context) []string {
	return a.session.ListSessionIds(ctx)
}

func (a *ADK) DeleteSession(ctx context.Context, id string) {
	a.session.DeleteSession(ctx, id)
}

// Generate runs one conversational turn for the session.
func (a *ADK) Generate(ctx context.Context, sessionId string, userInput string) (string, error) {
	return a.agent.Respond(ctx, sessionId, userInput)
}

// RunTool invokes a registered tool directly, bypassing the model.
func (a *ADK) RunTool(ctx context.Context, sessionId string, name string, params map[string]any) (string, error) {
	return a.agent.InvokeTool(ctx, sessionId, name, params)
}

func (a *ADK) ToolSpecs() []toolhandler.ToolSpec {
	return a.agent.Catalog().ListSpecs()
}

func (a *ADK) ToolNames() []string {
	return a.agent.Catalog().Names()
}

func (a *ADK) FlushSession(ctx context.Context, sessionId string) error {
	return a.agent.Flush(ctx, sessionId)
}

func New(
	re retriever.Retriever,
	gen generator.Generator,
	toolHandlers []toolhandler.ToolHandler,
	contextLimit int,
	systemPrompt string,
) *ADK {
	return &ADK{
		agent: agentservice.New(
			re,
			gen,
			toolHandlers,
			contextLimit,
			systemPrompt,
		),
		session: session.New(re),
	}
}
