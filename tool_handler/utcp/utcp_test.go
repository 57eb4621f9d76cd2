package utcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	goutcp "github.com/universal-tool-calling-protocol/go-utcp"
	utcptools "github.com/universal-tool-calling-protocol/go-utcp/src/tools"

	toolhandler "github.com/auditmind/agent/tool_handler"
)

type fakeClient struct {
	goutcp.UtcpClientInterface

	tools  []utcptools.Tool
	called string
	args   map[string]any
	result any
}

func (f *fakeClient) SearchTools(query string, limit int) ([]utcptools.Tool, error) {
	return f.tools, nil
}

func (f *fakeClient) CallTool(ctx context.Context, name string, args map[string]any) (any, error) {
	f.called = name
	f.args = args
	return f.result, nil
}

func TestDiscover(t *testing.T) {
	client := &fakeClient{
		tools: []utcptools.Tool{
			{Name: "recon.port_scan", Description: "Scan a host for open ports"},
			{Name: "recon.dns_lookup", Description: "Resolve a hostname"},
		},
	}

	handlers, err := Discover(client, "recon", 10)
	require.NoError(t, err)
	require.Len(t, handlers, 2)
	assert.Equal(t, "recon.port_scan", handlers[0].Spec().Name)
	assert.Equal(t, "Resolve a hostname", handlers[1].Spec().Description)
}

func TestDiscoveredHandlerRoutesToClient(t *testing.T) {
	client := &fakeClient{
		tools:  []utcptools.Tool{{Name: "recon.port_scan"}},
		result: map[string]any{"open": []any{float64(22)}},
	}

	handlers, err := Discover(client, "", 1)
	require.NoError(t, err)
	require.Len(t, handlers, 1)

	rsp, err := handlers[0].Invoke(context.Background(), toolhandler.ToolRequest{
		Arguments: map[string]any{"host": "10.0.0.1"},
	})
	require.NoError(t, err)

	assert.Equal(t, "recon.port_scan", client.called)
	assert.Equal(t, map[string]any{"host": "10.0.0.1"}, client.args)
	assert.JSONEq(t, `{"open":[22]}`, rsp.Content)
	assert.Equal(t, "utcp", rsp.Metadata["source"])
}

func TestInvokeStringResult(t *testing.T) {
	client := &fakeClient{result: "22/tcp open"}

	h := NewToolHandler(
		WithUtcpClient(client),
		WithToolName("recon.port_scan"),
	)

	rsp, err := h.Invoke(context.Background(), toolhandler.ToolRequest{})
	require.NoError(t, err)
	assert.Equal(t, "22/tcp open", rsp.Content)
	assert.Equal(t, "recon.port_scan", rsp.Metadata["tool"])
}

func TestNewToolHandlerRequiresClient(t *testing.T) {
	assert.Panics(t, func() {
		NewToolHandler(WithToolName("recon.port_scan"))
	})
}
