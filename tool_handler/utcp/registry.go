package utcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"

	"github.com/universal-tool-calling-protocol/go-utcp"

	toolhandler "github.com/auditmind/agent/tool_handler"
)

// Discover queries the client for remote tools and wraps each one as a
// handler the catalog can register next to the built-in audit tools.
func Discover(client utcp.UtcpClientInterface, query string, limit int) ([]toolhandler.ToolHandler, error) {
	remoteTools, err := client.SearchTools(query, limit)
	if err != nil {
		return nil, fmt.Errorf("utcp discovery failed: %w", err)
	}

	var handlers []toolhandler.ToolHandler
	for _, tool := range remoteTools {
		spec := toolhandler.ToolSpec{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: tool.Inputs.Properties,
		}
		handlers = append(handlers, NewToolHandler(
			WithUtcpClient(client),
			WithToolName(tool.Name),
			WithToolSpec(spec),
		))
	}

	return handlers, nil
}

// NewClient builds a client over the given HTTP provider endpoints.
func NewClient(addrs []string) utcp.UtcpClientInterface {
	var configPath string

	if len(addrs) > 0 {
		tmpPath, err := createTempConfig(addrs)
		if err != nil {
			panic(err)
		}
		configPath = tmpPath
		defer os.Remove(tmpPath)
	}

	client, err := utcp.NewUTCPClient(
		context.Background(),
		&utcp.UtcpClientConfig{
			ProvidersFilePath: configPath,
		},
		nil,
		nil,
	)
	if err != nil {
		panic(err)
	}

	return client
}

func createTempConfig(addrs []string) (string, error) {
	type providerConfig struct {
		Type    string            `json:"provider_type"`
		Name    string            `json:"name"`
		URL     string            `json:"url"`
		Method  string            `json:"http_method"`
		Headers map[string]string `json:"headers"`
	}

	config := struct {
		Providers []providerConfig `json:"providers"`
	}{}

	for _, u := range addrs {
		parsed, err := url.Parse(u)
		if err != nil {
			return "", err
		}
		config.Providers = append(config.Providers, providerConfig{
			Type:   "http",
			Name:   parsed.Hostname(),
			URL:    u,
			Method: "POST",
			Headers: map[string]string{
				"Content-Type": "application/json",
			},
		})
	}

	f, err := os.CreateTemp("", "utcp_config_*.json")
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(config); err != nil {
		return "", err
	}

	return f.Name(), nil
}
