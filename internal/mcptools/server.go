package mcptools

import (
	"context"

	"github.com/chris-regnier/protocolctl/internal/daily"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewProtocolMCPServer creates an in-memory MCP server exposing the protocol
// tools. Returns the server and a client transport for connecting to it.
func NewProtocolMCPServer(svc *daily.Service) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(svc, "")

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with the protocol tools registered.
// dataDir is used for prompt cache invalidation after writes; pass "" to skip.
func CreateMCPServer(svc *daily.Service, dataDir string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "protocolctl",
		Version: "1.0.0",
	}, nil)

	// Read tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_today",
		Description: "Get a day's checklist, training plan, logged entries, adherence and alerts",
	}, GetTodayHandler(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_metrics",
		Description: "Get social jet lag, mean adherence, logging streak and per-day chart rows",
	}, GetMetricsHandler(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_schedule",
		Description: "Get the weekly training plan and the activity catalog",
	}, GetScheduleHandler())

	// Write tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "set_checklist",
		Description: "Mark a daily checklist item done or not done",
	}, SetChecklistHandler(svc, dataDir))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "log_training",
		Description: "Save the training entry for a day, replacing any earlier one",
	}, LogTrainingHandler(svc, dataDir))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "log_sleep",
		Description: "Save the sleep entry for a day, replacing any earlier one",
	}, LogSleepHandler(svc, dataDir))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "log_cognitive",
		Description: "Save the cognitive self-assessment for a day, replacing any earlier one",
	}, LogCognitiveHandler(svc, dataDir))

	return server
}
