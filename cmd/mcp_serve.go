package cmd

import (
	"context"

	"github.com/chris-regnier/protocolctl/internal/mcptools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes protocol tools
over stdio transport, so MCP clients can read and log your days.

Available tools:
  - get_today: Checklist, plan, adherence and warnings for a day
  - set_checklist: Mark a checklist item done or not done
  - log_training: Save the day's training session
  - log_sleep: Save last night's sleep
  - log_cognitive: Save focus, clarity and energy ratings
  - get_metrics: Social jet lag, streak and chart rows
  - get_schedule: Weekly plan and activity catalog

Example client config:
  {
    "mcpServers": {
      "protocolctl": {
        "command": "/path/to/protocolctl",
        "args": ["mcp-serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	// Storage is already initialized in PersistentPreRunE
	if svc == nil {
		return cmd.Help()
	}

	server := mcptools.CreateMCPServer(svc, appConfig.DataDir)

	// Logging goes to stderr or the log file; stdout is reserved for MCP
	logrus.WithFields(logrus.Fields{
		"storage":  appConfig.Storage,
		"data_dir": appConfig.DataDir,
	}).Info("starting protocolctl MCP server (stdio transport)")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	// Blocks until the transport is closed
	return server.Run(ctx, &mcp.StdioTransport{})
}
