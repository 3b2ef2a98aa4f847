package mcptools

import (
	"context"

	"github.com/chris-regnier/protocolctl/internal/daily"
	"github.com/chris-regnier/protocolctl/internal/metrics"
	"github.com/chris-regnier/protocolctl/internal/schedule"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetMetricsHandler returns the handler function for the get_metrics MCP tool.
func GetMetricsHandler(svc *daily.Service) func(ctx context.Context, req *mcp.CallToolRequest, input MetricsInput) (*mcp.CallToolResult, MetricsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input MetricsInput) (*mcp.CallToolResult, MetricsOutput, error) {
		logs, err := svc.Load()
		if err != nil {
			return nil, MetricsOutput{}, err
		}

		jl := metrics.SocialJetLagDetail(logs)
		rows := metrics.ProjectRows(logs)
		if input.Days > 0 && len(rows) > input.Days {
			rows = rows[len(rows)-input.Days:]
		}

		out := MetricsOutput{
			SocialJetLagMinutes: jl.Minutes,
			WeekdayWakeMinutes:  ptr(jl.WeekdayMean),
			WeekendWakeMinutes:  ptr(jl.WeekendMean),
			MeanAdherence:       metrics.MeanAdherence(rows),
			Streak:              metrics.Streak(logs, svc.Today()),
			Rows:                make([]RowResult, 0, len(rows)),
		}
		for _, r := range rows {
			out.Rows = append(out.Rows, toRow(r))
		}
		return nil, out, nil
	}
}

// GetScheduleHandler returns the handler function for the get_schedule MCP tool.
func GetScheduleHandler() func(ctx context.Context, req *mcp.CallToolRequest, input ScheduleInput) (*mcp.CallToolResult, ScheduleOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ScheduleInput) (*mcp.CallToolResult, ScheduleOutput, error) {
		out := ScheduleOutput{
			Activities:         schedule.Activities(),
			HighImpactActivity: schedule.HighImpactActivity,
		}
		for _, p := range schedule.Week() {
			out.Week = append(out.Week, toPlan(p))
		}
		return nil, out, nil
	}
}
