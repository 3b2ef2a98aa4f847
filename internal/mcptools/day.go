package mcptools

import (
	"context"
	"fmt"

	"github.com/chris-regnier/protocolctl/internal/daily"
	"github.com/chris-regnier/protocolctl/internal/dailylog"
	"github.com/chris-regnier/protocolctl/internal/logstore"
	"github.com/chris-regnier/protocolctl/internal/shell"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func resolveDate(svc *daily.Service, date string) string {
	if date == "" {
		return svc.Today()
	}
	return date
}

// dayAfter summarizes date from logs and drops the prompt cache, which the
// write just made stale.
func dayAfter(logs logstore.Logs, date, dataDir string) (DayOutput, error) {
	if dataDir != "" {
		_ = shell.InvalidateCache(dataDir)
	}
	s, err := daily.Summarize(logs, date)
	if err != nil {
		return DayOutput{}, err
	}
	return toDay(s), nil
}

// GetTodayHandler returns the handler function for the get_today MCP tool.
func GetTodayHandler(svc *daily.Service) func(ctx context.Context, req *mcp.CallToolRequest, input DateInput) (*mcp.CallToolResult, DayOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input DateInput) (*mcp.CallToolResult, DayOutput, error) {
		s, err := svc.Summarize(resolveDate(svc, input.Date))
		if err != nil {
			return nil, DayOutput{}, err
		}
		return nil, toDay(s), nil
	}
}

// SetChecklistHandler returns the handler function for the set_checklist MCP tool.
func SetChecklistHandler(svc *daily.Service, dataDir string) func(ctx context.Context, req *mcp.CallToolRequest, input SetChecklistInput) (*mcp.CallToolResult, DayOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SetChecklistInput) (*mcp.CallToolResult, DayOutput, error) {
		item, err := dailylog.ParseChecklistItem(input.Item)
		if err != nil {
			return nil, DayOutput{}, err
		}
		if input.Notes != nil && item != dailylog.Breakfast {
			return nil, DayOutput{}, fmt.Errorf("%w: notes can only be set on the breakfast item", dailylog.ErrInvalid)
		}
		date := resolveDate(svc, input.Date)

		if input.Notes != nil {
			if _, err := svc.Update(date, logstore.FieldBreakfastNotes, *input.Notes); err != nil {
				return nil, DayOutput{}, err
			}
		}
		logs, err := svc.SetCheck(date, item, input.Done)
		if err != nil {
			return nil, DayOutput{}, err
		}
		out, err := dayAfter(logs, date, dataDir)
		return nil, out, err
	}
}

// LogTrainingHandler returns the handler function for the log_training MCP tool.
func LogTrainingHandler(svc *daily.Service, dataDir string) func(ctx context.Context, req *mcp.CallToolRequest, input LogTrainingInput) (*mcp.CallToolResult, DayOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input LogTrainingInput) (*mcp.CallToolResult, DayOutput, error) {
		date := resolveDate(svc, input.Date)
		logs, err := svc.Update(date, logstore.FieldTraining, dailylog.TrainingEntry{
			Type:           input.Type,
			Duration:       input.Duration,
			RPE:            input.RPE,
			SweatSatisfied: input.SweatSatisfied,
			KneePain:       input.KneePain,
			GeneralFatigue: input.GeneralFatigue,
		})
		if err != nil {
			return nil, DayOutput{}, err
		}
		out, err := dayAfter(logs, date, dataDir)
		return nil, out, err
	}
}

// LogSleepHandler returns the handler function for the log_sleep MCP tool.
func LogSleepHandler(svc *daily.Service, dataDir string) func(ctx context.Context, req *mcp.CallToolRequest, input LogSleepInput) (*mcp.CallToolResult, DayOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input LogSleepInput) (*mcp.CallToolResult, DayOutput, error) {
		date := resolveDate(svc, input.Date)
		logs, err := svc.Update(date, logstore.FieldSleep, dailylog.SleepEntry{
			BedTime:   input.BedTime,
			SleepTime: input.SleepTime,
			WakeTime:  input.WakeTime,
		})
		if err != nil {
			return nil, DayOutput{}, err
		}
		out, err := dayAfter(logs, date, dataDir)
		return nil, out, err
	}
}

// LogCognitiveHandler returns the handler function for the log_cognitive MCP tool.
func LogCognitiveHandler(svc *daily.Service, dataDir string) func(ctx context.Context, req *mcp.CallToolRequest, input LogCognitiveInput) (*mcp.CallToolResult, DayOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input LogCognitiveInput) (*mcp.CallToolResult, DayOutput, error) {
		date := resolveDate(svc, input.Date)
		logs, err := svc.Update(date, logstore.FieldCognitive, dailylog.CognitiveMetrics{
			FocusLevel:  input.FocusLevel,
			MentalFog:   input.MentalFog,
			EnergyLevel: input.EnergyLevel,
		})
		if err != nil {
			return nil, DayOutput{}, err
		}
		out, err := dayAfter(logs, date, dataDir)
		return nil, out, err
	}
}
