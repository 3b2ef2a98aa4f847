package mcptools

import (
	"github.com/chris-regnier/protocolctl/internal/daily"
	"github.com/chris-regnier/protocolctl/internal/dailylog"
	"github.com/chris-regnier/protocolctl/internal/metrics"
	"github.com/chris-regnier/protocolctl/internal/opt"
	"github.com/chris-regnier/protocolctl/internal/schedule"
	"github.com/chris-regnier/protocolctl/internal/ui"
)

func ptr[T any](v opt.Value[T]) *T {
	x, ok := v.Get()
	if !ok {
		return nil
	}
	return &x
}

func toPlan(p schedule.Plan) PlanResult {
	return PlanResult{Day: p.Day.String(), Name: p.Name, Description: p.Description}
}

func toDay(s daily.Summary) DayOutput {
	out := DayOutput{
		Date:            s.Date,
		Weekday:         s.Weekday,
		Plan:            toPlan(s.Plan),
		Stored:          s.Stored,
		BreakfastNotes:  s.Log.TyrosineBreakfastNotes,
		Adherence:       s.Adherence,
		Checked:         s.Checked,
		Total:           s.Total,
		HighImpact:      s.HighImpact,
		KneePainWarning: s.KneePainWarning,
		Alerts:          ui.Alerts(s),
	}
	for _, item := range dailylog.Checklist() {
		out.Checklist = append(out.Checklist, ChecklistResult{
			Key:   item.Key(),
			Label: item.Label(),
			Time:  item.Time(),
			Done:  s.Log.Checked(item),
		})
	}
	if e, ok := s.Log.TrainingLog.Get(); ok {
		out.Training = &TrainingResult{
			Type:           e.Type,
			Duration:       e.Duration,
			RPE:            e.RPE,
			SweatSatisfied: e.SweatSatisfied,
			KneePain:       e.KneePain,
			GeneralFatigue: e.GeneralFatigue,
		}
	}
	if e, ok := s.Log.SleepLog.Get(); ok {
		out.Sleep = &SleepResult{BedTime: e.BedTime, SleepTime: e.SleepTime, WakeTime: e.WakeTime}
	}
	if m, ok := s.Log.CognitiveMetrics.Get(); ok {
		out.Cognitive = &CognitiveResult{FocusLevel: m.FocusLevel, MentalFog: m.MentalFog, EnergyLevel: m.EnergyLevel}
	}
	return out
}

func toRow(r metrics.Row) RowResult {
	return RowResult{
		Date:           r.Date,
		Label:          r.Label,
		Adherence:      r.Adherence,
		KneePain:       ptr(r.KneePain),
		GeneralFatigue: ptr(r.GeneralFatigue),
		Focus:          ptr(r.Focus),
		Clarity:        ptr(r.Clarity),
		Energy:         ptr(r.Energy),
		WakeHour:       ptr(r.WakeHour),
	}
}
