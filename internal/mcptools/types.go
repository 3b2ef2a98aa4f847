package mcptools

// DateInput selects a day. An empty date means today.
type DateInput struct {
	Date string `json:"date,omitempty" jsonschema:"Day as YYYY-MM-DD; defaults to today"`
}

// SetChecklistInput is the input schema for the set_checklist MCP tool.
type SetChecklistInput struct {
	Date  string  `json:"date,omitempty" jsonschema:"Day as YYYY-MM-DD; defaults to today"`
	Item  string  `json:"item" jsonschema:"Checklist item: wake-up, light-therapy, breakfast, mindfulness, shutdown or sleep-time"`
	Done  bool    `json:"done" jsonschema:"Whether the item is done"`
	Notes *string `json:"notes,omitempty" jsonschema:"Breakfast notes; only valid with item breakfast"`
}

// LogTrainingInput is the input schema for the log_training MCP tool.
type LogTrainingInput struct {
	Date           string `json:"date,omitempty" jsonschema:"Day as YYYY-MM-DD; defaults to today"`
	Type           string `json:"type" jsonschema:"Activity from the catalog returned by get_schedule"`
	Duration       int    `json:"duration" jsonschema:"Duration in minutes"`
	RPE            int    `json:"rpe" jsonschema:"Rate of perceived exertion, 1-10"`
	SweatSatisfied bool   `json:"sweat_satisfied" jsonschema:"Whether the need to sweat was satisfied"`
	KneePain       int    `json:"knee_pain" jsonschema:"Knee pain, 0-10"`
	GeneralFatigue int    `json:"general_fatigue" jsonschema:"General body fatigue, 0-10"`
}

// LogSleepInput is the input schema for the log_sleep MCP tool.
type LogSleepInput struct {
	Date      string `json:"date,omitempty" jsonschema:"Day as YYYY-MM-DD; defaults to today"`
	BedTime   string `json:"bed_time" jsonschema:"Time gone to bed, HH:MM"`
	SleepTime string `json:"sleep_time" jsonschema:"Estimated time fallen asleep, HH:MM"`
	WakeTime  string `json:"wake_time" jsonschema:"Time woken up, HH:MM"`
}

// LogCognitiveInput is the input schema for the log_cognitive MCP tool.
type LogCognitiveInput struct {
	Date        string `json:"date,omitempty" jsonschema:"Day as YYYY-MM-DD; defaults to today"`
	FocusLevel  int    `json:"focus_level" jsonschema:"Focus, 1-10"`
	MentalFog   int    `json:"mental_fog" jsonschema:"Mental clarity, 1-10 where 10 means no fog"`
	EnergyLevel int    `json:"energy_level" jsonschema:"Motivation and energy, 1-10"`
}

// MetricsInput is the input schema for the get_metrics MCP tool.
type MetricsInput struct {
	Days int `json:"days,omitempty" jsonschema:"Only return the most recent N chart rows; 0 returns all"`
}

// ScheduleInput is the input schema for the get_schedule MCP tool.
type ScheduleInput struct{}

// DayOutput describes one day's log and derived scores.
type DayOutput struct {
	Date            string            `json:"date"`
	Weekday         string            `json:"weekday"`
	Plan            PlanResult        `json:"plan"`
	Stored          bool              `json:"stored"`
	Checklist       []ChecklistResult `json:"checklist"`
	BreakfastNotes  string            `json:"breakfast_notes,omitempty"`
	Training        *TrainingResult   `json:"training,omitempty"`
	Sleep           *SleepResult      `json:"sleep,omitempty"`
	Cognitive       *CognitiveResult  `json:"cognitive,omitempty"`
	Adherence       int               `json:"adherence"`
	Checked         int               `json:"checked"`
	Total           int               `json:"total"`
	HighImpact      bool              `json:"high_impact"`
	KneePainWarning bool              `json:"knee_pain_warning"`
	Alerts          []string          `json:"alerts,omitempty"`
}

// PlanResult is one day of the weekly training plan.
type PlanResult struct {
	Day         string `json:"day"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ChecklistResult is one checklist item and its state.
type ChecklistResult struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Time  string `json:"time"`
	Done  bool   `json:"done"`
}

// TrainingResult is a saved training entry.
type TrainingResult struct {
	Type           string `json:"type"`
	Duration       int    `json:"duration"`
	RPE            int    `json:"rpe"`
	SweatSatisfied bool   `json:"sweat_satisfied"`
	KneePain       int    `json:"knee_pain"`
	GeneralFatigue int    `json:"general_fatigue"`
}

// SleepResult is a saved sleep entry.
type SleepResult struct {
	BedTime   string `json:"bed_time"`
	SleepTime string `json:"sleep_time"`
	WakeTime  string `json:"wake_time"`
}

// CognitiveResult is a saved cognitive self-assessment.
type CognitiveResult struct {
	FocusLevel  int `json:"focus_level"`
	MentalFog   int `json:"mental_fog"`
	EnergyLevel int `json:"energy_level"`
}

// MetricsOutput is the output schema for the get_metrics MCP tool.
type MetricsOutput struct {
	SocialJetLagMinutes float64     `json:"social_jet_lag_minutes"`
	WeekdayWakeMinutes  *float64    `json:"weekday_wake_minutes,omitempty"`
	WeekendWakeMinutes  *float64    `json:"weekend_wake_minutes,omitempty"`
	MeanAdherence       float64     `json:"mean_adherence"`
	Streak              int         `json:"streak"`
	Rows                []RowResult `json:"rows"`
}

// RowResult is one day of chart data. Absent metrics are omitted.
type RowResult struct {
	Date           string   `json:"date"`
	Label          string   `json:"label"`
	Adherence      int      `json:"adherence"`
	KneePain       *int     `json:"knee_pain,omitempty"`
	GeneralFatigue *int     `json:"general_fatigue,omitempty"`
	Focus          *int     `json:"focus,omitempty"`
	Clarity        *int     `json:"clarity,omitempty"`
	Energy         *int     `json:"energy,omitempty"`
	WakeHour       *float64 `json:"wake_hour,omitempty"`
}

// ScheduleOutput is the output schema for the get_schedule MCP tool.
type ScheduleOutput struct {
	Week               []PlanResult `json:"week"`
	Activities         []string     `json:"activities"`
	HighImpactActivity string       `json:"high_impact_activity"`
}
