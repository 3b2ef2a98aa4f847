// Package schedule holds the weekly training microcycle and the catalog of
// training activities.
package schedule

import "time"

// Plan is the training plan for one day of the week.
type Plan struct {
	Day         time.Weekday `json:"day"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
}

// HighImpactActivity is the one catalog activity flagged as high impact.
const HighImpactActivity = "Corrida"

// microcycle is indexed by time.Weekday (0 = Sunday).
var microcycle = [7]Plan{
	{Day: time.Sunday, Name: "Recuperação Ativa", Description: "Yoga Leve, Mobilidade, Caminhada. Previne overtraining."},
	{Day: time.Monday, Name: "Força A (Inferior)", Description: "Foco em Glúteos/Quadríceps para proteger o joelho."},
	{Day: time.Tuesday, Name: "Cardio B.I. (Natação/Ciclismo)", Description: "45 min - Satisfaz a necessidade de 'suar' sem impacto."},
	{Day: time.Wednesday, Name: "Força B (Superior)", Description: "Peito/Ombros/Tríceps. Alterna estresse muscular."},
	{Day: time.Thursday, Name: "Cardio B.I. (Remo/Elíptico)", Description: "45 min - Variação do cardio de baixo impacto."},
	{Day: time.Friday, Name: "Força C (Superior)", Description: "Costas/Bíceps/Core. Foco final de força da semana."},
	{Day: time.Saturday, Name: "Cardio B.I. (Natação/Ciclismo)", Description: "60 min (Moderado) - Resistência, zero impacto."},
}

var activities = []string{
	"Natação",
	"Ciclismo",
	"Remo",
	"Elíptico",
	"Musculação - Inferior",
	"Musculação - Superior",
	"Yoga Leve",
	"Mobilidade",
	"Caminhada",
	HighImpactActivity,
}

// ForWeekday returns the plan for the given day of the week.
// Out-of-range values fall back to the Sunday recovery plan.
func ForWeekday(d time.Weekday) Plan {
	if d < time.Sunday || d > time.Saturday {
		return microcycle[time.Sunday]
	}
	return microcycle[d]
}

// Week returns all seven plans ordered Sunday through Saturday.
func Week() []Plan {
	week := make([]Plan, len(microcycle))
	copy(week, microcycle[:])
	return week
}

// Activities returns the ordered activity catalog.
func Activities() []string {
	out := make([]string, len(activities))
	copy(out, activities)
	return out
}

// DefaultActivity is the first catalog entry, preselected on new training entries.
func DefaultActivity() string {
	return activities[0]
}

// IsActivity reports whether name is in the catalog.
func IsActivity(name string) bool {
	for _, a := range activities {
		if a == name {
			return true
		}
	}
	return false
}
