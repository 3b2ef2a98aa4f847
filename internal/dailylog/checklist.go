package dailylog

import (
	"fmt"
	"strings"
)

// ChecklistItem identifies one of the six fixed daily checklist flags.
type ChecklistItem int

const (
	WakeUp ChecklistItem = iota
	LightTherapy
	Breakfast
	Mindfulness
	ShutdownRitual
	SleepTime
)

type checklistInfo struct {
	key   string
	label string
	time  string
}

var checklistItems = map[ChecklistItem]checklistInfo{
	WakeUp:         {key: "wake-up", label: "Despertar", time: "05:30"},
	LightTherapy:   {key: "light-therapy", label: "Terapia de Luz", time: "05:30"},
	Breakfast:      {key: "breakfast", label: "Café da Manhã (Tirosina)", time: "07:00"},
	Mindfulness:    {key: "mindfulness", label: "Pausa de Mindfulness", time: "12:00"},
	ShutdownRitual: {key: "shutdown", label: "Ritual de Desligamento", time: "21:00"},
	SleepTime:      {key: "sleep-time", label: "Dormir (Horário Fixo)", time: "22:00"},
}

// Checklist returns the checklist items in the order they happen during the day.
func Checklist() []ChecklistItem {
	return []ChecklistItem{WakeUp, LightTherapy, Breakfast, Mindfulness, ShutdownRitual, SleepTime}
}

// Key is the stable command-line name of the item, e.g. "wake-up".
func (c ChecklistItem) Key() string { return checklistItems[c].key }

// Label is the display label of the item.
func (c ChecklistItem) Label() string { return checklistItems[c].label }

// Time is the scheduled clock time of the item.
func (c ChecklistItem) Time() string { return checklistItems[c].time }

func (c ChecklistItem) String() string { return c.Key() }

// ParseChecklistItem resolves a key such as "wake-up" or "shutdown".
func ParseChecklistItem(s string) (ChecklistItem, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range Checklist() {
		if c.Key() == s {
			return c, nil
		}
	}
	keys := make([]string, 0, len(checklistItems))
	for _, c := range Checklist() {
		keys = append(keys, c.Key())
	}
	return 0, fmt.Errorf("%w: unknown checklist item %q (valid: %s)", ErrInvalid, s, strings.Join(keys, ", "))
}
