package services

import "strings"

// ChecklistEntry is a single step in a planning timeline.
type ChecklistEntry struct {
	When string
	Task string
}

// Planning timelines per event type. Each timeline ends with a
// day-of-event entry.
var checklistTimelines = map[string][]ChecklistEntry{
	"wedding": {
		{When: "T-12 mo", Task: "Set guest list & budget"},
		{When: "T-10 mo", Task: "Book venue & caterer"},
		{When: "T-8 mo", Task: "Secure decor & photo"},
		{When: "T-6 mo", Task: "Send save-the-dates"},
		{When: "T-3 mo", Task: "Finalize menu & music"},
		{When: "T-1 mo", Task: "Confirm all vendors"},
		{When: "Day 0", Task: "Celebrate!"},
	},
	"birthday": {
		{When: "T-4 wk", Task: "Pick theme & invites"},
		{When: "T-3 wk", Task: "Book cake & decor"},
		{When: "T-1 wk", Task: "Confirm RSVPs & food"},
		{When: "Day 0", Task: "Party time!"},
	},
	"conference": {
		{When: "T-6 mo", Task: "Define goals & budget"},
		{When: "T-5 mo", Task: "Secure venue & sponsors"},
		{When: "T-3 mo", Task: "Open registrations"},
		{When: "T-1 mo", Task: "Finalize agenda"},
		{When: "Day 0", Task: "Run the show"},
	},
}

// Checklist returns the planning timeline for an event type
// (case-insensitive). Unknown event types get a single generic entry.
func Checklist(eventType string) []ChecklistEntry {
	key := strings.ToLower(strings.TrimSpace(eventType))
	if timeline, ok := checklistTimelines[key]; ok {
		out := make([]ChecklistEntry, len(timeline))
		copy(out, timeline)
		return out
	}
	return []ChecklistEntry{{When: "T-4 wk", Task: "Draft basic timeline"}}
}
