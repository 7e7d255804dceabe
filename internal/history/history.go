// Package history turns stored workouts into the listing shown under the form.
package history

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"mffit/internal/workout"
)

const Placeholder = "No workouts logged yet. Start tracking your fitness journey!"

const invalidDate = "Invalid Date"

var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	time.RFC3339,
}

type Detail struct {
	Label string
	Value string
}

func (d Detail) String() string {
	return d.Label + ": " + d.Value
}

type Entry struct {
	Category workout.Category
	Heading  string
	Details  []Detail
}

type History struct {
	Entries []Entry
}

func (h History) Empty() bool {
	return len(h.Entries) == 0
}

// Build orders records newest first by creation time and formats each one.
// Records created in the same millisecond keep their stored order.
func Build(records []workout.Record) History {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b workout.Record) int {
		return cmp.Compare(b.Timestamp, a.Timestamp)
	})

	h := History{Entries: make([]Entry, 0, len(sorted))}
	for _, r := range sorted {
		h.Entries = append(h.Entries, buildEntry(r))
	}
	return h
}

func buildEntry(r workout.Record) Entry {
	e := Entry{
		Category: r.Type,
		Heading:  r.Type.Label() + " - " + FormatDate(r.Date),
	}

	for _, f := range r.Type.Fields() {
		v := r.Field(f.Key)
		if v == "" {
			continue
		}
		if f.Unit != "" {
			v += " " + f.Unit
		}
		e.Details = append(e.Details, Detail{Label: f.Label, Value: v})
	}

	if r.Notes != "" {
		e.Details = append(e.Details, Detail{Label: "Notes", Value: r.Notes})
	}
	return e
}

// FormatDate renders a date as "Jan 1, 2024".
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return invalidDate
}

// Text is the plain rendition used outside the terminal UI.
func (h History) Text() string {
	if h.Empty() {
		return Placeholder + "\n"
	}

	var sb strings.Builder
	for i, e := range h.Entries {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(e.Heading)
		sb.WriteString("\n")
		for _, d := range e.Details {
			sb.WriteString("  - ")
			sb.WriteString(d.String())
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
