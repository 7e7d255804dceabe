package history_test

import (
	"encoding/json"
	"testing"

	"mffit/internal/history"
	"mffit/internal/workout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Empty(t *testing.T) {
	h := history.Build(nil)
	assert.True(t, h.Empty())
	assert.Empty(t, h.Entries)
	assert.Equal(t, history.Placeholder+"\n", h.Text())

	h = history.Build([]workout.Record{})
	assert.True(t, h.Empty())
}

func TestBuild_Weights(t *testing.T) {
	h := history.Build([]workout.Record{{
		Type:      workout.Weights,
		Date:      "2024-01-01",
		Timestamp: 1,
		Fields: map[string]string{
			"exercise": "Squat",
			"weight":   "100",
			"reps":     "8",
			"sets":     "3",
		},
	}})

	require.Len(t, h.Entries, 1)
	e := h.Entries[0]
	assert.Equal(t, workout.Weights, e.Category)
	assert.Equal(t, "Weights/Strength Training - Jan 1, 2024", e.Heading)
	assert.Equal(t, []history.Detail{
		{Label: "Exercise", Value: "Squat"},
		{Label: "Weight", Value: "100 lbs"},
		{Label: "Reps", Value: "8"},
		{Label: "Sets", Value: "3"},
	}, e.Details)
}

func TestBuild_NumericValues(t *testing.T) {
	var rec workout.Record
	require.NoError(t, json.Unmarshal([]byte(
		`{"type":"weights","date":"2024-01-01","notes":"","timestamp":1,"exercise":"Squat","weight":100}`,
	), &rec))

	h := history.Build([]workout.Record{rec})
	require.Len(t, h.Entries, 1)
	assert.Equal(t, []history.Detail{
		{Label: "Exercise", Value: "Squat"},
		{Label: "Weight", Value: "100 lbs"},
	}, h.Entries[0].Details)
}

func TestBuild_DetailLines(t *testing.T) {
	tests := []struct {
		name    string
		record  workout.Record
		heading string
		details []string
	}{
		{
			name: "running",
			record: workout.Record{Type: workout.Running, Date: "2024-06-15", Fields: map[string]string{
				"activity": "Trail", "distance": "5.2", "time": "45:10",
			}},
			heading: "Running - Jun 15, 2024",
			details: []string{"Activity: Trail", "Distance: 5.2 miles", "Time: 45:10"},
		},
		{
			name: "hiit",
			record: workout.Record{Type: workout.HIIT, Date: "2024-02-29", Fields: map[string]string{
				"workout": "Tabata", "duration": "20",
			}},
			heading: "HIIT - Feb 29, 2024",
			details: []string{"Workout: Tabata", "Duration: 20 minutes"},
		},
		{
			name: "cardio with notes",
			record: workout.Record{Type: workout.Cardio, Date: "2024-03-10", Notes: "easy pace", Fields: map[string]string{
				"activity": "Bike", "duration": "60", "calories": "540",
			}},
			heading: "Cardio - Mar 10, 2024",
			details: []string{"Activity: Bike", "Duration: 60 minutes", "Calories: 540", "Notes: easy pace"},
		},
		{
			name: "yoga skips blank fields",
			record: workout.Record{Type: workout.Yoga, Date: "2024-04-01", Fields: map[string]string{
				"classType": "Yin", "duration": "", "difficulty": "beginner",
			}},
			heading: "Yoga - Apr 1, 2024",
			details: []string{"Class Type: Yin", "Difficulty: beginner"},
		},
		{
			name: "other",
			record: workout.Record{Type: workout.Other, Date: "2024-12-25", Fields: map[string]string{
				"activity": "Climbing", "details": "V3 project",
			}},
			heading: "Other - Dec 25, 2024",
			details: []string{"Activity: Climbing", "Details: V3 project"},
		},
		{
			name: "unknown type shows only notes",
			record: workout.Record{Type: "pilates", Date: "2024-01-05", Notes: "core", Fields: map[string]string{
				"activity": "Reformer",
			}},
			heading: "pilates - Jan 5, 2024",
			details: []string{"Notes: core"},
		},
		{
			name:    "unknown type without notes",
			record:  workout.Record{Type: "swimming", Date: "2024-01-05"},
			heading: "swimming - Jan 5, 2024",
		},
		{
			name: "fields of another category are ignored",
			record: workout.Record{Type: workout.HIIT, Date: "2024-01-05", Fields: map[string]string{
				"exercise": "Squat",
			}},
			heading: "HIIT - Jan 5, 2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := history.Build([]workout.Record{tt.record})
			require.Len(t, h.Entries, 1)
			assert.Equal(t, tt.heading, h.Entries[0].Heading)

			var details []string
			for _, d := range h.Entries[0].Details {
				details = append(details, d.String())
			}
			assert.Equal(t, tt.details, details)
		})
	}
}

func TestBuild_SortsByTimestampDescending(t *testing.T) {
	records := []workout.Record{
		{Type: workout.Other, Date: "2024-01-01", Notes: "a", Timestamp: 100},
		{Type: workout.Other, Date: "2024-01-01", Notes: "b", Timestamp: 300},
		{Type: workout.Other, Date: "2024-01-01", Notes: "c", Timestamp: 200},
		{Type: workout.Other, Date: "2024-01-01", Notes: "d", Timestamp: 300},
		{Type: workout.Other, Date: "2024-01-01", Notes: "e", Timestamp: 100},
	}

	h := history.Build(records)
	var order []string
	for _, e := range h.Entries {
		order = append(order, e.Details[len(e.Details)-1].Value)
	}
	// ties keep their stored order
	assert.Equal(t, []string{"b", "d", "c", "a", "e"}, order)

	// input is left untouched
	assert.Equal(t, "a", records[0].Notes)
	assert.Equal(t, "e", records[4].Notes)
}

func TestBuild_BackdatedEntriesFollowCreationTime(t *testing.T) {
	h := history.Build([]workout.Record{
		{Type: workout.Yoga, Date: "2024-05-01", Timestamp: 1},
		{Type: workout.Yoga, Date: "2023-01-01", Timestamp: 2},
	})
	require.Len(t, h.Entries, 2)
	assert.Equal(t, "Yoga - Jan 1, 2023", h.Entries[0].Heading)
	assert.Equal(t, "Yoga - May 1, 2024", h.Entries[1].Heading)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Jan 1, 2024", history.FormatDate("2024-01-01"))
	assert.Equal(t, "Nov 23, 2025", history.FormatDate(" 2025-11-23 "))
	assert.Equal(t, "Jul 4, 2024", history.FormatDate("07/04/2024"))
	assert.Equal(t, "Mar 9, 2024", history.FormatDate("2024-03-09T18:00:00Z"))
	assert.Equal(t, "Invalid Date", history.FormatDate(""))
	assert.Equal(t, "Invalid Date", history.FormatDate("yesterday"))
	assert.Equal(t, "Invalid Date", history.FormatDate("2024-13-01"))
}

func TestHistory_Text(t *testing.T) {
	h := history.Build([]workout.Record{
		{Type: workout.HIIT, Date: "2024-01-02", Timestamp: 1, Fields: map[string]string{"workout": "EMOM", "duration": "12"}},
		{Type: workout.Other, Date: "2024-01-03", Timestamp: 2, Notes: "rest day walk"},
	})

	expected := "Other - Jan 3, 2024\n" +
		"  - Notes: rest day walk\n" +
		"\n" +
		"HIIT - Jan 2, 2024\n" +
		"  - Workout: EMOM\n" +
		"  - Duration: 12 minutes\n"
	assert.Equal(t, expected, h.Text())
}
