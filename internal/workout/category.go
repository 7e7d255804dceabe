package workout

type Category string

const (
	Weights Category = "weights"
	Running Category = "running"
	HIIT    Category = "hiit"
	Cardio  Category = "cardio"
	Yoga    Category = "yoga"
	Other   Category = "other"
)

// Categories lists every known category in selector order.
var Categories = []Category{Weights, Running, HIIT, Cardio, Yoga, Other}

// Field is a category-specific input and the record key it is stored under.
type Field struct {
	Key     string
	InputID string
	Label   string
	Unit    string
}

// Prompt is the label shown next to the input.
func (f Field) Prompt() string {
	if f.Unit == "" {
		return f.Label
	}
	return f.Label + " (" + f.Unit + ")"
}

var fieldSets = map[Category][]Field{
	Weights: {
		{Key: "exercise", InputID: "weights-exercise", Label: "Exercise"},
		{Key: "weight", InputID: "weight", Label: "Weight", Unit: "lbs"},
		{Key: "reps", InputID: "reps", Label: "Reps"},
		{Key: "sets", InputID: "sets", Label: "Sets"},
	},
	Running: {
		{Key: "activity", InputID: "running-activity", Label: "Activity"},
		{Key: "distance", InputID: "distance", Label: "Distance", Unit: "miles"},
		{Key: "time", InputID: "run-time", Label: "Time"},
	},
	HIIT: {
		{Key: "workout", InputID: "hiit-workout", Label: "Workout"},
		{Key: "duration", InputID: "duration", Label: "Duration", Unit: "minutes"},
	},
	Cardio: {
		{Key: "activity", InputID: "cardio-activity", Label: "Activity"},
		{Key: "duration", InputID: "cardio-duration", Label: "Duration", Unit: "minutes"},
		{Key: "calories", InputID: "calories", Label: "Calories"},
	},
	Yoga: {
		{Key: "classType", InputID: "yoga-type", Label: "Class Type"},
		{Key: "duration", InputID: "yoga-duration", Label: "Duration", Unit: "minutes"},
		{Key: "difficulty", InputID: "difficulty", Label: "Difficulty"},
	},
	Other: {
		{Key: "activity", InputID: "other-activity", Label: "Activity"},
		{Key: "details", InputID: "other-details", Label: "Details"},
	},
}

var labels = map[Category]string{
	Weights: "Weights/Strength Training",
	Running: "Running",
	HIIT:    "HIIT",
	Cardio:  "Cardio",
	Yoga:    "Yoga",
	Other:   "Other",
}

// Fields returns the category's inputs, or nil for an unknown category.
func (c Category) Fields() []Field {
	return fieldSets[c]
}

func (c Category) Known() bool {
	_, ok := fieldSets[c]
	return ok
}

// Label returns the human readable name, falling back to the raw value.
func (c Category) Label() string {
	if l, ok := labels[c]; ok {
		return l
	}
	return string(c)
}
