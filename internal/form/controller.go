// Package form decides which inputs are visible for the selected category
// and turns submitted input into stored workouts.
package form

import (
	"errors"
	"fmt"
	"time"

	"mffit/internal/history"
	"mffit/internal/workout"

	log "github.com/sirupsen/logrus"
)

// Group is a set of inputs shown or hidden together.
type Group string

// SharedGroup holds the date, notes and submit controls.
const SharedGroup Group = "shared"

const (
	DateInput  = "date"
	NotesInput = "notes"
)

var ErrNothingSelected = errors.New("no workout type selected")

func CategoryGroup(c workout.Category) Group {
	return Group(c)
}

//go:generate mockgen -source=$GOFILE -destination=controller_mocks_test.go -package=form_test

type Presenter interface {
	SetFieldVisibility(group Group, visible bool)
	RenderHistory(h history.History)
}

type Repository interface {
	Load() ([]workout.Record, error)
	Append(rec workout.Record) error
}

type Controller struct {
	repo      Repository
	presenter Presenter
	now       func() time.Time

	selected workout.Category
	values   map[string]string
}

func NewController(repo Repository, presenter Presenter) *Controller {
	return &Controller{
		repo:      repo,
		presenter: presenter,
		now:       time.Now,
		values:    make(map[string]string),
	}
}

// SetClock replaces the source of record timestamps.
func (c *Controller) SetClock(now func() time.Time) {
	c.now = now
}

func (c *Controller) Selected() workout.Category {
	return c.selected
}

// Select hides every category group, then shows the chosen one together with
// the shared group. An empty category hides the shared group as well.
func (c *Controller) Select(cat workout.Category) {
	c.selected = cat

	for _, known := range workout.Categories {
		c.presenter.SetFieldVisibility(CategoryGroup(known), false)
	}

	if cat == "" {
		c.presenter.SetFieldVisibility(SharedGroup, false)
		log.Debugln("workout type cleared")
		return
	}

	if cat.Known() {
		c.presenter.SetFieldVisibility(CategoryGroup(cat), true)
	}
	c.presenter.SetFieldVisibility(SharedGroup, true)
	log.Debugf("workout type selected: %s", cat)
}

func (c *Controller) SetValue(inputID, value string) {
	c.values[inputID] = value
}

func (c *Controller) Value(inputID string) string {
	return c.values[inputID]
}

// Submit stores a record built from the date, notes and the selected
// category's inputs, then resets the form and redraws the history. When the
// record cannot be stored the form is left untouched.
func (c *Controller) Submit() (workout.Record, error) {
	if c.selected == "" {
		return workout.Record{}, ErrNothingSelected
	}

	rec := workout.Record{
		Type:      c.selected,
		Date:      c.values[DateInput],
		Notes:     c.values[NotesInput],
		Timestamp: c.now().UnixMilli(),
	}
	if fields := c.selected.Fields(); len(fields) > 0 {
		rec.Fields = make(map[string]string, len(fields))
		for _, f := range fields {
			rec.Fields[f.Key] = c.values[f.InputID]
		}
	}

	if err := c.repo.Append(rec); err != nil {
		return workout.Record{}, fmt.Errorf("save workout: %w", err)
	}
	log.Infof("logged %s workout for %q", rec.Type, rec.Date)

	c.reset()

	if err := c.Refresh(); err != nil {
		return rec, err
	}
	return rec, nil
}

// Refresh reloads every record and hands the listing to the presenter.
func (c *Controller) Refresh() error {
	records, err := c.repo.Load()
	if err != nil {
		return fmt.Errorf("load workouts: %w", err)
	}
	c.presenter.RenderHistory(history.Build(records))
	return nil
}

func (c *Controller) reset() {
	c.values = make(map[string]string)
	c.Select("")
}
