package internal

import (
	"fmt"
	"time"

	"mffit/internal/form"
	"mffit/internal/history"
	"mffit/internal/storage"
	"mffit/internal/workout"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
)

type itemKind int

const (
	itemCategory itemKind = iota
	itemInput
	itemSubmit
)

// item is one focusable row of the form.
type item struct {
	kind    itemKind
	inputID string
	label   string
}

var _ form.Presenter = (*Model)(nil)

type Model struct {
	form *form.Controller

	// CategoryIndex is 0 for "none", otherwise 1 + index into workout.Categories
	CategoryIndex int
	Focus         int
	Visible       map[form.Group]bool

	History       history.History
	HistoryScroll int

	Status string
	Err    error
}

func NewModel(store storage.Store, storageKey string) (*Model, error) {
	repo := workout.NewRepository(store, storageKey, nil)

	m := &Model{
		Visible: make(map[form.Group]bool),
	}
	m.form = form.NewController(repo, m)

	if err := m.form.Refresh(); err != nil {
		return nil, fmt.Errorf("failed to load workouts: %w", err)
	}

	return m, nil
}

// SetClock replaces the clock used to timestamp new workouts.
func (m *Model) SetClock(now func() time.Time) {
	m.form.SetClock(now)
}

func (m *Model) SetFieldVisibility(group form.Group, visible bool) {
	m.Visible[group] = visible
}

func (m *Model) RenderHistory(h history.History) {
	m.History = h
	m.HistoryScroll = 0
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m, nil
	}
	return m, nil
}

func (m *Model) View() string {
	return m.mainView()
}

func (m *Model) SelectedCategory() workout.Category {
	if m.CategoryIndex <= 0 || m.CategoryIndex > len(workout.Categories) {
		return ""
	}
	return workout.Categories[m.CategoryIndex-1]
}

// items lists the rows currently shown, in display order.
func (m *Model) items() []item {
	items := []item{{kind: itemCategory, label: "Workout Type"}}

	shared := m.Visible[form.SharedGroup]
	if shared {
		items = append(items, item{kind: itemInput, inputID: form.DateInput, label: "Date"})
	}
	for _, c := range workout.Categories {
		if !m.Visible[form.CategoryGroup(c)] {
			continue
		}
		for _, f := range c.Fields() {
			items = append(items, item{kind: itemInput, inputID: f.InputID, label: f.Prompt()})
		}
	}
	if shared {
		items = append(items,
			item{kind: itemInput, inputID: form.NotesInput, label: "Notes"},
			item{kind: itemSubmit, label: "Log Workout"},
		)
	}
	return items
}

func (m *Model) focused() item {
	items := m.items()
	if m.Focus < 0 || m.Focus >= len(items) {
		m.Focus = 0
	}
	return items[m.Focus]
}

func (m *Model) selectCategory(index int) {
	n := len(workout.Categories) + 1
	m.CategoryIndex = ((index % n) + n) % n
	m.form.Select(m.SelectedCategory())
	m.Focus = 0
}

func (m *Model) syncCategory() {
	m.CategoryIndex = 0
	for i, c := range workout.Categories {
		if c == m.form.Selected() {
			m.CategoryIndex = i + 1
		}
	}
}

func (m *Model) submit() {
	rec, err := m.form.Submit()
	m.syncCategory()
	if err != nil {
		m.Err = err
		log.Errorf("submit workout: %s", err)
		return
	}
	m.Err = nil
	m.Focus = 0
	m.Status = fmt.Sprintf("Logged %s - %s", rec.Type.Label(), history.FormatDate(rec.Date))
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.CategoryIndex == 0 {
			return m, tea.Quit
		}
		m.selectCategory(0)
	case "ctrl+s":
		if m.Visible[form.SharedGroup] {
			m.submit()
		}
	case "tab", "down":
		m.Focus = (m.Focus + 1) % len(m.items())
	case "shift+tab", "up":
		n := len(m.items())
		m.Focus = (m.Focus - 1 + n) % n
	case "pgup":
		if m.HistoryScroll > 0 {
			m.HistoryScroll--
		}
	case "pgdown":
		if m.HistoryScroll < len(m.History.Entries)-1 {
			m.HistoryScroll++
		}
	case "left":
		if m.focused().kind == itemCategory {
			m.selectCategory(m.CategoryIndex - 1)
		}
	case "right":
		if m.focused().kind == itemCategory {
			m.selectCategory(m.CategoryIndex + 1)
		}
	case "enter":
		switch m.focused().kind {
		case itemSubmit:
			m.submit()
		case itemCategory:
			if m.CategoryIndex == 0 {
				m.selectCategory(1)
				break
			}
			m.Focus = (m.Focus + 1) % len(m.items())
		default:
			m.Focus = (m.Focus + 1) % len(m.items())
		}
	case "backspace":
		it := m.focused()
		if it.kind != itemInput {
			break
		}
		runes := []rune(m.form.Value(it.inputID))
		if len(runes) > 0 {
			m.form.SetValue(it.inputID, string(runes[:len(runes)-1]))
		}
	default:
		it := m.focused()
		if it.kind != itemInput {
			break
		}
		// pastes arrive as a single KeyRunes message
		if msg.Type == tea.KeyRunes {
			m.form.SetValue(it.inputID, m.form.Value(it.inputID)+string(msg.Runes))
			break
		}
		runes := []rune(msg.String())
		if len(runes) == 1 {
			m.form.SetValue(it.inputID, m.form.Value(it.inputID)+string(runes[0]))
		}
	}
	return m, nil
}
