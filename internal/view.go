package internal

import (
	"fmt"
	"strings"

	"mffit/internal/history"

	"github.com/charmbracelet/lipgloss"
)

const (
	screenWidth  = 92
	formWidth    = 38
	historyWidth = 46
	panelHeight  = 20
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true).
			Align(lipgloss.Center)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170"))

	inputInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	buttonFocusedStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("170")).
				Foreground(lipgloss.Color("170")).
				Bold(true)

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	detailLabelStyle = lipgloss.NewStyle().
				Bold(true)

	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

func (m *Model) mainView() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Width(screenWidth).Render("MF Fit - Workout Log"))
	sb.WriteString("\n\n")

	boxes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.formView(),
		"  ",
		m.historyView(),
	)
	sb.WriteString(boxes)
	sb.WriteString("\n\n")

	switch {
	case m.Err != nil:
		sb.WriteString(errorStyle.Render("Error: " + m.Err.Error()))
	case m.Status != "":
		sb.WriteString(statusStyle.Render(m.Status))
	}
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render(m.helpText()))

	return sb.String()
}

func (m *Model) helpText() string {
	if m.CategoryIndex == 0 {
		return "Type: Left/Right | Scroll: PgUp/PgDn | Quit: Esc"
	}
	return "Type: Left/Right | Move: Tab/Up/Down | Save: Ctrl+S | Scroll: PgUp/PgDn | Clear: Esc"
}

func (m *Model) formView() string {
	var sb strings.Builder
	sb.WriteString("Log a Workout\n\n")

	focus := m.focused()
	for _, it := range m.items() {
		isFocused := it == focus

		// visible focus marker so it's obvious which row is active
		marker := "  "
		if isFocused {
			marker = "→ "
		}

		switch it.kind {
		case itemCategory:
			value := "Select workout type"
			if c := m.SelectedCategory(); c != "" {
				value = c.Label()
			}
			label := marker + it.label
			line := fmt.Sprintf("  ‹ %s ›", value)
			if isFocused {
				label = inputStyle.Render(label)
				line = inputStyle.Render(line)
			}
			sb.WriteString(label)
			sb.WriteString("\n")
			sb.WriteString(line)
			sb.WriteString("\n\n")
		case itemInput:
			label := fmt.Sprintf("%s%s: ", marker, it.label)
			value := m.form.Value(it.inputID)
			if isFocused {
				label = inputStyle.Render(label)
				value = inputStyle.Render(value + "█")
			} else {
				label = inputInactiveStyle.Render(label)
			}
			sb.WriteString(label)
			sb.WriteString(value)
			sb.WriteString("\n")
		case itemSubmit:
			sb.WriteString("\n")
			if isFocused {
				sb.WriteString(buttonFocusedStyle.Render(it.label))
			} else {
				sb.WriteString(buttonStyle.Render(it.label))
			}
			sb.WriteString("\n")
		}
	}

	return boxStyle.Width(formWidth).Height(panelHeight).Render(sb.String())
}

func (m *Model) historyView() string {
	var sb strings.Builder
	sb.WriteString("Workout History\n\n")

	if m.History.Empty() {
		sb.WriteString(inactiveStyle.Render(history.Placeholder))
		return boxStyle.Width(historyWidth).Height(panelHeight).Render(sb.String())
	}

	entries := m.History.Entries
	if m.HistoryScroll > 0 && m.HistoryScroll < len(entries) {
		entries = entries[m.HistoryScroll:]
	}
	for _, e := range entries {
		sb.WriteString(formatEntry(e))
		sb.WriteString("\n")
	}

	if m.HistoryScroll > 0 {
		sb.WriteString(helpStyle.Render(fmt.Sprintf("(%d newer above)", m.HistoryScroll)))
	}

	return boxStyle.Width(historyWidth).Height(panelHeight).Render(sb.String())
}

func formatEntry(e history.Entry) string {
	var sb strings.Builder
	sb.WriteString(headingStyle.Render(e.Heading))
	sb.WriteString("\n")
	for _, d := range e.Details {
		sb.WriteString("  • ")
		sb.WriteString(detailLabelStyle.Render(d.Label + ":"))
		sb.WriteString(" ")
		sb.WriteString(d.Value)
		sb.WriteString("\n")
	}
	return sb.String()
}
