package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/minqi/tsgen/internal/models"
)

const entriesPerPage = 15

// ResultModel is the read-only browser over a generated timesheet
type ResultModel struct {
	result   *models.Result
	selected int
	page     int
	width    int
	height   int
}

// NewResultModel creates the browser model
func NewResultModel(result *models.Result) ResultModel {
	return ResultModel{result: result}
}

// Init initializes the model
func (m ResultModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ResultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.page = m.selected / entriesPerPage
			}
		case "down", "j":
			if m.selected < len(m.result.Entries)-1 {
				m.selected++
				m.page = m.selected / entriesPerPage
			}
		case "left", "h":
			if m.page > 0 {
				m.page--
				m.selected = m.page * entriesPerPage
			}
		case "right", "l":
			if (m.page+1)*entriesPerPage < len(m.result.Entries) {
				m.page++
				m.selected = m.page * entriesPerPage
			}
		}
	}
	return m, nil
}

// View renders the table with a detail pane for the selected entry
func (m ResultModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true)
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Bold(true)
	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	rowStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText))
	mutedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDisabledText))
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText))

	title := "Timesheet"
	if m.result.Name != "" {
		title = m.result.Name
	}
	if m.result.Archived {
		title += "  🗃️"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-12s %-44s %7s %7s", "DATE", "WORK CONTENT", "HOURS", "LEFT")))
	b.WriteString("\n")

	start := m.page * entriesPerPage
	end := start + entriesPerPage
	if end > len(m.result.Entries) {
		end = len(m.result.Entries)
	}
	for i := start; i < end; i++ {
		entry := m.result.Entries[i]
		content := entry.WorkContent
		if lipgloss.Width(content) > 42 {
			content = truncate(content, 42)
		}
		row := fmt.Sprintf("%-12s %-44s %7g %7g", entry.Date, content, entry.HoursSpent, entry.RemainingHours)
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + row))
		} else {
			b.WriteString(rowStyle.Render("  " + row))
		}
		b.WriteString("\n")
	}

	totalPages := (len(m.result.Entries) + entriesPerPage - 1) / entriesPerPage
	if totalPages > 1 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("\n  Page %d/%d", m.page+1, totalPages)))
		b.WriteString("\n")
	}

	if m.selected < len(m.result.Entries) {
		entry := m.result.Entries[m.selected]
		detail := fmt.Sprintf("%s\n%s\n工时 %g / 剩余 %g", entry.Date, entry.WorkContent, entry.HoursSpent, entry.RemainingHours)
		if !entry.IsEditable {
			detail += "\n" + mutedStyle.Render("read-only")
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Padding(0, 1).
			Render(detail))
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render(fmt.Sprintf("\n总工时 %g  工作天数 %d  平均每日 %g\n",
		m.result.TotalHours, m.result.TotalDays, m.result.AverageHoursPerDay)))
	b.WriteString(helpStyle.Render("↑/↓: select • ←/→: page • q: quit"))

	return b.String()
}

// truncate cuts a string to width columns, rune-safe for CJK text
func truncate(s string, width int) string {
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if w+rw > width-3 {
			b.WriteString("...")
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String()
}
