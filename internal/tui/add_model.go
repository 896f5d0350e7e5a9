package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/minqi/tsgen/internal/db"
	"github.com/minqi/tsgen/internal/models"
)

// Step represents the current step in the wizard
type Step int

const (
	StepName Step = iota
	StepHours
	StepPriority
	StepDescription
	StepComplete
)

// AddTaskModel represents the TUI model for adding tasks
type AddTaskModel struct {
	currentStep Step
	inputs      []textinput.Model
	width       int
	height      int

	// Task data
	name        string
	hours       float64
	priority    string
	description string

	// Pre-filled data from flags
	prefilled map[string]string

	// State
	err             error
	completed       bool
	cancelled       bool
	validationErr   string
	createdTaskID   uint
	createdTaskName string
}

// NewAddTaskModel creates a new add task TUI model
func NewAddTaskModel(prefilled map[string]string) AddTaskModel {
	inputs := make([]textinput.Model, 4)

	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 60

		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[0].Placeholder = "Enter task name... (required)"
	inputs[0].Focus()
	inputs[0].CharLimit = 100

	inputs[1].Placeholder = "Total hours, e.g. 16 or 12.5 (required)"
	inputs[1].CharLimit = 10

	inputs[2].Placeholder = "low/medium/high or 1/2/3 (Enter for medium)"
	inputs[2].CharLimit = 10

	inputs[3].Placeholder = "Short description used in generated entries (Enter to skip)"
	inputs[3].CharLimit = 200

	m := AddTaskModel{
		currentStep: StepName,
		inputs:      inputs,
		prefilled:   prefilled,
	}

	if name, ok := prefilled["name"]; ok {
		m.inputs[0].SetValue(name)
	}
	if hours, ok := prefilled["hours"]; ok {
		m.inputs[1].SetValue(hours)
	}
	if priority, ok := prefilled["priority"]; ok {
		m.inputs[2].SetValue(priority)
	}
	if description, ok := prefilled["description"]; ok {
		m.inputs[3].SetValue(description)
	}

	return m
}

// Init initializes the model
func (m AddTaskModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m AddTaskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			return m.advance()
		}
	}

	if m.currentStep < StepComplete {
		var cmd tea.Cmd
		m.inputs[m.currentStep], cmd = m.inputs[m.currentStep].Update(msg)
		return m, cmd
	}
	return m, nil
}

// advance validates the current field and moves to the next step,
// saving on the last one
func (m AddTaskModel) advance() (tea.Model, tea.Cmd) {
	m.validationErr = ""

	switch m.currentStep {
	case StepName:
		name := strings.TrimSpace(m.inputs[0].Value())
		if name == "" {
			m.validationErr = "Task name is required"
			return m, nil
		}
		m.name = name

	case StepHours:
		raw := strings.TrimSpace(m.inputs[1].Value())
		hours, err := strconv.ParseFloat(raw, 64)
		if err != nil || hours <= 0 {
			m.validationErr = "Hours must be a positive number"
			return m, nil
		}
		m.hours = hours

	case StepPriority:
		priority := strings.ToLower(strings.TrimSpace(m.inputs[2].Value()))
		switch priority {
		case "", "low", "medium", "high", "1", "2", "3":
			m.priority = priority
		default:
			m.validationErr = "Priority must be low, medium, high or 1-3"
			return m, nil
		}

	case StepDescription:
		m.description = strings.TrimSpace(m.inputs[3].Value())
		return m.save()
	}

	m.inputs[m.currentStep].Blur()
	m.currentStep++
	m.inputs[m.currentStep].Focus()
	return m, textinput.Blink
}

func (m AddTaskModel) save() (tea.Model, tea.Cmd) {
	task, err := db.CreateTask(db.CreateTaskRequest{
		Name:        m.name,
		TotalHours:  m.hours,
		Priority:    m.priority,
		Description: m.description,
	})
	if err != nil {
		m.err = err
	} else {
		m.completed = true
		m.createdTaskID = task.ID
		m.createdTaskName = task.Name
	}
	m.currentStep = StepComplete
	return m, tea.Quit
}

// View renders the wizard
func (m AddTaskModel) View() string {
	if m.currentStep == StepComplete {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true)
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true)
	doneStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText))
	stepStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright))
	errStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorError))
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText))

	var b strings.Builder
	b.WriteString(titleStyle.Render("tsgen - New Task"))
	b.WriteString("\n\n")

	steps := []struct {
		label string
		value string
	}{
		{"Name", m.name},
		{"Hours", strconv.FormatFloat(m.hours, 'f', -1, 64)},
		{"Priority", priorityDisplay(m.priority)},
		{"Description", m.description},
	}

	for i, step := range steps {
		switch {
		case Step(i) < m.currentStep:
			value := step.value
			if value == "" {
				value = "-"
			}
			b.WriteString(doneStyle.Render(fmt.Sprintf("  %s: %s", step.label, value)))
			b.WriteString("\n")
		case Step(i) == m.currentStep:
			b.WriteString(stepStyle.Render("> " + labelStyle.Render(step.label)))
			b.WriteString("\n  ")
			b.WriteString(m.inputs[i].View())
			b.WriteString("\n")
		}
	}

	if m.validationErr != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render("  " + m.validationErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: next • esc: cancel"))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2).
		Render(b.String())

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
	}
	return card
}

func priorityDisplay(priority string) string {
	if priority == "" {
		return "medium"
	}
	return models.PriorityLabel(models.ParsePriority(priority))
}
