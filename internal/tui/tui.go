package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/minqi/tsgen/internal/models"
)

// RunAddTaskTUI starts the interactive add task form
func RunAddTaskTUI(prefilled map[string]string) error {
	model := NewAddTaskModel(prefilled)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()

	// Handle exit messages after the TUI closes
	if err != nil {
		return err
	}

	if m, ok := finalModel.(AddTaskModel); ok {
		if m.cancelled {
			fmt.Println("❌ Task creation cancelled.")
		} else if m.completed && m.createdTaskID > 0 {
			fmt.Printf("✅ New task \"%s\" added - ID: %d\n", m.createdTaskName, m.createdTaskID)
		} else if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}

	return nil
}

// RunResultTUI starts the timesheet browser
func RunResultTUI(result *models.Result) error {
	p := tea.NewProgram(NewResultModel(result), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
