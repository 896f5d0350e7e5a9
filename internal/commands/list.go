package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minqi/tsgen/internal/db"
	"github.com/minqi/tsgen/internal/models"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List tasks",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		tasks, err := db.GetTasks()
		if err != nil {
			fmt.Printf("Error fetching tasks: %v\n", err)
			return
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks found. Use 'tsgen add \"task name\"' to create your first task.")
			return
		}

		fmt.Printf("%-4s %-30s %-8s %-10s %-12s %s\n", "ID", "NAME", "HOURS", "PRIORITY", "SOURCE", "DESCRIPTION")
		fmt.Println(strings.Repeat("-", 90))

		var total float64
		for _, task := range tasks {
			name := task.Name
			if len(name) > 28 {
				name = name[:25] + "..."
			}
			desc := task.Description
			if len(desc) > 30 {
				desc = desc[:27] + "..."
			}

			hours := fmt.Sprintf("%g", task.TotalHours)
			if task.IsReference() {
				hours = "ref"
			} else {
				total += task.TotalHours
			}

			fmt.Printf("%-4d %-30s %-8s %-10s %-12s %s\n",
				task.ID,
				name,
				hours,
				models.PriorityLabel(task.Priority),
				task.Source,
				desc)
		}

		fmt.Println(strings.Repeat("-", 90))
		fmt.Printf("Total budgeted hours: %g\n", total)
	}),
}
