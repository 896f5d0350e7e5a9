package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minqi/tsgen/internal/db"
	"github.com/minqi/tsgen/internal/models"
	"github.com/minqi/tsgen/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add [task name]",
	Short: "Add a task to the hour pool",
	Long: `Add a task with an hour budget and priority.

Modes:
  Interactive: tsgen add (no arguments opens a form)
  Quick: tsgen add "登录模块" --hours 16 --priority high`,
	Args: cobra.ArbitraryArgs,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		interactive, _ := cmd.Flags().GetBool("interactive")
		if len(args) == 0 && !interactive {
			interactive = true
		}

		if interactive {
			prefilled := make(map[string]string)
			if len(args) > 0 {
				prefilled["name"] = strings.Join(args, " ")
			}
			if hours, _ := cmd.Flags().GetFloat64("hours"); hours > 0 {
				prefilled["hours"] = strconv.FormatFloat(hours, 'f', -1, 64)
			}
			if priority, _ := cmd.Flags().GetString("priority"); priority != "" {
				prefilled["priority"] = priority
			}
			if desc, _ := cmd.Flags().GetString("desc"); desc != "" {
				prefilled["description"] = desc
			}
			if err := tui.RunAddTaskTUI(prefilled); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		hours, _ := cmd.Flags().GetFloat64("hours")
		priority, _ := cmd.Flags().GetString("priority")
		desc, _ := cmd.Flags().GetString("desc")

		task, err := db.CreateTask(db.CreateTaskRequest{
			Name:        strings.Join(args, " "),
			TotalHours:  hours,
			Priority:    priority,
			Description: desc,
		})
		if err != nil {
			fmt.Printf("Error creating task: %v\n", err)
			return
		}

		fmt.Printf("✅ Created task #%d: %s\n", task.ID, task.Name)
		fmt.Printf("  Hours: %g\n", task.TotalHours)
		fmt.Printf("  Priority: %s\n", models.PriorityLabel(task.Priority))
		if task.Description != "" {
			fmt.Printf("  Description: %s\n", task.Description)
		}
	}),
}

func init() {
	addCmd.Flags().BoolP("interactive", "i", false, "Interactive mode with TUI")
	addCmd.Flags().Float64P("hours", "H", 0, "Total hours budgeted for the task")
	addCmd.Flags().StringP("priority", "p", "", "Priority: low, medium, high, or 1-3")
	addCmd.Flags().StringP("desc", "d", "", "Short description used in generated entries")
}
