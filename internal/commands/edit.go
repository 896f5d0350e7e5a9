package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minqi/tsgen/internal/db"
	"github.com/minqi/tsgen/internal/models"
)

var editCmd = &cobra.Command{
	Use:   "edit [task-id]",
	Short: "Edit a task",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		req := db.UpdateTaskRequest{}
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			req.Name = &name
		}
		if cmd.Flags().Changed("hours") {
			hours, _ := cmd.Flags().GetFloat64("hours")
			req.TotalHours = &hours
		}
		if cmd.Flags().Changed("priority") {
			priority, _ := cmd.Flags().GetString("priority")
			req.Priority = &priority
		}
		if cmd.Flags().Changed("desc") {
			desc, _ := cmd.Flags().GetString("desc")
			req.Description = &desc
		}
		if req.Name == nil && req.TotalHours == nil && req.Priority == nil && req.Description == nil {
			fmt.Println("Nothing to change. Pass --name, --hours, --priority or --desc.")
			return
		}

		task, err := db.UpdateTask(args[0], req)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✏️  Updated task #%d: %s\n", task.ID, task.Name)
		fmt.Printf("  Hours: %g  Priority: %s\n", task.TotalHours, models.PriorityLabel(task.Priority))
	}),
}

func init() {
	editCmd.Flags().StringP("name", "n", "", "New task name")
	editCmd.Flags().Float64P("hours", "H", 0, "New hour budget")
	editCmd.Flags().StringP("priority", "p", "", "New priority: low, medium, high, or 1-3")
	editCmd.Flags().StringP("desc", "d", "", "New description")
}
