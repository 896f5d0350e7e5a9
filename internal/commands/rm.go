package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minqi/tsgen/internal/db"
	"github.com/minqi/tsgen/internal/models"
)

var rmCmd = &cobra.Command{
	Use:     "rm [task-id]",
	Aliases: []string{"remove"},
	Short:   "Remove a task",
	Args:    cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		task, err := db.GetTaskByID(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := db.DeleteTask(args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Removed task #%d: %s\n", task.ID, task.Name)
	}),
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all tasks, or only those from one source",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		source, _ := cmd.Flags().GetString("source")
		switch source {
		case "", models.SourceManual, models.SourceGitLog, models.SourceAttachment:
		default:
			fmt.Printf("Error: unknown source '%s' (manual, gitlog, attachment)\n", source)
			return
		}

		n, err := db.ClearTasks(source)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if source == "" {
			fmt.Printf("🗑️  Removed %d tasks\n", n)
		} else {
			fmt.Printf("🗑️  Removed %d %s tasks\n", n, source)
		}
	}),
}

func init() {
	clearCmd.Flags().StringP("source", "s", "", "Only clear tasks from this source: manual, gitlog, attachment")
}
