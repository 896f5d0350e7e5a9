package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minqi/tsgen/internal/db"
	"github.com/minqi/tsgen/internal/models"
	"github.com/minqi/tsgen/internal/tui"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current timesheet",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		result, err := db.GetCurrentResult()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if ui, _ := cmd.Flags().GetBool("ui"); ui {
			if err := tui.RunResultTUI(result); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		renderResult(result)
	}),
}

// renderResult prints a result as a plain table with a summary block
func renderResult(result *models.Result) {
	if result.Name != "" {
		fmt.Printf("%s\n", result.Name)
	}
	fmt.Printf("%-10s %-50s %6s %6s  %s\n", "DATE", "WORK CONTENT", "HOURS", "LEFT", "ID")
	fmt.Println(strings.Repeat("-", 100))
	for _, entry := range result.Entries {
		content := entry.WorkContent
		if len(content) > 48 {
			content = content[:45] + "..."
		}
		fmt.Printf("%-10s %-50s %6g %6g  %s\n",
			entry.Date,
			content,
			entry.HoursSpent,
			entry.RemainingHours,
			shortID(entry.ID))
	}
	fmt.Println(strings.Repeat("-", 100))
	fmt.Printf("总工时: %g  工作天数: %d  平均每日工时: %g\n",
		result.TotalHours, result.TotalDays, result.AverageHoursPerDay)
	if result.Archived {
		fmt.Println("🗃️  Archived (read-only)")
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	showCmd.Flags().BoolP("ui", "u", false, "Browse the timesheet in an interactive view")
}
