package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minqi/tsgen/internal/db"
)

var archiveCmd = &cobra.Command{
	Use:   "archive [name]",
	Short: "Archive the current timesheet",
	Long: `Archive freezes the current timesheet under a name and clears the
working slot for the next generation. Archived timesheets are read-only.`,
	Args: cobra.MaximumNArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		if name == "" {
			result, err := db.GetCurrentResult()
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			name = fmt.Sprintf("%s 至 %s", result.Config.StartDate, result.Config.EndDate)
		}

		result, err := db.ArchiveCurrent(name)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🗃️  Archived timesheet: %s\n", result.Name)
		fmt.Printf("  ID: %s  Entries: %d  Hours: %g\n", shortID(result.ID), len(result.Entries), result.TotalHours)
	}),
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived timesheets",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		results, err := db.GetArchivedResults()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(results) == 0 {
			fmt.Println("No archived timesheets. Use 'tsgen archive [name]' after generating one.")
			return
		}

		fmt.Printf("%-10s %-30s %-18s %8s %6s\n", "ID", "NAME", "ARCHIVED", "HOURS", "DAYS")
		fmt.Println(strings.Repeat("-", 78))
		for _, result := range results {
			archivedAt := ""
			if result.ArchivedAt != nil {
				archivedAt = result.ArchivedAt.Format("2006-01-02 15:04")
			}
			name := result.Name
			if len(name) > 28 {
				name = name[:25] + "..."
			}
			fmt.Printf("%-10s %-30s %-18s %8g %6d\n",
				shortID(result.ID), name, archivedAt, result.TotalHours, result.TotalDays)
		}
	}),
}

var historyShowCmd = &cobra.Command{
	Use:   "show [result-id]",
	Short: "Show one archived timesheet",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		result, err := db.GetResultByID(resolveResultID(args[0]))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		renderResult(result)
	}),
}

var historyRmCmd = &cobra.Command{
	Use:   "rm [result-id]",
	Short: "Delete an archived timesheet",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		id := resolveResultID(args[0])
		result, err := db.GetResultByID(id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := db.DeleteResult(id); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Deleted timesheet %s: %s\n", shortID(result.ID), result.Name)
	}),
}

// resolveResultID expands a unique ID prefix against the archive list.
// Unknown prefixes pass through so the lookup reports the miss.
func resolveResultID(prefix string) string {
	if len(prefix) < 4 {
		return prefix
	}
	results, err := db.GetArchivedResults()
	if err != nil {
		return prefix
	}
	match := prefix
	count := 0
	for _, result := range results {
		if strings.HasPrefix(result.ID, prefix) {
			match = result.ID
			count++
		}
	}
	if count != 1 {
		return prefix
	}
	return match
}

func init() {
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyRmCmd)
}
