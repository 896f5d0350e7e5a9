package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minqi/tsgen/internal/db"
)

var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Work with individual timesheet entries",
}

var entryEditCmd = &cobra.Command{
	Use:   "edit [entry-id]",
	Short: "Rewrite one entry's work content",
	Long: `Rewrite the work content of a single entry in the current timesheet.
Entry IDs are shown by 'tsgen show'; a unique prefix is enough.
Entries of archived timesheets cannot be edited.`,
	Args: cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		content, _ := cmd.Flags().GetString("content")
		if content == "" {
			fmt.Println("Error: --content is required")
			return
		}

		id, err := resolveEntryID(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		entry, err := db.UpdateEntryContent(id, content)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✏️  Updated entry %s (%s)\n", shortID(entry.ID), entry.Date)
		fmt.Printf("  %s\n", entry.WorkContent)
	}),
}

// resolveEntryID expands a unique ID prefix against the current result
func resolveEntryID(prefix string) (string, error) {
	result, err := db.GetCurrentResult()
	if err != nil {
		return "", err
	}
	var match string
	for _, entry := range result.Entries {
		if entry.ID == prefix {
			return entry.ID, nil
		}
		if len(prefix) >= 4 && len(entry.ID) >= len(prefix) && entry.ID[:len(prefix)] == prefix {
			if match != "" {
				return "", fmt.Errorf("entry prefix %q is ambiguous", prefix)
			}
			match = entry.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("entry %s not found in the current timesheet", prefix)
	}
	return match, nil
}

func init() {
	entryEditCmd.Flags().StringP("content", "c", "", "New work content")
	entryCmd.AddCommand(entryEditCmd)
}
