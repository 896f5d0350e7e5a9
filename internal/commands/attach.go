package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/minqi/tsgen/internal/attachment"
	"github.com/minqi/tsgen/internal/db"
	"github.com/minqi/tsgen/internal/models"
)

var attachCmd = &cobra.Command{
	Use:   "attach [file]",
	Short: "Import a document as reference material",
	Long: `attach stores a text document as a 0-hour reference task. Pass a file,
use --text for inline content, or pipe into stdin with no arguments.`,
	Args: cobra.MaximumNArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		var (
			ref models.Task
			err error
		)
		text, _ := cmd.Flags().GetString("text")
		switch {
		case len(args) > 0:
			ref, err = attachment.FromFile(args[0])
		case text != "":
			ref, err = attachment.FromText("", text)
		default:
			data, readErr := io.ReadAll(os.Stdin)
			if readErr != nil {
				fmt.Printf("Error reading stdin: %v\n", readErr)
				return
			}
			ref, err = attachment.FromText("标准输入", string(data))
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		task, err := db.CreateTask(db.CreateTaskRequest{
			Name:        ref.Name,
			TotalHours:  ref.TotalHours,
			Description: ref.Description,
			Source:      ref.Source,
			SourceData:  ref.SourceData,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Attached as task #%d: %s (%d bytes)\n", task.ID, task.Name, len(task.SourceData))
	}),
}

func init() {
	attachCmd.Flags().StringP("text", "t", "", "Inline text content instead of a file")
}
