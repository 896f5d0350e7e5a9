package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minqi/tsgen/internal/db"
	"github.com/minqi/tsgen/internal/export"
	"github.com/minqi/tsgen/internal/models"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a timesheet to a file",
	Long: `Export writes the current timesheet (or an archived one via --id) as
CSV, Excel, plain text, or tab-separated text for pasting into a
spreadsheet.`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		var (
			result *models.Result
			err    error
		)
		if id, _ := cmd.Flags().GetString("id"); id != "" {
			result, err = db.GetResultByID(resolveResultID(id))
		} else {
			result, err = db.GetCurrentResult()
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")

		if format == "tsv" {
			fmt.Print(export.TSV(result))
			return
		}

		if format == "text" {
			format = "txt"
		}
		ext := map[string]string{"csv": "csv", "xlsx": "xlsx", "txt": "txt"}[format]
		if ext == "" {
			fmt.Printf("Error: unknown format '%s' (csv, xlsx, text, tsv)\n", format)
			return
		}
		if out == "" {
			out = fmt.Sprintf("工时表-%s-%s.%s", result.Config.StartDate, result.Config.EndDate, ext)
		}

		f, err := os.Create(out)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer f.Close()

		switch format {
		case "csv":
			err = export.WriteCSV(f, result)
		case "xlsx":
			err = export.WriteXLSX(f, result)
		case "txt":
			err = export.WriteText(f, result)
		}
		if err != nil {
			fmt.Printf("Error writing %s: %v\n", out, err)
			return
		}

		fmt.Printf("📄 Exported %d entries to %s\n", len(result.Entries), out)
	}),
}

func init() {
	exportCmd.Flags().StringP("format", "f", "csv", "Output format: csv, xlsx, txt, tsv")
	exportCmd.Flags().StringP("out", "o", "", "Output file (default derived from the date range)")
	exportCmd.Flags().String("id", "", "Export an archived timesheet instead of the current one")
}
