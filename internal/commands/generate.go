package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minqi/tsgen/internal/db"
	"github.com/minqi/tsgen/internal/generator"
	"github.com/minqi/tsgen/internal/llm"
	"github.com/minqi/tsgen/internal/modelconfig"
	"github.com/minqi/tsgen/internal/models"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate the timesheet from the current tasks and schedule",
	Long: `Generate distributes the budgeted task hours across the configured date
range and stores the result as the current timesheet. Flags override the
stored configuration and the overrides are kept for the next run.

With a configured AI model the distribution and the entry wording are
delegated to it; otherwise, or when the model fails, a deterministic
strategy takes over.`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		cfg, err := db.GetCurrentConfig()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}
		if err := applyGenerateFlags(cmd, &cfg); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := db.SetCurrentConfig(cfg); err != nil {
			fmt.Printf("Error saving config: %v\n", err)
			return
		}

		tasks, err := db.GetTasks()
		if err != nil {
			fmt.Printf("Error fetching tasks: %v\n", err)
			return
		}

		var client *llm.Client
		if noAI, _ := cmd.Flags().GetBool("no-ai"); !noAI {
			client = activeClient()
		}
		if client != nil {
			fmt.Println("🤖 Using the configured AI model for distribution...")
		}

		result, warnings, err := generator.Generate(context.Background(), cfg, tasks, client, nil)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		for _, w := range warnings {
			fmt.Printf("⚠️  %s\n", w)
		}

		if err := db.SaveCurrentResult(result); err != nil {
			fmt.Printf("Error saving result: %v\n", err)
			return
		}

		fmt.Printf("✅ Generated timesheet: %s 至 %s\n\n", cfg.StartDate, cfg.EndDate)
		renderResult(result)
	}),
}

// applyGenerateFlags folds explicit flags into cfg
func applyGenerateFlags(cmd *cobra.Command, cfg *models.ProjectConfig) error {
	if cmd.Flags().Changed("start") {
		cfg.StartDate, _ = cmd.Flags().GetString("start")
	}
	if cmd.Flags().Changed("end") {
		cfg.EndDate, _ = cmd.Flags().GetString("end")
	}
	if cmd.Flags().Changed("hours") {
		cfg.WorkingHours.DailyHours, _ = cmd.Flags().GetFloat64("hours")
	}
	if cmd.Flags().Changed("schedule") {
		schedule, _ := cmd.Flags().GetString("schedule")
		switch schedule {
		case models.ScheduleDouble, models.ScheduleSingle, models.ScheduleAlternate:
			cfg.WorkingHours.ScheduleType = schedule
		default:
			return fmt.Errorf("unknown schedule '%s' (double, single, alternate)", schedule)
		}
	}
	if cmd.Flags().Changed("rest-day") {
		restDay, _ := cmd.Flags().GetString("rest-day")
		if restDay != "saturday" && restDay != "sunday" {
			return fmt.Errorf("rest day must be saturday or sunday")
		}
		cfg.WorkingHours.SingleRestDay = restDay
	}
	if cmd.Flags().Changed("big-week") {
		bigWeek, _ := cmd.Flags().GetBool("big-week")
		cfg.WorkingHours.BigWeek = &bigWeek
	}
	if cmd.Flags().Changed("include-holidays") {
		include, _ := cmd.Flags().GetBool("include-holidays")
		cfg.WorkingHours.ExcludeHolidays = !include
	}
	if cmd.Flags().Changed("mode") {
		mode, _ := cmd.Flags().GetString("mode")
		switch mode {
		case models.ModeDaily, models.ModePriority, models.ModeFeature:
			cfg.DistributionMode = mode
		default:
			return fmt.Errorf("unknown mode '%s' (daily, priority, feature)", mode)
		}
	}
	if cmd.Flags().Changed("content") {
		cfg.WorkContent, _ = cmd.Flags().GetString("content")
	}
	return nil
}

// activeClient loads the active model credentials, tolerating an
// unconfigured store
func activeClient() *llm.Client {
	store, err := openModelStore()
	if err != nil {
		fmt.Printf("⚠️  Cannot read model config: %v\n", err)
		return nil
	}
	return store.ActiveClient()
}

func openModelStore() (*modelconfig.Store, error) {
	path, err := modelconfig.DefaultPath()
	if err != nil {
		return nil, err
	}
	return modelconfig.Load(path)
}

// registerConfigFlags adds the schedule override flags shared by
// generate and config set
func registerConfigFlags(cmd *cobra.Command) {
	cmd.Flags().String("start", "", "Start date (yyyy-mm-dd)")
	cmd.Flags().String("end", "", "End date (yyyy-mm-dd)")
	cmd.Flags().Float64("hours", 0, "Planned hours per workday")
	cmd.Flags().String("schedule", "", "Schedule: double, single, alternate")
	cmd.Flags().String("rest-day", "", "Rest day for single schedule: saturday, sunday")
	cmd.Flags().Bool("big-week", false, "Whether the start date falls in a big week (alternate schedule)")
	cmd.Flags().Bool("include-holidays", false, "Treat statutory holidays as workdays")
	cmd.Flags().String("mode", "", "Distribution mode: daily, priority, feature")
	cmd.Flags().String("content", "", "Fixed work content applied to every entry")
}

func init() {
	registerConfigFlags(generateCmd)
	generateCmd.Flags().Bool("no-ai", false, "Skip the AI model even when one is configured")
}
