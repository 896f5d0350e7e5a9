package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/minqi/tsgen/internal/db"
	"github.com/minqi/tsgen/internal/models"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the generation configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		cfg, err := db.GetCurrentConfig()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		printConfig(cfg)
	}),
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change the current configuration",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		cfg, err := db.GetCurrentConfig()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := applyGenerateFlags(cmd, &cfg); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := db.SetCurrentConfig(cfg); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("✅ Configuration updated")
		printConfig(cfg)
	}),
}

var configSaveCmd = &cobra.Command{
	Use:   "save [name]",
	Short: "Save the current configuration under a name",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		cfg, err := db.GetCurrentConfig()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := db.SaveNamedConfig(args[0], cfg); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Saved configuration '%s'\n", args[0])
	}),
}

var configLoadCmd = &cobra.Command{
	Use:   "load [name]",
	Short: "Load a saved configuration into the working slot",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		cfg, err := db.LoadNamedConfig(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Loaded configuration '%s'\n", args[0])
		printConfig(cfg)
	}),
}

var configLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List saved configurations",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		configs, err := db.ListNamedConfigs()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(configs) == 0 {
			fmt.Println("No saved configurations. Use 'tsgen config save <name>'.")
			return
		}
		fmt.Printf("%-20s %-24s %-10s %s\n", "NAME", "RANGE", "SCHEDULE", "MODE")
		fmt.Println(strings.Repeat("-", 68))
		for _, saved := range configs {
			fmt.Printf("%-20s %-24s %-10s %s\n",
				saved.Name,
				saved.Config.StartDate+" ~ "+saved.Config.EndDate,
				saved.Config.WorkingHours.ScheduleType,
				saved.Config.DistributionMode)
		}
	}),
}

var configRmCmd = &cobra.Command{
	Use:   "rm [name]",
	Short: "Delete a saved configuration",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		if err := db.DeleteNamedConfig(args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Deleted configuration '%s'\n", args[0])
	}),
}

var configExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the current configuration as YAML",
	Args:  cobra.MaximumNArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		cfg, err := db.GetCurrentConfig()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(args) == 0 {
			fmt.Print(string(data))
			return
		}
		if err := os.WriteFile(args[0], data, 0644); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("📄 Exported configuration to %s\n", args[0])
	}),
}

var configImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Load the configuration from a YAML file",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		var cfg models.ProjectConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			fmt.Printf("Error parsing %s: %v\n", args[0], err)
			return
		}
		if cfg.StartDate == "" || cfg.EndDate == "" {
			fmt.Println("Error: imported configuration must set start_date and end_date")
			return
		}
		if err := db.SetCurrentConfig(cfg); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Imported configuration from %s\n", args[0])
		printConfig(cfg)
	}),
}

func printConfig(cfg models.ProjectConfig) {
	fmt.Printf("  Range: %s 至 %s\n", cfg.StartDate, cfg.EndDate)
	fmt.Printf("  Daily hours: %g\n", cfg.WorkingHours.DailyHours)
	schedule := cfg.WorkingHours.ScheduleType
	switch schedule {
	case models.ScheduleSingle:
		schedule += " (rest on " + cfg.WorkingHours.SingleRestDay + ")"
	case models.ScheduleAlternate:
		if cfg.WorkingHours.BigWeek != nil {
			if *cfg.WorkingHours.BigWeek {
				schedule += " (starts on a big week)"
			} else {
				schedule += " (starts on a small week)"
			}
		}
	}
	fmt.Printf("  Schedule: %s\n", schedule)
	fmt.Printf("  Exclude holidays: %v\n", cfg.WorkingHours.ExcludeHolidays)
	fmt.Printf("  Distribution mode: %s\n", cfg.DistributionMode)
	if cfg.WorkContent != "" {
		fmt.Printf("  Fixed work content: %s\n", cfg.WorkContent)
	}
}

func init() {
	// config set shares the generate override flags so both commands
	// accept the same spellings.
	registerConfigFlags(configSetCmd)

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configSaveCmd)
	configCmd.AddCommand(configLoadCmd)
	configCmd.AddCommand(configLsCmd)
	configCmd.AddCommand(configRmCmd)
	configCmd.AddCommand(configExportCmd)
	configCmd.AddCommand(configImportCmd)
}
