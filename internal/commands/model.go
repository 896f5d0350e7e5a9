package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/minqi/tsgen/internal/modelconfig"
)

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Manage AI model providers",
	Long: `Configure the chat-completion providers used for hour distribution.
Credentials live in ~/.tsgen/models.toml; one provider is active at a time.`,
}

var modelSetCmd = &cobra.Command{
	Use:   "set [provider]",
	Short: "Configure a provider and make it active",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openModelStore()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		provider := args[0]
		cfg, _ := store.Configs()[provider]
		cfg.Provider = provider

		if key, _ := cmd.Flags().GetString("key"); key != "" {
			cfg.APIKey = key
		}
		if model, _ := cmd.Flags().GetString("model"); model != "" {
			cfg.Model = model
		}
		if baseURL, _ := cmd.Flags().GetString("base-url"); baseURL != "" {
			cfg.BaseURL = baseURL
		}
		if cmd.Flags().Changed("temperature") {
			temp, _ := cmd.Flags().GetFloat64("temperature")
			cfg.Temperature = &temp
		}
		if cmd.Flags().Changed("max-tokens") {
			maxTokens, _ := cmd.Flags().GetInt("max-tokens")
			cfg.MaxTokens = &maxTokens
		}
		if rules, _ := cmd.Flags().GetString("rules"); rules != "" {
			cfg.Rules = rules
		}

		if cfg.APIKey == "" {
			fmt.Println("Error: --key is required for a new provider")
			return
		}
		if cfg.Model == "" {
			if p, ok := modelconfig.LookupProvider(provider); ok && len(p.Models) > 0 {
				cfg.Model = p.Models[0]
			} else {
				fmt.Println("Error: --model is required for a custom provider")
				return
			}
		}

		if err := store.Update(provider, cfg); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Configured provider %s (model %s), now active\n", provider, cfg.Model)
	},
}

var modelLsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"show"},
	Short:   "List configured and known providers",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openModelStore()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		configs := store.Configs()
		if len(configs) == 0 {
			fmt.Println("No providers configured. Use 'tsgen model set <provider> --key ...'.")
		} else {
			fmt.Printf("%-12s %-28s %-8s %s\n", "PROVIDER", "MODEL", "ACTIVE", "KEY")
			fmt.Println(strings.Repeat("-", 64))
			for id, cfg := range configs {
				active := ""
				if id == store.ActiveProvider() {
					active = "✓"
				}
				fmt.Printf("%-12s %-28s %-8s %s\n", id, cfg.Model, active, maskKey(cfg.APIKey))
			}
		}
		if last := store.LastTest(); last != nil {
			status := "failed"
			if last.Success {
				status = "ok"
			}
			fmt.Printf("\nLast test: %s (%s, %s)\n", status, last.Provider, last.Timestamp.Format("2006-01-02 15:04"))
		}

		fmt.Println("\nKnown providers:")
		for _, p := range modelconfig.Providers {
			fmt.Printf("  %-12s %s (%s)\n", p.ID, p.DisplayName, strings.Join(p.Models, ", "))
		}
	},
}

var modelUseCmd = &cobra.Command{
	Use:   "use [provider]",
	Short: "Switch the active provider",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openModelStore()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := store.SetActive(args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Active provider is now %s\n", args[0])
	},
}

var modelRmCmd = &cobra.Command{
	Use:   "rm [provider]",
	Short: "Remove a provider's credentials",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openModelStore()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := store.Remove(args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Removed provider %s\n", args[0])
	},
}

var modelTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the active provider's connectivity",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openModelStore()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		client := store.ActiveClient()
		if client == nil {
			fmt.Println("Error: no active model configured")
			return
		}

		fmt.Printf("Testing %s...\n", store.ActiveProvider())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		ok, message := client.TestConnection(ctx)

		if err := store.RecordTest(store.ActiveProvider(), ok, message); err != nil {
			fmt.Printf("⚠️  Could not record the test result: %v\n", err)
		}
		if ok {
			fmt.Printf("✅ %s\n", message)
		} else {
			fmt.Printf("❌ %s\n", message)
		}
	},
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}

func init() {
	modelSetCmd.Flags().StringP("key", "k", "", "API key")
	modelSetCmd.Flags().StringP("model", "m", "", "Model name")
	modelSetCmd.Flags().String("base-url", "", "Override the provider's base URL")
	modelSetCmd.Flags().Float64("temperature", 0, "Sampling temperature")
	modelSetCmd.Flags().Int("max-tokens", 0, "Response token limit")
	modelSetCmd.Flags().String("rules", "", "Extra instructions appended to every prompt")

	modelCmd.AddCommand(modelSetCmd)
	modelCmd.AddCommand(modelLsCmd)
	modelCmd.AddCommand(modelUseCmd)
	modelCmd.AddCommand(modelRmCmd)
	modelCmd.AddCommand(modelTestCmd)
}
