package cmd

import (
	"fmt"

	"github.com/theirongolddev/bunkmate/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default target: %.1f%%\n", cfg.General.DefaultTarget)
	fmt.Printf("    Theme:          %s\n", cfg.General.Theme)
	fmt.Println()

	fmt.Println("  [Scenarios]")
	fmt.Printf("    Deltas: %s\n", joinInts(cfg.Scenarios.Deltas))
	fmt.Println()

	fmt.Println("  [Targets]")
	fmt.Print("    Milestones: ")
	for i, m := range cfg.Targets.Milestones {
		if i > 0 {
			fmt.Print(", ")
		}
		fmt.Printf("%.0f%%", m)
	}
	fmt.Println()
	fmt.Println()

	fmt.Println("  Run `bunkmate setup` to reconfigure.")
	return nil
}
