// Package cmd implements the bunkmate CLI commands.
package cmd

import (
	"os"

	"github.com/theirongolddev/bunkmate/internal/attendance"
	"github.com/theirongolddev/bunkmate/internal/config"

	"github.com/spf13/cobra"
)

var (
	flagTotal    int
	flagAttended int
	flagTarget   float64
)

var rootCmd = &cobra.Command{
	Use:   "bunkmate",
	Short: "Student attendance calculator",
	Long: "Compute your attendance percentage, how many classes you still need\n" +
		"to attend, and how many you can safely bunk.",
	RunE: runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagTotal, "total", "t", 0, "Total classes held")
	rootCmd.PersistentFlags().IntVarP(&flagAttended, "attended", "a", 0, "Classes attended")
	rootCmd.PersistentFlags().Float64VarP(&flagTarget, "target", "g", 0, "Target percentage (default from config)")
}

// inputFromFlags builds the calculation input shared by all commands.
// An unset --target falls back to the configured default.
func inputFromFlags(cfg config.Config) attendance.Input {
	target := flagTarget
	if target == 0 {
		target = cfg.General.DefaultTarget
	}
	return attendance.Input{
		TotalClasses:    flagTotal,
		AttendedClasses: flagAttended,
		TargetPercent:   target,
	}
}
