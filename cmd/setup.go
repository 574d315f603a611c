package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/bunkmate/internal/config"
	"github.com/theirongolddev/bunkmate/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	targetStr := strconv.FormatFloat(cfg.General.DefaultTarget, 'f', -1, 64)
	deltasStr := joinInts(cfg.Scenarios.Deltas)
	themeName := cfg.General.Theme

	themeOptions := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOptions = append(themeOptions, huh.NewOption(t.Name, t.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Default target percentage").
				Description("Used whenever --target is not given.").
				Value(&targetStr).
				Validate(func(s string) error {
					f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil {
						return errors.New("enter a number")
					}
					if f <= 0 || f >= 100 {
						return errors.New("must be between 0 and 100 (exclusive)")
					}
					return nil
				}),
			huh.NewInput().
				Title("What-if deltas").
				Description("Comma-separated, positive = attend, negative = miss.").
				Value(&deltasStr).
				Validate(func(s string) error {
					_, err := parseInts(s)
					return err
				}),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOptions...).
				Value(&themeName),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	cfg.General.DefaultTarget, _ = strconv.ParseFloat(strings.TrimSpace(targetStr), 64)
	cfg.General.Theme = themeName
	if deltas, err := parseInts(deltasStr); err == nil && len(deltas) > 0 {
		cfg.Scenarios.Deltas = deltas
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `bunkmate setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%q is not a whole number", part)
		}
		out = append(out, n)
	}
	return out, nil
}
