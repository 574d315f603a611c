package cmd

import (
	"fmt"

	"github.com/theirongolddev/bunkmate/internal/attendance"
	"github.com/theirongolddev/bunkmate/internal/cli"
	"github.com/theirongolddev/bunkmate/internal/config"

	"github.com/spf13/cobra"
)

var flagDeltas []int

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Project what-if outcomes for attending or missing future classes",
	RunE:  runScenarios,
}

func init() {
	scenariosCmd.Flags().IntSliceVar(&flagDeltas, "deltas", nil,
		"Class deltas to project, positive = attend, negative = miss (default from config)")
	rootCmd.AddCommand(scenariosCmd)
}

func runScenarios(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	in := inputFromFlags(cfg)

	deltas := flagDeltas
	if len(deltas) == 0 {
		deltas = cfg.Scenarios.Deltas
	}

	scenarios, err := attendance.ProjectScenarios(in, deltas)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("WHAT-IF SCENARIOS"))
	fmt.Println()
	fmt.Printf("  Now at %s with a %s target.\n\n",
		cli.FormatPercent(float64(in.AttendedClasses)/float64(in.TotalClasses)*100),
		cli.FormatPercent(in.TargetPercent))

	rows := make([][]string, 0, len(scenarios))
	for _, s := range scenarios {
		verdict := "below target"
		if s.MeetsTarget {
			verdict = "on target"
		}
		rows = append(rows, []string{
			s.Label,
			cli.FormatDelta(s.Delta),
			cli.FormatPercent(s.ResultingPercent),
			verdict,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Scenario", "Delta", "Resulting", "Verdict"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
