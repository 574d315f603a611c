package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/bunkmate/internal/attendance"
	"github.com/theirongolddev/bunkmate/internal/cli"
	"github.com/theirongolddev/bunkmate/internal/config"

	"github.com/spf13/cobra"
)

var flagMilestones []float64

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Show classes needed to reach milestone targets",
	RunE:  runTargets,
}

func init() {
	targetsCmd.Flags().Float64SliceVar(&flagMilestones, "milestones", nil,
		"Milestone targets to evaluate (default from config)")
	rootCmd.AddCommand(targetsCmd)
}

func runTargets(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	in := inputFromFlags(cfg)

	milestones := flagMilestones
	if len(milestones) == 0 {
		milestones = cfg.Targets.Milestones
	}

	// Validate once up front so a bad input fails before any output.
	if err := in.Validate(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("MILESTONE TARGETS"))
	fmt.Println()
	fmt.Printf("  Now at %s (%s).\n\n",
		cli.FormatPercent(float64(in.AttendedClasses)/float64(in.TotalClasses)*100),
		cli.FormatRatio(in.AttendedClasses, in.TotalClasses))

	rows := make([][]string, 0, len(milestones))
	for _, m := range milestones {
		needed, err := attendance.ClassesToReachTarget(in, m)
		if err != nil {
			return err
		}
		note := ""
		if needed == 0 {
			note = "already there"
		}
		rows = append(rows, []string{
			cli.FormatPercent(m),
			strconv.Itoa(needed),
			note,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Target", "Classes Needed", ""},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
