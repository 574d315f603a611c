package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/bunkmate/internal/attendance"
	"github.com/theirongolddev/bunkmate/internal/cli"
	"github.com/theirongolddev/bunkmate/internal/config"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current attendance status",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	in := inputFromFlags(cfg)

	if flagTotal == 0 && flagAttended == 0 {
		fmt.Println()
		fmt.Println("  No classes given.")
		fmt.Println()
		fmt.Println("  Examples:")
		fmt.Println("    bunkmate -t 50 -a 40           status against the configured target")
		fmt.Println("    bunkmate -t 50 -a 40 -g 85     status against an 85% target")
		fmt.Println("    bunkmate tui                   interactive dashboard")
		fmt.Println()
		return nil
	}

	r, err := attendance.Compute(in)
	if err != nil {
		return err
	}
	insights := attendance.Insights(in, r)

	fmt.Println()
	fmt.Println(cli.RenderTitle("ATTENDANCE STATUS"))
	fmt.Println()

	rows := [][]string{
		{"Attended", cli.FormatRatio(in.AttendedClasses, in.TotalClasses)},
		{"Current", cli.FormatPercent(r.CurrentPercent)},
		{"Target", cli.FormatPercent(in.TargetPercent)},
		{"Status", cli.StatusLabel(r.Status)},
		{"---"},
		{"Classes to attend", strconv.Itoa(r.ClassesToAttend)},
		{"Safe to bunk", strconv.Itoa(r.ClassesToBunk)},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	fmt.Println()
	fmt.Printf("  %s\n", cli.StatusBar(r.CurrentPercent, r.Status, 40))
	fmt.Println()
	fmt.Printf("  %s\n", r.Message)
	fmt.Println()
	fmt.Print(cli.RenderInsights(insights))
	fmt.Println()

	return nil
}
