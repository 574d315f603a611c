package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/theirongolddev/bunkmate/internal/attendance"
	"github.com/theirongolddev/bunkmate/internal/cli"
	"github.com/theirongolddev/bunkmate/internal/config"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var (
	flagShareOut  string
	flagShareCopy bool
	flagShareJSON bool
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Export the attendance report as text or JSON",
	RunE:  runShare,
}

func init() {
	shareCmd.Flags().StringVarP(&flagShareOut, "out", "o", "", "Write the report to a file")
	shareCmd.Flags().BoolVar(&flagShareCopy, "copy", false, "Copy the report to the clipboard")
	shareCmd.Flags().BoolVar(&flagShareJSON, "json", false, "Emit JSON instead of plain text")
	rootCmd.AddCommand(shareCmd)
}

func runShare(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	in := inputFromFlags(cfg)

	r, err := attendance.Compute(in)
	if err != nil {
		return err
	}
	insights := attendance.Insights(in, r)

	var out string
	if flagShareJSON {
		data, err := json.MarshalIndent(cli.NewReport(in, r, insights), "", "  ")
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		out = string(data) + "\n"
	} else {
		out = cli.ShareText(in, r, insights)
	}

	if flagShareOut != "" {
		if err := os.WriteFile(flagShareOut, []byte(out), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(os.Stderr, "  Wrote report to %s\n", flagShareOut)
	}

	if flagShareCopy {
		if err := clipboard.WriteAll(out); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		fmt.Fprintln(os.Stderr, "  Copied report to clipboard")
	}

	if flagShareOut == "" && !flagShareCopy {
		fmt.Print(out)
	}

	return nil
}
