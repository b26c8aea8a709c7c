package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Drewrwhite/profile-data/internal/core/domain"
)

var checkCmd = &cobra.Command{
	Use:   "check <input-file>",
	Short: "Validate a profile file without writing any output",
	Long: `Reads the input document and reports every validation failure
without writing the ok and reject files. Useful for inspecting a file
before running the full split.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

var checkStrictFlag bool

func init() {
	checkCmd.Flags().BoolVar(&checkStrictFlag, "strict", false, "exit with an error if any record is rejected")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if pipelineSvc == nil {
		return errors.New("pipeline service not configured")
	}

	report, err := pipelineSvc.Check(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	for _, res := range report.Results {
		if res.Outcome != domain.Rejected {
			continue
		}
		cmd.Printf("record %d:\n", res.Record.Index)
		for _, v := range res.Violations {
			cmd.Printf("  %s\n", v.String())
		}
	}

	cmd.Printf("%d records checked: %d ok, %d rejected\n",
		report.Total, report.Accepted, report.Rejected)

	if checkStrictFlag && report.Rejected > 0 {
		return fmt.Errorf("%d records failed validation", report.Rejected)
	}
	return nil
}
