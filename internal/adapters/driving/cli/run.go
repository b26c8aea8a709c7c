package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Drewrwhite/profile-data/internal/core/domain"
	"github.com/Drewrwhite/profile-data/internal/core/ports/driving"
)

var runCmd = &cobra.Command{
	Use:   "run <input-file>",
	Short: "Validate a profile file and split it into ok and reject outputs",
	Long: `Reads the input document, validates every record against the rule
set and writes two files next to the input: <base>_ok with the accepted
records and <base>_reject with the rejected ones. Record order is
preserved in both.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

var (
	runOKFlag        string
	runRejectFlag    string
	runDatestampFlag bool
	runEnrichFlag    bool
	runAnnotateFlag  bool
	runPrintFlag     bool
	runQuietFlag     bool
)

func init() {
	runCmd.Flags().StringVar(&runOKFlag, "ok", "", "path for the accepted records file")
	runCmd.Flags().StringVar(&runRejectFlag, "reject", "", "path for the rejected records file")
	runCmd.Flags().BoolVar(&runDatestampFlag, "datestamp", false, "insert a UTC datestamp into derived output names")
	runCmd.Flags().BoolVar(&runEnrichFlag, "enrich", false, "stamp batch metadata onto each record")
	runCmd.Flags().BoolVar(&runAnnotateFlag, "annotate", false, "attach an error field to rejected records")
	runCmd.Flags().BoolVar(&runPrintFlag, "print", false, "echo each accepted record to stdout")
	runCmd.Flags().BoolVarP(&runQuietFlag, "quiet", "q", false, "suppress the run summary")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	if pipelineSvc == nil {
		return errors.New("pipeline service not configured")
	}

	opts := driving.RunOptions{
		InputPath:  args[0],
		OKPath:     runOKFlag,
		RejectPath: runRejectFlag,
		Datestamp:  runDatestampFlag,
		Enrich:     runEnrichFlag,
		Annotate:   runAnnotateFlag,
	}
	if cfg != nil {
		opts.Datestamp = opts.Datestamp || cfg.Datestamp
		opts.Enrich = opts.Enrich || cfg.Enrich.Enabled
		opts.Annotate = opts.Annotate || cfg.Annotate
	}

	report, err := pipelineSvc.Run(context.Background(), opts)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	if runPrintFlag {
		printAccepted(cmd, report)
	}

	if !runQuietFlag {
		cmd.Printf("Read %d records from %s\n", report.Total, report.InputPath)
		cmd.Printf("OK: %d -> %s\n", report.Accepted, report.OKPath)
		cmd.Printf("Rejected: %d -> %s\n", report.Rejected, report.RejectPath)
	}
	return nil
}

// printAccepted echoes each accepted record as one compact JSON line.
func printAccepted(cmd *cobra.Command, report *domain.Report) {
	for _, res := range report.Results {
		if res.Outcome != domain.Accepted {
			continue
		}
		line, err := json.Marshal(res.Record.Fields)
		if err != nil {
			continue
		}
		cmd.Println(string(line))
	}
}
