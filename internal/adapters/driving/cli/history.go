package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Drewrwhite/profile-data/internal/core/domain"
)

var historyCmd = &cobra.Command{
	Use:   "history [batch-id]",
	Short: "Show recorded pipeline runs",
	Long: `Lists runs recorded in the ledger, newest first. With a batch ID,
shows that single run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

var (
	historyLimitFlag int
	historyJSONFlag  bool
)

func init() {
	historyCmd.Flags().IntVarP(&historyLimitFlag, "limit", "n", 10, "maximum number of runs to list")
	historyCmd.Flags().BoolVar(&historyJSONFlag, "json", false, "output runs as JSON")
	rootCmd.AddCommand(historyCmd)
}

// runView is the JSON shape of a ledger entry.
type runView struct {
	BatchID    string    `json:"batch_id"`
	InputPath  string    `json:"input_path"`
	OKPath     string    `json:"ok_path"`
	RejectPath string    `json:"reject_path"`
	Total      int       `json:"total"`
	Accepted   int       `json:"accepted"`
	Rejected   int       `json:"rejected"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Status     string    `json:"status"`
}

func newRunView(run domain.Run) runView {
	return runView{
		BatchID:    run.BatchID,
		InputPath:  run.InputPath,
		OKPath:     run.OKPath,
		RejectPath: run.RejectPath,
		Total:      run.Total,
		Accepted:   run.Accepted,
		Rejected:   run.Rejected,
		StartedAt:  run.StartedAt,
		FinishedAt: run.FinishedAt,
		Status:     string(run.Status),
	}
}

func runHistory(cmd *cobra.Command, args []string) error {
	if historySvc == nil {
		return errors.New("history service not configured")
	}

	ctx := context.Background()

	if len(args) == 1 {
		run, err := historySvc.Get(ctx, args[0])
		if err != nil {
			return err
		}
		return printRuns(cmd, []domain.Run{*run})
	}

	runs, err := historySvc.List(ctx, historyLimitFlag)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		cmd.Println("No recorded runs.")
		return nil
	}
	return printRuns(cmd, runs)
}

func printRuns(cmd *cobra.Command, runs []domain.Run) error {
	if historyJSONFlag {
		views := make([]runView, 0, len(runs))
		for _, run := range runs {
			views = append(views, newRunView(run))
		}
		data, err := json.MarshalIndent(views, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding runs: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	for _, run := range runs {
		cmd.Printf("%s  %s  %s  %d records (%d ok, %d rejected)  %s\n",
			run.BatchID,
			run.StartedAt.UTC().Format(time.RFC3339),
			run.Status,
			run.Total, run.Accepted, run.Rejected,
			run.InputPath)
	}
	return nil
}
