package cli

import (
	"context"
	"errors"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Drewrwhite/profile-data/internal/core/ports/driving"
	"github.com/Drewrwhite/profile-data/internal/logger"
	"github.com/Drewrwhite/profile-data/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <directory>",
	Short: "Process JSON files as they appear in a directory",
	Long: `Monitors a directory and runs the validation pipeline on every
JSON file created in (or moved into) it. Output files produced by the
pipeline itself are skipped. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if pipelineSvc == nil {
		return errors.New("pipeline service not configured")
	}

	wcfg := watcher.Config{Dir: args[0]}
	if cfg != nil {
		wcfg.EventsPerSecond = cfg.Watch.EventsPerSecond
		wcfg.Burst = cfg.Watch.Burst
	}
	w, err := watcher.New(wcfg)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd.Printf("Watching %s for JSON files. Press Ctrl+C to stop.\n", args[0])

	for path := range w.Watch(ctx) {
		if isDerivedOutput(path) {
			continue
		}

		opts := driving.RunOptions{InputPath: path}
		if cfg != nil {
			opts.Datestamp = cfg.Datestamp
			opts.Enrich = cfg.Enrich.Enabled
			opts.Annotate = cfg.Annotate
		}

		report, err := pipelineSvc.Run(ctx, opts)
		if err != nil {
			// A bad file must not stop the watch loop.
			logger.Error("Processing %s: %v", path, err)
			continue
		}
		cmd.Printf("%s: %d records, %d ok, %d rejected\n",
			path, report.Total, report.Accepted, report.Rejected)
	}
	return nil
}

// isDerivedOutput reports whether path looks like a file the pipeline
// itself wrote, so watch runs do not reprocess their own outputs.
func isDerivedOutput(path string) bool {
	name := filepath.Base(path)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return strings.HasSuffix(stem, "_ok") || strings.HasSuffix(stem, "_reject")
}
