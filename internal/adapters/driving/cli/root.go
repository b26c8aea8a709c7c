package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Drewrwhite/profile-data/internal/adapters/driven/codec/jsonfile"
	"github.com/Drewrwhite/profile-data/internal/adapters/driven/config/file"
	"github.com/Drewrwhite/profile-data/internal/adapters/driven/storage/memory"
	"github.com/Drewrwhite/profile-data/internal/adapters/driven/storage/sqlite"
	"github.com/Drewrwhite/profile-data/internal/core/domain"
	"github.com/Drewrwhite/profile-data/internal/core/ports/driven"
	"github.com/Drewrwhite/profile-data/internal/core/ports/driving"
	"github.com/Drewrwhite/profile-data/internal/core/services"
	"github.com/Drewrwhite/profile-data/internal/enrich"
	"github.com/Drewrwhite/profile-data/internal/logger"
	"github.com/Drewrwhite/profile-data/internal/rules"
)

var version = "dev"

// Service instances used by the commands. Wired by setup from
// configuration; tests inject their own implementations.
var (
	cfg         *file.Config
	pipelineSvc driving.Pipeline
	historySvc  driving.History
	runStore    driven.RunStore
)

// Persistent flags.
var (
	verbose     bool
	configFlag  string
	dataDirFlag string
	formatFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "profile-data",
	Short: "Validate profile records and split them into ok and reject files",
	Long: `profile-data reads a JSON document of profile records, validates
each record against a configurable rule set, and splits the input into
an accepted file and a rejected file. Every input record lands in
exactly one output, in input order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		switch cmd.Name() {
		case "version", "init", "help", "completion":
			// These commands never touch the pipeline or the ledger.
			return nil
		}
		return setup()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to the config file")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "directory for the run ledger")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "", "input format: auto, array or jsonl")
}

// Execute runs the CLI with the given build version.
func Execute(v string) error {
	version = v
	return rootCmd.Execute()
}

// setup loads configuration and wires the services. Already-populated
// service variables are left untouched so tests keep their mocks.
func setup() error {
	if pipelineSvc != nil && historySvc != nil {
		return nil
	}

	if cfg == nil {
		path := configFlag
		if path == "" {
			var err error
			if path, err = file.DefaultPath(); err != nil {
				return err
			}
		}
		loaded, err := file.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if formatFlag != "" {
		if !domain.Format(formatFlag).Valid() {
			return fmt.Errorf("%w: format %q", domain.ErrInvalidInput, formatFlag)
		}
		cfg.Format = formatFlag
	}

	if runStore == nil {
		store, err := sqlite.NewStore(dataDirFlag)
		if err != nil {
			// The ledger is best effort: fall back to an in-memory
			// store so the run itself still works.
			logger.Warn("Run ledger unavailable: %v", err)
			runStore = memory.NewRunStore()
		} else {
			runStore = store
		}
	}

	format := domain.Format(cfg.Format)
	if pipelineSvc == nil {
		pipelineSvc = services.NewPipeline(
			jsonfile.NewReader(format),
			jsonfile.NewWriter(format),
			rules.FromTable(cfg.Rules),
			enrich.New(cfg.Enrich.Tags),
			runStore,
		)
	}
	if historySvc == nil {
		historySvc = services.NewHistory(runStore)
	}
	return nil
}
