package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Drewrwhite/profile-data/internal/adapters/driven/config/file"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter configuration file",
	Long: `Writes the default configuration, including the built-in profile
rule set, so it can be edited. The file goes to --config if given,
otherwise to ~/.profile-data/config.toml.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var initForceFlag bool

func init() {
	initCmd.Flags().BoolVar(&initForceFlag, "force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	path := configFlag
	if path == "" {
		var err error
		if path, err = file.DefaultPath(); err != nil {
			return err
		}
	}

	if _, err := os.Stat(path); err == nil && !initForceFlag {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	if err := file.Save(path, file.Default()); err != nil {
		return err
	}
	cmd.Printf("Wrote default config to %s\n", path)
	return nil
}
