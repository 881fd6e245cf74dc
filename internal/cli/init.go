package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the explorer configuration",
		Long:  "Create the configuration directory and a default config.yaml when missing.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(opts.configDir, 0o755); err != nil {
				return sysError(fmt.Errorf("create config directory: %w", err))
			}

			path := filepath.Join(opts.configDir, configFileExt)
			created, err := writeConfigIfMissing(path)
			if err != nil {
				return sysError(fmt.Errorf("write config: %w", err))
			}

			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s\n", path)
			}
			return nil
		},
	}
}
