package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/p3rf/explorer/internal/schema"
)

// Version is the explorer release version.
const Version = "0.1.0"

const modulePath = "github.com/p3rf/explorer"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the explorer version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "explorer v%s\nmodule: %s\nschema: %s\n",
				Version, modulePath, versionsString(schema.DefaultRegistry().Versions()))
			return nil
		},
	}
}
