package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the nodelist release version.
const Version = "0.1.0"

const modulePath = "github.com/mesh-intelligence/nodelist"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the nodelist version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "nodelist v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
