package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/type3-dev/type3/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "type3 %s\n", version.GetFullVersion())
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
