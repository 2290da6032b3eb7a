package cmd

import (
	"fmt"

	"github.com/keyforge/jwkforge/pkg/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit %s, built %s)\n", info.BinName, info.Version, info.Commit, info.Date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
