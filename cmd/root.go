package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jwkforge",
	Short: "Convert RSA and EC P-256 keys between PEM and JWK",
	Long: `jwkforge generates RSA and EC (P-256) key pairs, extracts the
numeric components from PEM-encoded public keys and assembles them into
JSON Web Keys (RFC 7517) and JWK sets.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
