package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/keyforge/jwkforge/pkg/config"
	"github.com/keyforge/jwkforge/pkg/keyset"
	"github.com/keyforge/jwkforge/pkg/types"
	"github.com/spf13/cobra"
)

var (
	jwksDir string
	jwksIn  []string
	jwksUse string
	jwksAlg string
)

var jwksCmd = &cobra.Command{
	Use:   "jwks",
	Short: "Assemble a JWK set from public key PEM files",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		use := jwksUse
		if use == "" {
			use = cfg.KeyUse
		}

		store := keyset.NewStore(cfg.Cache.MaxLocalSize, cfg.Cache.TTL)

		var set *types.JWKS
		if jwksDir != "" {
			set, err = store.LoadDir(jwksDir)
		} else {
			sources := make([]keyset.Source, 0, len(jwksIn))
			for _, path := range jwksIn {
				sources = append(sources, keyset.Source{
					Path:      path,
					Use:       use,
					Algorithm: jwksAlg,
				})
			}
			set, err = store.FromSources(sources)
		}
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(set, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize JWKS: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(jwksCmd)

	jwksCmd.Flags().StringVarP(&jwksDir, "dir", "d", "", "Directory of public key PEM files")
	jwksCmd.Flags().StringArrayVarP(&jwksIn, "in", "i", nil, "Public key PEM file (repeatable)")
	jwksCmd.Flags().StringVar(&jwksUse, "use", "", "JWK use value for all keys")
	jwksCmd.Flags().StringVar(&jwksAlg, "alg", "", "JWK algorithm identifier for all keys")
	jwksCmd.MarkFlagsOneRequired("dir", "in")
	jwksCmd.MarkFlagsMutuallyExclusive("dir", "in")
}
