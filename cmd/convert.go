package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	jwkerrors "github.com/keyforge/jwkforge/pkg/errors"
	"github.com/keyforge/jwkforge/pkg/jwk"
	"github.com/keyforge/jwkforge/pkg/types"
	"github.com/spf13/cobra"
)

var (
	convertIn  string
	convertUse string
	convertAlg string
	convertKid string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a PEM-encoded public key to a JWK",
	RunE: func(cmd *cobra.Command, args []string) error {
		pemBytes, err := os.ReadFile(convertIn)
		if err != nil {
			return jwkerrors.NewPEMRead(convertIn, err)
		}
		pemText := string(pemBytes)

		key, err := convertPEM(pemText)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(key, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize JWK: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

// convertPEM extracts the key components from a public key PEM blob,
// auto-detecting the key family, and assembles the JWK.
func convertPEM(pemText string) (*types.JSONWebKey, error) {
	if n, e, err := jwk.ExtractRSAComponents(pemText); err == nil {
		return jwk.NewBuilder(types.KeyTypeRSA).
			SetKeyUse(convertUse).
			SetAlgorithm(convertAlg).
			SetKeyID(convertKid).
			SetModulus(n).
			SetExponent(e).
			Build()
	}

	x, y, err := jwk.ExtractES256Coordinates(pemText)
	if err != nil {
		return nil, err
	}

	return jwk.NewBuilder(types.KeyTypeEC).
		SetKeyUse(convertUse).
		SetAlgorithm(convertAlg).
		SetKeyID(convertKid).
		SetCurveType("P-256").
		SetXCoordinate(x).
		SetYCoordinate(y).
		Build()
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertIn, "in", "i", "", "Path to the public key PEM file")
	convertCmd.Flags().StringVar(&convertUse, "use", "", "JWK use value (e.g. sig)")
	convertCmd.Flags().StringVar(&convertAlg, "alg", "", "JWK algorithm identifier (e.g. RS256, ES256)")
	convertCmd.Flags().StringVar(&convertKid, "kid", "", "JWK key id")
	_ = convertCmd.MarkFlagRequired("in")
}
