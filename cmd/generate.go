package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	jwkerrors "github.com/keyforge/jwkforge/pkg/errors"
	"github.com/keyforge/jwkforge/pkg/keygen"
	"github.com/spf13/cobra"
)

var (
	generateType   string
	generateBits   int
	generateOut    string
	generatePrefix string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a key pair and write it out as PEM files",
	RunE: func(cmd *cobra.Command, args []string) error {
		var privatePEM, publicPEM string
		var err error

		switch generateType {
		case "rsa":
			privatePEM, publicPEM, err = keygen.GenerateRSAKeyPair(generateBits)
		case "ec":
			privatePEM, publicPEM, err = keygen.GenerateECP256KeyPair()
		default:
			return fmt.Errorf("unknown key type %q, expected rsa or ec", generateType)
		}
		if err != nil {
			return err
		}

		privatePath := filepath.Join(generateOut, generatePrefix+"-private.pem")
		publicPath := filepath.Join(generateOut, generatePrefix+"-public.pem")

		if err := os.WriteFile(privatePath, []byte(privatePEM), 0o600); err != nil {
			return jwkerrors.NewPEMWrite(privatePath, err)
		}
		slog.Info("Wrote private key", "path", privatePath)

		if err := os.WriteFile(publicPath, []byte(publicPEM), 0o644); err != nil {
			return jwkerrors.NewPEMWrite(publicPath, err)
		}
		slog.Info("Wrote public key", "path", publicPath)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateType, "type", "t", "rsa", "Key type to generate (rsa or ec)")
	generateCmd.Flags().IntVarP(&generateBits, "bits", "b", 2048, "RSA modulus size in bits (ignored for ec)")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", ".", "Directory to write the PEM files to")
	generateCmd.Flags().StringVarP(&generatePrefix, "prefix", "p", "jwkforge", "Filename prefix for the PEM files")
}
