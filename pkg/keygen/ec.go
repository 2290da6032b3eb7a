package keygen

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"

	jwkerrors "github.com/keyforge/jwkforge/pkg/errors"
)

// GenerateECP256KeyPair generates a fresh ECDSA key pair on the P-256 curve
// (the ES256 signing curve) and renders both halves as PEM text, PKCS#8 for
// the private key and SubjectPublicKeyInfo for the public key.
func GenerateECP256KeyPair() (string, string, error) {
	privateKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return "", "", jwkerrors.NewKeyGenerationFailed(err)
	}

	privatePEM, err := encodePrivateKeyPEM(privateKey)
	if err != nil {
		return "", "", jwkerrors.NewKeyGenerationFailed(err)
	}

	publicPEM, err := encodePublicKeyPEM(&privateKey.PublicKey)
	if err != nil {
		return "", "", jwkerrors.NewKeyGenerationFailed(err)
	}

	return privatePEM, publicPEM, nil
}
