package keygen

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"

	jwkerrors "github.com/keyforge/jwkforge/pkg/errors"
)

// GenerateRSAKeyPair generates a fresh RSA key pair of the given bit length
// and renders both halves as PEM text, PKCS#8 for the private key and
// SubjectPublicKeyInfo for the public key. Bit lengths are passed through to
// the generation primitive unchecked; sizes it rejects surface as
// KeyGenerationFailed.
//
// Generation blocks on the system entropy source and has no other side
// effect. Generation and encoding failures are collapsed into the single
// KeyGenerationFailed kind.
func GenerateRSAKeyPair(bits int) (string, string, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, bits)
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

// encodePrivateKeyPEM renders a private key as a PKCS#8 PEM block with LF
// line endings.
func encodePrivateKeyPEM(key any) (string, error) {
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return "", err
	}

	block := &pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: der,
	}
	return string(pem.EncodeToMemory(block)), nil
}

// encodePublicKeyPEM renders a public key as a SubjectPublicKeyInfo PEM block
// with LF line endings.
func encodePublicKeyPEM(key any) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(key)
	if err != nil {
		return "", err
	}

	block := &pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: der,
	}
	return string(pem.EncodeToMemory(block)), nil
}
