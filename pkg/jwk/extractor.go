package jwk

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rsa"
	"encoding/base64"
	"math/big"

	"github.com/golang-jwt/jwt/v5"
	jwkerrors "github.com/keyforge/jwkforge/pkg/errors"
)

// p256CoordinateSize is the fixed width in bytes of a P-256 coordinate.
const p256CoordinateSize = 32

// ExtractRSAComponents parses a PEM-encoded RSA public key (PKIX / PKCS#1)
// and returns its modulus (n) and public exponent (e) as unpadded base64url
// strings of the big-endian unsigned integer bytes.
//
// A key whose modulus or exponent decodes to zero length is treated as absent,
// not as a degenerate valid key. The function is pure and safe for concurrent
// use.
func ExtractRSAComponents(publicKeyPEM string) (string, string, error) {
	publicKey, err := ParseRSAPublicKey(publicKeyPEM)
	if err != nil {
		return "", "", jwkerrors.NewMissingRSAParams(err)
	}

	n := publicKey.N.Bytes()
	e := big.NewInt(int64(publicKey.E)).Bytes()

	if len(n) == 0 || len(e) == 0 {
		return "", "", jwkerrors.NewMissingRSAParams(nil)
	}

	nB64 := base64.RawURLEncoding.EncodeToString(n)
	eB64 := base64.RawURLEncoding.EncodeToString(e)

	return nB64, eB64, nil
}

// ExtractES256Coordinates parses a PEM-encoded EC public key on the P-256
// curve and returns its x and y coordinates as unpadded base64url strings.
// Both coordinates are fixed-width 32-byte big-endian values.
func ExtractES256Coordinates(publicKeyPEM string) (string, string, error) {
	publicKey, err := ParseECPublicKey(publicKeyPEM)
	if err != nil {
		return "", "", jwkerrors.NewMissingECParams(err)
	}

	if publicKey.Curve != elliptic.P256() {
		curveName := "unknown"
		if publicKey.Curve != nil && publicKey.Curve.Params() != nil {
			curveName = publicKey.Curve.Params().Name
		}
		return "", "", jwkerrors.NewUnsupportedCurve(curveName)
	}

	// Degenerate keys (point at infinity) carry no recoverable coordinates
	if publicKey.X == nil {
		return "", "", jwkerrors.NewMissingECX()
	}
	if publicKey.Y == nil {
		return "", "", jwkerrors.NewMissingECY()
	}

	x := publicKey.X.FillBytes(make([]byte, p256CoordinateSize))
	y := publicKey.Y.FillBytes(make([]byte, p256CoordinateSize))

	xB64 := base64.RawURLEncoding.EncodeToString(x)
	yB64 := base64.RawURLEncoding.EncodeToString(y)

	return xB64, yB64, nil
}

// ParseRSAPublicKey parses a PEM-encoded RSA public key. The PEM framing and
// DER decoding are delegated to the jwt library.
func ParseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, jwkerrors.NewRSAParse(err)
	}
	return publicKey, nil
}

// ParseECPublicKey parses a PEM-encoded EC public key.
func ParseECPublicKey(publicKeyPEM string) (*ecdsa.PublicKey, error) {
	publicKey, err := jwt.ParseECPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, jwkerrors.NewECParse(err)
	}
	return publicKey, nil
}
