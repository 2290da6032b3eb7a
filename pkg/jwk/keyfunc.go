package jwk

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"math/big"

	"github.com/golang-jwt/jwt/v5"
	jwkerrors "github.com/keyforge/jwkforge/pkg/errors"
	"github.com/keyforge/jwkforge/pkg/types"
)

// PublicKey materializes the crypto public key described by a JWK, the
// inverse of the extraction pipeline. RSA keys yield *rsa.PublicKey, EC keys
// *ecdsa.PublicKey.
func PublicKey(key *types.JSONWebKey) (crypto.PublicKey, error) {
	keyType, err := types.ParseKeyType(key.KeyType)
	if err != nil {
		return nil, err
	}

	switch keyType {
	case types.KeyTypeRSA:
		return rsaPublicKey(key)
	case types.KeyTypeEC:
		return ecPublicKey(key)
	}
	return nil, jwkerrors.NewUnsupportedKeyType(key.KeyType)
}

func rsaPublicKey(key *types.JSONWebKey) (*rsa.PublicKey, error) {
	if key.N == "" || key.E == "" {
		return nil, jwkerrors.NewMissingRSAParams(nil)
	}

	nBytes, err := base64.RawURLEncoding.DecodeString(key.N)
	if err != nil {
		return nil, jwkerrors.NewBase64Encoding("n", err)
	}

	eBytes, err := base64.RawURLEncoding.DecodeString(key.E)
	if err != nil {
		return nil, jwkerrors.NewBase64Encoding("e", err)
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: int(new(big.Int).SetBytes(eBytes).Int64()),
	}, nil
}

func ecPublicKey(key *types.JSONWebKey) (*ecdsa.PublicKey, error) {
	if key.Crv == "" || key.X == "" || key.Y == "" {
		return nil, jwkerrors.NewMissingECParams(nil)
	}

	if key.Crv != "P-256" {
		return nil, jwkerrors.NewUnsupportedCurve(key.Crv)
	}

	xBytes, err := base64.RawURLEncoding.DecodeString(key.X)
	if err != nil {
		return nil, jwkerrors.NewBase64Encoding("x", err)
	}

	yBytes, err := base64.RawURLEncoding.DecodeString(key.Y)
	if err != nil {
		return nil, jwkerrors.NewBase64Encoding("y", err)
	}

	return &ecdsa.PublicKey{
		Curve: elliptic.P256(),
		X:     new(big.Int).SetBytes(xBytes),
		Y:     new(big.Int).SetBytes(yBytes),
	}, nil
}

// Keyfunc returns a jwt.Keyfunc that resolves the verification key for a
// token by matching the token's kid header against the keys in the set.
func Keyfunc(jwks *types.JWKS) jwt.Keyfunc {
	return func(token *jwt.Token) (any, error) {
		kid, ok := token.Header["kid"].(string)
		if !ok {
			return nil, errors.New("missing or invalid kid in token header")
		}

		for i := range jwks.Keys {
			if jwks.Keys[i].KeyID == kid {
				return PublicKey(&jwks.Keys[i])
			}
		}
		return nil, errors.New("key not found")
	}
}
