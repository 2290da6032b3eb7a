package types

import (
	jwkerrors "github.com/keyforge/jwkforge/pkg/errors"
)

// KeyType is the closed set of JWK key families supported by this library.
type KeyType string

const (
	KeyTypeRSA KeyType = "RSA"
	KeyTypeEC  KeyType = "EC"
)

// ParseKeyType converts an untrusted kty string (e.g. from a deserialized JWK)
// into a KeyType. Anything outside RSA/EC is rejected with UnsupportedKeyType.
func ParseKeyType(s string) (KeyType, error) {
	switch KeyType(s) {
	case KeyTypeRSA, KeyTypeEC:
		return KeyType(s), nil
	default:
		return "", jwkerrors.NewUnsupportedKeyType(s)
	}
}

// JSONWebKey is a JSON web key as specified by RFC 7517.
// Optional fields are omitted from the serialized form when unset, never
// emitted as null.
type JSONWebKey struct {
	KeyType   string `json:"kty"`
	Use       string `json:"use,omitempty"`
	Algorithm string `json:"alg,omitempty"`
	KeyID     string `json:"kid,omitempty"`
	N         string `json:"n,omitempty"`   // RSA modulus
	E         string `json:"e,omitempty"`   // RSA public exponent
	Crv       string `json:"crv,omitempty"` // EC curve
	X         string `json:"x,omitempty"`   // EC x coordinate
	Y         string `json:"y,omitempty"`   // EC y coordinate
	D         string `json:"d,omitempty"`   // Private key component, only if explicitly supplied
}

// JWKS represents a set of JSON Web Keys as served from a JWKS endpoint
type JWKS struct {
	Keys []JSONWebKey `json:"keys"`
}

// For backward compatibility and to maintain the existing interface
// These aliases are provided to allow code to adapt gradually
type JSONWebKeySet = JWKS

// NewJWKS aggregates keys into a key set, preserving caller order. No
// cross-key validation is performed; duplicate kid values are permitted.
func NewJWKS(keys ...JSONWebKey) *JWKS {
	set := &JWKS{
		Keys: make([]JSONWebKey, 0, len(keys)),
	}
	set.Keys = append(set.Keys, keys...)
	return set
}
