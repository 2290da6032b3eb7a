package jwk

import (
	jwkerrors "github.com/keyforge/jwkforge/pkg/errors"
	"github.com/keyforge/jwkforge/pkg/types"
)

// Builder accumulates JWK fields and validates them on Build. Setters store
// values verbatim, overwriting any prior value; all validation happens at
// build time. A Builder is single-owner and not safe for concurrent use.
type Builder struct {
	keyType types.KeyType
	use     string
	alg     string
	kid     string
	n       string
	e       string
	crv     string
	x       string
	y       string
	d       string
}

// NewBuilder creates a builder for the given key type. The key type alone
// drives the validation branch taken by Build.
func NewBuilder(keyType types.KeyType) *Builder {
	return &Builder{keyType: keyType}
}

// NewBuilderFromString creates a builder from an untrusted kty string, for
// callers assembling a JWK from external input. The type is validated here so
// Build can only fail on missing fields.
func NewBuilderFromString(keyType string) (*Builder, error) {
	kt, err := types.ParseKeyType(keyType)
	if err != nil {
		return nil, err
	}
	return NewBuilder(kt), nil
}

// SetKeyUse sets the intended use of the key (e.g. "sig")
func (b *Builder) SetKeyUse(use string) *Builder {
	b.use = use
	return b
}

// SetAlgorithm sets the algorithm identifier (e.g. "RS256", "ES256")
func (b *Builder) SetAlgorithm(alg string) *Builder {
	b.alg = alg
	return b
}

// SetKeyID sets the key identifier (kid)
func (b *Builder) SetKeyID(kid string) *Builder {
	b.kid = kid
	return b
}

// SetModulus sets the RSA modulus (n), base64url without padding
func (b *Builder) SetModulus(n string) *Builder {
	b.n = n
	return b
}

// SetExponent sets the RSA public exponent (e), base64url without padding
func (b *Builder) SetExponent(e string) *Builder {
	b.e = e
	return b
}

// SetCurveType sets the EC curve name (e.g. "P-256")
func (b *Builder) SetCurveType(crv string) *Builder {
	b.crv = crv
	return b
}

// SetXCoordinate sets the EC x coordinate, base64url without padding
func (b *Builder) SetXCoordinate(x string) *Builder {
	b.x = x
	return b
}

// SetYCoordinate sets the EC y coordinate, base64url without padding
func (b *Builder) SetYCoordinate(y string) *Builder {
	b.y = y
	return b
}

// SetPrivateKey sets the private key component (d). It is never derived by
// this library; it appears in the output only when explicitly supplied.
func (b *Builder) SetPrivateKey(d string) *Builder {
	b.d = d
	return b
}

// Build validates the required fields for the builder's key type and returns
// an immutable JWK snapshot of every currently-set field.
//
// RSA requires modulus and exponent; EC requires curve, x and y. Fields
// irrelevant to the key type are not rejected and pass through into the
// output — only the minimum required set is validated.
func (b *Builder) Build() (*types.JSONWebKey, error) {
	switch b.keyType {
	case types.KeyTypeRSA:
		if b.n == "" || b.e == "" {
			return nil, jwkerrors.NewMissingRSAParams(nil)
		}
	case types.KeyTypeEC:
		if b.crv == "" || b.x == "" || b.y == "" {
			return nil, jwkerrors.NewMissingECParams(nil)
		}
	default:
		return nil, jwkerrors.NewUnsupportedKeyType(string(b.keyType))
	}

	return &types.JSONWebKey{
		KeyType:   string(b.keyType),
		Use:       b.use,
		Algorithm: b.alg,
		KeyID:     b.kid,
		N:         b.n,
		E:         b.e,
		Crv:       b.crv,
		X:         b.x,
		Y:         b.y,
		D:         b.d,
	}, nil
}
