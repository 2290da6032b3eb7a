package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	jwkerrors "github.com/keyforge/jwkforge/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestError_Format(t *testing.T) {
	err := jwkerrors.NewUnsupportedKeyType("OCT")
	assert.Contains(t, err.Error(), "UnsupportedKeyType")
	assert.Contains(t, err.Error(), `"OCT"`)

	wrapped := jwkerrors.NewKeyGenerationFailed(stderrors.New("entropy exhausted"))
	assert.Contains(t, wrapped.Error(), "KeyGenerationFailed")
	assert.Contains(t, wrapped.Error(), "entropy exhausted")
}

func TestError_Unwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := jwkerrors.NewPEMRead("/tmp/key.pem", cause)

	assert.ErrorIs(t, err, cause)
}

func TestIsKind(t *testing.T) {
	err := jwkerrors.NewMissingRSAParams(nil)

	assert.True(t, jwkerrors.IsKind(err, jwkerrors.KindMissingRSAParams))
	assert.False(t, jwkerrors.IsKind(err, jwkerrors.KindMissingECParams))
	assert.False(t, jwkerrors.IsKind(nil, jwkerrors.KindMissingRSAParams))
	assert.False(t, jwkerrors.IsKind(stderrors.New("plain"), jwkerrors.KindMissingRSAParams))
}

func TestIsKind_ThroughWrapping(t *testing.T) {
	inner := jwkerrors.NewECParse(stderrors.New("bad der"))
	outer := jwkerrors.NewMissingECParams(inner)

	// The outermost kind wins, but the inner cause stays reachable
	assert.True(t, jwkerrors.IsKind(outer, jwkerrors.KindMissingECParams))

	wrapped := fmt.Errorf("loading key set: %w", outer)
	assert.True(t, jwkerrors.IsKind(wrapped, jwkerrors.KindMissingECParams))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, jwkerrors.KindMissingECX, jwkerrors.KindOf(jwkerrors.NewMissingECX()))
	assert.Equal(t, jwkerrors.Kind(""), jwkerrors.KindOf(stderrors.New("plain")))
}
