package keygen_test

import (
	"strings"
	"testing"

	jwkerrors "github.com/keyforge/jwkforge/pkg/errors"
	"github.com/keyforge/jwkforge/pkg/jwk"
	"github.com/keyforge/jwkforge/pkg/keygen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRSAKeyPair(t *testing.T) {
	privatePEM, publicPEM, err := keygen.GenerateRSAKeyPair(2048)
	require.NoError(t, err)

	assert.Contains(t, privatePEM, "BEGIN PRIVATE KEY")
	assert.Contains(t, publicPEM, "BEGIN PUBLIC KEY")
	assert.NotContains(t, privatePEM, "\r\n", "PEM output must use LF line endings")

	// The public half must be extractable by the component extractor
	n, e, err := jwk.ExtractRSAComponents(publicPEM)
	require.NoError(t, err)
	assert.NotEmpty(t, n)
	assert.NotEmpty(t, e)
}

func TestGenerateRSAKeyPair_RejectedSize(t *testing.T) {
	// Sizes the generation primitive rejects surface as KeyGenerationFailed
	_, _, err := keygen.GenerateRSAKeyPair(512)
	assert.True(t, jwkerrors.IsKind(err, jwkerrors.KindKeyGenerationFailed))
}

func TestGenerateECP256KeyPair(t *testing.T) {
	privatePEM, publicPEM, err := keygen.GenerateECP256KeyPair()
	require.NoError(t, err)

	assert.Contains(t, privatePEM, "BEGIN PRIVATE KEY")
	assert.Contains(t, publicPEM, "BEGIN PUBLIC KEY")
	assert.True(t, strings.HasSuffix(publicPEM, "\n"))

	x, y, err := jwk.ExtractES256Coordinates(publicPEM)
	require.NoError(t, err)
	assert.NotEmpty(t, x)
	assert.NotEmpty(t, y)
}

func TestGenerateKeyPairs_Unique(t *testing.T) {
	_, publicA, err := keygen.GenerateECP256KeyPair()
	require.NoError(t, err)
	_, publicB, err := keygen.GenerateECP256KeyPair()
	require.NoError(t, err)

	assert.NotEqual(t, publicA, publicB)
}
