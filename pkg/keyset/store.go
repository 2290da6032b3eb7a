package keyset

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	jwkerrors "github.com/keyforge/jwkforge/pkg/errors"
	"github.com/keyforge/jwkforge/pkg/jwk"
	"github.com/keyforge/jwkforge/pkg/types"
)

// Source describes one public-key PEM file to include in a key set. Use,
// Algorithm and KeyID are optional descriptive metadata; when KeyID is empty a
// random UUID is assigned so every key in the set is addressable.
type Source struct {
	Path      string
	Use       string
	Algorithm string
	KeyID     string
}

// Store builds JWKS documents from PEM files on disk, caching the result per
// source location.
type Store struct {
	cache Cache
	ttl   time.Duration
}

// NewStore creates a store with an in-memory cache of maxSize entries and the
// given entry TTL.
func NewStore(maxSize int, ttl time.Duration) *Store {
	return &Store{
		cache: NewMemoryCache(maxSize, ttl),
		ttl:   ttl,
	}
}

// FromSources reads every source file, extracts its key components and
// aggregates the resulting JWKs in source order. The first failing source
// aborts the build; no partial key set is returned.
func (s *Store) FromSources(sources []Source) (*types.JWKS, error) {
	keys := make([]types.JSONWebKey, 0, len(sources))

	for _, src := range sources {
		key, err := s.buildKey(src)
		if err != nil {
			return nil, err
		}
		keys = append(keys, *key)
	}

	return types.NewJWKS(keys...), nil
}

// LoadDir builds a JWKS from every .pem file in dir, in lexical filename
// order. Results are cached per directory path until the cache TTL expires.
func (s *Store) LoadDir(dir string) (*types.JWKS, error) {
	if cached, found := s.cache.Get(dir); found {
		return cached, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, jwkerrors.NewPEMRead(dir, err)
	}

	var sources []Source
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".pem") {
			continue
		}
		sources = append(sources, Source{Path: filepath.Join(dir, entry.Name())})
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i].Path < sources[j].Path })

	set, err := s.FromSources(sources)
	if err != nil {
		return nil, err
	}

	s.cache.Set(dir, set, s.ttl)
	return set, nil
}

// buildKey reads one PEM file, auto-detects the key family and assembles the
// JWK through the builder.
func (s *Store) buildKey(src Source) (*types.JSONWebKey, error) {
	pemBytes, err := os.ReadFile(src.Path)
	if err != nil {
		return nil, jwkerrors.NewPEMRead(src.Path, err)
	}
	pemText := string(pemBytes)

	kid := src.KeyID
	if kid == "" {
		kid = uuid.NewString()
	}

	if n, e, err := jwk.ExtractRSAComponents(pemText); err == nil {
		slog.Debug("Loaded RSA public key", "path", src.Path, "kid", kid)
		return jwk.NewBuilder(types.KeyTypeRSA).
			SetKeyUse(src.Use).
			SetAlgorithm(src.Algorithm).
			SetKeyID(kid).
			SetModulus(n).
			SetExponent(e).
			Build()
	}

	x, y, err := jwk.ExtractES256Coordinates(pemText)
	if err != nil {
		return nil, err
	}

	slog.Debug("Loaded EC public key", "path", src.Path, "kid", kid)
	return jwk.NewBuilder(types.KeyTypeEC).
		SetKeyUse(src.Use).
		SetAlgorithm(src.Algorithm).
		SetKeyID(kid).
		SetCurveType("P-256").
		SetXCoordinate(x).
		SetYCoordinate(y).
		Build()
}
