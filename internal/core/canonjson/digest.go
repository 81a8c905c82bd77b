package canonjson

import (
	"encoding/hex"
	"fmt"

	"github.com/canonkit/canond-go/internal/core/crypto"
)

// Digest canonicalizes v and hashes the resulting bytes with the named
// algorithm, using the default depth limit. See Serializer.Digest.
func Digest(v Value, algorithm string) (string, error) {
	return Serializer{}.Digest(v, algorithm)
}

// Digest canonicalizes v and hashes the resulting bytes with the named
// algorithm from the crypto registry ("sha-256", "sha3-256", ...). The
// digest is returned as lowercase hex; that encoding is part of the
// contract and will not change. Trees with identical canonical forms
// always produce identical digests.
func (s Serializer) Digest(v Value, algorithm string) (string, error) {
	h, err := crypto.NewHash(algorithm)
	if err != nil {
		return "", fmt.Errorf("canonjson: %w", err)
	}
	out, err := s.Canonicalize(v)
	if err != nil {
		return "", err
	}
	h.Write(out)
	return hex.EncodeToString(h.Sum(nil)), nil
}
