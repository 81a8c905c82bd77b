package crypto

import (
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"sort"

	"golang.org/x/crypto/sha3"
)

// ErrUnknownAlgorithm is returned when a hash algorithm name has no
// registration.
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// hashes maps algorithm names, as callers pass them, to constructors.
// Names are lowercase with the dash placement of the NIST FIPS names.
var hashes = map[string]func() hash.Hash{
	"sha-256":    sha256.New,
	"sha-384":    sha512.New384,
	"sha-512":    sha512.New,
	"sha3-256":   sha3.New256,
	"sha3-512":   sha3.New512,
	"keccak-256": sha3.NewLegacyKeccak256,
}

// NewHash returns a fresh hash.Hash for the named algorithm, or
// ErrUnknownAlgorithm when the name is not registered.
func NewHash(name string) (hash.Hash, error) {
	f, ok := hashes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return f(), nil
}

// Algorithms returns the registered algorithm names in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(hashes))
	for n := range hashes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
