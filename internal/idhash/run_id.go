package idhash

import (
	"crypto/sha256"

	"github.com/mr-tron/base58"
)

// ComputeRunID derives a short, deterministic run identifier from a
// fingerprint of the assembled instrument set.
// Formula: base58(SHA256(fingerprint)[:8]).
func ComputeRunID(fingerprint string) string {
	sum := sha256.Sum256([]byte(fingerprint))
	return base58.Encode(sum[:8])
}
