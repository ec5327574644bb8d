package idhash

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// noiseBuckets quantizes the seed; matches the modulus used by the
// original price generator.
const noiseBuckets = 10000

// NoiseSeed computes a deterministic pseudo-random value in [0, 1) keyed by
// class name and day index. Formula: SHA256(name|day), first 8 bytes as a
// big-endian integer, reduced mod 10000 and scaled to [0, 1).
//
// A fixed cryptographic hash is used instead of a language-default hash so
// identical inputs reproduce identical output across processes and runs.
func NoiseSeed(name string, day int) float64 {
	data := fmt.Sprintf("%s|%d", name, day)
	sum := sha256.Sum256([]byte(data))
	v := binary.BigEndian.Uint64(sum[:8])
	return float64(v%noiseBuckets) / noiseBuckets
}
