package market

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"heronomics/internal/domain"
)

// Fingerprint returns a hex SHA-256 digest over the instrument set in its
// given order. JSON encoding of a struct is deterministic (field order), so
// two identical runs fingerprint identically and any field drift changes
// the digest.
func Fingerprint(instruments []*domain.Instrument) string {
	h := sha256.New()
	enc := json.NewEncoder(h)
	for _, inst := range instruments {
		// Encoding to a hash cannot fail for these types.
		_ = enc.Encode(inst)
	}
	return hex.EncodeToString(h.Sum(nil))
}
