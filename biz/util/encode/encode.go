package encode

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Sha256Hex digests the joined parts. Used to bind a token id to its session,
// never for password storage.
func Sha256Hex(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, ":")))
	return hex.EncodeToString(sum[:])
}
