package security

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the hex SHA-256 digest of password. The digest is
// deterministic so login can match on (username, hash) in a single lookup.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
