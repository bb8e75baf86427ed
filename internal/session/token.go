package session

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateToken returns 24 random bytes hex-encoded: 48 characters,
// unguessable, opaque to the client.
func GenerateToken() string {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
