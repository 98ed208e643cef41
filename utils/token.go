package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// RandomToken returns 32 bytes of randomness, URL-safe encoded. Used as the
// unusable password seed for externally provisioned accounts.
func RandomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
