package utils

import "crypto/rand"

const feIDChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const feIDLen = 10

// NewFeID returns a short random component id, matching the format the editor
// assigns at creation time. Collisions inside one questionnaire's component
// list are accepted as a negligible risk; there is no uniqueness check.
func NewFeID() string {
	b := make([]byte, feIDLen)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	for i := range b {
		b[i] = feIDChars[int(b[i])%len(feIDChars)]
	}
	return string(b)
}
