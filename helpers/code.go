package helpers

import (
	"math/rand"
	"time"
)

const codeBytes = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

func randomCode(n int) string {
	src := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = codeBytes[src.Intn(len(codeBytes))]
	}
	return string(b)
}

// GenerateEventCode returns a short invite code guests type in to join.
// Ambiguous characters (0/O, 1/I/L) are excluded from the alphabet.
func GenerateEventCode() string {
	return randomCode(6)
}

func GenerateUserCode() string {
	return "p" + randomCode(7)
}
