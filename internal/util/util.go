package util

import (
	"math/rand/v2"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewID returns a 9-character base36 token used as an entity primary key.
// Uniqueness is probabilistic: there is no collision check against stored
// records.
func NewID() string {
	return randomToken(9)
}

// NewCode returns a 6-character uppercase token used as a course access
// code, short enough to type by hand.
func NewCode() string {
	return strings.ToUpper(randomToken(6))
}

func randomToken(n int) string {
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(alphabet[rand.IntN(len(alphabet))])
	}
	return b.String()
}
