// Package ident generates the record identifiers used throughout the
// persisted state: a feature prefix, the current time in Unix milliseconds,
// and a short random suffix. Uniqueness is probabilistic, not guaranteed.
package ident

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffixLength   = 9
)

// New returns an identifier of the form "<prefix>_<unix-ms>_<suffix>".
// The random source is injected so tests can make identifiers deterministic.
func New(r *rand.Rand, now time.Time, prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, now.UnixMilli(), Suffix(r))
}

// Suffix returns a 9 character base-36 random string.
func Suffix(r *rand.Rand) string {
	b := make([]byte, suffixLength)
	for i := range b {
		b[i] = suffixAlphabet[r.Intn(len(suffixAlphabet))]
	}
	return string(b)
}

// NewSource returns a time-seeded random source for production use.
func NewSource() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
