package dom

import "math/rand/v2"

// alphabet is the 62-symbol identity alphabet: digits, uppercase, lowercase.
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// IDLength is the identity length used for nodes created by New.
const IDLength = 8

// Source produces identity strings of the requested length. Identities are
// opaque correlation keys, not secrets: uniqueness is probabilistic, and the
// default source is deliberately not cryptographic.
type Source func(length int) string

var idSource Source = randomID

func randomID(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(b)
}

// Generate returns an identity of the given length from the current source.
func Generate(length int) string {
	return idSource(length)
}

// SetSource replaces the identity source and returns the previous one.
// Passing nil restores the default random source. Tests use this to install
// a deterministic source; see package domtest.
func SetSource(s Source) Source {
	prev := idSource
	if s == nil {
		s = randomID
	}
	idSource = s
	return prev
}
