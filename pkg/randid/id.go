// Package randid generates short random identifiers.
package randid

import (
	"crypto/rand"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Generate returns a random lowercase alphanumeric string of the given
// length. Used for entity IDs where a full UUID is overkill.
func Generate(length int) string {
	if length <= 0 {
		return ""
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform RNG is broken; nothing
		// sensible to do but panic.
		panic("randid: " + err.Error())
	}

	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}

	return string(buf)
}
