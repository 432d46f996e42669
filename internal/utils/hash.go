package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hash identifies a history row. Fields are joined with NUL so that
// ("ab", "c") and ("a", "bc") differ.
func Hash(fields ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(fields, "\x00")))
	return hex.EncodeToString(sum[:])
}
