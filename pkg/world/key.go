package world

import (
	"strings"

	"golang.org/x/text/cases"
)

// Key normalizes a room or person name into a lookup key.
// Input is trimmed and Unicode case folded, so "  TECHNIK" and "technik" map to the same key.
func Key(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// SameName reports whether two names refer to the same thing after normalization.
func SameName(a, b string) bool {
	return Key(a) == Key(b)
}
