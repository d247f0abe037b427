package model

import (
	"encoding/base32"
	"strings"

	"github.com/google/uuid"
)

var idEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// GenerateShortID returns a fresh 26 character id: a v4 UUID in lower-case base32.
func GenerateShortID() string {
	id := uuid.New()
	return strings.ToLower(idEncoding.EncodeToString(id[:]))
}

// ValidateShortID reports whether id looks like an id this package would generate.
// Canonical UUID strings (with dashes) are accepted too, so imported records
// keep the ids they were created with.
func ValidateShortID(id string) bool {
	if _, err := uuid.Parse(id); err == nil {
		return true
	}
	if len(id) < 10 || len(id) > 30 {
		return false
	}
	for _, c := range id {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
			return false
		}
	}
	return true
}
