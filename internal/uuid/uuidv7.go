// Package uuid generates the time-ordered identifiers used as primary keys.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a UUIDv7 string. Its leading 48 bits are the Unix time in
// milliseconds, so IDs created later sort after earlier ones.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Fallback to a random UUIDv4 if the entropy source fails
		return googleuuid.New().String()
	}
	return id.String()
}

// Parse validates a UUID string and returns it in canonical lowercase form.
func Parse(s string) (string, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}
