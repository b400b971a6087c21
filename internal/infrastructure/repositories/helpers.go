package repositories

import "strings"

// isDuplicateKey reports whether err is a unique-constraint violation. Covers
// the postgres and sqlite wordings so repository tests can run in-memory.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "23505")
}
