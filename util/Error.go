package util

import (
	"strings"
)

// IsDuplicateKeyError checks if the error is a database constraint violation.
// The string check covers Postgres "SQLSTATE 23505" and SQLite's wording.
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "duplicate key value") ||
		strings.Contains(err.Error(), "23505") ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
