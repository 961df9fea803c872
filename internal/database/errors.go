package database

import "strings"

// IsUniqueViolation checks if the error is a unique constraint violation for
// either supported driver. Repositories use this to translate store-level
// duplicate-key races into domain conflict errors.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// PostgreSQL: "duplicate key value violates unique constraint"
	if strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint") {
		return true
	}
	// MySQL: Error 1062 "Duplicate entry '...' for key '...'"
	return strings.Contains(errMsg, "duplicate entry")
}
