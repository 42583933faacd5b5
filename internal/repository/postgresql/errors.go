package postgresql

import "strings"

// isUniqueViolation checks a pgx error against a named unique
// constraint.
func isUniqueViolation(err error, constraint string) bool {
	return err != nil && strings.Contains(err.Error(), constraint)
}
