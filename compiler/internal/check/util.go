package check

import "strings"

// tiny generic stack helpers
func push[T any](s []T, v T) []T { return append(s, v) }
func pop[T any](s []T) []T       { return s[:len(s)-1] }
func top[T any](s []T) *T {
	if len(s) == 0 {
		return nil
	}
	return &s[len(s)-1]
}

/* ---------- helpers ---------- */

// Normalize is the single case-folding policy for names: every insertion
// and every lookup goes through it.
func Normalize(name string) string {
	return strings.ToLower(name)
}
