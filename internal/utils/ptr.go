// Package utils holds tiny generic helpers shared across layers.
package utils

import "strings"

// Ptr returns a pointer to v. Handy for optional struct fields.
func Ptr[T any](v T) *T {
	return &v
}

// OrZero dereferences p, or returns the zero value when p is nil.
func OrZero[T comparable](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// StringOrNil returns nil for an empty or all-whitespace string.
func StringOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
