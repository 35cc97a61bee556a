// Copyright (c) 2026 Shelfmaster Team
// Shelfmaster - library catalog and borrower tracker
// This source code is licensed under the MIT license found in the LICENSE file.

// Package slicest holds small generic helpers for ordered slices.
package slicest

// Filtering

// Partition splits s into the elements for which fn returns false (kept) and
// the number of elements for which it returned true (dropped). The relative
// order of kept elements is preserved. s is not modified.
func Partition[T any, S ~[]T](s S, fn func(T) bool) (S, int) {
	kept := make(S, 0, len(s))
	dropped := 0
	for _, t := range s {
		if fn(t) {
			dropped++
			continue
		}
		kept = append(kept, t)
	}
	return kept, dropped
}

// Searching

// Find returns the first element for which fn returns true.
func Find[T any, S ~[]T](s S, fn func(T) bool) (T, bool) {
	for _, t := range s {
		if fn(t) {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// Mapping

// MapI maps slice S to []U.
// - I: Provides index to callback.
func MapI[T, U any, S ~[]T](s S, fn func(int, T) U) []U {
	result := make([]U, len(s))
	for i, t := range s {
		result[i] = fn(i, t)
	}
	return result
}

// Map maps slice S to []U.
func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	return MapI(s, func(_ int, t T) U {
		return fn(t)
	})
}
