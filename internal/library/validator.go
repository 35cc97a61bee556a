// Copyright (c) 2026 Shelfmaster Team
// Shelfmaster - library catalog and borrower tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package library

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidIdentifier is returned when a book identifier does not match the
// catalog pattern: one uppercase ASCII letter followed by four digits.
var ErrInvalidIdentifier = errors.New("invalid book identifier")

// bookIDPattern is anchored on both ends; [0-9] keeps it ASCII-only.
var bookIDPattern = regexp.MustCompile(`^[A-Z][0-9]{4}$`)

// IsValidBookID reports whether id is a well-formed book identifier.
// No trimming or case folding is applied.
func IsValidBookID(id string) bool {
	return bookIDPattern.MatchString(id)
}

// ValidateBookID returns ErrInvalidIdentifier, wrapped with the offending
// value, if id is not well-formed.
func ValidateBookID(id string) error {
	if !IsValidBookID(id) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, id)
	}
	return nil
}
