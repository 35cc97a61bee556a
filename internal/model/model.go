// Copyright (c) 2026 Shelfmaster Team
// Shelfmaster - library catalog and borrower tracker
// This source code is licensed under the MIT license found in the LICENSE file.

// package model defines the core data structures used throughout Shelfmaster.
package model // import "github.com/toeirei/shelfmaster/internal/model"

import (
	"fmt"
	"strings"
)

// Book is a single catalog entry.
type Book struct {
	Title  string // The title of the book.
	Author string // The author of the book.
	ID     string // The catalog identifier, e.g. "A1234". Not required to be unique.
}

// String returns a compact "title by author [id]" representation.
func (b Book) String() string {
	return fmt.Sprintf("%s by %s [%s]", b.Title, b.Author, b.ID)
}

// Borrower represents a person and the book identifiers they have borrowed.
// Borrowed identifiers are loose references; they are not required to exist
// in the catalog.
type Borrower struct {
	Name          string
	BorrowedBooks []string // In the order they were entered.
}

// String returns the name followed by the borrowed identifiers.
func (b Borrower) String() string {
	if len(b.BorrowedBooks) == 0 {
		return b.Name
	}
	return fmt.Sprintf("%s (%s)", b.Name, strings.Join(b.BorrowedBooks, ", "))
}
