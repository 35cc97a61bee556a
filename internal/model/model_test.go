// Copyright (c) 2026 Shelfmaster Team
// Shelfmaster - library catalog and borrower tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import "testing"

func TestBookString(t *testing.T) {
	b := Book{Title: "Dune", Author: "Herbert", ID: "D0001"}
	if got := b.String(); got != "Dune by Herbert [D0001]" {
		t.Errorf("unexpected Book.String(): %q", got)
	}
}

func TestBorrowerString(t *testing.T) {
	b := Borrower{Name: "alice"}
	if got := b.String(); got != "alice" {
		t.Errorf("unexpected Borrower.String() without books: %q", got)
	}

	b.BorrowedBooks = []string{"A1111", "B2222"}
	if got := b.String(); got != "alice (A1111, B2222)" {
		t.Errorf("unexpected Borrower.String() with books: %q", got)
	}
}
