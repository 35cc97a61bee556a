// Copyright (c) 2026 Shelfmaster Team
// Shelfmaster - library catalog and borrower tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"errors"
	"strings"

	"github.com/toeirei/shelfmaster/internal/console"
	"github.com/toeirei/shelfmaster/internal/i18n"
	"github.com/toeirei/shelfmaster/internal/library"
	"github.com/toeirei/shelfmaster/internal/model"
)

// operation is one menu entry. Operations without fields run as soon as
// they are selected.
type operation struct {
	label  string   // i18n key for the menu entry
	fields []string // i18n keys for the form field labels
	run    func(lib *library.Library, values []string) (string, error)
	exit   bool
}

// operations returns the menu entries in the same order and numbering as
// the text menu.
func operations() []operation {
	return []operation{
		{label: "op.add_book", fields: []string{"tui.field_title", "tui.field_author", "tui.field_book_id"}, run: addBook},
		{label: "op.delete_book", fields: []string{"tui.field_book_id"}, run: deleteBook},
		{label: "op.search_book", fields: []string{"tui.field_book_id"}, run: searchBook},
		{label: "op.list_books", run: listBooks},
		{label: "op.add_borrower", fields: []string{"tui.field_name", "tui.field_book_ids"}, run: addBorrower},
		{label: "op.delete_borrower", fields: []string{"tui.field_name"}, run: deleteBorrower},
		{label: "op.search_borrower", fields: []string{"tui.field_name"}, run: searchBorrower},
		{label: "op.list_borrowers", run: listBorrowers},
		{label: "op.exit", exit: true},
	}
}

// errInvalidBookID is shown in the form when a book id fails validation.
func errInvalidBookID() error {
	return errors.New(i18n.T("book.invalid_id"))
}

func requireField(value, labelKey string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New(i18n.T("tui.required", i18n.T(labelKey)))
	}
	return nil
}

func addBook(lib *library.Library, v []string) (string, error) {
	title, author, id := strings.TrimSpace(v[0]), strings.TrimSpace(v[1]), strings.TrimSpace(v[2])
	if err := requireField(title, "tui.field_title"); err != nil {
		return "", err
	}
	if err := requireField(author, "tui.field_author"); err != nil {
		return "", err
	}
	if err := lib.Catalog.Add(model.Book{Title: title, Author: author, ID: id}); err != nil {
		if errors.Is(err, library.ErrInvalidIdentifier) {
			return "", errInvalidBookID()
		}
		return "", err
	}
	return i18n.T("book.added", id), nil
}

func deleteBook(lib *library.Library, v []string) (string, error) {
	n := lib.Catalog.DeleteByID(strings.TrimSpace(v[0]))
	return i18n.T("book.deleted", n), nil
}

func searchBook(lib *library.Library, v []string) (string, error) {
	if b, ok := lib.Catalog.SearchByID(strings.TrimSpace(v[0])); ok {
		return console.FormatBook(b), nil
	}
	return i18n.T("book.not_found"), nil
}

func listBooks(lib *library.Library, _ []string) (string, error) {
	books := lib.Catalog.ListSorted()
	if len(books) == 0 {
		return i18n.T("book.empty"), nil
	}
	lines := make([]string, 0, len(books))
	for _, b := range books {
		lines = append(lines, console.FormatBook(b))
	}
	return strings.Join(lines, "\n"), nil
}

// addBorrower splits the id field on whitespace; invalid ids are skipped and
// listed in the result, matching the text menu's behavior.
func addBorrower(lib *library.Library, v []string) (string, error) {
	name := strings.TrimSpace(v[0])
	if err := requireField(name, "tui.field_name"); err != nil {
		return "", err
	}
	var valid, skipped []string
	for _, id := range strings.Fields(v[1]) {
		if library.IsValidBookID(id) {
			valid = append(valid, id)
		} else {
			skipped = append(skipped, id)
		}
	}
	if _, err := lib.Borrowers.Add(name, valid); err != nil {
		return "", err
	}
	out := i18n.T("borrower.added", name, len(valid))
	if len(skipped) > 0 {
		out += "\n" + i18n.T("borrower.skipped", strings.Join(skipped, " "))
	}
	return out, nil
}

func deleteBorrower(lib *library.Library, v []string) (string, error) {
	n := lib.Borrowers.DeleteByName(strings.TrimSpace(v[0]))
	return i18n.T("borrower.deleted", n), nil
}

func searchBorrower(lib *library.Library, v []string) (string, error) {
	if b, ok := lib.Borrowers.SearchByName(strings.TrimSpace(v[0])); ok {
		return console.FormatBorrower(b), nil
	}
	return i18n.T("borrower.not_found"), nil
}

func listBorrowers(lib *library.Library, _ []string) (string, error) {
	borrowers := lib.Borrowers.ListAll()
	if len(borrowers) == 0 {
		return i18n.T("borrower.empty"), nil
	}
	lines := make([]string, 0, len(borrowers))
	for _, b := range borrowers {
		lines = append(lines, console.FormatBorrower(b))
	}
	return strings.Join(lines, "\n"), nil
}
