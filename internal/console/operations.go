// Copyright (c) 2026 Shelfmaster Team
// Shelfmaster - library catalog and borrower tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package console

import (
	"errors"
	"strings"

	"github.com/toeirei/shelfmaster/internal/i18n"
	"github.com/toeirei/shelfmaster/internal/library"
	"github.com/toeirei/shelfmaster/internal/model"
)

// FormatBook renders a book the way listings and searches show it.
func FormatBook(b model.Book) string {
	return i18n.T("book.line", b.Title, b.Author, b.ID)
}

// FormatBorrower renders a borrower with its borrowed identifiers.
func FormatBorrower(b model.Borrower) string {
	return i18n.T("borrower.line", b.Name, strings.Join(b.BorrowedBooks, " "))
}

// addBook reads a title and an author, then asks for an identifier until a
// valid one is entered.
func (c *Console) addBook() error {
	title, err := c.prompt(i18n.T("book.prompt_title"))
	if err != nil {
		return err
	}
	author, err := c.prompt(i18n.T("book.prompt_author"))
	if err != nil {
		return err
	}
	for {
		id, err := c.prompt(i18n.T("book.prompt_id"))
		if err != nil {
			return err
		}
		err = c.lib.Catalog.Add(model.Book{Title: title, Author: author, ID: id})
		if errors.Is(err, library.ErrInvalidIdentifier) {
			c.println(i18n.T("book.invalid_id"))
			continue
		}
		return err
	}
}

func (c *Console) deleteBook() error {
	id, err := c.prompt(i18n.T("book.prompt_delete"))
	if err != nil {
		return err
	}
	c.lib.Catalog.DeleteByID(id)
	return nil
}

func (c *Console) searchBook() error {
	id, err := c.prompt(i18n.T("book.prompt_search"))
	if err != nil {
		return err
	}
	if b, ok := c.lib.Catalog.SearchByID(id); ok {
		c.println(FormatBook(b))
	} else {
		c.println(i18n.T("book.not_found"))
	}
	return nil
}

func (c *Console) listBooks() {
	for _, b := range c.lib.Catalog.ListSorted() {
		c.println(FormatBook(b))
	}
}

// addBorrower reads a name and then identifiers up to the sentinel. Bad
// identifiers are reported and skipped. If the input ends before the
// sentinel, the borrower is still added with what was read.
func (c *Console) addBorrower() error {
	name, err := c.prompt(i18n.T("borrower.prompt_name"))
	if err != nil {
		return err
	}
	c.print(i18n.T("borrower.prompt_ids", Sentinel))
	var ids []string
	var readErr error
	for {
		tok, err := c.in.Next()
		if err != nil {
			readErr = err
			break
		}
		if tok == Sentinel {
			break
		}
		if !library.IsValidBookID(tok) {
			c.println(i18n.T("book.invalid_id"))
			continue
		}
		ids = append(ids, tok)
	}
	if _, err := c.lib.Borrowers.Add(name, ids); err != nil {
		return err
	}
	return readErr
}

func (c *Console) deleteBorrower() error {
	name, err := c.prompt(i18n.T("borrower.prompt_delete"))
	if err != nil {
		return err
	}
	c.lib.Borrowers.DeleteByName(name)
	return nil
}

func (c *Console) searchBorrower() error {
	name, err := c.prompt(i18n.T("borrower.prompt_search"))
	if err != nil {
		return err
	}
	if b, ok := c.lib.Borrowers.SearchByName(name); ok {
		c.println(FormatBorrower(b))
	} else {
		c.println(i18n.T("borrower.not_found"))
	}
	return nil
}

func (c *Console) listBorrowers() {
	for _, b := range c.lib.Borrowers.ListAll() {
		c.println(FormatBorrower(b))
	}
}
