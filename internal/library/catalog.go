// Copyright (c) 2026 Shelfmaster Team
// Shelfmaster - library catalog and borrower tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package library

import (
	"slices"
	"strings"

	"github.com/toeirei/shelfmaster/internal/logging"
	"github.com/toeirei/shelfmaster/internal/model"
	"github.com/toeirei/shelfmaster/util/slicest"
)

// Catalog is an ordered collection of books. New books are appended; the
// order only changes when ListSorted is called.
type Catalog struct {
	books []model.Book
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Add appends b to the end of the catalog. Duplicate identifiers are allowed.
func (c *Catalog) Add(b model.Book) error {
	if err := ValidateBookID(b.ID); err != nil {
		return err
	}
	c.books = append(c.books, b)
	logging.Debugf("catalog: added %s (%d books)", b, len(c.books))
	return nil
}

// DeleteByID removes every book whose identifier equals id and returns how
// many were removed.
func (c *Catalog) DeleteByID(id string) int {
	kept, removed := slicest.Partition(c.books, func(b model.Book) bool {
		return b.ID == id
	})
	c.books = kept
	logging.Debugf("catalog: removed %d book(s) with id %q", removed, id)
	return removed
}

// SearchByID returns the first book with the given identifier in the
// current order.
func (c *Catalog) SearchByID(id string) (model.Book, bool) {
	return slicest.Find(c.books, func(b model.Book) bool {
		return b.ID == id
	})
}

// ListSorted sorts the catalog in place by ascending identifier and returns
// a copy of the result. Books sharing an identifier keep their relative
// order. The new order is kept for all later operations.
func (c *Catalog) ListSorted() []model.Book {
	slices.SortStableFunc(c.books, func(a, b model.Book) int {
		return strings.Compare(a.ID, b.ID)
	})
	return c.Books()
}

// Books returns a copy of the catalog in its current order.
func (c *Catalog) Books() []model.Book {
	return slices.Clone(c.books)
}

// Len returns the number of books in the catalog.
func (c *Catalog) Len() int {
	return len(c.books)
}
