// Copyright (c) 2026 Shelfmaster Team
// Shelfmaster - library catalog and borrower tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package library

import (
	"slices"

	"github.com/toeirei/shelfmaster/internal/logging"
	"github.com/toeirei/shelfmaster/internal/model"
	"github.com/toeirei/shelfmaster/util/slicest"
)

// Registry is the collection of borrowers, most recently added first.
type Registry struct {
	borrowers []model.Borrower
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add creates a borrower with the given name and borrowed identifiers and
// inserts it at the front of the registry. Every identifier must be valid;
// callers that accept free-form input should drop bad identifiers first.
// Names need not be unique.
func (r *Registry) Add(name string, ids []string) (model.Borrower, error) {
	for _, id := range ids {
		if err := ValidateBookID(id); err != nil {
			return model.Borrower{}, err
		}
	}
	b := model.Borrower{Name: name, BorrowedBooks: slices.Clone(ids)}
	r.borrowers = slices.Insert(r.borrowers, 0, b)
	logging.Debugf("registry: added %s", b)
	return b, nil
}

// DeleteByName removes every borrower with the given name and returns how
// many were removed.
func (r *Registry) DeleteByName(name string) int {
	kept, removed := slicest.Partition(r.borrowers, func(b model.Borrower) bool {
		return b.Name == name
	})
	r.borrowers = kept
	logging.Debugf("registry: removed %d borrower(s) named %q", removed, name)
	return removed
}

// SearchByName returns the first borrower with the given name in storage order.
func (r *Registry) SearchByName(name string) (model.Borrower, bool) {
	b, ok := slicest.Find(r.borrowers, func(b model.Borrower) bool {
		return b.Name == name
	})
	if ok {
		b.BorrowedBooks = slices.Clone(b.BorrowedBooks)
	}
	return b, ok
}

// ListAll returns every borrower in storage order. Borrowed identifiers are
// returned in the order they were entered.
func (r *Registry) ListAll() []model.Borrower {
	return slicest.Map(r.borrowers, func(b model.Borrower) model.Borrower {
		b.BorrowedBooks = slices.Clone(b.BorrowedBooks)
		return b
	})
}

// Len returns the number of borrowers.
func (r *Registry) Len() int {
	return len(r.borrowers)
}
