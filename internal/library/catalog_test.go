// Copyright (c) 2026 Shelfmaster Team
// Shelfmaster - library catalog and borrower tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package library

import (
	"bytes"
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/toeirei/shelfmaster/internal/logging"
	"github.com/toeirei/shelfmaster/internal/model"
)

func ids(books []model.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.ID)
	}
	return out
}

func mustAdd(t *testing.T, c *Catalog, title, author, id string) {
	t.Helper()
	if err := c.Add(model.Book{Title: title, Author: author, ID: id}); err != nil {
		t.Fatalf("Add(%q) returned error: %v", id, err)
	}
}

func TestCatalog_AddThenSearch(t *testing.T) {
	c := NewCatalog()
	mustAdd(t, c, "Dune", "Herbert", "D0001")

	got, ok := c.SearchByID("D0001")
	if !ok {
		t.Fatalf("expected to find D0001")
	}
	want := model.Book{Title: "Dune", Author: "Herbert", ID: "D0001"}
	if got != want {
		t.Fatalf("SearchByID returned %+v, want %+v", got, want)
	}
}

func TestCatalog_AddRejectsInvalidID(t *testing.T) {
	c := NewCatalog()
	err := c.Add(model.Book{Title: "x", Author: "y", ID: "d0001"})
	if !errors.Is(err, ErrInvalidIdentifier) {
		t.Fatalf("expected ErrInvalidIdentifier, got %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("invalid book must not be stored, have %d", c.Len())
	}
}

func TestCatalog_DuplicatesAllowedAndDeletedTogether(t *testing.T) {
	c := NewCatalog()
	mustAdd(t, c, "first", "a", "A0001")
	mustAdd(t, c, "other", "b", "B0001")
	mustAdd(t, c, "second", "c", "A0001")

	got, _ := c.SearchByID("A0001")
	if got.Title != "first" {
		t.Fatalf("search should return the first match, got %q", got.Title)
	}

	if n := c.DeleteByID("A0001"); n != 2 {
		t.Fatalf("expected 2 removed, got %d", n)
	}
	if _, ok := c.SearchByID("A0001"); ok {
		t.Fatalf("A0001 should be gone after delete")
	}
	if !reflect.DeepEqual(ids(c.Books()), []string{"B0001"}) {
		t.Fatalf("unexpected remaining books: %v", ids(c.Books()))
	}
}

func TestCatalog_DeleteMissingIsNoop(t *testing.T) {
	c := NewCatalog()
	mustAdd(t, c, "t", "a", "C0003")
	for _, id := range []string{"Z9999", "not-an-id", ""} {
		if n := c.DeleteByID(id); n != 0 {
			t.Fatalf("DeleteByID(%q) removed %d, want 0", id, n)
		}
		if _, ok := c.SearchByID(id); ok {
			t.Fatalf("SearchByID(%q) after delete should be not-found", id)
		}
	}
	if c.Len() != 1 {
		t.Fatalf("catalog should be untouched, len=%d", c.Len())
	}
}

func TestCatalog_ListSortedIsPersistentAndIdempotent(t *testing.T) {
	c := NewCatalog()
	mustAdd(t, c, "c", "x", "C0300")
	mustAdd(t, c, "a", "x", "A0100")
	mustAdd(t, c, "b1", "x", "B0200")
	mustAdd(t, c, "b2", "x", "B0200")

	if !reflect.DeepEqual(ids(c.Books()), []string{"C0300", "A0100", "B0200", "B0200"}) {
		t.Fatalf("insertion order not preserved before sort: %v", ids(c.Books()))
	}

	first := c.ListSorted()
	want := []string{"A0100", "B0200", "B0200", "C0300"}
	if !reflect.DeepEqual(ids(first), want) {
		t.Fatalf("ListSorted = %v, want %v", ids(first), want)
	}
	if first[1].Title != "b1" || first[2].Title != "b2" {
		t.Fatalf("equal ids should keep insertion order, got %q then %q", first[1].Title, first[2].Title)
	}

	// The stored order changed as well.
	if !reflect.DeepEqual(ids(c.Books()), want) {
		t.Fatalf("sort should persist, stored order is %v", ids(c.Books()))
	}

	second := c.ListSorted()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("ListSorted is not idempotent: %v vs %v", first, second)
	}

	// Appends after a sort land at the end until the next sort.
	mustAdd(t, c, "early", "x", "A0001")
	books := c.Books()
	if books[len(books)-1].ID != "A0001" {
		t.Fatalf("new book should be appended, got order %v", ids(books))
	}
}

func TestCatalog_ReturnedSliceIsACopy(t *testing.T) {
	c := NewCatalog()
	mustAdd(t, c, "t", "a", "A0001")
	got := c.Books()
	got[0].Title = "changed"
	if b, _ := c.SearchByID("A0001"); b.Title != "t" {
		t.Fatalf("catalog was modified through returned slice")
	}
}

func TestAddLogsReadableEntries(t *testing.T) {
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	if err := logging.SetLevel("debug"); err != nil {
		t.Fatalf("SetLevel: %v", err)
	}
	t.Cleanup(func() {
		logging.SetOutput(os.Stderr)
		_ = logging.SetLevel("warn")
	})

	lib := New()
	mustAdd(t, lib.Catalog, "Dune", "Herbert", "D0001")
	if _, err := lib.Borrowers.Add("Alice", []string{"D0001", "E0002"}); err != nil {
		t.Fatalf("Add borrower: %v", err)
	}

	for _, want := range []string{"Dune by Herbert [D0001]", "Alice (D0001, E0002)"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("expected %q in debug log, got: %s", want, buf.String())
		}
	}
}
