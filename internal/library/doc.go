// Copyright (c) 2026 Shelfmaster Team
// Shelfmaster - library catalog and borrower tracker
// This source code is licensed under the MIT license found in the LICENSE file.

// Package library holds the in-memory catalog of books and the registry of
// borrowers. Both collections live for a single run and are owned by a
// Library value created at startup; there is no package-level state.
//
// Borrowed identifiers are plain strings. They are validated for format but
// never checked against the catalog, and deleting a book leaves borrower
// records untouched.
package library
