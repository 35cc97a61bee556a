// Copyright (c) 2026 Shelfmaster Team
// Shelfmaster - library catalog and borrower tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package library

// Library owns the catalog and the borrower registry for one run. Front-ends
// receive a *Library and operate on it directly.
type Library struct {
	Catalog   *Catalog
	Borrowers *Registry
}

// New returns a Library with an empty catalog and registry.
func New() *Library {
	return &Library{
		Catalog:   NewCatalog(),
		Borrowers: NewRegistry(),
	}
}
