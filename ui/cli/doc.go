// Copyright (c) 2026 Shelfmaster Team
// Shelfmaster - library catalog and borrower tracker
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Shelfmaster using Cobra.
// It loads configuration, sets up i18n and logging, and hands a fresh
// in-memory library to the text menu or the TUI. CLI code should remain thin
// and delegate behavior to the console, tui and library packages.
package cli
