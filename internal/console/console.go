// Copyright (c) 2026 Shelfmaster Team
// Shelfmaster - library catalog and borrower tracker
// This source code is licensed under the MIT license found in the LICENSE file.

// Package console implements the numbered text menu that drives a Library
// over plain input and output streams.
package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/toeirei/shelfmaster/internal/i18n"
	"github.com/toeirei/shelfmaster/internal/library"
	"github.com/toeirei/shelfmaster/internal/logging"
)

// Sentinel ends the list of borrowed identifiers when adding a borrower.
const Sentinel = "done"

// ErrInvalidMenuSelection is reported for a menu choice that is not a
// number or not one of the listed options.
var ErrInvalidMenuSelection = errors.New("invalid menu selection")

// state is a position in the menu state machine.
type state int

const (
	awaitingChoice state = iota
	dispatching
	exiting
)

// Menu choices.
const (
	choiceAddBook = iota + 1
	choiceDeleteBook
	choiceSearchBook
	choiceListBooks
	choiceAddBorrower
	choiceDeleteBorrower
	choiceSearchBorrower
	choiceListBorrowers
	choiceExit
)

// Console runs the text menu against a Library.
type Console struct {
	lib *library.Library
	in  *tokenReader
	out io.Writer
}

// New returns a Console reading tokens from in and writing to out.
func New(lib *library.Library, in io.Reader, out io.Writer) *Console {
	return &Console{lib: lib, in: newTokenReader(in), out: out}
}

// Run shows the menu and dispatches choices until 9 is chosen or the input
// ends. Both cases return nil; other read errors are returned.
func (c *Console) Run() error {
	st := awaitingChoice
	choice := 0
	for st != exiting {
		switch st {
		case awaitingChoice:
			c.println(i18n.T("menu.options"))
			c.print(i18n.T("menu.prompt"))
			n, err := c.readChoice()
			if errors.Is(err, ErrInvalidMenuSelection) {
				logging.Debugf("console: %v", err)
				if errors.Is(err, errNotANumber) {
					if derr := c.in.DiscardLine(); derr != nil && derr != io.EOF {
						return derr
					}
					c.println(i18n.T("menu.invalid_number"))
				} else {
					c.println(i18n.T("menu.invalid_choice"))
				}
				continue
			}
			if err != nil {
				return endOfInput(err)
			}
			choice = n
			st = dispatching
		case dispatching:
			next, err := c.dispatch(choice)
			if err != nil {
				return endOfInput(err)
			}
			st = next
		}
	}
	logging.Debugf("console: exit selected")
	return nil
}

var errNotANumber = fmt.Errorf("%w: not a number", ErrInvalidMenuSelection)

// readChoice reads the leading integer of the next input. Characters after
// the digits (the "x" of "3x") are left for the operation that follows.
func (c *Console) readChoice() (int, error) {
	n, err := c.in.NextInt()
	if errors.Is(err, errNotAnInteger) {
		return 0, fmt.Errorf("%w: %v", errNotANumber, err)
	}
	if err != nil {
		return 0, err
	}
	return parseChoice(n)
}

// parseChoice checks that n is one of the listed menu entries.
func parseChoice(n int) (int, error) {
	if n < choiceAddBook || n > choiceExit {
		return 0, fmt.Errorf("%w: %d is out of range", ErrInvalidMenuSelection, n)
	}
	return n, nil
}

// dispatch runs one menu operation and returns the next state.
func (c *Console) dispatch(choice int) (state, error) {
	var err error
	switch choice {
	case choiceAddBook:
		err = c.addBook()
	case choiceDeleteBook:
		err = c.deleteBook()
	case choiceSearchBook:
		err = c.searchBook()
	case choiceListBooks:
		c.listBooks()
	case choiceAddBorrower:
		err = c.addBorrower()
	case choiceDeleteBorrower:
		err = c.deleteBorrower()
	case choiceSearchBorrower:
		err = c.searchBorrower()
	case choiceListBorrowers:
		c.listBorrowers()
	case choiceExit:
		return exiting, nil
	}
	if err != nil {
		return exiting, err
	}
	return awaitingChoice, nil
}

// endOfInput turns a closed input into a clean stop.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		logging.Debugf("console: input closed, leaving menu")
		return nil
	}
	return err
}

// prompt prints msg and reads one token.
func (c *Console) prompt(msg string) (string, error) {
	c.print(msg)
	return c.in.Next()
}

func (c *Console) print(s string) {
	fmt.Fprint(c.out, s)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}
