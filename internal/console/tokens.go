// Copyright (c) 2026 Shelfmaster Team
// Shelfmaster - library catalog and borrower tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// errNotAnInteger is returned by NextInt when the input does not start with
// a decimal integer.
var errNotAnInteger = errors.New("not an integer")

// tokenReader splits input into tokens separated by ASCII whitespace while
// keeping track of line boundaries, so the rest of a line can be thrown away
// after a bad menu choice. Token bytes are passed through untouched.
type tokenReader struct {
	r *bufio.Reader
}

func newTokenReader(r io.Reader) *tokenReader {
	return &tokenReader{r: bufio.NewReader(r)}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// skipSpace consumes whitespace up to the next non-space byte.
func (t *tokenReader) skipSpace() error {
	for {
		b, err := t.r.ReadByte()
		if err != nil {
			return err
		}
		if !isSpace(b) {
			return t.r.UnreadByte()
		}
	}
}

// Next returns the next token. The whitespace that ends a token is left
// unread. io.EOF is returned only when no token could be read.
func (t *tokenReader) Next() (string, error) {
	if err := t.skipSpace(); err != nil {
		return "", err
	}
	var tok []byte
	for {
		b, err := t.r.ReadByte()
		if err == io.EOF {
			return string(tok), nil
		}
		if err != nil {
			return "", err
		}
		if isSpace(b) {
			_ = t.r.UnreadByte()
			return string(tok), nil
		}
		tok = append(tok, b)
	}
}

// NextInt reads an optionally signed decimal integer after any leading
// whitespace. Only the integer is consumed: in "3x" the "x" stays in the
// input for the next read. errNotAnInteger is returned when no digits follow
// or the value overflows an int.
func (t *tokenReader) NextInt() (int, error) {
	if err := t.skipSpace(); err != nil {
		return 0, err
	}
	var num []byte
	digits := 0
	for {
		b, err := t.r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
		signOK := len(num) == 0 && (b == '+' || b == '-')
		if !signOK && (b < '0' || b > '9') {
			_ = t.r.UnreadByte()
			break
		}
		if !signOK {
			digits++
		}
		num = append(num, b)
	}
	if digits == 0 {
		return 0, fmt.Errorf("%w: %q", errNotAnInteger, num)
	}
	n, err := strconv.Atoi(string(num))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errNotAnInteger, err)
	}
	return n, nil
}

// DiscardLine drops everything up to and including the next newline.
func (t *tokenReader) DiscardLine() error {
	_, err := t.r.ReadString('\n')
	return err
}
