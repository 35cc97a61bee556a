// Copyright (c) 2026 Shelfmaster Team
// Shelfmaster - library catalog and borrower tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package library

import (
	"errors"
	"testing"
)

func TestIsValidBookID(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{"A1234", true},
		{"Z0000", true},
		{"M9999", true},
		{"a1234", false},  // lowercase letter
		{"AB123", false},  // two letters
		{"A123", false},   // too short
		{"A12345", false}, // too long
		{"1A234", false},
		{" A1234", false}, // no trimming
		{"A1234 ", false},
		{"A1234\n", false},
		{"", false},
		{"Ä1234", false}, // non-ASCII letter
		{"A١٢٣٤", false}, // non-ASCII digits
		{"A12.4", false},
	}
	for _, tc := range cases {
		if got := IsValidBookID(tc.id); got != tc.want {
			t.Errorf("IsValidBookID(%q) = %v, want %v", tc.id, got, tc.want)
		}
	}
}

// TestIsValidBookID_MatchesCharacterRule checks the pattern against a direct
// character-by-character reading of the rule over a generated input set.
func TestIsValidBookID_MatchesCharacterRule(t *testing.T) {
	rule := func(s string) bool {
		if len(s) != 5 {
			return false
		}
		if s[0] < 'A' || s[0] > 'Z' {
			return false
		}
		for i := 1; i < 5; i++ {
			if s[i] < '0' || s[i] > '9' {
				return false
			}
		}
		return true
	}
	alphabet := []byte{'A', 'Z', 'a', '0', '9', ' ', '-', '@'}
	var gen func(prefix []byte, depth int)
	gen = func(prefix []byte, depth int) {
		s := string(prefix)
		if IsValidBookID(s) != rule(s) {
			t.Fatalf("IsValidBookID(%q) disagrees with character rule", s)
		}
		if depth == 0 {
			return
		}
		for _, c := range alphabet {
			gen(append(prefix, c), depth-1)
		}
	}
	gen(nil, 6)
}

func TestValidateBookID_WrapsSentinel(t *testing.T) {
	if err := ValidateBookID("B0042"); err != nil {
		t.Fatalf("expected valid id, got %v", err)
	}
	err := ValidateBookID("bad")
	if !errors.Is(err, ErrInvalidIdentifier) {
		t.Fatalf("expected ErrInvalidIdentifier, got %v", err)
	}
}
