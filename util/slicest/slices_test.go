// Copyright (c) 2026 Shelfmaster Team
// Shelfmaster - library catalog and borrower tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package slicest

import (
	"reflect"
	"testing"
)

func TestPartition_KeepsOrderAndCountsDropped(t *testing.T) {
	in := []int{1, 2, 3, 2, 4}
	kept, dropped := Partition(in, func(v int) bool { return v == 2 })
	if dropped != 2 {
		t.Fatalf("expected 2 dropped, got %d", dropped)
	}
	if !reflect.DeepEqual(kept, []int{1, 3, 4}) {
		t.Fatalf("unexpected kept slice: %v", kept)
	}
	if !reflect.DeepEqual(in, []int{1, 2, 3, 2, 4}) {
		t.Fatalf("input was modified: %v", in)
	}
}

func TestFind(t *testing.T) {
	in := []string{"a", "bb", "cc"}
	got, ok := Find(in, func(s string) bool { return len(s) == 2 })
	if !ok || got != "bb" {
		t.Fatalf("expected first match bb, got %q (ok=%v)", got, ok)
	}
	if _, ok := Find(in, func(s string) bool { return s == "zz" }); ok {
		t.Fatalf("expected no match")
	}
}

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, func(v int) int { return v * 10 })
	if !reflect.DeepEqual(got, []int{10, 20, 30}) {
		t.Fatalf("unexpected Map result: %v", got)
	}
	idx := MapI([]string{"x", "y"}, func(i int, s string) string { return s + string(rune('0'+i)) })
	if !reflect.DeepEqual(idx, []string{"x0", "y1"}) {
		t.Fatalf("unexpected MapI result: %v", idx)
	}
}
