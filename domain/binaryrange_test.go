package domain

import "testing"

func TestBinaryRange_Membership(t *testing.T) {
	cases := []struct {
		name          string
		d             BinaryRange
		containsFalse bool
		containsTrue  bool
	}{
		{"canonical", NewBinaryRange(), true, true},
		{"true_only", NewBinaryRangeOf(true, true), false, true},
		{"false_only", NewBinaryRangeOf(false, false), true, false},
		{"inverted_accepts_nothing", NewBinaryRangeOf(true, false), false, false},
	}

	for _, tc := range cases {
		if got := tc.d.Contains(false); got != tc.containsFalse {
			t.Fatalf("%s: Contains(false) = %v, want %v (range=%s)", tc.name, got, tc.containsFalse, tc.d)
		}
		if got := tc.d.Contains(true); got != tc.containsTrue {
			t.Fatalf("%s: Contains(true) = %v, want %v (range=%s)", tc.name, got, tc.containsTrue, tc.d)
		}
	}
}

func TestBinaryRange_Bounds(t *testing.T) {
	d := NewBinaryRange()
	if d.LowerBound() {
		t.Fatalf("LowerBound() = true, want false")
	}
	if !d.UpperBound() {
		t.Fatalf("UpperBound() = false, want true")
	}
	if got := d.String(); got != "[false,true]" {
		t.Fatalf("String() = %q, want %q", got, "[false,true]")
	}
}
