package domain

import "testing"

func TestBoundQueries_OverAbstraction(t *testing.T) {
	ir, err := NewIntegerRange(2, 9)
	if err != nil {
		t.Fatalf("NewIntegerRange(2, 9) returned error: %v", err)
	}
	var d Domain[int] = ir

	lower, err := LowerBound(d)
	if err != nil {
		t.Fatalf("LowerBound returned error: %v", err)
	}
	if lower != ir.LowerBound() {
		t.Fatalf("LowerBound = %d, want %d", lower, ir.LowerBound())
	}
	upper, err := UpperBound(d)
	if err != nil {
		t.Fatalf("UpperBound returned error: %v", err)
	}
	if upper != ir.UpperBound() {
		t.Fatalf("UpperBound = %d, want %d", upper, ir.UpperBound())
	}
}

func TestContains_Idempotent(t *testing.T) {
	d, err := NewRealIntervalOpenness(0.0, 1.0, true, false)
	if err != nil {
		t.Fatalf("NewRealIntervalOpenness returned error: %v", err)
	}
	for i := 0; i < 3; i++ {
		if d.Contains(0) {
			t.Fatalf("call %d: Contains(0) = true, want false (lower bound open)", i)
		}
		if !d.Contains(1) {
			t.Fatalf("call %d: Contains(1) = false, want true (upper bound closed)", i)
		}
	}
}

func TestKind_Strings(t *testing.T) {
	cases := []struct {
		kind Kind
		exp  string
	}{
		{KindRealInterval, "real-interval"},
		{KindIntegerRange, "integer-range"},
		{KindIntegerSet, "integer-set"},
		{KindBinaryRange, "binary-range"},
		{KindCategoricalSet, "categorical-set"},
	}

	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.exp {
			t.Fatalf("Kind(%d).String() = %q, want %q", tc.kind, got, tc.exp)
		}
		parsed, err := KindString(tc.exp)
		if err != nil {
			t.Fatalf("KindString(%q) returned error: %v", tc.exp, err)
		}
		if parsed != tc.kind {
			t.Fatalf("KindString(%q) = %v, want %v", tc.exp, parsed, tc.kind)
		}
	}
}
