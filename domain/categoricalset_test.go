package domain

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCategoricalSet_Membership(t *testing.T) {
	d := NewCategoricalSet("a", "b", "a")

	cases := []struct {
		v   string
		exp bool
	}{
		{"a", true},
		{"b", true},
		{"c", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := d.Contains(tc.v); got != tc.exp {
			t.Fatalf("Contains(%q) = %v, want %v (set=%s)", tc.v, got, tc.exp, d)
		}
	}
}

func TestCategoricalSet_KeepsDuplicatesAndOrder(t *testing.T) {
	d := NewCategoricalSet("a", "b", "a")
	if diff := cmp.Diff([]string{"a", "b", "a"}, d.Categories()); diff != "" {
		t.Fatalf("Categories() mismatch (-want +got):\n%s", diff)
	}
}

func TestCategoricalSet_Empty(t *testing.T) {
	d := NewCategoricalSet()
	if d.Contains("a") {
		t.Fatalf("empty set Contains(%q) = true, want false", "a")
	}
	if got := len(d.Categories()); got != 0 {
		t.Fatalf("Categories() has %d labels, want 0", got)
	}
}

func TestCategoricalSet_BoundsUndefined(t *testing.T) {
	d := NewCategoricalSet("a", "b", "a")
	if _, err := LowerBound[string](d); !errors.Is(err, ErrBoundUndefined) {
		t.Fatalf("LowerBound error = %v, want ErrBoundUndefined", err)
	}
	if _, err := UpperBound[string](d); !errors.Is(err, ErrBoundUndefined) {
		t.Fatalf("UpperBound error = %v, want ErrBoundUndefined", err)
	}
}
