package baseline

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		name string
		a1   int
		a2   int
		want Key
	}{
		{name: "ordered", a1: 0, a2: 1, want: Key{A: 0, B: 1}},
		{name: "mirror", a1: 5, a2: 2, want: Key{A: 2, B: 5}},
		{name: "auto", a1: 3, a2: 3, want: Key{A: 3, B: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Canonical(tt.a1, tt.a2); got != tt.want {
				t.Fatalf("Canonical(%d, %d) = %v, want %v", tt.a1, tt.a2, got, tt.want)
			}
			if got := Canonical(tt.a2, tt.a1); got != tt.want {
				t.Fatalf("Canonical(%d, %d) = %v, want %v", tt.a2, tt.a1, got, tt.want)
			}
		})
	}
}

func TestKeyString(t *testing.T) {
	if got := (Key{A: 2, B: 17}).String(); got != "2-17" {
		t.Fatalf("String() = %q, want %q", got, "2-17")
	}
	if !(Key{A: 4, B: 4}).IsAutocorrelation() {
		t.Fatal("4-4 should be an autocorrelation")
	}
	if (Key{A: 4, B: 5}).IsAutocorrelation() {
		t.Fatal("4-5 should not be an autocorrelation")
	}
}

func TestPartitionGroupsMirrors(t *testing.T) {
	a1 := []int{0, 0, 1, 0, 2, 1}
	a2 := []int{1, 2, 0, 1, 0, 2}

	groups, err := Partition(a1, a2)
	if err != nil {
		t.Fatalf("Partition error: %v", err)
	}

	want := []Group{
		{Key: Key{A: 0, B: 1}, Rows: []int{0, 2, 3}},
		{Key: Key{A: 0, B: 2}, Rows: []int{1, 4}},
		{Key: Key{A: 1, B: 2}, Rows: []int{5}},
	}
	if diff := cmp.Diff(want, groups); diff != "" {
		t.Fatalf("Partition mismatch (-want +got):\n%s", diff)
	}

	for i, g := range groups {
		if g.Len() != len(want[i].Rows) {
			t.Fatalf("group %v Len() = %d, want %d", g.Key, g.Len(), len(want[i].Rows))
		}
	}
}

func TestPartitionEmpty(t *testing.T) {
	groups, err := Partition(nil, nil)
	if err != nil {
		t.Fatalf("Partition error: %v", err)
	}
	if len(groups) != 0 {
		t.Fatalf("got %d groups, want 0", len(groups))
	}
}

func TestPartitionErrors(t *testing.T) {
	_, err := Partition([]int{0, 1}, []int{1})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("err = %v, want ErrLengthMismatch", err)
	}

	_, err = Partition([]int{0, -1}, []int{1, 2})
	if !errors.Is(err, ErrNegativeAntenna) {
		t.Fatalf("err = %v, want ErrNegativeAntenna", err)
	}
	if !strings.Contains(err.Error(), "row 1") {
		t.Fatalf("error %q does not name the row", err)
	}
}

func TestPartitionIsPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	const rows = 500

	a1 := make([]int, rows)
	a2 := make([]int, rows)

	for i := range a1 {
		a1[i] = rng.Intn(8)
		a2[i] = rng.Intn(8)
	}

	groups, err := Partition(a1, a2)
	if err != nil {
		t.Fatalf("Partition error: %v", err)
	}

	seen := make([]int, rows)
	keys := make(map[Key]bool)

	for _, g := range groups {
		if keys[g.Key] {
			t.Fatalf("duplicate group for %v", g.Key)
		}
		keys[g.Key] = true

		prev := -1
		for _, row := range g.Rows {
			if row <= prev {
				t.Fatalf("rows of %v out of order: %v", g.Key, g.Rows)
			}
			prev = row
			seen[row]++

			if want := Canonical(a1[row], a2[row]); g.Key != want {
				t.Fatalf("row %d in group %v, want %v", row, g.Key, want)
			}
		}
	}

	for row, n := range seen {
		if n != 1 {
			t.Fatalf("row %d assigned %d times", row, n)
		}
	}

	for row, slot := range Index(groups, rows) {
		if want := Canonical(a1[row], a2[row]); groups[slot].Key != want {
			t.Fatalf("Index maps row %d to %v, want %v", row, groups[slot].Key, want)
		}
	}
}

func TestPartitionMirrorInvariant(t *testing.T) {
	a1 := []int{0, 3, 1, 2, 3}
	a2 := []int{1, 0, 2, 1, 0}

	want, err := Partition(a1, a2)
	if err != nil {
		t.Fatalf("Partition error: %v", err)
	}

	got, err := Partition(a2, a1)
	if err != nil {
		t.Fatalf("Partition error: %v", err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("swapped antennas changed groups (-want +got):\n%s", diff)
	}
}

func TestIndexUncovered(t *testing.T) {
	got := Index([]Group{{Key: Key{A: 0, B: 1}, Rows: []int{1}}}, 3)
	if diff := cmp.Diff([]int{-1, 0, -1}, got); diff != "" {
		t.Fatalf("Index mismatch (-want +got):\n%s", diff)
	}
}
