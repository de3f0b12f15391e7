package uvw

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/cwbudde/algo-uvw/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/mat"
)

func TestDenseMatchesSlices(t *testing.T) {
	obs := testutil.SyntheticObservation(8, 5, 7, 8, 0.5)

	want, err := DeltaUVWDeltaTime(obs.Time, obs.Antenna1, obs.Antenna2, obs.UVW, WithLastRowPolicy(LastRowLast))
	if err != nil {
		t.Fatalf("DeltaUVWDeltaTime error: %v", err)
	}

	in := mat.NewDense(obs.Rows(), 3, Flatten(obs.UVW))

	got, err := DeltaUVWDeltaTimeDense(obs.Time, obs.Antenna1, obs.Antenna2, in, WithLastRowPolicy(LastRowLast))
	if err != nil {
		t.Fatalf("DeltaUVWDeltaTimeDense error: %v", err)
	}

	if r, c := got.Dims(); r != obs.Rows() || c != 3 {
		t.Fatalf("dims = %dx%d, want %dx3", r, c, obs.Rows())
	}

	if diff := cmp.Diff(Flatten(want), got.RawMatrix().Data, cmpopts.EquateApprox(0, 1e-15)); diff != "" {
		t.Fatalf("dense result differs (-want +got):\n%s", diff)
	}
}

func TestDenseAcceptsTransposedView(t *testing.T) {
	time := []float64{0, 2, 4}
	ant1 := []int{1, 1, 0}
	ant2 := []int{0, 0, 1}

	// 3×3 stored column-wise, handed over as its transpose.
	cols := mat.NewDense(3, 3, []float64{
		0, 2, 4,
		10, 10, 10,
		-1, 1, 5,
	})

	got, err := DeltaUVWDeltaTimeDense(time, ant1, ant2, cols.T())
	if err != nil {
		t.Fatalf("DeltaUVWDeltaTimeDense error: %v", err)
	}

	want := mat.NewDense(3, 3, []float64{
		1, 0, 1,
		1, 0, 2,
		1, 0, 1,
	})
	if !mat.EqualApprox(want, got, 1e-12) {
		t.Fatalf("got\n%v\nwant\n%v", mat.Formatted(got), mat.Formatted(want))
	}
}

func TestDenseErrors(t *testing.T) {
	tests := []struct {
		name    string
		time    []float64
		in      *mat.Dense
		wantMsg string
	}{
		{
			name:    "wrong columns",
			time:    []float64{0, 1},
			in:      mat.NewDense(2, 2, []float64{1, 2, 3, 4}),
			wantMsg: "3 columns",
		},
		{
			name:    "time checked before columns",
			time:    []float64{1, 0},
			in:      mat.NewDense(2, 2, nil),
			wantMsg: "non-decreasing",
		},
		{
			name:    "NaN time",
			time:    []float64{0, math.NaN()},
			in:      mat.NewDense(2, 3, nil),
			wantMsg: "is NaN",
		},
		{
			name:    "length mismatch",
			time:    []float64{0, 1},
			in:      mat.NewDense(3, 3, nil),
			wantMsg: "uvw=3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ant := make([]int, len(tt.time))
			other := make([]int, len(tt.time))
			for i := range other {
				other[i] = 1
			}

			got, err := DeltaUVWDeltaTimeDense(tt.time, ant, other, tt.in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("err = %v, want %v", err, ErrInvalidInput)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("error %q does not contain %q", err, tt.wantMsg)
			}
			if got != nil {
				t.Fatalf("got output on error")
			}
		})
	}
}

func TestDenseEmpty(t *testing.T) {
	got, err := DeltaUVWDeltaTimeDense(nil, nil, nil, &mat.Dense{})
	if err != nil {
		t.Fatalf("DeltaUVWDeltaTimeDense error: %v", err)
	}
	if !got.IsEmpty() {
		t.Fatalf("expected empty matrix, got %v", mat.Formatted(got))
	}
}

func TestFlatten(t *testing.T) {
	got := Flatten([][3]float64{{1, 2, 3}, {4, 5, 6}})
	if diff := cmp.Diff([]float64{1, 2, 3, 4, 5, 6}, got); diff != "" {
		t.Fatalf("Flatten mismatch (-want +got):\n%s", diff)
	}
	if n := len(Flatten(nil)); n != 0 {
		t.Fatalf("Flatten(nil) has %d values", n)
	}
}
