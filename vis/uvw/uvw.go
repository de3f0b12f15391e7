package uvw

import (
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-uvw/vis/baseline"
	"gonum.org/v1/gonum/floats"
)

// DeltaUVWDeltaTime returns duvw/dt for every row.
//
// Rows are grouped by canonical baseline, so (A,B) and (B,A) form one group.
// Within a group with rows r_0..r_{k-1} (original order), row r_j receives
// the forward difference
//
//	(uvw[r_{j+1}] - uvw[r_j]) / (time[r_{j+1}] - time[r_j])
//
// and the last row receives a copy of an earlier difference, chosen by the
// LastRowPolicy. Output row i corresponds to input row i.
//
// time must be non-decreasing. Inputs are not modified. On error no output
// is returned.
func DeltaUVWDeltaTime(time []float64, antenna1, antenna2 []int, uvw [][3]float64, opts ...Option) ([][3]float64, error) {
	if err := validateLengths(len(time), len(antenna1), len(antenna2), len(uvw)); err != nil {
		return nil, err
	}

	if err := validateMonotonic(time); err != nil {
		return nil, err
	}

	groups, err := baseline.Partition(antenna1, antenna2)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	cfg := ApplyOptions(opts...)

	out := make([][3]float64, len(uvw))
	if err := differentiate(groups, time, uvw, out, cfg); err != nil {
		return nil, err
	}

	return out, nil
}

// Speed returns the Euclidean norm of each derivative row.
func Speed(duvw [][3]float64) []float64 {
	out := make([]float64, len(duvw))
	for i := range duvw {
		out[i] = floats.Norm(duvw[i][:], 2)
	}
	return out
}

// differentiate fills out group by group. Groups own disjoint rows, so
// workers never write the same row.
func differentiate(groups []baseline.Group, time []float64, uvw, out [][3]float64, cfg Config) error {
	workers := min(cfg.Workers, len(groups))
	if workers <= 1 {
		for _, g := range groups {
			if err := differentiateGroup(g, time, uvw, out, cfg); err != nil {
				return err
			}
		}
		return nil
	}

	errs := make([]error, len(groups))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				errs[i] = differentiateGroup(groups[i], time, uvw, out, cfg)
			}
		}()
	}

	for i := range groups {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func differentiateGroup(g baseline.Group, time []float64, uvw, out [][3]float64, cfg Config) error {
	rows := g.Rows
	k := len(rows)

	switch k {
	case 0:
		return nil
	case 1:
		if cfg.Singleton == SingletonZero {
			out[rows[0]] = [3]float64{}
			return nil
		}
		return fmt.Errorf("%w: baseline %v has a single row (row %d)", ErrDegenerateGroup, g.Key, rows[0])
	}

	for j := 0; j < k-1; j++ {
		r0, r1 := rows[j], rows[j+1]

		dt := time[r1] - time[r0]
		if !(dt > 0) || math.IsInf(dt, 0) {
			return fmt.Errorf("%w: baseline %v has time step %v between rows %d and %d",
				ErrInvalidInput, g.Key, dt, r0, r1)
		}

		d := out[r0][:]
		floats.SubTo(d, uvw[r1][:], uvw[r0][:])
		floats.Scale(1/dt, d)
	}

	out[rows[k-1]] = out[rows[fillIndex(k, cfg.LastRow)]]

	return nil
}

// fillIndex returns which of the k-1 differences is copied onto the last
// row of a k-row group (k >= 2).
func fillIndex(k int, p LastRowPolicy) int {
	if p == LastRowLast || k < 3 {
		return k - 2
	}
	return k - 3
}
