package testutil

import (
	"math"
	"math/rand"
)

// EarthRotationRate is the sidereal rotation rate in rad/s.
const EarthRotationRate = 7.292115e-5

// Observation is a synthetic visibility table with the analytic uvw rate of
// every row.
type Observation struct {
	Time     []float64
	Antenna1 []int
	Antenna2 []int
	UVW      [][3]float64
	Rate     [][3]float64
}

// Rows returns the number of rows.
func (o Observation) Rows() int {
	return len(o.Time)
}

// SyntheticObservation builds a time-ordered table for an array of
// antennas observing a source at declination -30° over steps integrations
// spaced interval seconds apart. Every integration holds one row per
// baseline p<q. With probability mirror a row stores its antennas swapped;
// its uvw is left unchanged so mirrored rows trace the same track.
// The table is fully determined by seed.
func SyntheticObservation(seed int64, antennas, steps int, interval, mirror float64) Observation {
	rng := rand.New(rand.NewSource(seed))

	pos := make([][3]float64, antennas)
	for i := range pos {
		pos[i] = [3]float64{
			(rng.Float64()*2 - 1) * 4000,
			(rng.Float64()*2 - 1) * 4000,
			(rng.Float64()*2 - 1) * 50,
		}
	}

	dec := -30 * math.Pi / 180
	sd, cd := math.Sincos(dec)
	h0 := -0.5

	var obs Observation

	for s := range steps {
		t := 4.5e9 + float64(s)*interval
		sh, ch := math.Sincos(h0 + EarthRotationRate*float64(s)*interval)

		for p := 0; p < antennas; p++ {
			for q := p + 1; q < antennas; q++ {
				lx := pos[q][0] - pos[p][0]
				ly := pos[q][1] - pos[p][1]
				lz := pos[q][2] - pos[p][2]

				a1, a2 := p, q
				if rng.Float64() < mirror {
					a1, a2 = q, p
				}

				obs.Time = append(obs.Time, t)
				obs.Antenna1 = append(obs.Antenna1, a1)
				obs.Antenna2 = append(obs.Antenna2, a2)
				obs.UVW = append(obs.UVW, [3]float64{
					sh*lx + ch*ly,
					-sd*ch*lx + sd*sh*ly + cd*lz,
					cd*ch*lx - cd*sh*ly + sd*lz,
				})
				obs.Rate = append(obs.Rate, [3]float64{
					EarthRotationRate * (ch*lx - sh*ly),
					EarthRotationRate * (sd*sh*lx + sd*ch*ly),
					EarthRotationRate * (-cd*sh*lx - cd*ch*ly),
				})
			}
		}
	}

	return obs
}
