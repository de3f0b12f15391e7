package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-uvw/filter/kernel"
)

func writeSummary(w io.Writer, support, oversampling int, beta float64, taps []float64) error {
	sum := 0.0
	for _, v := range taps {
		sum += v
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Support\tOversampling\tBeta\tTaps\tCentre\tSum\n")
	fmt.Fprintf(tw, "%d\t%d\t%.4f\t%d\t%.6f\t%.6f\n", support, oversampling, beta, len(taps), taps[len(taps)/2], sum)

	return tw.Flush()
}

func writeSnaps(w io.Writer, coords []float64, nx, oversampling int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\nu\tGrid u\tCell\tFrac\tPhase\n")

	for _, u := range coords {
		p, err := kernel.SnapInGrid(u, nx, oversampling)
		switch {
		case errors.Is(err, kernel.ErrOutsideGrid):
			fmt.Fprintf(tw, "%g\t%g\toutside\t-\t-\n", u, u+float64(nx/2))
			continue
		case err != nil:
			return err
		}

		fmt.Fprintf(tw, "%g\t%g\t%d\t%.4f\t%d\n", u, u+float64(nx/2), p.Cell, p.Frac, p.Phase)
	}

	return tw.Flush()
}

func writeTaper(w io.Writer, taper []float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\nPixel\tTaper\n")

	centre := len(taper) / 2
	for i, v := range taper {
		fmt.Fprintf(tw, "%d\t%.6f\n", i-centre, v)
	}

	return tw.Flush()
}
