// Command kerninfo prints an oversampled Kaiser-Bessel gridding kernel,
// the grid cell and oversampling phase of sample coordinates, and the
// kernel's image-plane taper.
//
// Usage:
//
//	kerninfo [flags] [u ...]
//
// Each argument u is a coordinate in cells relative to the grid centre.
//
// Examples:
//
//	kerninfo -support 7 -oversampling 7 -beta 2.4 1.9
//	kerninfo -nx 64 -taper 64 -- -3.2 0.4 12.75
//	kerninfo -normalise
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/cwbudde/algo-uvw/filter/kernel"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("kerninfo: ")

	support := flag.Int("support", 7, "kernel support in grid cells")
	oversampling := flag.Int("oversampling", 7, "taps per grid cell")
	beta := flag.Float64("beta", -1, "Kaiser-Bessel beta (negative: estimate from -padding)")
	padding := flag.Float64("padding", kernel.DefaultPadding, "image padding factor used to estimate beta")
	normalise := flag.Bool("normalise", false, "scale taps to sum to the oversampling factor")
	nx := flag.Int("nx", 16, "grid size in cells for coordinate snapping")
	taperPix := flag.Int("taper", 0, "print the taper at this many pixels (0 disables)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: kerninfo [flags] [u ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints a gridding kernel, coordinate snaps and the kernel taper.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	coords := make([]float64, 0, flag.NArg())
	for _, arg := range flag.Args() {
		u, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			log.Fatalf("invalid coordinate %q: %v", arg, err)
		}
		coords = append(coords, u)
	}

	b := *beta
	if b < 0 {
		b = kernel.EstimateBeta(*support, *padding)
	}

	var opts []kernel.Option
	if *normalise {
		opts = append(opts, kernel.WithNormalise())
	}

	taps, err := kernel.KaiserBesselWithSinc(*support, *oversampling, b, opts...)
	if err != nil {
		log.Fatalf("generate kernel: %v", err)
	}

	if err := writeSummary(os.Stdout, *support, *oversampling, b, taps); err != nil {
		log.Fatalf("write output: %v", err)
	}

	if len(coords) > 0 {
		if err := writeSnaps(os.Stdout, coords, *nx, *oversampling); err != nil {
			log.Fatalf("write output: %v", err)
		}
	}

	if *taperPix > 0 {
		taper, err := kernel.Taper(taps, *oversampling, *taperPix)
		if err != nil {
			log.Fatalf("taper: %v", err)
		}
		if err := writeTaper(os.Stdout, taper); err != nil {
			log.Fatalf("write output: %v", err)
		}
	}
}
