// Command uvwrate prints the per-row rate of change of uvw coordinates.
//
// Usage:
//
//	uvwrate [flags]
//
// Input is CSV with the columns time,antenna1,antenna2,u,v,w, one row per
// visibility, time non-decreasing. A leading header line is skipped.
//
// Examples:
//
//	uvwrate -in rows.csv
//	uvwrate -singleton zero -workers 8 < rows.csv
//	uvwrate -last-row last -speed -in rows.csv
//	uvwrate -cross -in rows.csv
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cwbudde/algo-uvw/vis/uvw"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("uvwrate: ")

	in := flag.String("in", "-", "input CSV file (- for stdin)")
	workers := flag.Int("workers", 1, "goroutines used to process baselines")
	singleton := flag.String("singleton", uvw.SingletonReject.String(), "single-row baseline policy: reject or zero")
	lastRow := flag.String("last-row", uvw.LastRowSecondToLast.String(), "last-row fill policy: second-to-last or last")
	speed := flag.Bool("speed", false, "add a column with |duvw/dt|")
	cross := flag.Bool("cross", false, "omit autocorrelation rows from the output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: uvwrate [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Reads time,antenna1,antenna2,u,v,w CSV rows and prints duvw/dt per row.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	sp, err := uvw.ParseSingletonPolicy(*singleton)
	if err != nil {
		log.Fatalf("invalid -singleton: %v", err)
	}

	lp, err := uvw.ParseLastRowPolicy(*lastRow)
	if err != nil {
		log.Fatalf("invalid -last-row: %v", err)
	}

	out := outputOptions{speed: *speed, crossOnly: *cross}
	opts := []uvw.Option{
		uvw.WithWorkers(*workers),
		uvw.WithSingletonPolicy(sp),
		uvw.WithLastRowPolicy(lp),
	}

	if err := run(*in, os.Stdout, out, opts...); err != nil {
		log.Fatal(err)
	}
}

func run(path string, w io.Writer, out outputOptions, opts ...uvw.Option) error {
	r, closeFn, err := openInput(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer closeFn()

	tbl, err := readTable(r)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	rates, err := uvw.DeltaUVWDeltaTime(tbl.time, tbl.antenna1, tbl.antenna2, tbl.uvw, opts...)
	if err != nil {
		return fmt.Errorf("compute rates: %w", err)
	}

	if err := writeRates(w, tbl, rates, out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	return f, func() { _ = f.Close() }, nil
}
