package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-uvw/vis/baseline"
	"github.com/cwbudde/algo-uvw/vis/uvw"
)

type table struct {
	time     []float64
	antenna1 []int
	antenna2 []int
	uvw      [][3]float64
}

func readTable(r io.Reader) (table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 6
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var tbl table

	for first := true; ; first = false {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return tbl, nil
		}
		if err != nil {
			return table{}, err
		}

		if first && isHeader(rec) {
			continue
		}

		line, _ := cr.FieldPos(0)

		t, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return table{}, fmt.Errorf("line %d: time: %w", line, err)
		}

		a1, err := strconv.Atoi(rec[1])
		if err != nil {
			return table{}, fmt.Errorf("line %d: antenna1: %w", line, err)
		}

		a2, err := strconv.Atoi(rec[2])
		if err != nil {
			return table{}, fmt.Errorf("line %d: antenna2: %w", line, err)
		}

		var c [3]float64
		for i := range c {
			c[i], err = strconv.ParseFloat(rec[3+i], 64)
			if err != nil {
				return table{}, fmt.Errorf("line %d: %s: %w", line, "uvw"[i:i+1], err)
			}
		}

		tbl.time = append(tbl.time, t)
		tbl.antenna1 = append(tbl.antenna1, a1)
		tbl.antenna2 = append(tbl.antenna2, a2)
		tbl.uvw = append(tbl.uvw, c)
	}
}

func isHeader(rec []string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
	return err != nil
}

type outputOptions struct {
	speed     bool
	crossOnly bool
}

// writeRates prints one line per row with its baseline and the number of
// rows observed on that baseline.
func writeRates(w io.Writer, tbl table, rates [][3]float64, opts outputOptions) error {
	groups, err := baseline.Partition(tbl.antenna1, tbl.antenna2)
	if err != nil {
		return err
	}
	slot := baseline.Index(groups, len(rates))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := "Row\tBaseline\tN\tdu/dt\tdv/dt\tdw/dt"
	if opts.speed {
		header += "\t|duvw/dt|"
	}
	if _, err := fmt.Fprintln(tw, header); err != nil {
		return err
	}

	var speeds []float64
	if opts.speed {
		speeds = uvw.Speed(rates)
	}

	for i, r := range rates {
		g := groups[slot[i]]
		if opts.crossOnly && g.Key.IsAutocorrelation() {
			continue
		}

		line := fmt.Sprintf("%d\t%s\t%d\t%.6g\t%.6g\t%.6g", i, g.Key, g.Len(), r[0], r[1], r[2])
		if opts.speed {
			line += fmt.Sprintf("\t%.6g", speeds[i])
		}
		if _, err := fmt.Fprintln(tw, line); err != nil {
			return err
		}
	}

	return tw.Flush()
}
