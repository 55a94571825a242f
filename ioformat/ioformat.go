// Package ioformat writes the sweep's results as plain-text files: edges,
// beachline arcs, input polygons, and close events.
package ioformat

import (
	"bufio"
	"fmt"
	"io"

	"github.com/dmarsden-gvd/gvdfortune/beachline"
	"github.com/dmarsden-gvd/gvdfortune/event"
	"github.com/dmarsden-gvd/gvdfortune/point"
)

// coordPrecision gives at least 17 significant digits, enough to
// round-trip a float64 exactly.
const coordPrecision = 17

func writePoint(w *bufio.Writer, p point.Point) error {
	_, err := fmt.Fprintf(w, "%.*g %.*g\n", coordPrecision, p.X(), coordPrecision, p.Y())
	return err
}

// WriteEdges writes straight edges as "e" blocks (two endpoints) and
// sampled curved edges as "ec" blocks (one line per sample point),
// terminated by a trailing "e".
func WriteEdges(w io.Writer, straight []beachline.CommittedEdge, curved [][]point.Point) error {
	bw := bufio.NewWriter(w)
	for _, e := range straight {
		if _, err := bw.WriteString("e\n"); err != nil {
			return err
		}
		if err := writePoint(bw, e.Start); err != nil {
			return err
		}
		if err := writePoint(bw, e.End); err != nil {
			return err
		}
	}
	for _, c := range curved {
		if _, err := bw.WriteString("ec\n"); err != nil {
			return err
		}
		for _, p := range c {
			if err := writePoint(bw, p); err != nil {
				return err
			}
		}
	}
	if _, err := bw.WriteString("e"); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteBeachline writes the final beachline's V-arcs as "b" blocks and
// parabolic arcs as "bc" blocks, terminated by a trailing "b".
func WriteBeachline(w io.Writer, arcs []beachline.SampledArc) error {
	bw := bufio.NewWriter(w)
	for _, a := range arcs {
		marker := "bc\n"
		if a.IsStraight {
			marker = "b\n"
		}
		if _, err := bw.WriteString(marker); err != nil {
			return err
		}
		for _, p := range a.Points {
			if err := writePoint(bw, p); err != nil {
				return err
			}
		}
	}
	if _, err := bw.WriteString("b"); err != nil {
		return err
	}
	return bw.Flush()
}

// WritePolygons writes each input polygon as a "p" block, its vertices
// followed by a repeat of its first vertex to close the loop, terminated
// by a trailing "p".
func WritePolygons(w io.Writer, polygons [][]point.Point) error {
	bw := bufio.NewWriter(w)
	for _, poly := range polygons {
		if len(poly) == 0 {
			continue
		}
		if _, err := bw.WriteString("p\n"); err != nil {
			return err
		}
		for _, p := range poly {
			if err := writePoint(bw, p); err != nil {
				return err
			}
		}
		if err := writePoint(bw, poly[0]); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("p"); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteCloseEvents writes one "x y yval" line per close event.
func WriteCloseEvents(w io.Writer, events []event.CloseEvent) error {
	bw := bufio.NewWriter(w)
	for _, e := range events {
		_, err := fmt.Fprintf(bw, "%.*g %.*g %.*g\n",
			coordPrecision, e.Point.X(), coordPrecision, e.Point.Y(), coordPrecision, e.Y)
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteSweepline writes the single-line sweepline value the CLI reports
// on success.
func WriteSweepline(w io.Writer, y float64) error {
	_, err := fmt.Fprintf(w, "%.*g", coordPrecision, y)
	return err
}
