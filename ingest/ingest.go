// Package ingest reads a polygon input file and turns it into the point
// and segment sites a sweep consumes.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmarsden-gvd/gvdfortune/geom"
	"github.com/dmarsden-gvd/gvdfortune/point"
	"github.com/dmarsden-gvd/gvdfortune/site"
	"github.com/dmarsden-gvd/gvdfortune/types"
)

// ReadPolygons parses a polygon input file: one "x y" pair per line,
// blank lines separating polygons. Each polygon is implicitly closed
// (its last vertex connects back to its first).
func ReadPolygons(r io.Reader) ([][]point.Point, error) {
	var polygons [][]point.Point
	var current []point.Point

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if len(current) > 0 {
				polygons = append(polygons, current)
				current = nil
			}
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("ingest: line %d: expected \"x y\", got %q", lineNo, line)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("ingest: line %d: %w", lineNo, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("ingest: line %d: %w", lineNo, err)
		}
		current = append(current, point.New(x, y))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	if len(current) > 0 {
		polygons = append(polygons, current)
	}
	return polygons, nil
}

// ReadListing parses an input-file listing: one file path per line, blank
// lines ignored.
func ReadListing(r io.Reader) ([]string, error) {
	var paths []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	return paths, nil
}

// BuildSites turns each polygon's vertices into a point site and each of
// its edges into a segment site, labeling them sequentially in the order
// encountered.
func BuildSites(polygons [][]point.Point) ([]geom.Site, error) {
	var sites []geom.Site
	label := 0
	for _, poly := range polygons {
		if len(poly) < 2 {
			continue
		}
		for i, p := range poly {
			label++
			sites = append(sites, geom.Site{Kind: types.SitePoint, Label: label, Point: p})

			next := poly[(i+1)%len(poly)]
			label++
			seg, err := site.NewSegmentSite(label, p, next)
			if err != nil {
				return nil, err
			}
			sites = append(sites, geom.Site{Kind: types.SiteSegment, Label: label, A: seg.A, B: seg.B})
		}
	}
	return sites, nil
}
