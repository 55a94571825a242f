// Command gvdfortune reads a listing of polygon input files, builds their
// point and segment sites, sweeps the generalized Voronoi diagram down to
// a given y, and writes the result as a set of text files.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dmarsden-gvd/gvdfortune/ingest"
	"github.com/dmarsden-gvd/gvdfortune/ioformat"
	"github.com/dmarsden-gvd/gvdfortune/point"
	"github.com/dmarsden-gvd/gvdfortune/sweep"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "gvdfortune",
		Usage:     "Computes a generalized Voronoi diagram by sweeping to a given y",
		UsageText: "gvdfortune <input-file-listing> <sweepline-y>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "outdir",
				Usage:    "directory the output files are written to",
				Value:    ".",
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 2 {
		return fmt.Errorf("usage: %s", cmd.UsageText)
	}
	listingPath := cmd.Args().Get(0)
	sweepY, err := strconv.ParseFloat(cmd.Args().Get(1), 64)
	if err != nil {
		return fmt.Errorf("sweepline-y: %w", err)
	}
	outdir := cmd.String("outdir")

	polygons, err := readListing(listingPath)
	if err != nil {
		return err
	}

	sites, err := ingest.BuildSites(polygons)
	if err != nil {
		return err
	}

	d := sweep.New()
	result, err := d.Run(sites, sweepY)
	if err != nil {
		return err
	}

	if err := writeOutputs(outdir, polygons, result); err != nil {
		return err
	}

	sweepFile, err := os.Create(filepath.Join(outdir, "output_sweepline.txt"))
	if err != nil {
		return err
	}
	defer sweepFile.Close()
	return ioformat.WriteSweepline(sweepFile, sweepY)
}

// readListing reads a file listing polygon file paths, one per line, and
// concatenates the polygons each one contains.
func readListing(listingPath string) ([][]point.Point, error) {
	f, err := os.Open(listingPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	paths, err := ingest.ReadListing(f)
	if err != nil {
		return nil, err
	}

	var all [][]point.Point
	for _, p := range paths {
		pf, err := os.Open(p)
		if err != nil {
			return nil, err
		}
		polys, err := ingest.ReadPolygons(pf)
		pf.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		all = append(all, polys...)
	}
	return all, nil
}

func writeOutputs(outdir string, polygons [][]point.Point, result sweep.Result) error {
	edgesFile, err := os.Create(filepath.Join(outdir, "output_edges.txt"))
	if err != nil {
		return err
	}
	defer edgesFile.Close()
	if err := ioformat.WriteEdges(edgesFile, result.Edges, nil); err != nil {
		return err
	}

	beachFile, err := os.Create(filepath.Join(outdir, "output_beachline.txt"))
	if err != nil {
		return err
	}
	defer beachFile.Close()
	if err := ioformat.WriteBeachline(beachFile, result.FinalArcs); err != nil {
		return err
	}

	polyFile, err := os.Create(filepath.Join(outdir, "output_polygons.txt"))
	if err != nil {
		return err
	}
	defer polyFile.Close()
	if err := ioformat.WritePolygons(polyFile, polygons); err != nil {
		return err
	}

	closeFile, err := os.Create(filepath.Join(outdir, "output_close.txt"))
	if err != nil {
		return err
	}
	defer closeFile.Close()
	return ioformat.WriteCloseEvents(closeFile, result.CloseEvents)
}
