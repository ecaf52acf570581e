package main

import "flag"

// Command-line flags for a single analysis run.
var (
	// inputFlag names the grid file, one row of digits per line.
	inputFlag = flag.String("input", "input.txt", "path to the height grid")

	// directionsFlag picks the direction or group every query runs over.
	directionsFlag = flag.String("directions", "all", "north, south, east, west, row, column or all")

	// showFlag prints per-cell grids in addition to the totals.
	showFlag = flag.String("show", "none", "per-cell output: none, scores, visibility or both")

	profileFlag = flag.String("profile", "none", "write a cpu or mem profile to the working directory")

	// timingFlag prints how long each phase took.
	timingFlag = flag.Bool("timing", false, "print phase timings")
)

type config struct {
	input      string
	directions string
	show       string
	timing     bool
}

func configFromFlags() config {
	return config{
		input:      *inputFlag,
		directions: *directionsFlag,
		show:       *showFlag,
		timing:     *timingFlag,
	}
}
