package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bismuthsalamander/elitecorn/elitecorn"
	"github.com/pkg/profile"
)

func main() {
	flag.Parse()
	os.Exit(realMain())
}

// realMain returns the exit code so deferred profile writers run first.
func realMain() int {
	switch *profileFlag {
	case "none", "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		fmt.Fprintf(os.Stderr, "error: unknown profile mode %q\n", *profileFlag)
		return 2
	}

	if err := run(configFromFlags(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func run(cfg config, out io.Writer) error {
	sel, err := elitecorn.ParseSelector(cfg.directions)
	if err != nil {
		return err
	}
	showScores, showVisibility := false, false
	switch cfg.show {
	case "none", "":
	case "scores":
		showScores = true
	case "visibility":
		showVisibility = true
	case "both":
		showScores, showVisibility = true, true
	default:
		return fmt.Errorf("unknown show mode %q", cfg.show)
	}

	watch := NewStopwatch()

	watch.Start("parse")
	g, err := elitecorn.GetGridFromFile(cfg.input)
	watch.Stop("parse")
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Grid: %dx%d (%d cells)\n", g.Width(), g.Height(), g.Size())

	watch.Start("count")
	visible := g.CountVisible(sel)
	watch.Stop("count")
	fmt.Fprintf(out, "Visible from %v: %d\n", sel, visible)

	watch.Start("score")
	best, score, err := g.BestCell(sel)
	watch.Stop("score")
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Greatest elite score from %v: %d at %v\n", sel, score, best.Coordinate)

	if showVisibility {
		fmt.Fprintf(out, "%s\n", g.RenderVisibility(sel))
	}
	if showScores {
		fmt.Fprintf(out, "%s\n", g.RenderEliteScores(sel))
	}
	if cfg.timing {
		fmt.Fprint(out, watch.Results())
	}
	return nil
}
