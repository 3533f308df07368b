package main

import (
	"context"
	"flag"

	"gpxinterp-tools/gitools/config"
	"gpxinterp-tools/gitools/gpxio"
	"gpxinterp-tools/gitools/resample"
	"gpxinterp-tools/gitools/terminal"

	"github.com/google/subcommands"
)

type interpCmd struct {
	cfg *config.Config

	deg   int
	res   float64
	num   int
	speed bool
}

func (*interpCmd) Name() string     { return "interp" }
func (*interpCmd) Synopsis() string { return "Resample GPX file(s) onto a uniform spacing." }
func (*interpCmd) Usage() string {
	return `interp [-deg D] [-res R] [-num N] [-speed] FILE...
	Resample each GPX file along its path and write the result
	next to it with an "` + gpxio.OutputSuffix + `" suffix.
  `
}

func (c *interpCmd) SetFlags(f *flag.FlagSet) {
	res, _ := c.cfg.Res()
	f.IntVar(&c.deg, "deg", c.cfg.Degree, "interpolation degree, 1=linear, 2-5=spline")
	f.IntVar(&c.deg, "d", c.cfg.Degree, "alias for -deg")
	f.Float64Var(&c.res, "res", res, "interpolation resolution in meters")
	f.Float64Var(&c.res, "r", res, "alias for -res")
	f.IntVar(&c.num, "num", c.cfg.Num, "number of output points, 0 derives the count from -res")
	f.IntVar(&c.num, "n", c.cfg.Num, "alias for -num")
	f.BoolVar(&c.speed, "speed", false, "embed per-point speed, requires time data")
	f.BoolVar(&c.speed, "s", false, "alias for -speed")
}

func (c *interpCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg := args[0].(*config.Config)

	files := f.Args()
	if len(files) == 0 {
		terminal.Error(nil, "No GPX files given")
		return subcommands.ExitUsageError
	}

	opts := resample.Options{Degree: c.deg, Res: c.res, Num: c.num, Speed: c.speed}
	return processBatch(files, opts, cfg.Workers, ".gpx", gpxio.Write)
}
