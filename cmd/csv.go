package main

import (
	"context"
	"flag"

	"gpxinterp-tools/gitools/config"
	"gpxinterp-tools/gitools/csvio"
	"gpxinterp-tools/gitools/resample"
	"gpxinterp-tools/gitools/terminal"
	"gpxinterp-tools/gitools/track"

	"github.com/google/subcommands"
)

type csvCmd struct {
	cfg *config.Config

	deg   int
	res   float64
	num   int
	speed bool
}

func (*csvCmd) Name() string     { return "csv" }
func (*csvCmd) Synopsis() string { return "Resample GPX file(s) and write the result as CSV." }
func (*csvCmd) Usage() string {
	return `csv [-deg D] [-res R] [-num N] [-speed] FILE...
	Run the same resampling as interp but write lat,lon,ele,time
	CSV files instead of GPX.
  `
}

func (c *csvCmd) SetFlags(f *flag.FlagSet) {
	res, _ := c.cfg.Res()
	f.IntVar(&c.deg, "deg", c.cfg.Degree, "interpolation degree, 1=linear, 2-5=spline")
	f.IntVar(&c.deg, "d", c.cfg.Degree, "alias for -deg")
	f.Float64Var(&c.res, "res", res, "interpolation resolution in meters")
	f.Float64Var(&c.res, "r", res, "alias for -res")
	f.IntVar(&c.num, "num", c.cfg.Num, "number of output points, 0 derives the count from -res")
	f.IntVar(&c.num, "n", c.cfg.Num, "alias for -num")
	f.BoolVar(&c.speed, "speed", false, "add a speed column, requires time data")
	f.BoolVar(&c.speed, "s", false, "alias for -speed")
}

func (c *csvCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg := args[0].(*config.Config)

	files := f.Args()
	if len(files) == 0 {
		terminal.Error(nil, "No GPX files given")
		return subcommands.ExitUsageError
	}

	opts := resample.Options{Degree: c.deg, Res: c.res, Num: c.num, Speed: c.speed}
	write := func(path string, t *track.Track, _ bool) error {
		return csvio.Write(path, t)
	}
	return processBatch(files, opts, cfg.Workers, ".csv", write)
}
