package main

import (
	"context"
	"flag"
	"fmt"

	"gpxinterp-tools/gitools/convert"
	"gpxinterp-tools/gitools/gpxio"
	"gpxinterp-tools/gitools/terminal"

	"github.com/google/subcommands"
)

type infoCmd struct{}

func (*infoCmd) Name() string     { return "info" }
func (*infoCmd) Synopsis() string { return "Print statistics of GPX file(s)." }
func (*infoCmd) Usage() string {
	return `info FILE...
	Print per-track point count, distance, duration, elevation
	gain/loss and bounding box.
  `
}

func (*infoCmd) SetFlags(_ *flag.FlagSet) {}

func (c *infoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	files := f.Args()
	if len(files) == 0 {
		terminal.Error(nil, "No GPX files given")
		return subcommands.ExitUsageError
	}

	status := subcommands.ExitSuccess
	for _, file := range files {
		o := terminal.NewOperation("Reading %s", file)
		t, err := gpxio.Read(file)
		if err != nil {
			o.Error(err, "Failed to read %s", file)
			status = subcommands.ExitFailure
			continue
		}
		o.Success("%s", file)

		s := t.Stats()
		b := t.Bounds()

		fmt.Printf("   Points:    %d\n", s.Points)
		fmt.Printf("   Distance:  %.2f km (%.2f mi)\n", s.Distance/1000, convert.ToMiles(s.Distance))
		if t.HasTime() && s.Duration > 0 {
			fmt.Printf("   Duration:  %s\n", s.Duration)
			fmt.Printf("   Avg speed: %.1f km/h\n", convert.ToKmh(s.Distance/s.Duration.Seconds()))
		}
		if t.HasElevation() {
			fmt.Printf("   Ascent:    %d m (%d')\n", int(s.ElevationGain), int(convert.ToFeet(s.ElevationGain)))
			fmt.Printf("   Descent:   %d m (%d')\n", int(s.ElevationLoss), int(convert.ToFeet(s.ElevationLoss)))
		}
		fmt.Printf("   Bounds:    %.5f,%.5f -> %.5f,%.5f\n", b.MinLat, b.MinLon, b.MaxLat, b.MaxLon)

		// Bounds padded a little, ready to paste into a map viewport.
		w := b.Extend(0.01)
		fmt.Printf("   Window:    %.5f,%.5f -> %.5f,%.5f\n", w.MinLat, w.MinLon, w.MaxLat, w.MaxLon)
	}

	return status
}
