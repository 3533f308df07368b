package main

import (
	"sync"
	"sync/atomic"

	"gpxinterp-tools/gitools/gpxio"
	"gpxinterp-tools/gitools/resample"
	"gpxinterp-tools/gitools/terminal"
	"gpxinterp-tools/gitools/track"

	"github.com/google/subcommands"
)

// writeFunc serializes a resampled track to its destination.
type writeFunc func(path string, t *track.Track, withSpeed bool) error

// processBatch resamples every file on a bounded worker pool. Tracks
// are independent, so the only coordination is the pool itself. A
// failing file is reported and skipped, it never aborts the rest of
// the batch.
func processBatch(files []string, opts resample.Options, workers int, ext string, write writeFunc) subcommands.ExitStatus {
	if workers < 1 {
		workers = 1
	}

	if len(files) > 1 {
		terminal.Info("Resampling %d files on %d workers", len(files), workers)
	}

	var failed atomic.Bool
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for _, file := range files {
		if gpxio.IsOutput(file) {
			terminal.Warn("Skipping %s, already resampled", file)
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(file string) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := processFile(file, opts, ext, write); err != nil {
				terminal.Error(err, "Failed to process %s", file)
				failed.Store(true)
			}
		}(file)
	}
	wg.Wait()

	if failed.Load() {
		return 1
	}
	return 0
}

func processFile(file string, opts resample.Options, ext string, write writeFunc) error {
	t, err := gpxio.Read(file)
	if err != nil {
		return err
	}

	out, err := resample.Track(t, opts)
	if err != nil {
		return err
	}

	dest := gpxio.OutputPath(file, ext)
	if err := write(dest, out, opts.Speed); err != nil {
		return err
	}

	terminal.Success("%s: %d points -> %d points, wrote %s", file, t.Len(), out.Len(), dest)
	return nil
}
