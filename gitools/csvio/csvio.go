// Package csvio writes tracks as CSV, one line per point.
package csvio

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"gpxinterp-tools/gitools/track"
)

// timeFormat is ISO-8601 in UTC, second precision.
const timeFormat = "2006-01-02T15:04:05Z"

type row struct {
	Lat  float64  `csv:"lat"`
	Lon  float64  `csv:"lon"`
	Ele  *float64 `csv:"ele"`
	Time string   `csv:"time"`
}

// speedRow repeats the columns of row instead of embedding it: gocsv
// ignores embedded fields of unexported types, which would drop every
// column but speed.
type speedRow struct {
	Lat   float64  `csv:"lat"`
	Lon   float64  `csv:"lon"`
	Ele   *float64 `csv:"ele"`
	Time  string   `csv:"time"`
	Speed float64  `csv:"speed"`
}

// Write serializes a Track to a CSV file with a lat,lon,ele,time
// header. Absent elevation or time leaves the column empty. A speed
// column is appended when the track carries derived speed.
func Write(path string, t *track.Track) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := marshal(t, f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func marshal(t *track.Track, f *os.File) error {
	rows := make([]row, t.Len())
	for i := range rows {
		r := row{Lat: t.Lat[i], Lon: t.Lon[i]}
		if t.HasElevation() {
			r.Ele = &t.Ele[i]
		}
		if t.HasTime() {
			r.Time = t.Time(i).UTC().Format(timeFormat)
		}
		rows[i] = r
	}

	if !t.HasSpeed() {
		return gocsv.MarshalFile(&rows, f)
	}

	speedRows := make([]speedRow, t.Len())
	for i, r := range rows {
		speedRows[i] = speedRow{Lat: r.Lat, Lon: r.Lon, Ele: r.Ele, Time: r.Time, Speed: t.Spd[i]}
	}
	return gocsv.MarshalFile(&speedRows, f)
}
