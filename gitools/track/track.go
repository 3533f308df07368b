package track

import (
	"errors"
	"fmt"
	"time"
)

// Track holds a gps track as parallel coordinate arrays so the numeric
// pipeline can run over plain float64 slices. Elevation and time are
// present for all points or for none; nil marks absence.
type Track struct {
	Lat []float64 // degrees
	Lon []float64 // degrees
	Ele []float64 // meters, nil when the source carries no elevation
	Ts  []float64 // seconds since epoch, nil when the source carries no time
	Spd []float64 // m/s, nil unless derived by the resampler

	// Loc is the time zone of the first timestamped point. It only
	// affects output formatting, never the numeric pipeline.
	Loc *time.Location
}

// Len returns the number of points in the track.
func (t *Track) Len() int {
	return len(t.Lat)
}

// HasElevation reports whether the track carries elevation data.
func (t *Track) HasElevation() bool {
	return t.Ele != nil
}

// HasTime reports whether the track carries timestamps.
func (t *Track) HasTime() bool {
	return t.Ts != nil
}

// HasSpeed reports whether per-point speed has been derived.
func (t *Track) HasSpeed() bool {
	return t.Spd != nil
}

// Location returns the track time zone, defaulting to UTC.
func (t *Track) Location() *time.Location {
	if t.Loc == nil {
		return time.UTC
	}
	return t.Loc
}

// Validate checks the structural invariants: at least one point and
// every present field of equal length.
func (t *Track) Validate() error {
	n := t.Len()
	if n < 1 {
		return errors.New("track has no points")
	}
	if len(t.Lon) != n {
		return fmt.Errorf("lat/lon length mismatch: %d != %d", n, len(t.Lon))
	}
	if t.Ele != nil && len(t.Ele) != n {
		return fmt.Errorf("elevation length mismatch: %d != %d", n, len(t.Ele))
	}
	if t.Ts != nil && len(t.Ts) != n {
		return fmt.Errorf("time length mismatch: %d != %d", n, len(t.Ts))
	}
	if t.Spd != nil && len(t.Spd) != n {
		return fmt.Errorf("speed length mismatch: %d != %d", n, len(t.Spd))
	}
	return nil
}

// Length returns the total path length in meters, elevation included
// when present.
func (t *Track) Length() float64 {
	var total float64
	for _, d := range t.Distances() {
		total += d
	}
	return total
}

// Time returns the timestamp of point i in the track's time zone.
// Only meaningful when HasTime is true.
func (t *Track) Time(i int) time.Time {
	sec := int64(t.Ts[i])
	nsec := int64((t.Ts[i] - float64(sec)) * 1e9)
	return time.Unix(sec, nsec).In(t.Location())
}
