// Package resample turns a gps track into a new track whose points are
// evenly spaced along the path. Spatial coordinates follow an exact
// B-spline interpolant of the requested degree, timestamps follow a
// piecewise-linear interpolant of the same arc-length parameter so
// that time stays monotone.
package resample

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"gpxinterp-tools/gitools/spline"
	"gpxinterp-tools/gitools/track"
)

// ErrValidation marks input that can never be resampled as requested,
// no matter how often it is retried.
var ErrValidation = errors.New("invalid resampling input")

// Time deltas below this threshold (seconds) count as zero when
// deriving speed, to avoid dividing by near-zero.
const timeEpsilon = 1e-6

// Options control a resampling run.
type Options struct {
	// Degree of the interpolating curve, 1 = piecewise linear,
	// 2-5 = B-spline.
	Degree int
	// Res is the target spacing between output points in meters.
	// Ignored when Num is set.
	Res float64
	// Num fixes the number of output points. 0 derives the count
	// from Res.
	Num int
	// Speed derives per-point speed from consecutive output points.
	// Requires timestamps.
	Speed bool
}

// Track resamples t onto a uniform arc-length spacing and returns the
// new track. The input is never mutated. Elevation and time presence
// and the time zone carry over to the output.
func Track(t *track.Track, opts Options) (*track.Track, error) {
	if opts.Degree < spline.MinDegree || opts.Degree > spline.MaxDegree {
		return nil, fmt.Errorf("%w: degree %d out of range [%d,%d]",
			ErrValidation, opts.Degree, spline.MinDegree, spline.MaxDegree)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if t.Len() <= opts.Degree {
		return nil, fmt.Errorf("%w: %d points cannot support degree %d (need at least %d)",
			ErrValidation, t.Len(), opts.Degree, opts.Degree+1)
	}
	if opts.Num < 0 {
		return nil, fmt.Errorf("%w: negative point count %d", ErrValidation, opts.Num)
	}
	if opts.Num == 0 && opts.Res <= 0 {
		return nil, fmt.Errorf("%w: resolution must be positive, got %g", ErrValidation, opts.Res)
	}
	if opts.Speed && !t.HasTime() {
		return nil, fmt.Errorf("%w: speed requested but track has no timestamps", ErrValidation)
	}

	d := t.Dedup()
	if d.Len() <= opts.Degree {
		return nil, fmt.Errorf("%w: only %d distinct points for degree %d (need at least %d)",
			ErrValidation, d.Len(), opts.Degree, opts.Degree+1)
	}

	// Cumulative arc length is the independent variable of the fit.
	// Elevation is included for parameterization fidelity; dedup
	// already guarantees it is strictly increasing.
	s := make([]float64, d.Len())
	floats.CumSum(s, d.Distances())
	length := s[len(s)-1]

	count := opts.Num
	if count == 0 {
		count = 1 + int(math.Round(length/opts.Res))
	}
	us := samples(length, count)

	dims := [][]float64{d.Lat, d.Lon}
	if d.HasElevation() {
		dims = append(dims, d.Ele)
	}
	curve, err := spline.Fit(dims, s, opts.Degree)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	fitted := curve.Evaluate(us)

	out := &track.Track{Lat: fitted[0], Lon: fitted[1], Loc: d.Loc}
	if d.HasElevation() {
		out.Ele = fitted[2]
	}
	if d.HasTime() {
		out.Ts = interpolateTime(s, d.Ts, us)
	}

	// Strip insignificant digits: 1e-6 degrees is about a tenth of a
	// meter, finer output would suggest precision the fit cannot have.
	roundTo(out.Lat, 1e6)
	roundTo(out.Lon, 1e6)
	roundTo(out.Ele, 1e6)
	roundTo(out.Ts, 1e2)

	if opts.Speed {
		out.Spd = speeds(out)
	}

	return out, nil
}

// samples returns count uniform parameters over [0, length].
func samples(length float64, count int) []float64 {
	if count == 1 {
		return []float64{0}
	}
	us := make([]float64, count)
	floats.Span(us, 0, length)
	return us
}

// interpolateTime maps each sample parameter to a timestamp by linear
// interpolation over (s, ts). The spatial spline is never used here:
// a polynomial can overshoot between monotone points, a line cannot,
// so non-decreasing input time stays non-decreasing. Samples nudged
// past either end by floating rounding extrapolate from the nearest
// segment. Both s and us must be ascending.
func interpolateTime(s, ts, us []float64) []float64 {
	out := make([]float64, len(us))
	seg := 0
	for i, u := range us {
		for seg < len(s)-2 && s[seg+1] < u {
			seg++
		}
		frac := (u - s[seg]) / (s[seg+1] - s[seg])
		out[i] = ts[seg] + frac*(ts[seg+1]-ts[seg])
	}
	return out
}

// speeds derives instantaneous speed between consecutive output
// points. The first point has no predecessor and gets zero.
func speeds(t *track.Track) []float64 {
	dist := t.Distances()
	spd := make([]float64, t.Len())
	for i := 1; i < t.Len(); i++ {
		dt := t.Ts[i] - t.Ts[i-1]
		if dt < timeEpsilon {
			continue
		}
		spd[i] = dist[i] / dt
	}
	return spd
}

func roundTo(values []float64, scale float64) {
	for i, v := range values {
		values[i] = math.Round(v*scale) / scale
	}
}
