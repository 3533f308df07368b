package track_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gpxinterp-tools/gitools/track"
)

func TestValidate(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		input *track.Track
		ok    bool
	}{
		"minimal":       {input: &track.Track{Lat: []float64{0}, Lon: []float64{0}}, ok: true},
		"full":          {input: &track.Track{Lat: []float64{0, 1}, Lon: []float64{0, 1}, Ele: []float64{0, 1}, Ts: []float64{0, 1}}, ok: true},
		"empty":         {input: &track.Track{}, ok: false},
		"lon_short":     {input: &track.Track{Lat: []float64{0, 1}, Lon: []float64{0}}, ok: false},
		"ele_mismatch":  {input: &track.Track{Lat: []float64{0, 1}, Lon: []float64{0, 1}, Ele: []float64{0}}, ok: false},
		"time_mismatch": {input: &track.Track{Lat: []float64{0, 1}, Lon: []float64{0, 1}, Ts: []float64{0}}, ok: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := tc.input.Validate()
			if tc.ok {
				require.NoError(err)
			} else {
				require.Error(err)
			}
		})
	}
}

func TestTime(t *testing.T) {
	require := require.New(t)

	loc := time.FixedZone("UTC+2", 2*3600)
	tr := &track.Track{
		Lat: []float64{0},
		Lon: []float64{0},
		Ts:  []float64{1577836800.25}, // 2020-01-01T00:00:00.25Z
		Loc: loc,
	}

	ts := tr.Time(0)
	require.Equal(loc, ts.Location())
	require.Equal("2020-01-01T02:00:00+02:00", ts.Format(time.RFC3339))
	require.Equal(250*time.Millisecond, time.Duration(ts.Nanosecond()))
}

func TestBounds(t *testing.T) {
	require := require.New(t)

	tr := &track.Track{
		Lat: []float64{47.58358925699506, 47.58878498470957, 47.58622336725498, 47.59581793370288},
		Lon: []float64{-121.95062398910524, -121.94446563720703, -121.9381356239319, -121.93571090698244},
	}

	b := tr.Bounds()

	require.Equal(47.58358925699506, b.MinLat)
	require.Equal(47.59581793370288, b.MaxLat)
	require.Equal(-121.95062398910524, b.MinLon)
	require.Equal(-121.93571090698244, b.MaxLon)

	ext := b.Extend(0.01)
	require.InDelta(47.57358925699506, ext.MinLat, 1e-12)
	require.InDelta(-121.92571090698244, ext.MaxLon, 1e-12)
}

func TestStats(t *testing.T) {
	require := require.New(t)

	tr := &track.Track{
		Lat: []float64{47.0, 47.01, 47.02, 47.03},
		Lon: []float64{-121.0, -121.0, -121.0, -121.0},
		Ele: []float64{100, 200, 300, 250},
		Ts: []float64{
			float64(time.Date(2020, time.June, 1, 10, 0, 0, 0, time.UTC).Unix()),
			float64(time.Date(2020, time.June, 1, 10, 20, 0, 0, time.UTC).Unix()),
			float64(time.Date(2020, time.June, 1, 10, 40, 0, 0, time.UTC).Unix()),
			float64(time.Date(2020, time.June, 1, 11, 0, 0, 0, time.UTC).Unix()),
		},
	}

	s := tr.Stats()

	require.Equal(4, s.Points)
	require.Equal(time.Hour, s.Duration)
	require.Equal(100.0, s.StartElevation)
	require.Equal(250.0, s.EndElevation)
	require.Equal(200.0, s.ElevationGain)
	require.Equal(50.0, s.ElevationLoss)
	require.Greater(s.Distance, 3000.0)
}
