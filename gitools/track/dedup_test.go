package track_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gpxinterp-tools/gitools/track"
)

func TestDedup(t *testing.T) {
	require := require.New(t)

	tr := &track.Track{
		Lat: []float64{0, 0, 0, 0, 1},
		Lon: []float64{0, 0, 1, 1, 1},
		Ele: []float64{10, 20, 30, 40, 50},
		Ts:  []float64{100, 101, 102, 103, 104},
	}

	d := tr.Dedup()

	// Index 0 is kept unconditionally, indices 1 and 3 are planar
	// duplicates of their predecessors. The elevation change at
	// index 1 does not save it: the planar parameter must advance.
	require.Equal([]float64{0, 0, 1}, d.Lat)
	require.Equal([]float64{0, 1, 1}, d.Lon)
	require.Equal([]float64{10, 30, 50}, d.Ele)
	require.Equal([]float64{100, 102, 104}, d.Ts)

	// Input stays untouched.
	require.Equal(5, tr.Len())
}

func TestDedupIdempotent(t *testing.T) {
	require := require.New(t)

	tr := &track.Track{
		Lat: []float64{0, 0, 1, 1},
		Lon: []float64{0, 1, 1, 1},
		Ts:  []float64{0, 1, 2, 3},
	}

	once := tr.Dedup()
	twice := once.Dedup()

	require.Equal(once.Lat, twice.Lat)
	require.Equal(once.Lon, twice.Lon)
	require.Equal(once.Ts, twice.Ts)
}

func TestDedupPresenceFlags(t *testing.T) {
	require := require.New(t)

	tr := &track.Track{
		Lat: []float64{0, 0, 1},
		Lon: []float64{0, 0, 1},
	}

	d := tr.Dedup()
	require.Equal(2, d.Len())
	require.False(d.HasElevation())
	require.False(d.HasTime())
}

func TestDedupAllCoincident(t *testing.T) {
	require := require.New(t)

	tr := &track.Track{
		Lat: []float64{5, 5, 5},
		Lon: []float64{5, 5, 5},
	}

	d := tr.Dedup()
	require.Equal(1, d.Len())
}
