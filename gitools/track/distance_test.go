package track_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gpxinterp-tools/gitools/track"
)

// One thousandth of a degree of arc on the reference sphere, in meters.
const milliDegree = 111.19492664

func TestDistance(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		input []float64
		want  float64
	}{
		"equator_step":    {input: []float64{0, 0, 0, 0.001}, want: milliDegree},
		"meridian_step":   {input: []float64{0, 0, 0.001, 0}, want: milliDegree},
		"coincident":      {input: []float64{47.6062, -122.3321, 47.6062, -122.3321}, want: 0},
		"mid_latitudes":   {input: []float64{47.6062, -122.3321, 47.6205, -122.3493}, want: 2047.12},
		"across_dateline": {input: []float64{0, 179.9995, 0, -179.9995}, want: milliDegree},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			d := track.Distance(tc.input[0], tc.input[1], tc.input[2], tc.input[3])
			require.InDelta(tc.want, d, 0.01)
		})
	}
}

func TestDistance3D(t *testing.T) {
	require := require.New(t)

	// Same lat/lon, only elevation differs: the distance is the
	// elevation delta.
	d := track.Distance3D(10, 10, 100, 10, 10, 130)
	require.InDelta(30, d, 1e-9)

	// 3-4-5 triangle: ~111.19m planar combined with a vertical leg.
	planar := track.Distance(0, 0, 0, 0.001)
	d = track.Distance3D(0, 0, 0, 0, 0.001, planar*4/3)
	require.InDelta(planar*5/3, d, 1e-6)
}

func TestDistances(t *testing.T) {
	require := require.New(t)

	tr := &track.Track{
		Lat: []float64{0, 0, 0},
		Lon: []float64{0, 0.001, 0.002},
		Ele: []float64{0, 50, 50},
	}

	dist := tr.Distances()
	require.Len(dist, 3)
	require.Zero(dist[0])
	require.Greater(dist[1], milliDegree) // elevation included
	require.InDelta(milliDegree, dist[2], 0.01)

	planar := tr.PlanarDistances()
	require.InDelta(milliDegree, planar[1], 0.01)
}

func TestDistancesSinglePoint(t *testing.T) {
	require := require.New(t)

	tr := &track.Track{Lat: []float64{47.0}, Lon: []float64{-122.0}}
	require.Equal([]float64{0}, tr.Distances())
}

func TestLength(t *testing.T) {
	require := require.New(t)

	tr := &track.Track{
		Lat: []float64{0, 0, 0},
		Lon: []float64{0, 0.001, 0.002},
	}
	require.InDelta(2*milliDegree, tr.Length(), 0.01)
}
