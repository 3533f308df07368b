package track

import (
	"math"

	"github.com/golang/geo/s2"
)

// EarthRadius is the mean Earth radius in meters used for great-circle
// distances.
const EarthRadius = 6371000

// Distance returns the distance in meters between two coordinates,
// following the great circle. s2 clamps the haversine argument, so
// coincident or near-antipodal points cannot produce NaN.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	a := s2.LatLngFromDegrees(lat1, lon1)
	b := s2.LatLngFromDegrees(lat2, lon2)
	return a.Distance(b).Radians() * EarthRadius
}

// Distance3D combines the great-circle distance with an elevation
// delta as a euclidean distance.
func Distance3D(lat1, lon1, ele1, lat2, lon2, ele2 float64) float64 {
	planar := Distance(lat1, lon1, lat2, lon2)
	vertical := ele2 - ele1
	return math.Sqrt(planar*planar + vertical*vertical)
}

// Distances returns the per-segment distances of the track: dist[0] is
// always 0 and dist[i] is the distance from point i-1 to point i,
// elevation included when the track carries it.
func (t *Track) Distances() []float64 {
	return t.distances(t.HasElevation())
}

// PlanarDistances is Distances with elevation excluded regardless of
// presence. The deduplicator relies on it: an elevation-only change at
// the same lat/lon must still count as a zero-length segment.
func (t *Track) PlanarDistances() []float64 {
	return t.distances(false)
}

func (t *Track) distances(withElevation bool) []float64 {
	dist := make([]float64, t.Len())
	for i := 1; i < t.Len(); i++ {
		if withElevation {
			dist[i] = Distance3D(t.Lat[i-1], t.Lon[i-1], t.Ele[i-1], t.Lat[i], t.Lon[i], t.Ele[i])
		} else {
			dist[i] = Distance(t.Lat[i-1], t.Lon[i-1], t.Lat[i], t.Lon[i])
		}
	}
	return dist
}
