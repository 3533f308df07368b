package track

// Dedup returns a copy of the track with every point removed that is
// coincident with its predecessor in latitude/longitude. The first
// point is always kept. The cumulative arc length of a deduplicated
// track is strictly increasing, which the spline parameterization
// requires. Reapplying Dedup to its own output is a no-op.
func (t *Track) Dedup() *Track {
	planar := t.PlanarDistances()

	keep := make([]int, 0, t.Len())
	keep = append(keep, 0)
	for i := 1; i < t.Len(); i++ {
		if planar[i] != 0 {
			keep = append(keep, i)
		}
	}

	out := &Track{
		Lat: filter(t.Lat, keep),
		Lon: filter(t.Lon, keep),
		Ele: filter(t.Ele, keep),
		Ts:  filter(t.Ts, keep),
		Spd: filter(t.Spd, keep),
		Loc: t.Loc,
	}
	return out
}

// filter keeps order. A nil field stays nil so presence flags survive.
func filter(values []float64, keep []int) []float64 {
	if values == nil {
		return nil
	}
	out := make([]float64, len(keep))
	for i, idx := range keep {
		out[i] = values[idx]
	}
	return out
}
