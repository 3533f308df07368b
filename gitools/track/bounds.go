package track

// Bounds represents track coordinate boundaries
type Bounds struct {
	MinLat, MinLon float64
	MaxLat, MaxLon float64
}

// Bounds returns the boundaries of the track
func (t *Track) Bounds() Bounds {
	b := Bounds{
		MinLat: t.Lat[0], MaxLat: t.Lat[0],
		MinLon: t.Lon[0], MaxLon: t.Lon[0],
	}
	for i := 1; i < t.Len(); i++ {
		if t.Lat[i] < b.MinLat {
			b.MinLat = t.Lat[i]
		}
		if t.Lat[i] > b.MaxLat {
			b.MaxLat = t.Lat[i]
		}
		if t.Lon[i] < b.MinLon {
			b.MinLon = t.Lon[i]
		}
		if t.Lon[i] > b.MaxLon {
			b.MaxLon = t.Lon[i]
		}
	}
	return b
}

// Extend extends boundaries from given decimal degrees
func (b Bounds) Extend(inc float64) Bounds {
	b.MinLat -= inc
	b.MinLon -= inc
	b.MaxLat += inc
	b.MaxLon += inc
	return b
}
