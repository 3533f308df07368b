// Package gpxio reads and writes GPX files as track.Track values. It
// enforces the all-or-nothing presence rule: elevation and time must
// be carried by every point of a file or by none.
package gpxio

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tkrajina/gpxgo/gpx"

	"gpxinterp-tools/gitools/track"
)

const creator = "gpxinterp-tools"

// OutputSuffix marks files produced by this tool. Inputs already
// bearing it are skipped to prevent resampling a resampled track.
const OutputSuffix = "_interpolated"

const tpxNamespace = "http://www.garmin.com/xmlschemas/TrackPointExtension/v2"

// Read parses a GPX file into a Track. Points of all tracks and
// segments are taken in file order; the time zone of the first
// timestamped point is recorded for output formatting.
func Read(path string) (*track.Track, error) {
	doc, err := gpx.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	t := &track.Track{}
	total := 0
	for _, trk := range doc.Tracks {
		for _, seg := range trk.Segments {
			for _, p := range seg.Points {
				total++
				t.Lat = append(t.Lat, p.Latitude)
				t.Lon = append(t.Lon, p.Longitude)
				if p.Elevation.NotNull() {
					t.Ele = append(t.Ele, p.Elevation.Value())
				}
				if !p.Timestamp.IsZero() {
					if t.Loc == nil {
						t.Loc = p.Timestamp.Location()
					}
					t.Ts = append(t.Ts, float64(p.Timestamp.UnixNano())/1e9)
				}
			}
		}
	}

	if total == 0 {
		return nil, fmt.Errorf("no track points in %s", path)
	}
	if len(t.Ele) != 0 && len(t.Ele) != total {
		return nil, fmt.Errorf("%s: %d of %d points carry elevation, must be all or none", path, len(t.Ele), total)
	}
	if len(t.Ts) != 0 && len(t.Ts) != total {
		return nil, fmt.Errorf("%s: %d of %d points carry time, must be all or none", path, len(t.Ts), total)
	}
	return t, nil
}

// Write serializes a Track to a GPX 1.1 file with a single track and
// segment. With speed enabled, per-point speed values are embedded as
// Garmin TrackPointExtension nodes.
func Write(path string, t *track.Track, withSpeed bool) error {
	doc := &gpx.GPX{Creator: creator}
	if withSpeed {
		doc.RegisterNamespace("gpxtpx", tpxNamespace)
	}

	seg := gpx.GPXTrackSegment{Points: make([]gpx.GPXPoint, t.Len())}
	for i := range seg.Points {
		p := gpx.GPXPoint{
			Point: gpx.Point{
				Latitude:  t.Lat[i],
				Longitude: t.Lon[i],
			},
		}
		if t.HasElevation() {
			p.Elevation = *gpx.NewNullableFloat64(t.Ele[i])
		}
		if t.HasTime() {
			p.Timestamp = t.Time(i)
		}
		if withSpeed && t.HasSpeed() {
			node := p.Extensions.GetOrCreateNode(tpxNamespace, "TrackPointExtension", "speed")
			node.Data = strconv.FormatFloat(t.Spd[i], 'f', 2, 64)
		}
		seg.Points[i] = p
	}
	doc.Tracks = []gpx.GPXTrack{{Segments: []gpx.GPXTrackSegment{seg}}}

	out, err := doc.ToXml(gpx.ToXmlParams{Version: "1.1", Indent: true})
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", path, err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// OutputPath derives the output file name from an input path, keeping
// its directory and swapping the extension.
func OutputPath(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + OutputSuffix + ext
}

// IsOutput reports whether a path already bears the output suffix.
func IsOutput(path string) bool {
	return strings.HasSuffix(strings.TrimSuffix(path, filepath.Ext(path)), OutputSuffix)
}
