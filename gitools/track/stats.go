package track

import (
	"math"
	"time"
)

// Stats track statistics
type Stats struct {
	Points         int
	Distance       float64
	Duration       time.Duration
	ElevationGain  float64
	ElevationLoss  float64
	StartElevation float64
	EndElevation   float64
}

// Elevation swings below this threshold (meters) are treated as sensor
// noise when accumulating gain/loss.
const elevationChangeThreshold = 18

// Stats retrieves statistics from the track
func (t *Track) Stats() Stats {
	s := Stats{
		Points:   t.Len(),
		Distance: t.Length(),
	}

	if t.HasTime() && t.Len() > 1 {
		s.Duration = t.Time(t.Len() - 1).Sub(t.Time(0))
	}

	if t.HasElevation() {
		s.StartElevation = t.Ele[0]
		s.EndElevation = t.Ele[t.Len()-1]
		s.ElevationGain, s.ElevationLoss = t.elevationGainLoss(elevationChangeThreshold)
	}

	return s
}

func (t *Track) elevationGainLoss(threshold float64) (float64, float64) {
	selected := []float64{}
	for _, e := range t.Ele {
		if len(selected) == 0 || math.Abs(e-selected[len(selected)-1]) > threshold {
			selected = append(selected, e)
		}
	}

	var gain float64
	var loss float64

	for i := 1; i < len(selected); i++ {
		d := selected[i] - selected[i-1]
		if d > 0.0 {
			gain += d
		} else {
			loss -= d
		}
	}

	return gain, loss
}
