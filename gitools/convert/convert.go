package convert

const feetPerMeter = 3.28084
const milesPerMeter = 0.0006213712

// ToFeet returns the given distance in meters as feet, for readers who
// still think in the imperial system.
func ToFeet(meters float64) float64 {
	return meters * feetPerMeter
}

// ToMiles returns the given distance in meters as miles.
func ToMiles(meters float64) float64 {
	return meters * milesPerMeter
}

// ToKmh returns a speed in meters per second as kilometers per hour.
func ToKmh(metersPerSecond float64) float64 {
	return metersPerSecond * 3.6
}
