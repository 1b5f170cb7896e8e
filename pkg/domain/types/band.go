package types

// RiskBand groups a category's magnitude (severity+latency) into the
// four display bands used by report renderers. Cosmetic only; the numeric
// scores stay authoritative.
type RiskBand string

const (
	BandManaged  RiskBand = "Managed"
	BandModerate RiskBand = "Moderate"
	BandHigh     RiskBand = "High"
	BandCritical RiskBand = "Critical"
)

// BandForMagnitude maps a severity+latency sum onto a RiskBand
func BandForMagnitude(magnitude int) RiskBand {
	switch {
	case magnitude >= 15:
		return BandCritical
	case magnitude >= 12:
		return BandHigh
	case magnitude >= 9:
		return BandModerate
	default:
		return BandManaged
	}
}

// Color returns the hex color renderers use for the band
func (b RiskBand) Color() string {
	switch b {
	case BandCritical:
		return "#DC2626"
	case BandHigh:
		return "#EA580C"
	case BandModerate:
		return "#CA8A04"
	default:
		return "#059669"
	}
}

// String returns the string representation of RiskBand
func (b RiskBand) String() string {
	return string(b)
}
