package types

// VerificationStatus marks whether a heatmap point is backed by an actual
// answer or by the shadow score of a skipped category.
type VerificationStatus string

const (
	StatusVerified VerificationStatus = "Verified"
	StatusUnknown  VerificationStatus = "Unknown"
)

// String returns the string representation of VerificationStatus
func (s VerificationStatus) String() string {
	return string(s)
}
