package model

// RiskLevel classifies how likely a candidate's profile is fabricated.
// The set is closed and ordered from worst to best.
type RiskLevel string

const (
	RiskDefinitelyFake RiskLevel = "definitely_fake"
	RiskLikelyFake     RiskLevel = "likely_fake"
	RiskUncertain      RiskLevel = "uncertain"
	RiskLikelyReal     RiskLevel = "likely_real"
	RiskVerified       RiskLevel = "verified"
)

// ParseRiskLevel maps an externally supplied string onto the closed
// RiskLevel set. Unrecognized values fall back to RiskUncertain.
func ParseRiskLevel(s string) RiskLevel {
	switch RiskLevel(s) {
	case RiskDefinitelyFake, RiskLikelyFake, RiskUncertain, RiskLikelyReal, RiskVerified:
		return RiskLevel(s)
	default:
		return RiskUncertain
	}
}

// Flagged reports whether the level places a candidate in the
// likely/definitely fake band, which excludes them from scoring.
func (r RiskLevel) Flagged() bool {
	return r == RiskDefinitelyFake || r == RiskLikelyFake
}

// Badge returns the short report label for the level.
func (r RiskLevel) Badge() string {
	switch r {
	case RiskDefinitelyFake:
		return "FAKE"
	case RiskLikelyFake:
		return "SUSPECT"
	case RiskLikelyReal:
		return "OK"
	case RiskVerified:
		return "VERIFIED"
	default:
		return "UNVERIFIED"
	}
}
