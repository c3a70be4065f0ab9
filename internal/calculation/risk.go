package calculation

import "github.com/vetfin/vetplan/internal/domain"

// Risk tolerance thresholds separating the three allocation buckets
const (
	ModerateRiskThreshold   = 33.0
	AggressiveRiskThreshold = 66.0
)

var (
	ConservativeProfile = domain.RiskProfile{Name: "conservative", StockPercent: 30, BondPercent: 60, CashPercent: 10, ExpectedReturnPercent: 5}
	ModerateProfile     = domain.RiskProfile{Name: "moderate", StockPercent: 60, BondPercent: 35, CashPercent: 5, ExpectedReturnPercent: 7}
	AggressiveProfile   = domain.RiskProfile{Name: "aggressive", StockPercent: 80, BondPercent: 15, CashPercent: 5, ExpectedReturnPercent: 9}
)

// ResolveRiskProfile maps a 0-100 risk tolerance to one of the fixed profiles.
// The input is not clamped: negative values resolve to conservative and values
// above 100 to aggressive.
func ResolveRiskProfile(tolerance float64) domain.RiskProfile {
	if tolerance < ModerateRiskThreshold {
		return ConservativeProfile
	} else if tolerance < AggressiveRiskThreshold {
		return ModerateProfile
	}
	return AggressiveProfile
}

// profileVolatility is the annual return standard deviation used by the simulator
func profileVolatility(p domain.RiskProfile) float64 {
	switch p.Name {
	case ConservativeProfile.Name:
		return 0.06
	case ModerateProfile.Name:
		return 0.10
	default:
		return 0.15
	}
}
