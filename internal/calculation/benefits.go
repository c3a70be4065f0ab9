package calculation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vetfin/vetplan/internal/domain"
)

// compensationTable holds approximate monthly VA disability compensation by
// rating ceiling, single veteran with no dependents.
var compensationTable = []struct {
	maxRating int
	monthly   string
}{
	{10, "152.64"},
	{20, "301.74"},
	{30, "467.39"},
	{40, "673.28"},
	{50, "958.44"},
	{60, "1214.03"},
	{70, "1529.95"},
	{80, "1778.43"},
	{90, "1998.52"},
}

var fullCompensation = decimal.RequireFromString("3332.06")

// DisabilityCompensation returns the approximate monthly compensation for a rating
func DisabilityCompensation(rating int) decimal.Decimal {
	if rating <= 0 {
		return decimal.Zero
	}
	for _, row := range compensationTable {
		if rating <= row.maxRating {
			return decimal.RequireFromString(row.monthly)
		}
	}
	return fullCompensation
}

// GIBillPercent is the Post-9/11 GI Bill benefit level for the years served.
// Three or more years earn the full benefit.
func GIBillPercent(yearsOfService int) int {
	if yearsOfService >= 3 {
		return 100
	}
	return max(0, yearsOfService*30)
}

// ValidRank reports whether rank is an enlisted (E-1..E-9), officer (O-1..O-10)
// or warrant officer (W-1..W-5) pay grade.
func ValidRank(rank string) bool {
	prefix, num, ok := strings.Cut(strings.ToUpper(strings.TrimSpace(rank)), "-")
	if !ok {
		return false
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 1 {
		return false
	}
	switch prefix {
	case "E":
		return n <= 9
	case "O":
		return n <= 10
	case "W":
		return n <= 5
	}
	return false
}

// ValidateServiceProfile checks the estimator inputs
func ValidateServiceProfile(p domain.ServiceProfile) error {
	verr := &domain.ValidationError{}
	if p.YearsOfService < 0 {
		verr.Add("years_of_service", strconv.Itoa(p.YearsOfService), "cannot be negative")
	}
	if strings.TrimSpace(p.Rank) == "" {
		verr.Add("rank", "", "is required")
	} else if !ValidRank(p.Rank) {
		verr.Add("rank", p.Rank, "must be a pay grade such as E-5, O-3 or W-2")
	}
	if strings.TrimSpace(p.State) == "" {
		verr.Add("state", "", "is required")
	}
	if p.DisabilityRating < 0 || p.DisabilityRating > 100 {
		verr.Add("disability_rating", strconv.Itoa(p.DisabilityRating), "must be between 0 and 100")
	}
	return verr.ErrOrNil()
}

// EstimateBenefits produces the benefit estimates for a service profile
func EstimateBenefits(p domain.ServiceProfile) (*domain.BenefitReport, error) {
	if err := ValidateServiceProfile(p); err != nil {
		return nil, err
	}

	giBill := GIBillPercent(p.YearsOfService)
	compensation := DisabilityCompensation(p.DisabilityRating)
	state := strings.TrimSpace(p.State)

	return &domain.BenefitReport{
		Profile: p,
		Benefits: []domain.BenefitEstimate{
			{
				Name:        "GI Bill Education Benefits",
				Description: "Covers tuition, housing, and books for higher education.",
				Eligibility: fmt.Sprintf("Based on %d years of service, you are eligible for %d%% of benefits.", p.YearsOfService, giBill),
				Percent:     &giBill,
			},
			{
				Name:        "VA Home Loan",
				Description: "Helps veterans purchase homes with no down payment and competitive interest rates.",
				Eligibility: "Eligible with honorable service. No down payment required.",
			},
			{
				Name:        "VA Disability Compensation",
				Description: "Monthly tax-free payment for veterans with service-connected disabilities.",
				Eligibility: fmt.Sprintf("With a %d%% disability rating, you qualify for approximately $%s/month.", p.DisabilityRating, compensation.StringFixed(2)),
				Monthly:     &compensation,
			},
			{
				Name:        state + " State Veterans Benefits",
				Description: "Special state benefits for veterans living in " + state + ".",
				Eligibility: "Varies by program. See state VA office for details.",
			},
		},
	}, nil
}
