package domain

import "github.com/shopspring/decimal"

// ServiceProfile describes a veteran's service record for the benefits estimator
type ServiceProfile struct {
	YearsOfService   int    `yaml:"years_of_service" json:"yearsOfService"`
	Rank             string `yaml:"rank" json:"rank"`
	State            string `yaml:"state" json:"state"`
	DisabilityRating int    `yaml:"disability_rating" json:"disabilityRating"`
}

// BenefitEstimate is a single benefit line in the estimator report
type BenefitEstimate struct {
	Name        string           `yaml:"name" json:"name"`
	Description string           `yaml:"description" json:"description"`
	Eligibility string           `yaml:"eligibility" json:"eligibility"`
	Monthly     *decimal.Decimal `yaml:"monthly,omitempty" json:"monthly,omitempty"`
	Percent     *int             `yaml:"percent,omitempty" json:"percent,omitempty"`
}

// BenefitReport is the estimator output for one service profile
type BenefitReport struct {
	Profile  ServiceProfile    `yaml:"profile" json:"profile"`
	Benefits []BenefitEstimate `yaml:"benefits" json:"benefits"`
}
