package transform

import (
	"fmt"

	"github.com/vetfin/vetplan/internal/calculation"
	"github.com/vetfin/vetplan/internal/domain"
)

// SetRiskTolerance replaces the risk tolerance, which selects the allocation bucket.
type SetRiskTolerance struct {
	Tolerance float64
}

func (sr *SetRiskTolerance) Name() string {
	return "set_risk"
}

func (sr *SetRiskTolerance) Description() string {
	return fmt.Sprintf("Set risk tolerance to %.0f (%s portfolio)", sr.Tolerance, calculation.ResolveRiskProfile(sr.Tolerance).Name)
}

func (sr *SetRiskTolerance) Validate(base *domain.Scenario) error {
	if sr.Tolerance < 0 || sr.Tolerance > 100 {
		return NewTransformError(sr.Name(), "validate", fmt.Sprintf("tolerance must be between 0 and 100, got %v", sr.Tolerance), nil)
	}
	return requireBase(sr.Name(), base)
}

func (sr *SetRiskTolerance) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Retirement.RiskTolerance = sr.Tolerance
	return modified, nil
}

// SetMarketScenario replaces the market outlook.
type SetMarketScenario struct {
	Market domain.MarketScenario
}

func (sm *SetMarketScenario) Name() string {
	return "set_market"
}

func (sm *SetMarketScenario) Description() string {
	return fmt.Sprintf("Assume a %s market", sm.Market.Label())
}

func (sm *SetMarketScenario) Validate(base *domain.Scenario) error {
	if !sm.Market.Valid() {
		return NewTransformError(sm.Name(), "validate", fmt.Sprintf("unknown market scenario %q", sm.Market), nil)
	}
	return requireBase(sm.Name(), base)
}

func (sm *SetMarketScenario) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Retirement.Market = sm.Market
	return modified, nil
}

// AdjustContribution changes the monthly contribution by Delta dollars. A
// contribution derived from income is first fixed at its current amount.
type AdjustContribution struct {
	Delta float64
}

func (ac *AdjustContribution) Name() string {
	return "adjust_contribution"
}

func (ac *AdjustContribution) Description() string {
	if ac.Delta < 0 {
		return fmt.Sprintf("Contribute $%.0f less per month", -ac.Delta)
	}
	return fmt.Sprintf("Contribute $%.0f more per month", ac.Delta)
}

func (ac *AdjustContribution) Validate(base *domain.Scenario) error {
	if err := requireBase(ac.Name(), base); err != nil {
		return err
	}
	if next := calculation.MonthlyContribution(base.Retirement) + ac.Delta; next < 0 {
		return NewTransformError(ac.Name(), "validate", fmt.Sprintf("resulting contribution %.2f is negative", next), nil)
	}
	return nil
}

func (ac *AdjustContribution) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Retirement.MonthlyContribution = calculation.MonthlyContribution(base.Retirement) + ac.Delta
	modified.Retirement.Contribution = nil
	return modified, nil
}

// SetContributionPercent derives the contribution from a share of monthly income.
// Income defaults to the scenario's existing contribution source.
type SetContributionPercent struct {
	Percent float64
	Income  float64
}

func (sc *SetContributionPercent) Name() string {
	return "set_contribution_percent"
}

func (sc *SetContributionPercent) Description() string {
	return fmt.Sprintf("Contribute %.0f%% of monthly income", sc.Percent)
}

func (sc *SetContributionPercent) Validate(base *domain.Scenario) error {
	if sc.Percent < 0 || sc.Percent > 100 {
		return NewTransformError(sc.Name(), "validate", fmt.Sprintf("percent must be between 0 and 100, got %v", sc.Percent), nil)
	}
	if err := requireBase(sc.Name(), base); err != nil {
		return err
	}
	if sc.income(base) <= 0 {
		return NewTransformError(sc.Name(), "validate", "monthly income is required", nil)
	}
	return nil
}

func (sc *SetContributionPercent) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Retirement.Contribution = &domain.ContributionSource{
		MonthlyIncome: sc.income(base),
		Percent:       sc.Percent,
	}
	return modified, nil
}

func (sc *SetContributionPercent) income(base *domain.Scenario) float64 {
	if sc.Income > 0 {
		return sc.Income
	}
	if base.Retirement.Contribution != nil {
		return base.Retirement.Contribution.MonthlyIncome
	}
	return 0
}
