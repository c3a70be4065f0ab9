package calculation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vetfin/vetplan/internal/domain"
)

// ErrInvalidInputs wraps every validation failure reported by the engine
var ErrInvalidInputs = errors.New("invalid retirement inputs")

// CalculationEngine orchestrates all retirement calculations
type CalculationEngine struct {
	Logger    Logger
	Debug     bool                 // Enable debug output for detailed calculations
	Simulator *MonteCarloSimulator // Optional; nil skips the stochastic simulation
	Now       func() time.Time
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Logger: NopLogger{},
		Now:    time.Now,
	}
}

// SetLogger installs a logger; nil restores the no-op logger
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// EnableSimulation attaches a Monte Carlo simulator to every calculation
func (ce *CalculationEngine) EnableSimulation(cfg SimulationConfig) {
	ce.Simulator = NewMonteCarloSimulator(cfg)
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// Calculate validates the inputs and produces a complete retirement plan
func (ce *CalculationEngine) Calculate(ctx context.Context, name string, in domain.RetirementInputs) (*domain.RetirementPlan, error) {
	if in.Market == "" {
		in.Market = domain.MarketAverage
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInputs, err)
	}

	log := ce.logger()
	profile := ResolveRiskProfile(in.RiskTolerance)
	annualReturn := AnnualReturn(profile, in.Market)

	results := CalculateNeeds(in)
	results.EarliestRetirementAge = EarliestRetirementAge(in)
	results.SuccessProbability = SuccessProbability(in)

	if ce.Debug {
		log.Debugf("%s: profile=%s annual_return=%.4f monthly_rate=%.6f years=%d",
			name, profile.Name, annualReturn, MonthlyRate(annualReturn), results.YearsToRetirement)
		log.Debugf("%s: total_needed=%.2f projected=%.2f shortfall=%.2f required_monthly=%.2f",
			name, results.TotalNeeded, results.ProjectedSavings, results.Shortfall, results.RequiredMonthlySavings)
	}

	plan := &domain.RetirementPlan{
		Name:            name,
		Inputs:          in,
		AnnualReturn:    annualReturn,
		RiskProfile:     profile,
		Results:         results,
		Projection:      GenerateProjectionWithReturn(in, annualReturn),
		AssetAllocation: AssetAllocationData(profile),
		IncomeSources:   IncomeSourcesData(results.ProjectedSavings, results.PensionLifetimeValue, results.DisabilityLifetimeValue),
	}

	if age, depleted := plan.SavingsDepletedAge(); depleted {
		log.Warnf("%s: savings depleted at age %d", name, age)
	}

	if ce.Simulator != nil {
		sim, err := ce.Simulator.Run(ctx, in)
		if err != nil {
			return nil, err
		}
		plan.Simulation = sim
	}

	log.Infof("%s: success %.1f%%, earliest retirement age %d", name, results.SuccessProbability, results.EarliestRetirementAge)
	return plan, nil
}

// RunScenario calculates the scenario at index
func (ce *CalculationEngine) RunScenario(ctx context.Context, cfg *domain.Configuration, index int) (*domain.RetirementPlan, error) {
	if index < 0 || index >= len(cfg.Scenarios) {
		return nil, fmt.Errorf("scenario index %d out of range (have %d)", index, len(cfg.Scenarios))
	}
	sc := cfg.Scenarios[index]
	plan, err := ce.Calculate(ctx, sc.Name, sc.Retirement)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}
	return plan, nil
}

// RunScenarios calculates every scenario in the configuration in order
func (ce *CalculationEngine) RunScenarios(ctx context.Context, cfg *domain.Configuration) (*domain.PlanComparison, error) {
	if len(cfg.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios provided")
	}

	now := time.Now
	if ce.Now != nil {
		now = ce.Now
	}

	comparison := &domain.PlanComparison{
		Profile:     cfg.Profile,
		GeneratedAt: now(),
		Plans:       make([]domain.RetirementPlan, 0, len(cfg.Scenarios)),
	}
	for i := range cfg.Scenarios {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		plan, err := ce.RunScenario(ctx, cfg, i)
		if err != nil {
			return nil, err
		}
		comparison.Plans = append(comparison.Plans, *plan)
	}
	return comparison, nil
}
