package calculation

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sort"

	"github.com/vetfin/vetplan/internal/domain"
	"golang.org/x/sync/errgroup"
)

// SimulationConfig controls the stochastic success simulation
type SimulationConfig struct {
	Paths   int
	Seed    int64
	Workers int
}

// DefaultSimulationConfig returns 1000 paths with a fixed seed
func DefaultSimulationConfig() SimulationConfig {
	return SimulationConfig{
		Paths:   1000,
		Seed:    1,
		Workers: runtime.GOMAXPROCS(0),
	}
}

// MonteCarloSimulator draws annual returns from a normal distribution around the
// plan's expected return and reports how often savings last through the
// projection horizon. Each path has its own seeded source so results depend only
// on the seed, not on scheduling.
type MonteCarloSimulator struct {
	Config SimulationConfig
}

// NewMonteCarloSimulator creates a simulator, filling unset config fields with defaults
func NewMonteCarloSimulator(cfg SimulationConfig) *MonteCarloSimulator {
	def := DefaultSimulationConfig()
	if cfg.Workers <= 0 {
		cfg.Workers = def.Workers
	}
	return &MonteCarloSimulator{Config: cfg}
}

type pathOutcome struct {
	endBalance float64
	success    bool
}

// Run simulates Config.Paths return sequences for the inputs
func (s *MonteCarloSimulator) Run(ctx context.Context, in domain.RetirementInputs) (*domain.SimulationSummary, error) {
	if s.Config.Paths <= 0 {
		return nil, fmt.Errorf("simulation paths must be positive, got %d", s.Config.Paths)
	}

	profile := ResolveRiskProfile(in.RiskTolerance)
	annualReturn := AnnualReturn(profile, in.Market)
	volatility := profileVolatility(profile)

	outcomes := make([]pathOutcome, s.Config.Paths)
	workers := min(max(s.Config.Workers, 1), s.Config.Paths)
	chunk := (s.Config.Paths + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < s.Config.Paths; start += chunk {
		end := min(start+chunk, s.Config.Paths)
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				rng := rand.New(rand.NewSource(s.Config.Seed + int64(i)))
				outcomes[i] = simulatePath(in, annualReturn, volatility, rng)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("simulation cancelled: %w", err)
	}

	balances := make([]float64, len(outcomes))
	successes := 0
	for i, o := range outcomes {
		balances[i] = o.endBalance
		if o.success {
			successes++
		}
	}
	sort.Float64s(balances)

	return &domain.SimulationSummary{
		Paths:            s.Config.Paths,
		Seed:             s.Config.Seed,
		Volatility:       volatility,
		SuccessRate:      float64(successes) / float64(len(outcomes)) * 100,
		MedianEndBalance: roundDollars(percentile(balances, 50)),
		P10EndBalance:    roundDollars(percentile(balances, 10)),
		P90EndBalance:    roundDollars(percentile(balances, 90)),
	}, nil
}

// simulatePath follows the projection rules with a random return each year. A path
// fails when a withdrawal cannot be fully paid from savings.
func simulatePath(in domain.RetirementInputs, meanReturn, volatility float64, rng *rand.Rand) pathOutcome {
	annualContribution := MonthlyContribution(in) * monthsPerYear
	withdrawal := math.Max(0, in.MonthlyExpenses*monthsPerYear-(in.PensionMonthly+in.DisabilityMonthly)*monthsPerYear)

	savings := in.CurrentSavings
	success := true
	for age := in.CurrentAge; age <= ProjectionEndAge(in.RetirementAge); age++ {
		r := meanReturn + volatility*rng.NormFloat64()
		if age < in.RetirementAge {
			savings = savings*(1+r) + annualContribution
			continue
		}
		savings *= 1 + r*0.5
		if withdrawal > 0 && savings < withdrawal {
			success = false
		}
		savings = math.Max(0, savings-withdrawal)
	}
	return pathOutcome{endBalance: savings, success: success}
}

// percentile uses nearest rank on sorted values
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	rank := int(math.Ceil(p / 100 * float64(len(sorted))))
	if rank < 1 {
		rank = 1
	}
	return sorted[rank-1]
}
