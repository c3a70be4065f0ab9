package transform

import (
	"fmt"

	"github.com/vetfin/vetplan/internal/domain"
)

// PostponeRetirement delays the retirement age by a number of years.
// This is useful for exploring "work one more year" scenarios.
type PostponeRetirement struct {
	Years int
}

func (pr *PostponeRetirement) Name() string {
	return "postpone_retirement"
}

func (pr *PostponeRetirement) Description() string {
	return fmt.Sprintf("Postpone retirement by %d years", pr.Years)
}

func (pr *PostponeRetirement) Validate(base *domain.Scenario) error {
	if pr.Years < 0 {
		return NewTransformError(pr.Name(), "validate", fmt.Sprintf("years must be non-negative, got %d", pr.Years), nil)
	}
	if err := requireBase(pr.Name(), base); err != nil {
		return err
	}
	if age := base.Retirement.RetirementAge + pr.Years; age > domain.MaxPlanAge {
		return NewTransformError(pr.Name(), "validate", fmt.Sprintf("retirement age %d exceeds %d", age, domain.MaxPlanAge), nil)
	}
	return nil
}

func (pr *PostponeRetirement) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Retirement.RetirementAge += pr.Years
	return modified, nil
}

// RetireEarlier brings the retirement age forward by a number of years.
type RetireEarlier struct {
	Years int
}

func (re *RetireEarlier) Name() string {
	return "retire_earlier"
}

func (re *RetireEarlier) Description() string {
	return fmt.Sprintf("Retire %d years earlier", re.Years)
}

func (re *RetireEarlier) Validate(base *domain.Scenario) error {
	if re.Years < 0 {
		return NewTransformError(re.Name(), "validate", fmt.Sprintf("years must be non-negative, got %d", re.Years), nil)
	}
	if err := requireBase(re.Name(), base); err != nil {
		return err
	}
	if age := base.Retirement.RetirementAge - re.Years; age <= base.Retirement.CurrentAge {
		return NewTransformError(re.Name(), "validate",
			fmt.Sprintf("retirement age %d must stay after current age %d", age, base.Retirement.CurrentAge), nil)
	}
	return nil
}

func (re *RetireEarlier) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Retirement.RetirementAge -= re.Years
	return modified, nil
}
