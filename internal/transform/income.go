package transform

import (
	"fmt"
	"strings"

	"github.com/vetfin/vetplan/internal/domain"
)

// StartGuaranteedIncome marks pension and/or disability payments as already being
// received, so they offset expenses before retirement.
type StartGuaranteedIncome struct {
	Pension    bool
	Disability bool
}

func (sg *StartGuaranteedIncome) Name() string {
	return "start_income"
}

func (sg *StartGuaranteedIncome) Description() string {
	var parts []string
	if sg.Pension {
		parts = append(parts, "pension")
	}
	if sg.Disability {
		parts = append(parts, "disability")
	}
	return "Start receiving " + strings.Join(parts, " and ") + " now"
}

func (sg *StartGuaranteedIncome) Validate(base *domain.Scenario) error {
	if !sg.Pension && !sg.Disability {
		return NewTransformError(sg.Name(), "validate", "select pension, disability or both", nil)
	}
	if err := requireBase(sg.Name(), base); err != nil {
		return err
	}
	if sg.Pension && base.Retirement.PensionMonthly <= 0 {
		return NewTransformError(sg.Name(), "validate", "scenario has no pension amount", nil)
	}
	if sg.Disability && base.Retirement.DisabilityMonthly <= 0 {
		return NewTransformError(sg.Name(), "validate", "scenario has no disability amount", nil)
	}
	return nil
}

func (sg *StartGuaranteedIncome) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	if sg.Pension {
		modified.Retirement.ReceivingPension = true
	}
	if sg.Disability {
		modified.Retirement.ReceivingDisability = true
	}
	return modified, nil
}

// SetGuaranteedIncome replaces the monthly pension and disability amounts.
// A negative value leaves that amount unchanged.
type SetGuaranteedIncome struct {
	Pension    float64
	Disability float64
}

func (si *SetGuaranteedIncome) Name() string {
	return "set_income"
}

func (si *SetGuaranteedIncome) Description() string {
	return fmt.Sprintf("Set pension to $%.0f and disability to $%.0f per month", si.Pension, si.Disability)
}

func (si *SetGuaranteedIncome) Validate(base *domain.Scenario) error {
	return requireBase(si.Name(), base)
}

func (si *SetGuaranteedIncome) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	if si.Pension >= 0 {
		modified.Retirement.PensionMonthly = si.Pension
	}
	if si.Disability >= 0 {
		modified.Retirement.DisabilityMonthly = si.Disability
	}
	return modified, nil
}
