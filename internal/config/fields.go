package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vetfin/vetplan/internal/domain"
)

// FieldParseError reports a form value that could not be converted
type FieldParseError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldParseError) Unwrap() error { return e.Err }

var (
	errEmpty    = fmt.Errorf("is required")
	errNotANum  = fmt.Errorf("must be a number")
	errNotWhole = fmt.Errorf("must be a whole number")
)

// ParseAmount parses a dollar amount. "$" and thousands separators are accepted.
func ParseAmount(field, s string) (float64, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, &FieldParseError{Field: field, Value: s, Err: errEmpty}
	}
	clean := strings.NewReplacer("$", "", ",", "", "_", "").Replace(raw)
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, &FieldParseError{Field: field, Value: s, Err: errNotANum}
	}
	if msg := checkAmount(v); msg != "" {
		return 0, &FieldParseError{Field: field, Value: s, Err: fmt.Errorf("%s", msg)}
	}
	return v, nil
}

// ParseAge parses a whole-number age in years
func ParseAge(field, s string) (int, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, &FieldParseError{Field: field, Value: s, Err: errEmpty}
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &FieldParseError{Field: field, Value: s, Err: errNotWhole}
	}
	if v < 0 || v > domain.MaxPlanAge {
		return 0, &FieldParseError{Field: field, Value: s, Err: fmt.Errorf("must be between 0 and %d", domain.MaxPlanAge)}
	}
	return v, nil
}

// ParsePercent parses a 0-100 percentage; a trailing "%" is allowed
func ParsePercent(field, s string) (float64, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, &FieldParseError{Field: field, Value: s, Err: errEmpty}
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
	if err != nil {
		return 0, &FieldParseError{Field: field, Value: s, Err: errNotANum}
	}
	if math.IsNaN(v) || v < 0 || v > 100 {
		return 0, &FieldParseError{Field: field, Value: s, Err: fmt.Errorf("must be between 0 and 100")}
	}
	return v, nil
}

// ParseMarket resolves a market scenario name; empty means average
func ParseMarket(s string) (domain.MarketScenario, error) {
	m, err := domain.ParseMarketScenario(s)
	if err != nil {
		return "", &FieldParseError{Field: "market", Value: s, Err: err}
	}
	return m, nil
}

// ParseBool accepts yes/no in addition to the strconv forms; empty is false
func ParseBool(field, s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return false, nil
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off":
		return false, nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, &FieldParseError{Field: field, Value: s, Err: fmt.Errorf("must be yes or no")}
	}
	return v, nil
}

// FormInputs holds the retirement calculator fields as the user typed them
type FormInputs struct {
	CurrentAge          string
	RetirementAge       string
	MonthlyExpenses     string
	MonthlyContribution string
	CurrentSavings      string
	PensionMonthly      string
	DisabilityMonthly   string
	ReceivingPension    string
	ReceivingDisability string
	RiskTolerance       string
	Market              string
}

// Resolve converts every field and validates the result. All failures are
// collected into one *ValidationError.
func (f FormInputs) Resolve() (domain.RetirementInputs, error) {
	verr := &ValidationError{}
	var in domain.RetirementInputs

	collect := func(err error) {
		if err == nil {
			return
		}
		if fe, ok := err.(*FieldParseError); ok {
			verr.Add(fe.Field, fe.Value, fe.Err.Error())
			return
		}
		verr.Add("", "", err.Error())
	}

	var err error
	in.CurrentAge, err = ParseAge("current_age", f.CurrentAge)
	collect(err)
	in.RetirementAge, err = ParseAge("retirement_age", f.RetirementAge)
	collect(err)
	in.MonthlyExpenses, err = ParseAmount("monthly_expenses", f.MonthlyExpenses)
	collect(err)
	in.MonthlyContribution, err = ParseAmount("monthly_contribution", f.MonthlyContribution)
	collect(err)
	in.CurrentSavings, err = ParseAmount("current_savings", f.CurrentSavings)
	collect(err)
	in.PensionMonthly, err = optionalAmount("pension_monthly", f.PensionMonthly)
	collect(err)
	in.DisabilityMonthly, err = optionalAmount("disability_monthly", f.DisabilityMonthly)
	collect(err)
	in.ReceivingPension, err = ParseBool("receiving_pension", f.ReceivingPension)
	collect(err)
	in.ReceivingDisability, err = ParseBool("receiving_disability", f.ReceivingDisability)
	collect(err)
	in.RiskTolerance, err = ParsePercent("risk_tolerance", f.RiskTolerance)
	collect(err)
	in.Market, err = ParseMarket(f.Market)
	collect(err)

	if len(verr.Fields) > 0 {
		return domain.RetirementInputs{}, verr
	}
	if err := in.Validate(); err != nil {
		return domain.RetirementInputs{}, err
	}
	return in, nil
}

// optionalAmount treats a blank field as zero
func optionalAmount(field, s string) (float64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	return ParseAmount(field, s)
}

func checkAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "must be a finite number"
	}
	if v < 0 {
		return "cannot be negative"
	}
	return ""
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
