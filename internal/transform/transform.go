package transform

import (
	"fmt"
	"strings"

	"github.com/vetfin/vetplan/internal/domain"
)

// ScenarioTransform is one what-if change to a scenario's retirement inputs.
// Transforms chain: each receives the previous one's output.
type ScenarioTransform interface {
	// Apply returns a modified copy of base; base itself is left untouched.
	Apply(base *domain.Scenario) (*domain.Scenario, error)

	// Name is the registry identifier, e.g. "postpone_retirement".
	Name() string

	// Description is the one-line summary shown in comparison reports.
	Description() string

	// Validate reports whether Apply would succeed on base.
	Validate(base *domain.Scenario) error
}

// ApplyTransforms runs transforms in order against base. An empty chain yields a
// deep copy. Each step is validated against the output of the step before it.
func ApplyTransforms(base *domain.Scenario, transforms []ScenarioTransform) (*domain.Scenario, error) {
	if base == nil {
		return nil, fmt.Errorf("base scenario cannot be nil")
	}

	current := base.DeepCopy()
	for i, t := range transforms {
		if t == nil {
			return nil, fmt.Errorf("transform at index %d is nil", i)
		}
		if err := t.Validate(current); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		next, err := t.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, NewTransformError(t.Name(), "apply", "failed", err))
		}
		current = next
	}
	return current, nil
}

// Describe joins the transforms' descriptions with " + "
func Describe(transforms []ScenarioTransform) string {
	parts := make([]string, 0, len(transforms))
	for _, t := range transforms {
		if t != nil {
			parts = append(parts, t.Description())
		}
	}
	return strings.Join(parts, " + ")
}

// TransformError reports which transform rejected a scenario and why
type TransformError struct {
	TransformName string
	Operation     string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s (%s): %s: %v", e.TransformName, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Operation, e.Reason)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// NewTransformError builds a *TransformError; op is "validate" or "apply"
func NewTransformError(transformName, operation, reason string, err error) error {
	return &TransformError{
		TransformName: transformName,
		Operation:     operation,
		Reason:        reason,
		Err:           err,
	}
}

func requireBase(name string, base *domain.Scenario) error {
	if base == nil {
		return NewTransformError(name, "validate", "base scenario cannot be nil", nil)
	}
	return nil
}
