package income

import (
	"fmt"
	"math"
)

// API names of the model parameters, used in validation messages.
const (
	ParamYieldPerHectare        = "yieldPerHectare"
	ParamMaterialCostPerHectare = "materialCostPerHectare"
	ParamLaborTimePerHectare    = "laborTimePerHectare"
	ParamCocoaMarketPrice       = "cocoaMarketPrice"
	ParamMaxLaborTime           = "maxLaborTime"
	ParamLaborCost              = "laborCost"
)

// Default values for a typical West African smallholder.
const (
	DefaultYieldPerHectare        = 500.0
	DefaultMaterialCostPerHectare = 200.0
	DefaultLaborTimePerHectare    = 100.0
	DefaultCocoaMarketPrice       = 2.5
	DefaultMaxLaborTime           = 200.0
	DefaultLaborCost              = 10.0
)

// Option configures Parameters built by NewParameters.
type Option func(*Parameters)

func WithYieldPerHectare(v float64) Option {
	return func(p *Parameters) { p.YieldPerHectare = v }
}

func WithMaterialCostPerHectare(v float64) Option {
	return func(p *Parameters) { p.MaterialCostPerHectare = v }
}

func WithLaborTimePerHectare(v float64) Option {
	return func(p *Parameters) { p.LaborTimePerHectare = v }
}

func WithCocoaMarketPrice(v float64) Option {
	return func(p *Parameters) { p.CocoaMarketPrice = v }
}

func WithMaxLaborTime(v float64) Option {
	return func(p *Parameters) { p.MaxLaborTime = v }
}

func WithLaborCost(v float64) Option {
	return func(p *Parameters) { p.LaborCost = v }
}

// NewParameters returns the default parameters overridden by opts.
// The result is not validated.
func NewParameters(opts ...Option) Parameters {
	p := Parameters{
		YieldPerHectare:        DefaultYieldPerHectare,
		MaterialCostPerHectare: DefaultMaterialCostPerHectare,
		LaborTimePerHectare:    DefaultLaborTimePerHectare,
		CocoaMarketPrice:       DefaultCocoaMarketPrice,
		MaxLaborTime:           DefaultMaxLaborTime,
		LaborCost:              DefaultLaborCost,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// HighInputParameters is the intensified farm profile: higher yield bought with more material and labor.
func HighInputParameters(opts ...Option) Parameters {
	base := []Option{
		WithYieldPerHectare(1500),
		WithMaterialCostPerHectare(600),
		WithLaborTimePerHectare(160),
	}
	return NewParameters(append(base, opts...)...)
}

// Validate reports every parameter that violates its domain constraint.
func (p Parameters) Validate() error {
	fields := []struct {
		name      string
		value     float64
		allowZero bool
	}{
		{ParamYieldPerHectare, p.YieldPerHectare, false},
		{ParamMaterialCostPerHectare, p.MaterialCostPerHectare, true},
		{ParamLaborTimePerHectare, p.LaborTimePerHectare, false},
		{ParamCocoaMarketPrice, p.CocoaMarketPrice, false},
		{ParamMaxLaborTime, p.MaxLaborTime, false},
		{ParamLaborCost, p.LaborCost, true},
	}

	var violations []Violation
	for _, f := range fields {
		switch {
		case math.IsNaN(f.value) || math.IsInf(f.value, 0):
			violations = append(violations, Violation{Field: f.name, Value: f.value, Constraint: "must be a finite number"})
		case f.allowZero && f.value < 0:
			violations = append(violations, Violation{Field: f.name, Value: f.value, Constraint: "must not be negative"})
		case !f.allowZero && f.value <= 0:
			violations = append(violations, Violation{Field: f.name, Value: f.value, Constraint: "must be greater than 0"})
		}
	}

	if len(violations) == 0 && math.IsInf(p.CapacityHectares(), 0) {
		violations = append(violations, Violation{
			Field:      ParamLaborTimePerHectare,
			Value:      p.LaborTimePerHectare,
			Constraint: fmt.Sprintf("is too small for %s %v", ParamMaxLaborTime, p.MaxLaborTime),
		})
	}

	if len(violations) > 0 {
		return NewErrInvalidParameter(violations...)
	}
	return nil
}

// CapacityHectares is the farm size at which the required labor equals the owner's capacity.
func (p Parameters) CapacityHectares() float64 {
	return p.MaxLaborTime / p.LaborTimePerHectare
}
