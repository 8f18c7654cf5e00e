// Package recommend converts soil-moisture telemetry into a suggested water
// volume and qualitative need category. Pure rules, no I/O.
package recommend

import "irricore/entities"

type Category string

const (
	CategoryNone     Category = "None"
	CategoryLow      Category = "Low"
	CategoryModerate Category = "Moderate"
	CategoryHigh     Category = "High"
)

type Result struct {
	Amount   float64  `json:"amount"` // liters
	Category Category `json:"category"`
}

// Tiers are ordered; first match wins on avg < below. Boundaries are
// half-open and lower-inclusive: avg = 20 is Moderate, not High. The cutoffs
// are user-visible and must not drift.
var tiers = []struct {
	below    float64
	amount   float64
	category Category
}{
	{below: 20, amount: 75, category: CategoryHigh},
	{below: 35, amount: 40, category: CategoryModerate},
	{below: 50, amount: 20, category: CategoryLow},
}

type inputs struct {
	temperatureC *float64
	rainfallMM   *float64
}

type Option func(*inputs)

// WithTemperature supplies ambient temperature in Celsius. Reserved for a
// future refinement of the rule; the present tiers ignore it.
func WithTemperature(c float64) Option {
	return func(in *inputs) { in.temperatureC = &c }
}

// WithRainfall supplies recent rainfall in millimeters. Reserved like
// WithTemperature.
func WithRainfall(mm float64) Option {
	return func(in *inputs) { in.rainfallMM = &mm }
}

// Estimate maps a sample's moisture average onto the tier table.
func Estimate(sample entities.SoilMoistureSample, opts ...Option) (Result, error) {
	var in inputs
	for _, o := range opts {
		o(&in)
	}
	if err := sample.Validate(); err != nil {
		return Result{}, err
	}
	avg := sample.Average()
	for _, t := range tiers {
		if avg < t.below {
			return Result{Amount: t.amount, Category: t.category}, nil
		}
	}
	return Result{Amount: 0, Category: CategoryNone}, nil
}
