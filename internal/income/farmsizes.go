package income

import "math"

// Default sweep: 1 to 10 hectares, one point per hectare.
const (
	DefaultMinFarmSize = 1.0
	DefaultMaxFarmSize = 10.0
	DefaultSweepSteps  = 10
)

// ValidateFarmSizes checks that sizes is non-empty, strictly increasing and made of finite positive values.
func ValidateFarmSizes(sizes []float64) error {
	if len(sizes) == 0 {
		return NewErrEmptyRange()
	}
	for i, f := range sizes {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return NewErrInvalidRange("farm size at index %d must be a finite number (got %v)", i, f)
		}
		if f <= 0 {
			return NewErrInvalidRange("farm size at index %d must be greater than 0 (got %v)", i, f)
		}
		if i > 0 && f <= sizes[i-1] {
			return NewErrInvalidRange("farm sizes must be strictly increasing (index %d: %v after %v)", i, f, sizes[i-1])
		}
	}
	return nil
}

// Linspace returns steps evenly spaced farm sizes from minSize to maxSize inclusive.
// A single step is only valid when both bounds are equal.
func Linspace(minSize, maxSize float64, steps int) ([]float64, error) {
	if steps < 1 {
		return nil, NewErrInvalidRange("step count must be at least 1 (got %d)", steps)
	}
	for _, b := range []struct {
		name  string
		value float64
	}{{"minimum", minSize}, {"maximum", maxSize}} {
		if math.IsNaN(b.value) || math.IsInf(b.value, 0) {
			return nil, NewErrInvalidRange("%s farm size must be a finite number (got %v)", b.name, b.value)
		}
		if b.value <= 0 {
			return nil, NewErrInvalidRange("%s farm size must be greater than 0 (got %v)", b.name, b.value)
		}
	}

	if steps == 1 {
		if minSize != maxSize {
			return nil, NewErrInvalidRange("a single step requires minimum == maximum (got %v and %v)", minSize, maxSize)
		}
		return []float64{minSize}, nil
	}
	if minSize >= maxSize {
		return nil, NewErrInvalidRange("minimum farm size %v must be lower than maximum %v", minSize, maxSize)
	}

	sizes := make([]float64, steps)
	step := (maxSize - minSize) / float64(steps-1)
	for i := range sizes {
		sizes[i] = minSize + float64(i)*step
	}
	// pin the upper bound against accumulated rounding
	sizes[steps-1] = maxSize
	return sizes, nil
}

// DefaultFarmSizes is the default 1..10 hectare sweep.
func DefaultFarmSizes() []float64 {
	sizes, _ := Linspace(DefaultMinFarmSize, DefaultMaxFarmSize, DefaultSweepSteps)
	return sizes
}
