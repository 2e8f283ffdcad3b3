package income

import (
	"errors"
	"math"
)

// maxWorkers keeps WorkersRequired within a 32-bit int.
const maxWorkers = math.MaxInt32

// Evaluate computes one DataPoint per farm size, in input order.
// Parameters are validated before the farm sizes; on error no points are returned.
func Evaluate(params Parameters, farmSizes []float64) ([]DataPoint, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateFarmSizes(farmSizes); err != nil {
		return nil, err
	}

	points := make([]DataPoint, 0, len(farmSizes))
	for i, f := range farmSizes {
		p, err := evaluateOne(params, f)
		if err != nil {
			return nil, NewErrInvalidRange("farm size at index %d (%v) %s", i, f, err)
		}
		points = append(points, p)
	}
	return points, nil
}

// evaluateOne assumes validated inputs. It fails when a result does not fit a float64 or the
// worker count does not fit maxWorkers.
func evaluateOne(p Parameters, f float64) (DataPoint, error) {
	revenue := f * p.YieldPerHectare * p.CocoaMarketPrice
	materialCost := f * p.MaterialCostPerHectare
	totalLaborDays := f * p.LaborTimePerHectare

	// the owner's own days are unpaid, only the excess is hired
	exceeded := totalLaborDays > p.MaxLaborTime
	excessDays := 0.0
	if exceeded {
		excessDays = totalLaborDays - p.MaxLaborTime
	}
	hiredLaborCost := excessDays * p.LaborCost
	income := revenue - materialCost - hiredLaborCost

	for _, v := range []struct {
		name  string
		value float64
	}{
		{"revenue", revenue},
		{"material cost", materialCost},
		{"total labor days", totalLaborDays},
		{"hired labor cost", hiredLaborCost},
		{"income", income},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return DataPoint{}, errors.New(v.name + " overflows")
		}
	}

	workers := math.Ceil(totalLaborDays / p.MaxLaborTime)
	if math.IsInf(workers, 0) || workers > maxWorkers {
		return DataPoint{}, errors.New("needs more workers than can be counted")
	}

	return DataPoint{
		FarmSize:        f,
		Revenue:         revenue,
		MaterialCost:    materialCost,
		TotalLaborDays:  totalLaborDays,
		LaborExceeded:   exceeded,
		ExcessLaborDays: excessDays,
		HiredLaborCost:  hiredLaborCost,
		Income:          income,
		WorkersRequired: int(workers),
	}, nil
}
