package income

// Parameters are the scalar inputs of the income model. They are immutable for the duration of an evaluation.
type Parameters struct {
	// YieldPerHectare cocoa output per hectare per year (units/ha/year), > 0
	YieldPerHectare float64
	// MaterialCostPerHectare fertilizer and pesticide spend (USD/ha/year), >= 0
	MaterialCostPerHectare float64
	// LaborTimePerHectare work required (days/ha/year), > 0
	LaborTimePerHectare float64
	// CocoaMarketPrice selling price (USD/unit), > 0
	CocoaMarketPrice float64
	// MaxLaborTime days per year the owner can personally supply, > 0
	MaxLaborTime float64
	// LaborCost daily wage of hired labor (USD/day), >= 0
	LaborCost float64
}

// DataPoint is the model output for a single farm size.
type DataPoint struct {
	FarmSize        float64
	Revenue         float64
	MaterialCost    float64
	TotalLaborDays  float64
	LaborExceeded   bool
	ExcessLaborDays float64
	HiredLaborCost  float64
	Income          float64
	// WorkersRequired full-time workers needed to cover TotalLaborDays, owner included.
	WorkersRequired int
}

// Summary describes a sweep as a whole.
type Summary struct {
	// CapacityHectares is the largest farm size the owner can work without hiring labor.
	CapacityHectares float64
	// Peak is the point with the highest income. Ties keep the smallest farm size.
	Peak DataPoint
	// FirstExceededFarmSize is nil when no point exceeds the owner's capacity.
	FirstExceededFarmSize *float64
	ExceededCount         int
}
