package income

// Summarize aggregates the points of one sweep evaluated with params.
// points is expected to be the output of Evaluate, ordered by farm size.
func Summarize(params Parameters, points []DataPoint) Summary {
	s := Summary{CapacityHectares: params.CapacityHectares()}
	for i, p := range points {
		if i == 0 || p.Income > s.Peak.Income {
			s.Peak = p
		}
		if p.LaborExceeded {
			if s.FirstExceededFarmSize == nil {
				size := p.FarmSize
				s.FirstExceededFarmSize = &size
			}
			s.ExceededCount++
		}
	}
	return s
}
