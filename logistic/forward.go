package logistic

import "math"

// Score returns the linear score w.x+b of the scaled row.
func (m Model) Score(row []float64) float64 {
	x := m.Scaler.Transform(row)
	s := m.Bias
	for i, w := range m.Weights {
		s += w * x[i]
	}
	return s
}

// PredictProba returns the abnormal-class probability.
func (m Model) PredictProba(row []float64) float64 {
	return sigmoid(m.Score(row))
}

// Predict returns 1 when the abnormal class is at least as likely.
func (m Model) Predict(row []float64) int {
	if m.PredictProba(row) >= 0.5 {
		return 1
	}
	return 0
}

// Probability is PredictProba clamped to the 0.1/0.9 convention when the
// training degenerated to a single class and the score saturated.
func (m Model) Probability(row []float64) float64 {
	p := m.PredictProba(row)
	if math.IsNaN(p) || p <= 0 {
		return 0.1
	}
	if p >= 1 {
		return 0.9
	}
	return p
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
