// Package logistic implements the binary logistic regression model the
// toolkit trains and the mobile app consumes.
package logistic

import "math"
import "time"

import "github.com/google/uuid"

// Type is the model_type string written into every artifact.
const Type = "logistic_regression"

// Scaler standardizes features to zero mean and unit variance. An empty
// scaler leaves rows untouched.
type Scaler struct {
	Mean []float64 `json:"mean"`
	Std  []float64 `json:"std"`
}

// Fit learns per-feature means and population deviations from the rows.
// Zero deviations are stored as 1 so Transform never divides by zero.
func (s *Scaler) Fit(rows [][]float64) {
	if len(rows) == 0 {
		return
	}
	nf := len(rows[0])
	s.Mean = make([]float64, nf)
	s.Std = make([]float64, nf)
	for _, row := range rows {
		for j, v := range row {
			s.Mean[j] += v
		}
	}
	n := float64(len(rows))
	for j := range s.Mean {
		s.Mean[j] /= n
	}
	for _, row := range rows {
		for j, v := range row {
			d := v - s.Mean[j]
			s.Std[j] += d * d
		}
	}
	for j := range s.Std {
		s.Std[j] = math.Sqrt(s.Std[j] / n)
		if s.Std[j] == 0 {
			s.Std[j] = 1
		}
	}
}

// Transform standardizes one row, returning a copy.
func (s Scaler) Transform(row []float64) []float64 {
	out := make([]float64, len(row))
	copy(out, row)
	for j := range out {
		if j < len(s.Mean) && j < len(s.Std) {
			out[j] = (out[j] - s.Mean[j]) / s.Std[j]
		}
	}
	return out
}

// Model is a fitted classifier together with the scaler it was fitted
// behind and the metadata of its training run.
type Model struct {
	ModelType string    `json:"model_type"`
	Features  []string  `json:"feature_names"`
	Weights   []float64 `json:"weights"`
	Bias      float64   `json:"bias"`
	Scaler    Scaler    `json:"scaler"`
	RunID     string    `json:"run_id"`
	TrainedAt time.Time `json:"trained_at"`
	Samples   int       `json:"samples"`
}

// New returns a zero-weight model for the features with a fresh run id.
func New(features []string) *Model {
	return &Model{
		ModelType: Type,
		Features:  append([]string(nil), features...),
		Weights:   make([]float64, len(features)),
		RunID:     uuid.New().String(),
		TrainedAt: time.Now().UTC(),
	}
}

// Fold rewrites the linear terms to apply to raw features, folding the
// scaler in: w' = w/std, b' = b - sum(w*mean/std). Consumers of the folded
// weights need no scaler of their own.
func (m Model) Fold() (weights []float64, bias float64) {
	weights = make([]float64, len(m.Weights))
	bias = m.Bias
	for i, w := range m.Weights {
		mean, std := 0.0, 1.0
		if i < len(m.Scaler.Mean) && i < len(m.Scaler.Std) {
			mean, std = m.Scaler.Mean[i], m.Scaler.Std[i]
		}
		if std == 0 {
			std = 1
		}
		weights[i] = w / std
		bias -= w * mean / std
	}
	return
}
