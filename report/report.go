// Package report writes the session classification results: a detailed CSV
// table and the scatter plots clinicians skim first.
package report

import (
	"encoding/csv"
	"os"
	"strconv"
)

import (
	"github.com/CDupuis7/tML-EC-QR/breath"
	"github.com/pkg/errors"
)

// ResultsFile is the CSV name inside the model output directory.
const ResultsFile = "breathing_pattern_results.csv"

// Row is one classified session.
type Row struct {
	PatientID    string
	File         string
	Age          int
	Gender       int
	HealthStatus string
	Metrics      breath.Metrics
	Predicted    int     // 1 abnormal
	Probability  float64 // abnormal-class probability
}

// WriteCSV writes the detailed results table to path.
func WriteCSV(path string, rows []Row) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create results csv")
	}
	defer file.Close()
	w := csv.NewWriter(file)
	header := []string{
		"patient_id", "file", "age", "gender", "health_status",
		"breathing_rate", "avg_amplitude", "max_amplitude", "min_amplitude",
		"avg_velocity", "amplitude_variability", "duration_variability",
		"predicted_abnormal", "abnormal_probability",
	}
	if err := w.Write(header); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	for _, r := range rows {
		rec := []string{
			r.PatientID, r.File, strconv.Itoa(r.Age), strconv.Itoa(r.Gender), r.HealthStatus,
			ffloat(r.Metrics.Rate), ffloat(r.Metrics.AvgAmplitude),
			ffloat(r.Metrics.MaxAmplitude), ffloat(r.Metrics.MinAmplitude),
			ffloat(r.Metrics.AvgVelocity), ffloat(r.Metrics.AmplitudeCV),
			ffloat(r.Metrics.DurationCV),
			strconv.Itoa(r.Predicted), ffloat(r.Probability),
		}
		if err := w.Write(rec); err != nil {
			return errors.Wrap(err, "write csv row")
		}
	}
	w.Flush()
	return errors.Wrap(w.Error(), "flush results csv")
}

func ffloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
