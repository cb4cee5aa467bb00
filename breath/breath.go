// Package breath derives per-breath metrics from respiration signals and
// holds the clinical thresholds used to label a breathing pattern abnormal.
package breath

import "github.com/CDupuis7/tML-EC-QR/stats"

// SampleRateHz is the respiration waveform sampling rate of the BIDMC corpus.
const SampleRateHz = 125.0

// Abnormality cutoffs. A pattern is voted abnormal when at least two fire.
const (
	BradypneaRate           = 10.0
	TachypneaRate           = 24.0
	IrregularityLimit       = 0.4
	AmplitudeVariationLimit = 40.0
	VelocityLimit           = 8.0
)

// Reporting ranges for an adult at rest.
const (
	RateLowNormal    = 12.0
	RateHighNormal   = 20.0
	VariabilityLimit = 0.3
)

// Segment is one annotated breath, in waveform sample indices.
type Segment struct {
	Start int
	End   int
}

// Metrics are the aggregate respiratory features of one subject or session.
type Metrics struct {
	Rate         float64 // breaths per minute
	AvgAmplitude float64
	MaxAmplitude float64
	MinAmplitude float64
	AvgVelocity  float64
	AmplitudeCV  float64 // per-breath amplitude std over mean
	DurationCV   float64 // per-breath duration std over mean
}

// SegmentStats extracts per-breath durations (seconds), amplitudes and peak
// velocities from annotated segments of a waveform. Segments that fall
// outside the signal or have start >= end are skipped, and a velocity needs
// at least two samples.
func SegmentStats(signal []float64, segs []Segment, hz float64) (durations, amplitudes, velocities []float64) {
	for _, sg := range segs {
		if sg.Start < 0 || sg.End > len(signal) || sg.Start >= sg.End {
			continue
		}
		seg := signal[sg.Start:sg.End]
		durations = append(durations, float64(sg.End-sg.Start)/hz)
		amplitudes = append(amplitudes, stats.Max(seg)-stats.Min(seg))
		if len(seg) > 1 {
			velocities = append(velocities, stats.MaxAbs(stats.Diff(seg)))
		}
	}
	return
}

// Aggregate folds per-breath series into Metrics. ok is false when any of
// the series came out empty.
func Aggregate(durations, amplitudes, velocities []float64) (m Metrics, ok bool) {
	if len(durations) == 0 || len(amplitudes) == 0 || len(velocities) == 0 {
		return m, false
	}
	m.Rate = stats.SafeFloat(60 / stats.Mean(durations))
	m.AvgAmplitude = stats.Mean(amplitudes)
	m.MaxAmplitude = stats.Max(amplitudes)
	m.MinAmplitude = stats.Min(amplitudes)
	m.AvgVelocity = stats.Mean(velocities)
	m.AmplitudeCV = stats.CV(amplitudes)
	m.DurationCV = stats.CV(durations)
	return m, true
}

// Irregular labels a record abnormal when a single factor fires: rate out
// of the 10 to 24 range or either variability above 0.4.
func (m Metrics) Irregular() bool {
	return m.Rate < BradypneaRate || m.Rate > TachypneaRate ||
		m.AmplitudeCV > IrregularityLimit || m.DurationCV > IrregularityLimit
}

// Factors counts how many abnormality cutoffs the sample trips. Bradypnea
// and tachypnea count separately.
func Factors(rate, irregularity, amplitudeVariation, velocity float64) (n int) {
	if rate < BradypneaRate {
		n++
	}
	if rate > TachypneaRate {
		n++
	}
	if irregularity > IrregularityLimit {
		n++
	}
	if amplitudeVariation > AmplitudeVariationLimit {
		n++
	}
	if velocity > VelocityLimit {
		n++
	}
	return
}

// Abnormal applies the two-of-five voting rule to a sample.
func Abnormal(rate, irregularity, amplitudeVariation, velocity float64) bool {
	return Factors(rate, irregularity, amplitudeVariation, velocity) >= 2
}
