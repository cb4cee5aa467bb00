package breath

// PhaseRuns groups consecutive samples that carry the same phase label and
// returns the duration of every run spanning at least two samples. The app
// logs phases as inhale/exhale/pause strings next to each timestamp.
func PhaseRuns(timestamps []float64, phases []string) (durations []float64) {
	if len(timestamps) != len(phases) {
		return nil
	}
	start := 0
	for i := 1; i <= len(phases); i++ {
		if i < len(phases) && phases[i] == phases[start] {
			continue
		}
		if i-start > 1 {
			durations = append(durations, timestamps[i-1]-timestamps[start])
		}
		start = i
	}
	return
}

// RateStatus reports NORMAL when the rate sits in the adult resting range.
func RateStatus(rate float64) string {
	if rate >= RateLowNormal && rate <= RateHighNormal {
		return "NORMAL"
	}
	return "ABNORMAL"
}

// Notes returns the clinical interpretation lines for the metrics.
func (m Metrics) Notes() (notes []string) {
	if m.Rate < RateLowNormal {
		notes = append(notes, "Bradypnea detected (slow breathing)")
	} else if m.Rate > RateHighNormal {
		notes = append(notes, "Tachypnea detected (rapid breathing)")
	}
	if m.AmplitudeCV > VariabilityLimit {
		notes = append(notes, "High amplitude variability (irregular breathing depth)")
	}
	if m.DurationCV > VariabilityLimit {
		notes = append(notes, "High timing variability (irregular breathing rhythm)")
	}
	return
}
