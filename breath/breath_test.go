package breath

import (
	"math"
	"testing"
)

func TestSegmentStats(t *testing.T) {
	// one slow triangle wave breath, 0..4..0 over 9 samples
	signal := []float64{0, 1, 2, 3, 4, 3, 2, 1, 0}
	segs := []Segment{{Start: 0, End: 9}}
	dur, amp, vel := SegmentStats(signal, segs, 1)
	if len(dur) != 1 || len(amp) != 1 || len(vel) != 1 {
		t.Fatalf("got %d/%d/%d series entries", len(dur), len(amp), len(vel))
	}
	if dur[0] != 9 {
		t.Errorf("duration = %v, want 9", dur[0])
	}
	if amp[0] != 4 {
		t.Errorf("amplitude = %v, want 4", amp[0])
	}
	if vel[0] != 1 {
		t.Errorf("velocity = %v, want 1", vel[0])
	}
}

func TestSegmentStatsSkipsBadSegments(t *testing.T) {
	signal := []float64{0, 1, 0, 1}
	segs := []Segment{
		{Start: -1, End: 2},
		{Start: 2, End: 2},
		{Start: 3, End: 1},
		{Start: 0, End: 10},
		{Start: 0, End: 4},
	}
	dur, _, _ := SegmentStats(signal, segs, SampleRateHz)
	if len(dur) != 1 {
		t.Fatalf("kept %d segments, want 1", len(dur))
	}
	if want := 4.0 / SampleRateHz; math.Abs(dur[0]-want) > 1e-12 {
		t.Errorf("duration = %v, want %v", dur[0], want)
	}
}

func TestAggregate(t *testing.T) {
	m, ok := Aggregate([]float64{3, 3, 3}, []float64{2, 4}, []float64{1, 3})
	if !ok {
		t.Fatal("Aggregate reported not ok")
	}
	if math.Abs(m.Rate-20) > 1e-12 {
		t.Errorf("Rate = %v, want 20", m.Rate)
	}
	if m.AvgAmplitude != 3 || m.MaxAmplitude != 4 || m.MinAmplitude != 2 {
		t.Errorf("amplitude aggregates = %v/%v/%v", m.AvgAmplitude, m.MaxAmplitude, m.MinAmplitude)
	}
	if m.AvgVelocity != 2 {
		t.Errorf("AvgVelocity = %v, want 2", m.AvgVelocity)
	}
	if math.Abs(m.AmplitudeCV-1.0/3) > 1e-12 {
		t.Errorf("AmplitudeCV = %v, want 1/3", m.AmplitudeCV)
	}
	if m.DurationCV != 0 {
		t.Errorf("DurationCV = %v, want 0", m.DurationCV)
	}
	if _, ok := Aggregate(nil, []float64{1}, []float64{1}); ok {
		t.Error("empty durations should not aggregate")
	}
}

func TestIrregular(t *testing.T) {
	base := Metrics{Rate: 15, AmplitudeCV: 0.1, DurationCV: 0.1}
	if base.Irregular() {
		t.Error("normal metrics flagged irregular")
	}
	for name, m := range map[string]Metrics{
		"bradypnea": {Rate: 9, AmplitudeCV: 0.1, DurationCV: 0.1},
		"tachypnea": {Rate: 25, AmplitudeCV: 0.1, DurationCV: 0.1},
		"amplitude": {Rate: 15, AmplitudeCV: 0.5, DurationCV: 0.1},
		"duration":  {Rate: 15, AmplitudeCV: 0.1, DurationCV: 0.5},
	} {
		if !m.Irregular() {
			t.Errorf("%s metrics not flagged irregular", name)
		}
	}
}

func TestFactorsAndAbnormal(t *testing.T) {
	for _, tc := range []struct {
		name                string
		rate, irr, amp, vel float64
		factors             int
		abnormal            bool
	}{
		{"healthy", 15, 0.1, 20, 3, 0, false},
		{"single factor", 8, 0.1, 20, 3, 1, false},
		{"two factors", 8, 0.5, 20, 3, 2, true},
		{"all high", 30, 0.7, 70, 12, 4, true},
		{"boundaries stay normal", 10, 0.4, 40, 8, 0, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if n := Factors(tc.rate, tc.irr, tc.amp, tc.vel); n != tc.factors {
				t.Errorf("Factors = %d, want %d", n, tc.factors)
			}
			if ab := Abnormal(tc.rate, tc.irr, tc.amp, tc.vel); ab != tc.abnormal {
				t.Errorf("Abnormal = %v, want %v", ab, tc.abnormal)
			}
		})
	}
}

func TestPhaseRuns(t *testing.T) {
	ts := []float64{0, 1, 2, 3, 4, 5, 6}
	ph := []string{"inhale", "inhale", "inhale", "exhale", "exhale", "pause", "inhale"}
	runs := PhaseRuns(ts, ph)
	want := []float64{2, 1}
	if len(runs) != len(want) {
		t.Fatalf("runs = %v, want %v", runs, want)
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Errorf("run %d = %v, want %v", i, runs[i], want[i])
		}
	}
	if PhaseRuns(ts[:3], ph) != nil {
		t.Error("mismatched lengths should give nil")
	}
}

func TestNotesAndRateStatus(t *testing.T) {
	m := Metrics{Rate: 25, AmplitudeCV: 0.4, DurationCV: 0.1}
	notes := m.Notes()
	if len(notes) != 2 {
		t.Fatalf("notes = %v", notes)
	}
	if RateStatus(m.Rate) != "ABNORMAL" {
		t.Error("rate 25 should be ABNORMAL")
	}
	if RateStatus(16) != "NORMAL" {
		t.Error("rate 16 should be NORMAL")
	}
	if n := (Metrics{Rate: 16, AmplitudeCV: 0.1, DurationCV: 0.1}).Notes(); len(n) != 0 {
		t.Errorf("healthy metrics produced notes %v", n)
	}
}
