// Package sessions parses the respiratory CSV logs exported by the tracking
// app and aggregates each one into per-session breathing metrics.
//
// A log starts with free-form "Key: value" header lines (patient info and
// the app's own summary numbers) followed by a timestamped sample block
// whose header line contains the word timestamp.
package sessions

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

import (
	"github.com/CDupuis7/tML-EC-QR/breath"
	"github.com/CDupuis7/tML-EC-QR/stats"
	"github.com/pkg/errors"
)

// FilePattern matches the app's session exports.
const FilePattern = "respiratory_data_*.csv"

// Session is one aggregated app recording.
type Session struct {
	PatientID     string
	Age           int
	Gender        int // 1 male, 0 otherwise
	HealthStatus  string
	TotalDuration float64 // seconds
	TotalBreaths  int
	Metrics       breath.Metrics
	File          string
}

// FeatureValue maps a model feature name onto the session's metrics.
// Amplitude variation scales the coefficient of variation to percent, the
// range the on-device features use.
func (s Session) FeatureValue(name string) (float64, bool) {
	switch name {
	case "age":
		return float64(s.Age), true
	case "gender":
		return float64(s.Gender), true
	case "breathing_rate":
		return s.Metrics.Rate, true
	case "avg_amplitude":
		return s.Metrics.AvgAmplitude, true
	case "max_amplitude":
		return s.Metrics.MaxAmplitude, true
	case "min_amplitude":
		return s.Metrics.MinAmplitude, true
	case "avg_velocity":
		return s.Metrics.AvgVelocity, true
	case "amplitude_variability":
		return s.Metrics.AmplitudeCV, true
	case "duration_variability", "irregularity_index":
		return s.Metrics.DurationCV, true
	case "amplitude_variation":
		return s.Metrics.AmplitudeCV * 100, true
	}
	return 0, false
}

// Row builds the feature row for the given names.
func (s Session) Row(names []string) ([]float64, error) {
	row := make([]float64, len(names))
	for i, name := range names {
		v, ok := s.FeatureValue(name)
		if !ok {
			return nil, errors.Errorf("session has no feature %q", name)
		}
		row[i] = v
	}
	return row, nil
}

// Load parses every session log under dir, skipping files it cannot read.
func Load(dir string) ([]Session, error) {
	files, err := filepath.Glob(filepath.Join(dir, FilePattern))
	if err != nil {
		return nil, errors.Wrap(err, "glob session logs")
	}
	var out []Session
	for _, f := range files {
		s, err := ParseFile(f)
		if err != nil {
			log.Printf("%s skipped: %v", f, err)
			continue
		}
		out = append(out, *s)
		fmt.Printf("Processed %s: rate %.2f breaths/min\n", filepath.Base(f), s.Metrics.Rate)
	}
	if len(out) == 0 {
		return nil, errors.Errorf("no readable session logs under %s", dir)
	}
	return out, nil
}

// ParseFile reads one session log from disk.
func ParseFile(path string) (*Session, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open session log")
	}
	defer file.Close()
	s, err := Parse(file)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	s.File = filepath.Base(path)
	return s, nil
}

// Parse reads the header lines and the sample block and derives the
// session metrics the header numbers do not carry: average velocity,
// amplitude variability against the header's average amplitude, and
// timing variability from the breathing phase runs.
func Parse(r io.Reader) (*Session, error) {
	scanner := bufio.NewScanner(r)
	var s Session
	var sampleLines []string
	inSamples := false
	for scanner.Scan() {
		line := scanner.Text()
		if inSamples {
			if strings.TrimSpace(line) != "" {
				sampleLines = append(sampleLines, line)
			}
			continue
		}
		switch {
		case strings.Contains(line, "timestamp"):
			inSamples = true
			sampleLines = append(sampleLines, line)
		case strings.Contains(line, "ID:"):
			s.PatientID = headerValue(line, "ID:")
		case strings.Contains(line, "Age:"):
			s.Age, _ = strconv.Atoi(headerValue(line, "Age:"))
		case strings.Contains(line, "Gender:"):
			if headerValue(line, "Gender:") == "Male" {
				s.Gender = 1
			}
		case strings.Contains(line, "Health Status:"):
			s.HealthStatus = headerValue(line, "Health Status:")
		case strings.Contains(line, "Total Duration:"):
			s.TotalDuration = unitValue(line, "Total Duration:", "seconds")
		case strings.Contains(line, "Breathing Rate:"):
			s.Metrics.Rate = unitValue(line, "Breathing Rate:", "breaths/minute")
		case strings.Contains(line, "Average Amplitude:"):
			s.Metrics.AvgAmplitude = unitValue(line, "Average Amplitude:", "")
		case strings.Contains(line, "Maximum Amplitude:"):
			s.Metrics.MaxAmplitude = unitValue(line, "Maximum Amplitude:", "")
		case strings.Contains(line, "Minimum Amplitude:"):
			s.Metrics.MinAmplitude = unitValue(line, "Minimum Amplitude:", "")
		case strings.Contains(line, "Total Breaths:"):
			s.TotalBreaths, _ = strconv.Atoi(headerValue(line, "Total Breaths:"))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read session log")
	}
	if !inSamples {
		return nil, errors.New("no timestamp header line")
	}

	timestamps, amplitudes, velocities, phases, err := parseSamples(sampleLines)
	if err != nil {
		return nil, err
	}
	if len(amplitudes) == 0 {
		return nil, errors.New("no sample rows")
	}

	s.Metrics.AvgVelocity = stats.SafeFloat(stats.Mean(velocities))
	if s.Metrics.AvgAmplitude > 0 {
		s.Metrics.AmplitudeCV = stats.SafeFloat(stats.PopStd(amplitudes) / s.Metrics.AvgAmplitude)
	}
	s.Metrics.DurationCV = stats.CV(breath.PhaseRuns(timestamps, phases))
	return &s, nil
}

func parseSamples(lines []string) (timestamps, amplitudes, velocities []float64, phases []string, err error) {
	r := csv.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "read sample header")
	}
	ts := columnIndex(header, "timestamp")
	amp := columnIndex(header, "amplitude")
	vel := columnIndex(header, "velocity")
	phase := columnIndex(header, "breathing_phase")
	if ts < 0 || amp < 0 || vel < 0 || phase < 0 {
		return nil, nil, nil, nil, errors.Errorf("sample header lacks required columns: %v", header)
	}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, nil, nil, errors.Wrap(err, "read sample row")
		}
		if len(rec) <= ts || len(rec) <= amp || len(rec) <= vel || len(rec) <= phase {
			continue
		}
		t, err1 := strconv.ParseFloat(strings.TrimSpace(rec[ts]), 64)
		a, err2 := strconv.ParseFloat(strings.TrimSpace(rec[amp]), 64)
		v, err3 := strconv.ParseFloat(strings.TrimSpace(rec[vel]), 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, nil, nil, nil, errors.New("unparsable sample row")
		}
		timestamps = append(timestamps, stats.SafeFloat(t))
		amplitudes = append(amplitudes, stats.SafeFloat(a))
		velocities = append(velocities, stats.SafeFloat(math.Abs(v)))
		phases = append(phases, strings.TrimSpace(rec[phase]))
	}
	return timestamps, amplitudes, velocities, phases, nil
}

func headerValue(line, key string) string {
	_, value, _ := strings.Cut(line, key)
	return strings.TrimSpace(value)
}

func unitValue(line, key, unit string) float64 {
	value := headerValue(line, key)
	if unit != "" {
		value = strings.TrimSpace(strings.Split(value, unit)[0])
	}
	f, _ := strconv.ParseFloat(value, 64)
	return stats.SafeFloat(f)
}

func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}
