// Package bidmc loads the BIDMC PPG-and-respiration corpus and derives the
// per-subject breathing features used to train the abnormality classifier.
//
// Each subject is published as four files: a Fix.txt header with age, gender
// and location, a Signals.csv with the 125 Hz waveforms, a Numerics.csv with
// the monitor's vital numbers, and a Breaths.csv with two annotators' breath
// start/end sample indices.
package bidmc

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

import (
	"github.com/CDupuis7/tML-EC-QR/breath"
	"github.com/CDupuis7/tML-EC-QR/datasets"
	"github.com/CDupuis7/tML-EC-QR/stats"
	"github.com/pkg/errors"
)

// Subjects is the number of records in the published corpus.
const Subjects = 53

// FeatureNames is the training feature layout, in column order.
var FeatureNames = []string{
	"age", "gender", "breathing_rate", "avg_amplitude", "max_amplitude",
	"min_amplitude", "avg_velocity", "amplitude_variability", "duration_variability",
}

// Subject is one loaded BIDMC record.
type Subject struct {
	ID           int
	Age          int
	Gender       int // 1 male, 0 otherwise
	Location     string
	ClinicalRate float64 // monitor respiratory rate average
	Metrics      breath.Metrics
	Abnormal     bool
}

// Row returns the subject's features in FeatureNames order.
func (s Subject) Row() []float64 {
	return []float64{
		float64(s.Age), float64(s.Gender), s.Metrics.Rate,
		s.Metrics.AvgAmplitude, s.Metrics.MaxAmplitude, s.Metrics.MinAmplitude,
		s.Metrics.AvgVelocity, s.Metrics.AmplitudeCV, s.Metrics.DurationCV,
	}
}

// Load reads every subject under dir, skipping the ones it cannot parse,
// and prints the resulting class distribution.
func Load(dir string) ([]Subject, error) {
	var out []Subject
	var abnormal int
	for id := 1; id <= Subjects; id++ {
		s, err := LoadSubject(dir, id)
		if err != nil {
			log.Printf("subject %02d skipped: %v", id, err)
			continue
		}
		out = append(out, *s)
		pattern := "normal"
		if s.Abnormal {
			pattern = "abnormal"
			abnormal++
		}
		fmt.Printf("Processed subject %d: %s breathing pattern\n", id, pattern)
	}
	if len(out) == 0 {
		return nil, errors.Errorf("no readable subjects under %s", dir)
	}
	fmt.Printf("\nClass distribution: %d/%d (%.1f%%) abnormal patterns\n",
		abnormal, len(out), 100*float64(abnormal)/float64(len(out)))
	return out, nil
}

// Table converts loaded subjects into a feature table labeled by the
// single-factor irregularity rule.
func Table(subjects []Subject) datasets.Table {
	var t datasets.Table
	t.Init(FeatureNames)
	for _, s := range subjects {
		label := 0
		if s.Abnormal {
			label = 1
		}
		t.Add(s.Row(), label)
	}
	return t
}

// LoadSubject reads the four files of one subject and derives its metrics.
func LoadSubject(dir string, id int) (*Subject, error) {
	s := Subject{ID: id}
	if err := s.readInfo(subjectPath(dir, id, "Fix.txt")); err != nil {
		return nil, err
	}
	signal, err := readRespSignal(subjectPath(dir, id, "Signals.csv"))
	if err != nil {
		return nil, err
	}
	s.ClinicalRate, err = readClinicalRate(subjectPath(dir, id, "Numerics.csv"))
	if err != nil {
		return nil, err
	}
	segs, err := readBreaths(subjectPath(dir, id, "Breaths.csv"))
	if err != nil {
		return nil, err
	}
	durations, amplitudes, velocities := breath.SegmentStats(signal, segs, breath.SampleRateHz)
	m, ok := breath.Aggregate(durations, amplitudes, velocities)
	if !ok {
		return nil, errors.New("no usable breath annotations")
	}
	s.Metrics = m
	s.Abnormal = m.Irregular()
	return &s, nil
}

func subjectPath(dir string, id int, suffix string) string {
	return filepath.Join(dir, fmt.Sprintf("bidmc_%02d_%s", id, suffix))
}

// readInfo parses the Fix.txt "Key: value" lines. Ages given as 90+ count
// as 90 and unparsable ages fall back to 50.
func (s *Subject) readInfo(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read subject info")
	}
	lines := strings.Split(string(data), "\n")
	if len(lines) < 8 {
		return errors.Errorf("subject info has %d lines, want at least 8", len(lines))
	}
	age := infoValue(lines[5])
	if v, err := strconv.Atoi(age); err == nil {
		s.Age = v
	} else if strings.Contains(age, "90+") {
		s.Age = 90
	} else {
		s.Age = 50
	}
	if infoValue(lines[6]) == "M" {
		s.Gender = 1
	}
	s.Location = infoValue(lines[7])
	return nil
}

func infoValue(line string) string {
	_, value, _ := strings.Cut(line, ":")
	return strings.TrimSpace(value)
}

// readRespSignal extracts the RESP column of the 125 Hz signals file.
func readRespSignal(path string) ([]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open signals")
	}
	defer file.Close()
	r := csv.NewReader(file)
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err != nil {
		return nil, errors.Wrap(err, "read signals header")
	}
	col := columnIndex(header, "RESP")
	if col < 0 {
		return nil, errors.New("signals file has no RESP column")
	}
	var signal []float64
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read signals row")
		}
		if col >= len(rec) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[col]), 64)
		if err != nil {
			return nil, errors.Wrap(err, "parse resp sample")
		}
		signal = append(signal, v)
	}
	if len(signal) == 0 {
		return nil, errors.New("empty resp signal")
	}
	return signal, nil
}

// readClinicalRate averages the monitor's RESP numeric, skipping gaps.
func readClinicalRate(path string) (float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrap(err, "open numerics")
	}
	defer file.Close()
	r := csv.NewReader(file)
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err != nil {
		return 0, errors.Wrap(err, "read numerics header")
	}
	col := columnIndex(header, "RESP")
	if col < 0 {
		return 0, errors.New("numerics file has no RESP column")
	}
	var values []float64
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, errors.Wrap(err, "read numerics row")
		}
		if col >= len(rec) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[col]), 64)
		if err == nil && v == stats.SafeFloat(v) {
			values = append(values, v)
		}
	}
	return stats.SafeFloat(stats.Mean(values)), nil
}

// readBreaths parses annotated breath boundaries. Only rows where both
// cells are integers with start before end survive.
func readBreaths(path string) ([]breath.Segment, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open breaths")
	}
	defer file.Close()
	r := csv.NewReader(file)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	var segs []breath.Segment
	first := true
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read breaths row")
		}
		if first {
			first = false
			continue
		}
		if len(rec) < 2 {
			continue
		}
		start, err1 := strconv.Atoi(strings.TrimSpace(rec[0]))
		end, err2 := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err1 != nil || err2 != nil || start >= end {
			continue
		}
		segs = append(segs, breath.Segment{Start: start, End: end})
	}
	return segs, nil
}

func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}
