package export

import (
	"math"
	"path/filepath"
	"strings"
	"testing"
)

import "github.com/CDupuis7/tML-EC-QR/logistic"

func fitted() *logistic.Model {
	m := logistic.New([]string{"breathing_rate", "irregularity_index"})
	m.Weights = []float64{1.2, -0.4}
	m.Bias = 0.3
	m.Scaler = logistic.Scaler{Mean: []float64{16, 0.2}, Std: []float64{4, 0.1}}
	return m
}

func TestFromModelFoldsScaler(t *testing.T) {
	m := fitted()
	b := FromModel(m, nil)
	row := []float64{22, 0.5}
	got, err := b.Score(row)
	if err != nil {
		t.Fatal(err)
	}
	if want := m.Score(row); math.Abs(got-want) > 1e-12 {
		t.Errorf("bundle score %v, model score %v", got, want)
	}
	if b.ModelType != logistic.Type {
		t.Errorf("ModelType = %q", b.ModelType)
	}
	if len(b.FeatureNames) != 2 || b.FeatureNames[0] != "breathing_rate" {
		t.Errorf("FeatureNames = %v", b.FeatureNames)
	}
}

func TestDefaultThresholds(t *testing.T) {
	th := DefaultThresholds()
	want := map[string]float64{
		"BRADYPNEA_THRESHOLD":           10,
		"TACHYPNEA_THRESHOLD":           24,
		"IRREGULARITY_THRESHOLD":        0.4,
		"AMPLITUDE_VARIATION_THRESHOLD": 40,
		"VELOCITY_THRESHOLD":            8,
	}
	if len(th) != len(want) {
		t.Fatalf("thresholds = %v", th)
	}
	for k, v := range want {
		if th[k] != v {
			t.Errorf("%s = %v, want %v", k, th[k], v)
		}
	}
}

func TestBundleRoundTrip(t *testing.T) {
	b := FromModel(fitted(), nil)
	path := filepath.Join(t.TempDir(), DefaultFile)
	if err := b.WriteFile(path); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for name, w := range b.Weights {
		if math.Abs(got.Weights[name]-w) > 1e-12 {
			t.Errorf("weight %s = %v, want %v", name, got.Weights[name], w)
		}
	}
	if got.Thresholds["VELOCITY_THRESHOLD"] != 8 {
		t.Errorf("thresholds = %v", got.Thresholds)
	}
}

func TestReadRejectsBrokenBundles(t *testing.T) {
	for name, body := range map[string]string{
		"wrong type":     `{"model_type":"svm","weights":{"bias":0},"thresholds":{},"feature_names":[]}`,
		"missing bias":   `{"model_type":"logistic_regression","weights":{},"thresholds":{},"feature_names":[]}`,
		"missing weight": `{"model_type":"logistic_regression","weights":{"bias":0},"thresholds":{},"feature_names":["x"]}`,
		"missing cutoff": `{"model_type":"logistic_regression","weights":{"bias":0},"thresholds":{"BRADYPNEA_THRESHOLD":10},"feature_names":[]}`,
		"not even json":  `weights`,
	} {
		if _, err := Read(strings.NewReader(body)); err == nil {
			t.Errorf("%s accepted", name)
		}
	}
}
