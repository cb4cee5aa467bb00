package learning

import (
	"math"
	"strings"
	"testing"
)

import "github.com/CDupuis7/tML-EC-QR/datasets"

// separable builds a table where label 1 rows sit far above label 0 rows
// on the first feature.
func separable(n int) datasets.Table {
	var t datasets.Table
	t.Init([]string{"x", "noise"})
	for i := 0; i < n; i++ {
		x := float64(i%10) + 1
		noise := float64(i%7) - 3
		if i%2 == 0 {
			t.Add([]float64{x, noise}, 0)
		} else {
			t.Add([]float64{x + 100, noise}, 1)
		}
	}
	return t
}

func TestTrainingSeparatesClasses(t *testing.T) {
	table := separable(80)
	h := Default()
	h.Threads = 1
	h.Epochs = 500
	m, err := h.Training(table)
	if err != nil {
		t.Fatal(err)
	}
	if acc := Accuracy(m, table); acc < 0.99 {
		t.Errorf("training accuracy = %v on separable data", acc)
	}
	if m.Samples != 80 {
		t.Errorf("Samples = %d, want 80", m.Samples)
	}
	if len(m.Scaler.Mean) != 2 {
		t.Errorf("scaler not fitted: %+v", m.Scaler)
	}
	if m.Weights[0] <= 0 {
		t.Errorf("weight on the separating feature = %v, want positive", m.Weights[0])
	}
}

func TestTrainingUnscaled(t *testing.T) {
	var table datasets.Table
	table.Init([]string{"x"})
	for i := 0; i < 20; i++ {
		table.Add([]float64{-1 - float64(i)/20}, 0)
		table.Add([]float64{1 + float64(i)/20}, 1)
	}
	h := Default()
	h.Threads = 1
	h.Epochs = 300
	h.Scale = false
	m, err := h.Training(table)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Scaler.Mean) != 0 {
		t.Error("unscaled fit should leave the scaler empty")
	}
	if acc := Accuracy(m, table); acc < 0.99 {
		t.Errorf("unscaled accuracy = %v", acc)
	}
}

func TestTrainingParallelMatchesSerial(t *testing.T) {
	table := separable(64)
	fit := func(threads int) float64 {
		h := Default()
		h.Threads = threads
		h.Epochs = 200
		h.Shuffle = false
		m, err := h.Training(table)
		if err != nil {
			t.Fatal(err)
		}
		return m.Weights[0]
	}
	serial := fit(1)
	parallel := fit(4)
	if math.Abs(serial-parallel) > 1e-6 {
		t.Errorf("thread count changed the fit: %v vs %v", serial, parallel)
	}
}

func TestTrainingRejectsBadInput(t *testing.T) {
	var empty datasets.Table
	empty.Init([]string{"x"})
	h := Default()
	if _, err := h.Training(empty); err == nil {
		t.Error("empty table accepted")
	}
	var ragged datasets.Table
	ragged.Init([]string{"x", "y"})
	ragged.Add([]float64{1}, 0)
	if _, err := h.Training(ragged); err == nil {
		t.Error("ragged row accepted")
	}
}

func TestReportAndConfusion(t *testing.T) {
	table := separable(40)
	h := Default()
	h.Threads = 1
	h.Epochs = 400
	m, err := h.Training(table)
	if err != nil {
		t.Fatal(err)
	}
	cm := ConfusionMatrix(m, table)
	if cm[0][0]+cm[0][1] != 20 || cm[1][0]+cm[1][1] != 20 {
		t.Errorf("confusion matrix row sums wrong: %v", cm)
	}
	rep := Report(m, table)
	for _, want := range []string{"precision", "recall", "f1-score", "normal", "abnormal", "accuracy"} {
		if !strings.Contains(rep, want) {
			t.Errorf("report lacks %q:\n%s", want, rep)
		}
	}
}
