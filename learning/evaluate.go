package learning

import "fmt"
import "strings"

import "github.com/CDupuis7/tML-EC-QR/datasets"
import "github.com/CDupuis7/tML-EC-QR/logistic"

// Accuracy returns the fraction of rows the model labels correctly.
func Accuracy(m *logistic.Model, t datasets.Table) float64 {
	if t.Len() == 0 {
		return 0
	}
	var hits int
	for i, row := range t.Rows {
		label := t.Labels[i]
		if label != 0 {
			label = 1
		}
		if m.Predict(row) == label {
			hits++
		}
	}
	return float64(hits) / float64(t.Len())
}

// ConfusionMatrix returns prediction counts indexed [actual][predicted].
func ConfusionMatrix(m *logistic.Model, t datasets.Table) (cm [2][2]int) {
	for i, row := range t.Rows {
		label := t.Labels[i]
		if label != 0 {
			label = 1
		}
		cm[label][m.Predict(row)]++
	}
	return
}

// Report renders per-class precision, recall, F1 and support for the table.
func Report(m *logistic.Model, t datasets.Table) string {
	cm := ConfusionMatrix(m, t)
	names := [2]string{"normal", "abnormal"}
	var b strings.Builder
	fmt.Fprintf(&b, "%12s %10s %10s %10s %10s\n", "", "precision", "recall", "f1-score", "support")
	for c := 0; c < 2; c++ {
		tp := cm[c][c]
		fp := cm[1-c][c]
		fn := cm[c][1-c]
		precision := ratio(tp, tp+fp)
		recall := ratio(tp, tp+fn)
		var f1 float64
		if precision+recall > 0 {
			f1 = 2 * precision * recall / (precision + recall)
		}
		fmt.Fprintf(&b, "%12s %10.2f %10.2f %10.2f %10d\n", names[c], precision, recall, f1, tp+fn)
	}
	fmt.Fprintf(&b, "\n%12s %10.4f %10s %d samples\n", "accuracy", Accuracy(m, t), "", t.Len())
	return b.String()
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
