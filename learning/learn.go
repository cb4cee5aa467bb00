package learning

import "fmt"
import "math"
import "math/rand"

import "github.com/CDupuis7/tML-EC-QR/datasets"
import "github.com/CDupuis7/tML-EC-QR/logistic"
import "github.com/CDupuis7/tML-EC-QR/parallel"
import "github.com/pkg/errors"

// Training fits a logistic regression on the table by full-batch gradient
// descent. The gradient pass is sharded across h.Threads goroutines.
func (h *HyperParameters) Training(t datasets.Table) (*logistic.Model, error) {
	if t.Len() == 0 {
		return nil, errors.New("empty training table")
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Names) {
			return nil, errors.Errorf("row %d carries %d features, want %d", i, len(row), len(t.Names))
		}
	}

	m := logistic.New(t.Names)
	m.Samples = t.Len()
	if h.Scale {
		m.Scaler.Fit(t.Rows)
	}
	scaled := make([][]float64, t.Len())
	for i, row := range t.Rows {
		scaled[i] = m.Scaler.Transform(row)
	}

	threads := h.Threads
	if threads <= 0 {
		threads = 1
	}
	if threads > t.Len() {
		threads = t.Len()
	}

	nf := len(t.Names)
	grad := make([][]float64, threads)
	for w := range grad {
		grad[w] = make([]float64, nf+1)
	}

	rng := rand.New(rand.NewSource(h.Seed))
	order := rng.Perm(t.Len())
	chunk := (t.Len() + threads - 1) / threads
	n := float64(t.Len())

	for epoch := 0; epoch < h.Epochs; epoch++ {
		if h.Shuffle {
			rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		}
		for w := range grad {
			for j := range grad[w] {
				grad[w][j] = 0
			}
		}
		parallel.ForEach(threads, threads, func(worker int) {
			lo := worker * chunk
			hi := lo + chunk
			if hi > len(order) {
				hi = len(order)
			}
			g := grad[worker]
			for _, idx := range order[lo:hi] {
				x := scaled[idx]
				d := sigmoid(dot(m.Weights, x)+m.Bias) - float64(t.Labels[idx])
				for j, xv := range x {
					g[j] += d * xv
				}
				g[nf] += d
			}
		})
		for j := 0; j < nf; j++ {
			var gj float64
			for w := range grad {
				gj += grad[w][j]
			}
			m.Weights[j] -= h.LearningRate * (gj/n + h.L2*m.Weights[j])
		}
		var gb float64
		for w := range grad {
			gb += grad[w][nf]
		}
		m.Bias -= h.LearningRate * gb / n

		if h.Progress > 0 && (epoch+1)%h.Progress == 0 {
			loss := h.loss(m, scaled, t.Labels)
			fmt.Printf("epoch %d: loss %.6f\n", epoch+1, loss)
			if h.l != nil {
				h.l.Println(epoch+1, loss)
			}
		}
	}
	return m, nil
}

func (h *HyperParameters) loss(m *logistic.Model, scaled [][]float64, labels []int) float64 {
	var sum float64
	for i, x := range scaled {
		p := sigmoid(dot(m.Weights, x) + m.Bias)
		if labels[i] != 0 {
			sum -= math.Log(math.Max(p, 1e-15))
		} else {
			sum -= math.Log(math.Max(1-p, 1e-15))
		}
	}
	var reg float64
	for _, w := range m.Weights {
		reg += w * w
	}
	return sum/float64(len(scaled)) + h.L2*reg/2
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func dot(w, x []float64) (s float64) {
	for i := range w {
		s += w[i] * x[i]
	}
	return
}
