package verify

import "fmt"
import "math"

// TensorInfo describes one model input or output.
type TensorInfo struct {
	Name  string
	Shape []int
	Type  string
}

func (t TensorInfo) String() string {
	return fmt.Sprintf("%s %s %v", t.Name, t.Type, t.Shape)
}

// Comparison is the outcome of matching two runtimes' outputs pairwise.
type Comparison struct {
	Outputs  int     // outputs compared
	MaxDiff  float64 // largest absolute element difference
	MeanDiff float64 // largest per-output mean absolute difference
	Match    bool
	Problems []string
}

// Compare matches outputs by index: counts and shapes must agree and every
// element must stay within tol. Only the common prefix is value-compared
// when the counts differ.
func Compare(a, b [][]float32, ashapes, bshapes [][]int, tol float64) Comparison {
	cmp := Comparison{Match: true}
	if len(a) != len(b) {
		cmp.fail(fmt.Sprintf("output counts differ: %d vs %d", len(a), len(b)))
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	cmp.Outputs = n
	for i := 0; i < n; i++ {
		if !shapeEqual(ashapes[i], bshapes[i]) {
			cmp.fail(fmt.Sprintf("output %d shape mismatch: %v vs %v", i, ashapes[i], bshapes[i]))
			continue
		}
		if len(a[i]) != len(b[i]) {
			cmp.fail(fmt.Sprintf("output %d length mismatch: %d vs %d", i, len(a[i]), len(b[i])))
			continue
		}
		var maxDiff, sum float64
		for j := range a[i] {
			d := math.Abs(float64(a[i][j]) - float64(b[i][j]))
			sum += d
			if d > maxDiff {
				maxDiff = d
			}
		}
		if maxDiff > cmp.MaxDiff {
			cmp.MaxDiff = maxDiff
		}
		if len(a[i]) > 0 {
			if mean := sum / float64(len(a[i])); mean > cmp.MeanDiff {
				cmp.MeanDiff = mean
			}
		}
		if maxDiff > tol {
			cmp.fail(fmt.Sprintf("output %d differs: max abs diff %.6g above %.6g", i, maxDiff, tol))
		}
	}
	return cmp
}

func (c *Comparison) fail(problem string) {
	c.Problems = append(c.Problems, problem)
	c.Match = false
}

func shapeEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
