// Package datasets implements the labeled feature table type shared by the
// corpus loaders and the trainer.
package datasets

import "math"
import "math/rand"

// Table is a flat feature matrix with one binary label per row.
type Table struct {
	Names  []string
	Rows   [][]float64
	Labels []int
}

// Init resets the table to the given feature names.
func (t *Table) Init(names []string) {
	t.Names = append([]string(nil), names...)
	t.Rows = nil
	t.Labels = nil
}

// Add appends one sample row with its label.
func (t *Table) Add(row []float64, label int) {
	t.Rows = append(t.Rows, row)
	t.Labels = append(t.Labels, label)
}

// Len returns the number of samples.
func (t Table) Len() int {
	return len(t.Rows)
}

// Balance counts rows per class, index 0 normal and index 1 abnormal.
func (t Table) Balance() (counts [2]int) {
	for _, l := range t.Labels {
		if l != 0 {
			counts[1]++
		} else {
			counts[0]++
		}
	}
	return
}

// Split shuffles the rows with the seed and carves testShare of them off
// into the second table. Each half keeps at least one row when the table
// has two or more.
func (t Table) Split(testShare float64, seed int64) (train, test Table) {
	train.Init(t.Names)
	test.Init(t.Names)
	n := int(math.Ceil(float64(t.Len()) * testShare))
	if t.Len() >= 2 {
		if n < 1 {
			n = 1
		}
		if n > t.Len()-1 {
			n = t.Len() - 1
		}
	}
	order := rand.New(rand.NewSource(seed)).Perm(t.Len())
	for i, idx := range order {
		if i < n {
			test.Add(t.Rows[idx], t.Labels[idx])
		} else {
			train.Add(t.Rows[idx], t.Labels[idx])
		}
	}
	return
}
