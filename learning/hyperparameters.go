// Package learning fits the logistic breathing classifier by gradient
// descent and scores fitted models.
package learning

import "log"
import "os"

import "github.com/CDupuis7/tML-EC-QR/parallel"

// HyperParameters configure one gradient descent fit.
type HyperParameters struct {
	Threads int // goroutines sharing the gradient pass

	LearningRate float64 // step size
	Epochs       int     // full passes over the training rows
	L2           float64 // ridge penalty on the weights, not the bias

	Scale   bool  // standardize features before fitting
	Shuffle bool  // reshuffle the row order before every epoch
	Seed    int64 // prng seed for shuffling

	Progress int // print the loss every this many epochs, 0 for silence

	l *log.Logger
}

// Default returns the settings the train binaries start from.
func Default() HyperParameters {
	return HyperParameters{
		Threads:      parallel.Workers(),
		LearningRate: 0.1,
		Epochs:       2000,
		L2:           0.001,
		Scale:        true,
		Shuffle:      true,
		Seed:         42,
	}
}

// SetLogger appends the per-epoch losses to the named file.
func (h *HyperParameters) SetLogger(filename string) {
	outfile, _ := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	h.l = log.New(outfile, "", 0)
}
