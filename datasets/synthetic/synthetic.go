// Package synthetic generates the rule-labeled sample corpus used to smoke
// test the training and export pipeline without clinical data.
package synthetic

import "math/rand"

import "github.com/CDupuis7/tML-EC-QR/breath"
import "github.com/CDupuis7/tML-EC-QR/datasets"

// FeatureNames is the four-feature layout the app computes on device.
var FeatureNames = []string{
	"breathing_rate", "irregularity_index", "amplitude_variation", "avg_velocity",
}

// Generate draws n samples uniformly over the app's observed feature ranges
// and labels each one with the two-of-five voting rule.
func Generate(n int, seed int64) datasets.Table {
	rng := rand.New(rand.NewSource(seed))
	var t datasets.Table
	t.Init(FeatureNames)
	for i := 0; i < n; i++ {
		rate := rng.Float64()*30 + 5
		irregularity := rng.Float64() * 0.8
		amplitude := rng.Float64() * 80
		velocity := rng.Float64() * 15
		label := 0
		if breath.Abnormal(rate, irregularity, amplitude, velocity) {
			label = 1
		}
		t.Add([]float64{rate, irregularity, amplitude, velocity}, label)
	}
	return t
}
