package trainer

import "encoding/json"
import "os"
import "path/filepath"

import "github.com/CDupuis7/tML-EC-QR/datasets"
import "github.com/CDupuis7/tML-EC-QR/learning"
import "github.com/CDupuis7/tML-EC-QR/logistic"
import "github.com/pkg/errors"

// Artifact names inside the model output directory.
const (
	ModelFile    = "breathing_pattern_model.json"
	FeaturesFile = "pattern_features.json"
)

// Result bundles a fitted model with its train and test scores.
type Result struct {
	Model    *logistic.Model
	TrainAcc float64
	TestAcc  float64
	Report   string
}

// Run splits the table, fits a model on the train rows and scores both
// halves. The report covers the held-out rows.
func Run(t datasets.Table, h learning.HyperParameters, testShare float64) (Result, error) {
	train, test := t.Split(testShare, h.Seed)
	m, err := h.Training(train)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Model:    m,
		TrainAcc: learning.Accuracy(m, train),
		TestAcc:  learning.Accuracy(m, test),
		Report:   learning.Report(m, test),
	}, nil
}

// SaveArtifacts writes the model and the bare feature-name list into dir.
func SaveArtifacts(m *logistic.Model, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "create model output dir")
	}
	if err := m.WriteFile(filepath.Join(dir, ModelFile)); err != nil {
		return err
	}
	names, err := json.MarshalIndent(m.Features, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode feature names")
	}
	if err := os.WriteFile(filepath.Join(dir, FeaturesFile), names, 0644); err != nil {
		return errors.Wrap(err, "write feature names")
	}
	return nil
}

// LoadArtifacts reads the model back from dir.
func LoadArtifacts(dir string) (*logistic.Model, error) {
	return logistic.ReadFile(filepath.Join(dir, ModelFile))
}

// HaveArtifacts reports whether a trained model already sits in dir.
func HaveArtifacts(dir string) bool {
	for _, name := range []string{ModelFile, FeaturesFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			return false
		}
	}
	return true
}
