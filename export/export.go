// Package export assembles the JSON weight bundle the mobile app loads to
// score breathing sessions without an ML runtime.
package export

import "encoding/json"
import "io"
import "os"

import "github.com/CDupuis7/tML-EC-QR/breath"
import "github.com/CDupuis7/tML-EC-QR/logistic"
import "github.com/pkg/errors"

// DefaultFile is the bundle name the app build copies into its assets.
const DefaultFile = "respiratory_model_weights.json"

// Bundle is the app-facing weight export: folded linear terms keyed by
// feature name plus the named clinical thresholds.
type Bundle struct {
	ModelType    string             `json:"model_type"`
	Weights      map[string]float64 `json:"weights"`
	Thresholds   map[string]float64 `json:"thresholds"`
	FeatureNames []string           `json:"feature_names"`
}

// DefaultThresholds returns the five clinical cutoffs every bundle carries.
func DefaultThresholds() map[string]float64 {
	return map[string]float64{
		"BRADYPNEA_THRESHOLD":           breath.BradypneaRate,
		"TACHYPNEA_THRESHOLD":           breath.TachypneaRate,
		"IRREGULARITY_THRESHOLD":        breath.IrregularityLimit,
		"AMPLITUDE_VARIATION_THRESHOLD": breath.AmplitudeVariationLimit,
		"VELOCITY_THRESHOLD":            breath.VelocityLimit,
	}
}

// FromModel folds the model's scaler into its linear terms and packs the
// bundle. The app applies raw feature values, so the scaled weights must
// be rewritten before they leave the toolkit.
func FromModel(m *logistic.Model, thresholds map[string]float64) Bundle {
	if thresholds == nil {
		thresholds = DefaultThresholds()
	}
	weights, bias := m.Fold()
	wm := make(map[string]float64, len(weights)+1)
	for i, name := range m.Features {
		wm[name] = weights[i]
	}
	wm["bias"] = bias
	return Bundle{
		ModelType:    m.ModelType,
		Weights:      wm,
		Thresholds:   thresholds,
		FeatureNames: append([]string(nil), m.Features...),
	}
}

// WriteFile stores the bundle as indented JSON.
func (b Bundle) WriteFile(name string) error {
	file, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "create bundle file")
	}
	err = b.Write(file)
	file.Close()
	return err
}

// Write writes the bundle to w.
func (b Bundle) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(b), "encode bundle")
}

// ReadFile loads and validates a bundle from a JSON file.
func ReadFile(name string) (Bundle, error) {
	file, err := os.Open(name)
	if err != nil {
		return Bundle{}, errors.Wrap(err, "open bundle file")
	}
	defer file.Close()
	b, err := Read(file)
	if err != nil {
		return Bundle{}, errors.Wrapf(err, "read %s", name)
	}
	return b, nil
}

// Read loads a bundle from r and checks the fields the app depends on.
func Read(r io.Reader) (Bundle, error) {
	var b Bundle
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return Bundle{}, errors.Wrap(err, "decode bundle")
	}
	if b.ModelType != logistic.Type {
		return Bundle{}, errors.Errorf("expected a %s bundle, got %q", logistic.Type, b.ModelType)
	}
	if _, ok := b.Weights["bias"]; !ok {
		return Bundle{}, errors.New("bundle lacks a bias weight")
	}
	for _, name := range b.FeatureNames {
		if _, ok := b.Weights[name]; !ok {
			return Bundle{}, errors.Errorf("bundle lacks a weight for %q", name)
		}
	}
	for name := range DefaultThresholds() {
		if _, ok := b.Thresholds[name]; !ok {
			return Bundle{}, errors.Errorf("bundle lacks the %s threshold", name)
		}
	}
	return b, nil
}

// Score applies the folded linear terms to a raw feature row given in
// FeatureNames order. It mirrors what the app computes on device.
func (b Bundle) Score(row []float64) (float64, error) {
	if len(row) != len(b.FeatureNames) {
		return 0, errors.Errorf("row carries %d features, bundle names %d", len(row), len(b.FeatureNames))
	}
	s := b.Weights["bias"]
	for i, name := range b.FeatureNames {
		s += b.Weights[name] * row[i]
	}
	return s, nil
}
