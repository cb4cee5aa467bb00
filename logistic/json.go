package logistic

import "encoding/json"
import "io"
import "os"

import "github.com/pkg/errors"

// WriteFile stores the model artifact as indented JSON.
func (m Model) WriteFile(name string) error {
	file, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "create model file")
	}
	err = m.Write(file)
	file.Close()
	return err
}

// Write writes the model artifact to w.
func (m Model) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(m), "encode model")
}

// ReadFile loads a model artifact from a JSON file.
func ReadFile(name string) (*Model, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open model file")
	}
	defer file.Close()
	m, err := Read(file)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	return m, nil
}

// Read loads and validates a model artifact from r.
func Read(r io.Reader) (*Model, error) {
	var m Model
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, errors.Wrap(err, "decode model")
	}
	if m.ModelType != Type {
		return nil, errors.Errorf("expected a %s model, got %q", Type, m.ModelType)
	}
	if len(m.Weights) != len(m.Features) {
		return nil, errors.Errorf("model carries %d weights for %d features", len(m.Weights), len(m.Features))
	}
	return &m, nil
}
