// Package trainer provides high-level training orchestration for breathing
// classifiers. It splits a feature table, fits a model, scores both halves
// and persists the resulting artifacts for the mobile app pipeline.
package trainer
