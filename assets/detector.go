package assets

import (
	"encoding/json"
	"os"
)

import "github.com/pkg/errors"

// DetectorConfigFile is the asset name the app loads detection settings from.
const DetectorConfigFile = "person_detection_config.json"

// ChestRegion positions the breathing analysis crop inside a person box.
type ChestRegion struct {
	TopOffset   float64 `json:"top_offset"`
	HeightRatio float64 `json:"height_ratio"`
}

// DetectorConfig is the person detection configuration the app reads.
type DetectorConfig struct {
	ModelName           string      `json:"model_name"`
	InputSize           int         `json:"input_size"`
	Classes             []string    `json:"classes"`
	ClassID             int         `json:"class_id"`
	ConfidenceThreshold float64     `json:"confidence_threshold"`
	IOUThreshold        float64     `json:"iou_threshold"`
	ChestRegion         ChestRegion `json:"chest_region_ratio"`
}

// DefaultDetectorConfig targets COCO person detections and crops the upper
// chest out of each box.
func DefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		ModelName:           "yolo_person_detector",
		InputSize:           640,
		Classes:             []string{"person"},
		ClassID:             0,
		ConfidenceThreshold: 0.5,
		IOUThreshold:        0.4,
		ChestRegion:         ChestRegion{TopOffset: 0.15, HeightRatio: 0.4},
	}
}

// WriteDetectorConfig stores cfg in the assets directory and returns the
// written path.
func (d Dir) WriteDetectorConfig(cfg DetectorConfig) (string, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encode detector config")
	}
	path := d.Join(DetectorConfigFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrap(err, "write detector config")
	}
	return path, nil
}

// ReadDetectorConfig loads the detection settings back from the directory.
func (d Dir) ReadDetectorConfig() (DetectorConfig, error) {
	data, err := os.ReadFile(d.Join(DetectorConfigFile))
	if err != nil {
		return DetectorConfig{}, errors.Wrap(err, "read detector config")
	}
	var cfg DetectorConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DetectorConfig{}, errors.Wrap(err, "decode detector config")
	}
	return cfg, nil
}
