// Package config loads the toolkit configuration: the asset, data and model
// paths plus the detector download list, from a YAML file with environment
// overrides.
package config

import "os"

import "github.com/pkg/errors"
import "gopkg.in/yaml.v3"

// DefaultFile is looked up in the working directory when no explicit
// config path is given.
const DefaultFile = "tmlec.yaml"

// ModelDownload is one fetchable detector model.
type ModelDownload struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Size        string `yaml:"size"`
	URL         string `yaml:"url"`
	Fallback    string `yaml:"fallback"`
	Filename    string `yaml:"filename"`
	SHA256      string `yaml:"sha256"`
}

// Config holds the paths and downloads every binary starts from.
type Config struct {
	AssetsDir   string          `yaml:"assets_dir"`
	ModelDir    string          `yaml:"model_dir"`
	DataDir     string          `yaml:"data_dir"`
	BIDMCDir    string          `yaml:"bidmc_dir"`
	ONNXRuntime string          `yaml:"onnxruntime_lib"`
	Downloads   []ModelDownload `yaml:"downloads"`
}

// Default returns the repository layout of the app project.
func Default() Config {
	return Config{
		AssetsDir:   "app/src/main/assets",
		ModelDir:    "model_output",
		DataDir:     "respiratory_data",
		BIDMCDir:    "bidmc-ppg-and-respiration-dataset-1.0.0/bidmc_csv",
		ONNXRuntime: "libonnxruntime.so",
		Downloads: []ModelDownload{
			{
				Name:        "YOLOv8s COCO",
				Description: "YOLOv8s COCO model - good balance of speed and accuracy",
				Size:        "45MB",
				URL:         "https://drive.google.com/uc?export=download&id=1htBxF8LlAiZEZgu3bwpn0hk--7TRaTld",
				Filename:    "yolov8s_coco.tflite",
			},
			{
				Name:        "YOLOv5s PyTorch",
				Description: "YOLOv5s checkpoint - convertible to TFLite with the ultralytics exporter",
				Size:        "14MB",
				URL:         "https://github.com/ultralytics/yolov5/releases/download/v7.0/yolov5s.pt",
				Fallback:    "https://github.com/ultralytics/yolov5/releases/download/v6.2/yolov5s.pt",
				Filename:    "yolov5s.pt",
			},
		},
	}
}

// Load reads the YAML file at path over the defaults and applies the
// environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrap(err, "read config")
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrap(err, "parse config")
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

// LoadDefault loads DefaultFile when it exists, plain defaults otherwise.
func LoadDefault() (Config, error) {
	if _, err := os.Stat(DefaultFile); err == nil {
		return Load(DefaultFile)
	}
	return Load("")
}

// FromFlag resolves a -config flag value: an explicit path must load, an
// empty one falls back to LoadDefault.
func FromFlag(path string) (Config, error) {
	if path == "" {
		return LoadDefault()
	}
	return Load(path)
}

func (c *Config) applyEnv() {
	c.AssetsDir = getEnv("TMLEC_ASSETS_DIR", c.AssetsDir)
	c.ModelDir = getEnv("TMLEC_MODEL_DIR", c.ModelDir)
	c.DataDir = getEnv("TMLEC_DATA_DIR", c.DataDir)
	c.BIDMCDir = getEnv("TMLEC_BIDMC_DIR", c.BIDMCDir)
	c.ONNXRuntime = getEnv("TMLEC_ONNXRUNTIME_LIB", c.ONNXRuntime)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
