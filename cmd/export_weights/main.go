package main

import "flag"
import "fmt"
import "log"
import "os"
import "path/filepath"

import "github.com/CDupuis7/tML-EC-QR/config"
import "github.com/CDupuis7/tML-EC-QR/datasets/synthetic"
import "github.com/CDupuis7/tML-EC-QR/export"
import "github.com/CDupuis7/tML-EC-QR/learning"
import "github.com/CDupuis7/tML-EC-QR/logistic"
import "github.com/CDupuis7/tML-EC-QR/trainer"

func main() {
	conf := flag.String("config", "", "toolkit config yaml")
	modelDir := flag.String("model", "", "model artifact directory (default from config)")
	out := flag.String("out", "", "bundle destination (default <assets>/"+export.DefaultFile+")")
	sample := flag.Bool("sample", false, "fit a synthetic sample model when no artifacts exist")
	flag.Parse()

	cfg, err := config.FromFlag(*conf)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *modelDir == "" {
		*modelDir = cfg.ModelDir
	}
	if *out == "" {
		*out = filepath.Join(cfg.AssetsDir, export.DefaultFile)
	}

	var m *logistic.Model
	switch {
	case trainer.HaveArtifacts(*modelDir):
		m, err = trainer.LoadArtifacts(*modelDir)
		if err != nil {
			log.Fatalf("load model: %v", err)
		}
		fmt.Printf("Loaded model %s trained on %d samples\n", m.RunID, m.Samples)
	case *sample:
		fmt.Println("No trained model found, fitting a sample model on synthetic sessions...")
		h := learning.Default()
		h.Scale = false
		m, err = h.Training(synthetic.Generate(100, h.Seed))
		if err != nil {
			log.Fatalf("train sample model: %v", err)
		}
	default:
		log.Fatalf("no model artifacts in %s (run train_breathing first or pass -sample)", *modelDir)
	}

	if len(m.Features) != len(synthetic.FeatureNames) {
		fmt.Printf("Note: the model carries %d features, the app computes %d per session\n",
			len(m.Features), len(synthetic.FeatureNames))
	}

	b := export.FromModel(m, nil)
	if dir := filepath.Dir(*out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("create bundle dir: %v", err)
		}
	}
	if err := b.WriteFile(*out); err != nil {
		log.Fatalf("write bundle: %v", err)
	}

	fmt.Printf("Exported weights to %s\n\n", *out)
	for _, name := range b.FeatureNames {
		fmt.Printf("  %-22s %+.6f\n", name, b.Weights[name])
	}
	fmt.Printf("  %-22s %+.6f\n\n", "bias", b.Weights["bias"])
	fmt.Println("Thresholds:")
	for _, name := range []string{
		"BRADYPNEA_THRESHOLD",
		"TACHYPNEA_THRESHOLD",
		"IRREGULARITY_THRESHOLD",
		"AMPLITUDE_VARIATION_THRESHOLD",
		"VELOCITY_THRESHOLD",
	} {
		fmt.Printf("  %-32s %g\n", name, b.Thresholds[name])
	}
}
