package main

import "flag"
import "fmt"
import "log"
import "path/filepath"

import "github.com/CDupuis7/tML-EC-QR/config"
import "github.com/CDupuis7/tML-EC-QR/datasets/synthetic"
import "github.com/CDupuis7/tML-EC-QR/learning"
import "github.com/CDupuis7/tML-EC-QR/trainer"

func main() {
	conf := flag.String("config", "", "toolkit config yaml")
	out := flag.String("out", "", "model output directory (default from config)")
	samples := flag.Int("samples", 100, "synthetic samples to draw")
	seed := flag.Int64("seed", 42, "sample generator seed")
	flag.Parse()

	cfg, err := config.FromFlag(*conf)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *out == "" {
		*out = cfg.ModelDir
	}

	fmt.Printf("Creating sample breathing model from %d synthetic sessions...\n", *samples)
	table := synthetic.Generate(*samples, *seed)
	counts := table.Balance()
	fmt.Printf("Class distribution: %d normal, %d abnormal\n", counts[0], counts[1])

	h := learning.Default()
	h.Seed = *seed
	h.Scale = false

	res, err := trainer.Run(table, h, 0.3)
	if err != nil {
		log.Fatalf("train: %v", err)
	}
	fmt.Printf("Training accuracy: %.4f\n", res.TrainAcc)
	fmt.Printf("Testing accuracy: %.4f\n\n", res.TestAcc)
	fmt.Println(res.Report)

	if err := trainer.SaveArtifacts(res.Model, *out); err != nil {
		log.Fatalf("save artifacts: %v", err)
	}
	fmt.Printf("Sample model saved to %s\n", filepath.Join(*out, trainer.ModelFile))
}
