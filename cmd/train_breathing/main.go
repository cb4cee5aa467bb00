package main

import "flag"
import "fmt"
import "log"

import "github.com/CDupuis7/tML-EC-QR/config"
import "github.com/CDupuis7/tML-EC-QR/datasets/bidmc"
import "github.com/CDupuis7/tML-EC-QR/learning"
import "github.com/CDupuis7/tML-EC-QR/trainer"

func main() {
	conf := flag.String("config", "", "toolkit config yaml")
	dir := flag.String("bidmc", "", "BIDMC csv directory (default from config)")
	out := flag.String("out", "", "model output directory (default from config)")
	retrain := flag.Bool("retrain", false, "refit even when model artifacts already exist")
	epochs := flag.Int("epochs", 0, "gradient descent epochs (0 keeps the default)")
	seed := flag.Int64("seed", 42, "split and shuffle seed")
	progress := flag.Int("progress", 0, "print the loss every N epochs")
	losslog := flag.String("losslog", "", "append the printed losses to this file")
	flag.Parse()

	cfg, err := config.FromFlag(*conf)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *dir == "" {
		*dir = cfg.BIDMCDir
	}
	if *out == "" {
		*out = cfg.ModelDir
	}

	if trainer.HaveArtifacts(*out) && !*retrain {
		m, err := trainer.LoadArtifacts(*out)
		if err != nil {
			log.Fatalf("load existing model: %v", err)
		}
		fmt.Println("Loading existing breathing pattern model...")
		fmt.Printf("Run %s trained %s on %d subjects. Pass -retrain to fit again.\n",
			m.RunID, m.TrainedAt.Format("2006-01-02"), m.Samples)
		return
	}

	fmt.Println("Training new breathing pattern model using BIDMC dataset...")
	subjects, err := bidmc.Load(*dir)
	if err != nil {
		log.Fatalf("load corpus: %v", err)
	}
	table := bidmc.Table(subjects)

	h := learning.Default()
	h.Seed = *seed
	h.Progress = *progress
	if *epochs > 0 {
		h.Epochs = *epochs
	}
	if *losslog != "" {
		h.SetLogger(*losslog)
	}

	res, err := trainer.Run(table, h, 0.3)
	if err != nil {
		log.Fatalf("train: %v", err)
	}

	fmt.Printf("\nTraining accuracy: %.4f\n", res.TrainAcc)
	fmt.Printf("Testing accuracy: %.4f\n\n", res.TestAcc)
	fmt.Println(res.Report)
	fmt.Println("Feature weights:")
	for i, name := range res.Model.Features {
		fmt.Printf("  %-22s %+.6f\n", name, res.Model.Weights[i])
	}
	fmt.Printf("  %-22s %+.6f\n", "bias", res.Model.Bias)

	if err := trainer.SaveArtifacts(res.Model, *out); err != nil {
		log.Fatalf("save artifacts: %v", err)
	}
	fmt.Printf("\nModel artifacts saved to %s\n", *out)
}
