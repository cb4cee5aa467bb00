package main

import "flag"
import "fmt"
import "log"

import "github.com/CDupuis7/tML-EC-QR/datasets/qrcodes"

func main() {
	o := qrcodes.DefaultOptions()
	dir := flag.String("dir", "model_setup/datasets/qr_codes", "corpus output directory")
	flag.IntVar(&o.Samples, "samples", o.Samples, "QR samples to render")
	flag.Float64Var(&o.TrainRatio, "train-ratio", o.TrainRatio, "share of samples in the train split")
	flag.IntVar(&o.Size, "size", o.Size, "QR edge length in pixels before rotation")
	flag.Float64Var(&o.MaxRotate, "max-rotate", o.MaxRotate, "largest rotation in degrees")
	flag.Int64Var(&o.Seed, "seed", o.Seed, "rotation generator seed")
	flag.Parse()

	fmt.Printf("Rendering %d QR samples into %s...\n", o.Samples, *dir)
	samples, err := qrcodes.Generate(*dir, o)
	if err != nil {
		log.Fatalf("generate corpus: %v", err)
	}

	train := 0
	for _, s := range samples {
		if s.Split == "train" {
			train++
		}
	}
	fmt.Printf("Dataset ready: %d train, %d val\n", train, len(samples)-train)
	fmt.Printf("Images and labels under %s\n", *dir)
}
