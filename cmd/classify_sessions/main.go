package main

import "flag"
import "fmt"
import "log"
import "os"
import "path/filepath"

import "github.com/CDupuis7/tML-EC-QR/breath"
import "github.com/CDupuis7/tML-EC-QR/config"
import "github.com/CDupuis7/tML-EC-QR/datasets/sessions"
import "github.com/CDupuis7/tML-EC-QR/report"
import "github.com/CDupuis7/tML-EC-QR/stats"
import "github.com/CDupuis7/tML-EC-QR/trainer"

func main() {
	conf := flag.String("config", "", "toolkit config yaml")
	data := flag.String("data", "", "session log directory (default from config)")
	modelDir := flag.String("model", "", "model artifact directory (default from config)")
	out := flag.String("out", "", "results directory (default model directory)")
	flag.Parse()

	cfg, err := config.FromFlag(*conf)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *data == "" {
		*data = cfg.DataDir
	}
	if *modelDir == "" {
		*modelDir = cfg.ModelDir
	}
	if *out == "" {
		*out = *modelDir
	}

	m, err := trainer.LoadArtifacts(*modelDir)
	if err != nil {
		log.Fatalf("load model (run train_breathing first): %v", err)
	}
	fmt.Printf("Loaded model %s trained on %d samples\n\n", m.RunID, m.Samples)

	list, err := sessions.Load(*data)
	if err != nil {
		log.Fatalf("load sessions: %v", err)
	}

	var rows []report.Row
	var rates []float64
	abnormal := 0
	for _, s := range list {
		row, err := s.Row(m.Features)
		if err != nil {
			log.Printf("%s skipped: %v", s.File, err)
			continue
		}
		pred := m.Predict(row)
		prob := m.Probability(row)
		label := "NORMAL"
		if pred == 1 {
			label = "ABNORMAL"
			abnormal++
		}

		fmt.Printf("\n=== %s ===\n", s.File)
		fmt.Printf("Patient %s, age %d, %s\n", s.PatientID, s.Age, s.HealthStatus)
		fmt.Printf("Breathing rate: %.2f breaths/min [%s]\n", s.Metrics.Rate, breath.RateStatus(s.Metrics.Rate))
		fmt.Printf("Prediction: %s (abnormal probability %.3f)\n", label, prob)
		for _, note := range s.Metrics.Notes() {
			fmt.Printf("  %s\n", note)
		}

		rates = append(rates, s.Metrics.Rate)
		rows = append(rows, report.Row{
			PatientID:    s.PatientID,
			File:         s.File,
			Age:          s.Age,
			Gender:       s.Gender,
			HealthStatus: s.HealthStatus,
			Metrics:      s.Metrics,
			Predicted:    pred,
			Probability:  prob,
		})
	}
	if len(rows) == 0 {
		log.Fatalf("no classifiable sessions under %s", *data)
	}

	fmt.Printf("\nClassified %d sessions, %d flagged abnormal\n", len(rows), abnormal)
	fmt.Printf("Breathing rate: mean %.2f, median %.2f breaths/min\n",
		stats.Mean(rates), stats.Percentile(rates, 50))

	if err := os.MkdirAll(*out, 0755); err != nil {
		log.Fatalf("create results dir: %v", err)
	}
	csvPath := filepath.Join(*out, report.ResultsFile)
	if err := report.WriteCSV(csvPath, rows); err != nil {
		log.Fatalf("write results: %v", err)
	}
	if err := report.SavePlots(*out, rows); err != nil {
		log.Fatalf("save plots: %v", err)
	}
	fmt.Printf("Results written to %s\n", csvPath)
	fmt.Printf("Plots written to %s and %s\n",
		filepath.Join(*out, report.PatternPlotFile),
		filepath.Join(*out, report.VariabilityPlotFile))
}
