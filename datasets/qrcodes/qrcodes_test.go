package qrcodes

import (
	"bufio"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBoundingBox(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			img.Set(x, y, color.White)
		}
	}
	for y := 20; y < 60; y++ {
		for x := 10; x < 30; x++ {
			img.Set(x, y, color.Black)
		}
	}
	xc, yc, w, h, ok := BoundingBox(img)
	if !ok {
		t.Fatal("dark block not found")
	}
	// dark pixels span x 10..29 and y 20..59
	if xc != (10.0+29)/200 || yc != (20.0+59)/200 {
		t.Errorf("center = %v,%v", xc, yc)
	}
	if w != 19.0/100 || h != 39.0/100 {
		t.Errorf("size = %v,%v", w, h)
	}

	blank := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			blank.Set(x, y, color.White)
		}
	}
	if _, _, _, _, ok := BoundingBox(blank); ok {
		t.Error("all-white image reported a box")
	}
}

func TestRenderContainsCode(t *testing.T) {
	img, err := Render("Sample QR Code 0", 128, 15)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() <= 128 || img.Bounds().Dy() <= 128 {
		t.Errorf("rotation did not expand the canvas: %v", img.Bounds())
	}
	if _, _, w, h, ok := BoundingBox(img); !ok || w <= 0 || h <= 0 {
		t.Error("rendered code has no dark bounding box")
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	o := Options{Samples: 10, TrainRatio: 0.8, Size: 64, MaxRotate: 30, Seed: 42}
	samples, err := Generate(dir, o)
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 10 {
		t.Fatalf("generated %d samples", len(samples))
	}
	var train, val int
	for _, s := range samples {
		if s.Split == "train" {
			train++
		} else {
			val++
		}
		if _, err := os.Stat(s.Image); err != nil {
			t.Fatalf("image missing: %v", err)
		}
		checkLabel(t, s.Label)
	}
	if train != 8 || val != 2 {
		t.Errorf("split = %d/%d, want 8/2", train, val)
	}
	for _, sub := range []string{"images/train", "images/val", "labels/train", "labels/val"} {
		if _, err := os.Stat(filepath.Join(dir, sub)); err != nil {
			t.Errorf("missing %s: %v", sub, err)
		}
	}
}

func checkLabel(t *testing.T, path string) {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("label missing: %v", err)
	}
	defer file.Close()
	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		t.Fatalf("label %s is empty", path)
	}
	fields := strings.Fields(scanner.Text())
	if len(fields) != 5 {
		t.Fatalf("label %s has %d fields", path, len(fields))
	}
	if fields[0] != "0" {
		t.Errorf("label class = %s, want 0", fields[0])
	}
}
