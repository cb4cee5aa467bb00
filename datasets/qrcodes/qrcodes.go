// Package qrcodes renders the synthetic QR detection corpus: rotated QR
// images on white canvases with YOLO-format bounding box labels, split
// into train and val sets.
package qrcodes

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"os"
	"path/filepath"
)

import (
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	qrcode "github.com/skip2/go-qrcode"
)

// Options configure one corpus generation run.
type Options struct {
	Samples    int
	TrainRatio float64
	Size       int     // rendered QR edge in pixels before rotation
	MaxRotate  float64 // degrees, applied in both directions
	Seed       int64
}

// DefaultOptions mirrors the corpus the bundled detector was tuned on.
func DefaultOptions() Options {
	return Options{Samples: 100, TrainRatio: 0.8, Size: 416, MaxRotate: 30, Seed: 1}
}

// Sample is one rendered corpus entry.
type Sample struct {
	Image string
	Label string
	Split string
}

// Generate renders the corpus under dir as images/{train,val} and
// labels/{train,val}, one label line per image.
func Generate(dir string, o Options) ([]Sample, error) {
	for _, sub := range []string{"images/train", "images/val", "labels/train", "labels/val"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0755); err != nil {
			return nil, errors.Wrap(err, "create dataset dirs")
		}
	}
	rng := rand.New(rand.NewSource(o.Seed))
	var out []Sample
	for i := 0; i < o.Samples; i++ {
		angle := (rng.Float64()*2 - 1) * o.MaxRotate
		img, err := Render(fmt.Sprintf("Sample QR Code %d", i), o.Size, angle)
		if err != nil {
			return nil, errors.Wrapf(err, "render sample %d", i)
		}
		xc, yc, w, h, ok := BoundingBox(img)
		if !ok {
			return nil, errors.Errorf("sample %d rendered no dark pixels", i)
		}
		split := "val"
		if float64(i) < float64(o.Samples)*o.TrainRatio {
			split = "train"
		}
		s := Sample{
			Image: filepath.Join(dir, "images", split, fmt.Sprintf("qr_%d.jpg", i)),
			Label: filepath.Join(dir, "labels", split, fmt.Sprintf("qr_%d.txt", i)),
			Split: split,
		}
		if err := imaging.Save(img, s.Image); err != nil {
			return nil, errors.Wrapf(err, "save sample %d image", i)
		}
		line := fmt.Sprintf("0 %.6f %.6f %.6f %.6f\n", xc, yc, w, h)
		if err := os.WriteFile(s.Label, []byte(line), 0644); err != nil {
			return nil, errors.Wrapf(err, "save sample %d label", i)
		}
		out = append(out, s)
	}
	return out, nil
}

// Render draws the payload as a QR code and rotates it on a white canvas.
// Rotation expands the canvas, so the output is larger than size for any
// angle that is not a multiple of 90 degrees.
func Render(payload string, size int, angle float64) (*image.NRGBA, error) {
	q, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, errors.Wrap(err, "encode qr payload")
	}
	return imaging.Rotate(q.Image(size), angle, color.White), nil
}

// BoundingBox returns the normalized YOLO center box around the pixels
// darker than mid-gray. ok is false for an all-white image.
func BoundingBox(img image.Image) (xc, yc, w, h float64, ok bool) {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			if g.Y < 128 {
				if x < minX {
					minX = x
				}
				if y < minY {
					minY = y
				}
				if x > maxX {
					maxX = x
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}
	if maxX < minX {
		return 0, 0, 0, 0, false
	}
	fw := float64(b.Dx())
	fh := float64(b.Dy())
	xc = float64(minX+maxX-2*b.Min.X) / (2 * fw)
	yc = float64(minY+maxY-2*b.Min.Y) / (2 * fh)
	w = float64(maxX-minX) / fw
	h = float64(maxY-minY) / fh
	return xc, yc, w, h, true
}
