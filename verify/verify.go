// Package verify inspects converted QR detector models and cross-checks
// the ONNX and TFLite runtimes on the same input tensor.
package verify

import "image"

import "github.com/disintegration/imaging"
import "github.com/pkg/errors"

// InputSize is the QR detector's input edge length in pixels.
const InputSize = 416

// Tolerance is the largest absolute output difference the conversion
// check accepts before flagging the converted model.
const Tolerance = 1e-3

// SyntheticQRInput builds the batch-1 CHW float tensor of a black frame
// with a centered white square, the standing smoke-test pattern for QR
// detectors.
func SyntheticQRInput(size int) []float32 {
	data := make([]float32, 3*size*size)
	lo := size * 3 / 8
	hi := size * 5 / 8
	for c := 0; c < 3; c++ {
		plane := c * size * size
		for y := lo; y < hi; y++ {
			for x := lo; x < hi; x++ {
				data[plane+y*size+x] = 1
			}
		}
	}
	return data
}

// ImageInput loads an image file, resizes it to size by size and packs it
// as a normalized batch-1 CHW float tensor.
func ImageInput(path string, size int) ([]float32, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input image")
	}
	return packCHW(imaging.Resize(img, size, size, imaging.Linear), size), nil
}

func packCHW(img image.Image, size int) []float32 {
	data := make([]float32, 3*size*size)
	plane := size * size
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			i := y*size + x
			data[i] = float32(r>>8) / 255.0
			data[plane+i] = float32(g>>8) / 255.0
			data[2*plane+i] = float32(b>>8) / 255.0
		}
	}
	return data
}
