package main

import "flag"
import "fmt"
import "log"
import "os"

import "github.com/CDupuis7/tML-EC-QR/config"
import "github.com/CDupuis7/tML-EC-QR/verify"

func main() {
	conf := flag.String("config", "", "toolkit config yaml")
	onnxPath := flag.String("onnx", "qr_yolov5_tiny.onnx", "source onnx model")
	tflitePath := flag.String("tflite", "qr_yolov5_tiny.tflite", "converted tflite model")
	imgPath := flag.String("image", "", "optional input photo (default synthetic QR frame)")
	size := flag.Int("size", verify.InputSize, "model input edge length")
	tol := flag.Float64("tol", verify.Tolerance, "largest accepted output difference")
	lib := flag.String("lib", "", "onnxruntime shared library (default from config)")
	flag.Parse()

	cfg, err := config.FromFlag(*conf)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *lib == "" {
		*lib = cfg.ONNXRuntime
	}

	if err := verify.InitONNX(*lib); err != nil {
		log.Fatalf("init onnxruntime: %v", err)
	}
	defer verify.ShutdownONNX()

	oin, oout, err := verify.ONNXInfo(*onnxPath)
	if err != nil {
		log.Fatalf("inspect onnx model: %v", err)
	}
	printIO("ONNX model "+*onnxPath, oin, oout)

	tin, tout, err := verify.TFLiteInfo(*tflitePath)
	if err != nil {
		log.Fatalf("inspect tflite model: %v", err)
	}
	printIO("TFLite model "+*tflitePath, tin, tout)

	var input []float32
	if *imgPath != "" {
		input, err = verify.ImageInput(*imgPath, *size)
		if err != nil {
			log.Fatalf("load input image: %v", err)
		}
		fmt.Printf("\nInput: %s resized to %dx%d\n", *imgPath, *size, *size)
	} else {
		input = verify.SyntheticQRInput(*size)
		fmt.Printf("\nInput: synthetic %dx%d QR frame\n", *size, *size)
	}

	onnxOuts, onnxShapes, err := verify.ONNXRun(*onnxPath, input, []int64{1, 3, int64(*size), int64(*size)})
	if err != nil {
		log.Fatalf("run onnx model: %v", err)
	}
	tfOuts, tfShapes, err := verify.TFLiteRun(*tflitePath, input)
	if err != nil {
		log.Fatalf("run tflite model: %v", err)
	}

	cmp := verify.Compare(onnxOuts, tfOuts, onnxShapes, tfShapes, *tol)
	fmt.Printf("\nCompared %d outputs: max diff %.6g, mean diff %.6g\n", cmp.Outputs, cmp.MaxDiff, cmp.MeanDiff)
	if !cmp.Match {
		fmt.Println("Conversion check FAILED:")
		for _, p := range cmp.Problems {
			fmt.Printf("  %s\n", p)
		}
		verify.ShutdownONNX()
		os.Exit(1)
	}
	fmt.Println("Conversion verified: outputs match within tolerance")
}

func printIO(title string, in, out []verify.TensorInfo) {
	fmt.Printf("\n%s\n", title)
	fmt.Println("Inputs:")
	for _, t := range in {
		fmt.Printf("  %s\n", t)
	}
	fmt.Println("Outputs:")
	for _, t := range out {
		fmt.Printf("  %s\n", t)
	}
}
