package verify

import "github.com/CDupuis7/tML-EC-QR/parallel"
import "github.com/mattn/go-tflite"
import "github.com/pkg/errors"

// TFLiteInfo loads a .tflite model and reports its input and output tensors.
func TFLiteInfo(path string) (in, out []TensorInfo, err error) {
	interp, cleanup, err := tfliteInterpreter(path)
	if err != nil {
		return nil, nil, err
	}
	defer cleanup()
	for i := 0; i < interp.GetInputTensorCount(); i++ {
		in = append(in, tfliteTensorInfo(interp.GetInputTensor(i)))
	}
	for i := 0; i < interp.GetOutputTensorCount(); i++ {
		out = append(out, tfliteTensorInfo(interp.GetOutputTensor(i)))
	}
	return in, out, nil
}

// TFLiteRun feeds one float32 tensor through the model and returns every
// output with its shape.
func TFLiteRun(path string, input []float32) (outs [][]float32, shapes [][]int, err error) {
	interp, cleanup, err := tfliteInterpreter(path)
	if err != nil {
		return nil, nil, err
	}
	defer cleanup()
	if interp.GetInputTensorCount() < 1 {
		return nil, nil, errors.Errorf("model %s has no inputs", path)
	}
	buf := interp.GetInputTensor(0).Float32s()
	if len(buf) != len(input) {
		return nil, nil, errors.Errorf("input carries %d floats, model tensor wants %d", len(input), len(buf))
	}
	copy(buf, input)
	if status := interp.Invoke(); status != tflite.OK {
		return nil, nil, errors.Errorf("tflite invoke failed for %s", path)
	}
	for i := 0; i < interp.GetOutputTensorCount(); i++ {
		t := interp.GetOutputTensor(i)
		data := make([]float32, len(t.Float32s()))
		copy(data, t.Float32s())
		outs = append(outs, data)
		shapes = append(shapes, t.Shape())
	}
	return outs, shapes, nil
}

func tfliteInterpreter(path string) (*tflite.Interpreter, func(), error) {
	model := tflite.NewModelFromFile(path)
	if model == nil {
		return nil, nil, errors.Errorf("cannot load tflite model %s", path)
	}
	options := tflite.NewInterpreterOptions()
	options.SetNumThread(parallel.Workers())
	interp := tflite.NewInterpreter(model, options)
	if interp == nil {
		options.Delete()
		model.Delete()
		return nil, nil, errors.Errorf("cannot create tflite interpreter for %s", path)
	}
	if status := interp.AllocateTensors(); status != tflite.OK {
		interp.Delete()
		options.Delete()
		model.Delete()
		return nil, nil, errors.Errorf("tflite tensor allocation failed for %s", path)
	}
	cleanup := func() {
		interp.Delete()
		options.Delete()
		model.Delete()
	}
	return interp, cleanup, nil
}

func tfliteTensorInfo(t *tflite.Tensor) TensorInfo {
	return TensorInfo{Name: t.Name(), Shape: t.Shape(), Type: tfliteTypeName(t.Type())}
}

func tfliteTypeName(t tflite.TensorType) string {
	switch t {
	case tflite.Float32:
		return "float32"
	case tflite.Int32:
		return "int32"
	case tflite.UInt8:
		return "uint8"
	case tflite.Int64:
		return "int64"
	case tflite.String:
		return "string"
	case tflite.Bool:
		return "bool"
	case tflite.Int16:
		return "int16"
	case tflite.Complex64:
		return "complex64"
	case tflite.Int8:
		return "int8"
	}
	return "unknown"
}
