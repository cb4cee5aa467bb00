package verify

import "github.com/CDupuis7/tML-EC-QR/parallel"
import "github.com/pkg/errors"
import ort "github.com/yalue/onnxruntime_go"

// InitONNX points the runtime at its shared library and initializes it.
// An empty libPath keeps the library loader's default lookup.
func InitONNX(libPath string) error {
	if libPath != "" {
		ort.SetSharedLibraryPath(libPath)
	}
	return errors.Wrap(ort.InitializeEnvironment(), "initialize onnxruntime")
}

// ShutdownONNX tears the runtime environment down again.
func ShutdownONNX() {
	if ort.IsInitialized() {
		ort.DestroyEnvironment()
	}
}

// ONNXInfo reports the model's declared inputs and outputs.
func ONNXInfo(path string) (in, out []TensorInfo, err error) {
	inputs, outputs, err := ort.GetInputOutputInfo(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "read onnx model info %s", path)
	}
	for _, i := range inputs {
		in = append(in, onnxTensorInfo(i))
	}
	for _, o := range outputs {
		out = append(out, onnxTensorInfo(o))
	}
	return in, out, nil
}

// ONNXRun feeds one float32 tensor of the given dims through the model and
// returns every output with its shape. The runtime allocates the outputs,
// so dynamic output shapes need no declaration.
func ONNXRun(path string, input []float32, dims []int64) (outs [][]float32, shapes [][]int, err error) {
	inputs, outputs, err := ort.GetInputOutputInfo(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "read onnx model info %s", path)
	}
	if len(inputs) != 1 {
		return nil, nil, errors.Errorf("expected a single-input model, %s has %d inputs", path, len(inputs))
	}
	outNames := make([]string, len(outputs))
	for i, o := range outputs {
		outNames[i] = o.Name
	}

	tensor, err := ort.NewTensor(ort.NewShape(dims...), input)
	if err != nil {
		return nil, nil, errors.Wrap(err, "create input tensor")
	}
	defer tensor.Destroy()

	options, err := ort.NewSessionOptions()
	if err != nil {
		return nil, nil, errors.Wrap(err, "create session options")
	}
	defer options.Destroy()
	if err := options.SetIntraOpNumThreads(parallel.Workers()); err != nil {
		return nil, nil, errors.Wrap(err, "set session threads")
	}

	session, err := ort.NewDynamicAdvancedSession(path, []string{inputs[0].Name}, outNames, options)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "create onnx session %s", path)
	}
	defer session.Destroy()

	vals := make([]ort.Value, len(outNames))
	if err := session.Run([]ort.Value{tensor}, vals); err != nil {
		return nil, nil, errors.Wrap(err, "run onnx session")
	}
	defer func() {
		for _, v := range vals {
			if v != nil {
				v.Destroy()
			}
		}
	}()
	for i, v := range vals {
		t, ok := v.(*ort.Tensor[float32])
		if !ok {
			return nil, nil, errors.Errorf("output %s is not a float32 tensor", outNames[i])
		}
		data := make([]float32, len(t.GetData()))
		copy(data, t.GetData())
		outs = append(outs, data)
		shapes = append(shapes, intShape(t.GetShape()))
	}
	return outs, shapes, nil
}

func onnxTensorInfo(i ort.InputOutputInfo) TensorInfo {
	return TensorInfo{Name: i.Name, Shape: intShape(i.Dimensions), Type: i.DataType.String()}
}

func intShape(s ort.Shape) []int {
	out := make([]int, len(s))
	for i, d := range s {
		out[i] = int(d)
	}
	return out
}
