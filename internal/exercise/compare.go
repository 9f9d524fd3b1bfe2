package exercise

import (
	"fmt"
	"io"

	"github.com/born-ml/classwork/internal/nn"
	"github.com/born-ml/classwork/internal/tensor"
)

// modelParams holds the literal parameters of one two-layer model.
type modelParams struct {
	W1 [][]int64
	B1 []int64
	W2 []int64
	B2 []int64
}

// ModelResult is one model's prediction and loss against the targets.
type ModelResult[B tensor.Backend] struct {
	Name   string
	Model  *nn.Sequential[int64, B]
	Output *tensor.Tensor[int64, B]
	Loss   float32
}

// CompareResult holds the shared data and every model's result.
type CompareResult[B tensor.Backend] struct {
	Inputs  *tensor.Tensor[int64, B]
	Targets *tensor.Tensor[int64, B]
	Models  []ModelResult[B]
}

var (
	compareInputs  = [][]int64{{1, 2}, {4, 5}, {2, 1}}
	compareTargets = []int64{3, 9, 3}

	compareModels = []struct {
		name   string
		params modelParams
	}{
		{
			name: "Model 1",
			params: modelParams{
				W1: [][]int64{{1, -1, 0}, {1, -1, 0}},
				B1: []int64{0, 0, 0},
				W2: []int64{1, -1, 0},
				B2: []int64{0},
			},
		},
		{
			name: "Model 2",
			params: modelParams{
				W1: [][]int64{{-4, 6, 5}, {2, -4, 7}},
				B1: []int64{4, -6, -29},
				W2: []int64{5, 10, 1},
				B2: []int64{-17},
			},
		},
	}
)

// Compare runs two hand-parameterized integer models over the same three
// inputs and scores each against the targets with mean-squared-error.
// Outputs and targets are converted to float32 before the loss.
func Compare[B tensor.Backend](backend B) (*CompareResult[B], error) {
	x, err := tensor.Matrix(compareInputs, backend)
	if err != nil {
		return nil, fmt.Errorf("inputs: %w", err)
	}
	y, err := tensor.Vector(compareTargets, backend)
	if err != nil {
		return nil, fmt.Errorf("targets: %w", err)
	}

	mse := nn.NewMSELoss[float32](backend)
	res := &CompareResult[B]{Inputs: x, Targets: y}

	for _, m := range compareModels {
		model, err := buildModel(m.params, backend)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", m.name, err)
		}

		out := model.Forward(x)
		loss := mse.Forward(out.Float32(), y.Float32())
		res.Models = append(res.Models, ModelResult[B]{
			Name:   m.name,
			Model:  model,
			Output: out,
			Loss:   loss.Item(),
		})
	}
	return res, nil
}

func buildModel[B tensor.Backend](p modelParams, backend B) (*nn.Sequential[int64, B], error) {
	w1, err := tensor.Matrix(p.W1, backend)
	if err != nil {
		return nil, fmt.Errorf("W1: %w", err)
	}
	b1, err := tensor.Vector(p.B1, backend)
	if err != nil {
		return nil, fmt.Errorf("b1: %w", err)
	}
	w2, err := tensor.Vector(p.W2, backend)
	if err != nil {
		return nil, fmt.Errorf("W2: %w", err)
	}
	b2, err := tensor.Vector(p.B2, backend)
	if err != nil {
		return nil, fmt.Errorf("b2: %w", err)
	}
	return nn.NewPerceptron(w1, b1, w2.T(), b2)
}

func runCompare[B tensor.Backend](w io.Writer, backend B) error {
	res, err := Compare(backend)
	if err != nil {
		return err
	}

	// Only the first model's parameters are dumped, and only its loss gets
	// a heading.
	p := &printer{w: w}
	p.println(res.Inputs, res.Targets)
	params := res.Models[0].Model.Parameters()
	p.println(params[0].Tensor(), params[1].Tensor())
	p.println(params[2].Tensor(), params[3].Tensor())
	for i, m := range res.Models {
		p.println(m.Name)
		p.println(m.Output)
		if i == 0 {
			p.println("Mean squared error")
		}
		p.println(tensor.Scalar(m.Loss, backend))
	}
	return p.err
}

// printer remembers the first write error so a transcript can be emitted
// without checking every line.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) println(args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, args...)
}
