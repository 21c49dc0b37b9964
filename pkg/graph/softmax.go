package graph

import (
	"fmt"

	"github.com/grexie/entropy/pkg/prob"
	"gonum.org/v1/gonum/floats"
	"gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// Softmax evaluates softmax of l on a tape machine. The input is shifted
// by its maximum before it enters the graph.
func Softmax(l []float64) ([]float64, error) {
	if err := prob.CheckLogits(l); err != nil {
		return nil, err
	}

	shifted := make([]float64, len(l))
	copy(shifted, l)
	floats.AddConst(-floats.Max(l), shifted)

	g := gorgonia.NewGraph()

	xVal := tensor.New(
		tensor.WithShape(1, len(shifted)),
		tensor.Of(tensor.Float64),
		tensor.WithBacking(shifted),
	)
	x := gorgonia.NewMatrix(g, tensor.Float64,
		gorgonia.WithShape(1, len(shifted)),
		gorgonia.WithName("l"),
		gorgonia.WithValue(xVal))

	sm, err := gorgonia.SoftMax(x)
	if err != nil {
		return nil, fmt.Errorf("failed to compute softmax: %v", err)
	}

	out := make([]float64, len(l))
	err = run(g, func() error {
		data, ok := sm.Value().Data().([]float64)
		if !ok || len(data) != len(out) {
			return fmt.Errorf("unexpected softmax value %v", sm.Value())
		}
		copy(out, data)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
