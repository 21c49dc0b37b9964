// Package graph evaluates cross-entropy and softmax as gorgonia
// expression graphs. Each call builds its own graph and tape machine.
package graph

import (
	"fmt"

	"github.com/grexie/entropy/pkg/prob"
	"gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// Evaluator implements prob.Evaluator on gorgonia.
//
// Epsilon follows prob.Native: zero means prob.Epsilon, anything else
// outside (0, 0.5) is rejected with prob.ErrInvalidArgument.
type Evaluator struct {
	Epsilon float64
}

var _ prob.Evaluator = Evaluator{}

// CrossEntropy evaluates the binary cross-entropy with e's clamp.
func (e Evaluator) CrossEntropy(y, p []float64) (float64, error) {
	eps := e.Epsilon
	if eps == 0 {
		eps = prob.Epsilon
	}
	return CrossEntropy(y, p, eps)
}

// Softmax is the package level Softmax.
func (e Evaluator) Softmax(l []float64) ([]float64, error) {
	return Softmax(l)
}

func vector(g *gorgonia.ExprGraph, name string, backing []float64) *gorgonia.Node {
	t := tensor.New(
		tensor.WithShape(len(backing)),
		tensor.Of(tensor.Float64),
		tensor.WithBacking(backing),
	)
	return gorgonia.NewVector(g, tensor.Float64,
		gorgonia.WithShape(len(backing)),
		gorgonia.WithName(name),
		gorgonia.WithValue(t))
}

func run(g *gorgonia.ExprGraph, read func() error) error {
	vm := gorgonia.NewTapeMachine(g)
	defer vm.Close()

	if err := vm.RunAll(); err != nil {
		return fmt.Errorf("graph execution failed: %v", err)
	}
	return read()
}
