package graph

import (
	"fmt"

	"github.com/grexie/entropy/pkg/prob"
	"gorgonia.org/gorgonia"
)

// BinaryCrossEntropy builds -Σ [y·log(p) + (1-y)·log(1-p)] over the nodes.
// pred must already be clamped away from 0 and 1.
func BinaryCrossEntropy(pred, target *gorgonia.Node) (*gorgonia.Node, error) {
	one := gorgonia.NewConstant(1.0)

	logPred, err := gorgonia.Log(pred)
	if err != nil {
		return nil, fmt.Errorf("failed to compute log: %v", err)
	}

	complementPred, err := gorgonia.Sub(one, pred)
	if err != nil {
		return nil, fmt.Errorf("failed to compute 1-p: %v", err)
	}

	logComplementPred, err := gorgonia.Log(complementPred)
	if err != nil {
		return nil, fmt.Errorf("failed to compute log(1-p): %v", err)
	}

	complementTarget, err := gorgonia.Sub(one, target)
	if err != nil {
		return nil, fmt.Errorf("failed to compute 1-y: %v", err)
	}

	positive, err := gorgonia.HadamardProd(target, logPred)
	if err != nil {
		return nil, fmt.Errorf("failed to compute hadamard product: %v", err)
	}

	negative, err := gorgonia.HadamardProd(complementTarget, logComplementPred)
	if err != nil {
		return nil, fmt.Errorf("failed to compute hadamard product: %v", err)
	}

	losses, err := gorgonia.Add(positive, negative)
	if err != nil {
		return nil, fmt.Errorf("failed to add terms: %v", err)
	}

	sumLosses, err := gorgonia.Sum(losses)
	if err != nil {
		return nil, fmt.Errorf("failed to compute sum: %v", err)
	}

	return gorgonia.Neg(sumLosses)
}

// CrossEntropy evaluates the binary cross-entropy of y and p on a tape
// machine. Inputs are validated and p is clamped like prob.CrossEntropy.
func CrossEntropy(y, p []float64, eps float64) (float64, error) {
	if err := prob.CheckPair(y, p, eps); err != nil {
		return 0, err
	}

	labels := make([]float64, len(y))
	copy(labels, y)
	clamped := make([]float64, len(p))
	for i, v := range p {
		clamped[i] = prob.Clamp(v, eps)
	}

	g := gorgonia.NewGraph()
	target := vector(g, "y", labels)
	pred := vector(g, "p", clamped)

	loss, err := BinaryCrossEntropy(pred, target)
	if err != nil {
		return 0, err
	}

	var out float64
	err = run(g, func() error {
		v, ok := loss.Value().Data().(float64)
		if !ok {
			return fmt.Errorf("unexpected loss value %v", loss.Value())
		}
		out = v
		return nil
	})
	return out, err
}
