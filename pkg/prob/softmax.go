package prob

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Softmax maps logits to a probability distribution,
//
//	softmax(l_i) = exp(l_i - max(l)) / Σ exp(l_j - max(l))
//
// The result is newly allocated; l is not modified.
func Softmax(l []float64) ([]float64, error) {
	if err := CheckLogits(l); err != nil {
		return nil, err
	}

	maxVal := floats.Max(l)
	out := make([]float64, len(l))
	for i, v := range l {
		out[i] = math.Exp(v - maxVal)
	}
	floats.Scale(1/floats.Sum(out), out)
	return out, nil
}

// LogSoftmax returns l_i - logsumexp(l) for every element.
func LogSoftmax(l []float64) ([]float64, error) {
	if err := CheckLogits(l); err != nil {
		return nil, err
	}

	out := make([]float64, len(l))
	copy(out, l)
	floats.AddConst(-floats.LogSumExp(l), out)
	return out, nil
}

// Entropy is the Shannon entropy of dist in nats.
func Entropy(dist []float64) float64 {
	return stat.Entropy(dist)
}

// CheckLogits rejects input softmax is undefined for.
func CheckLogits(l []float64) error {
	if len(l) == 0 {
		return fmt.Errorf("softmax: empty input: %w", ErrInvalidArgument)
	}
	return nil
}
