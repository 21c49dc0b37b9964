package prob

import (
	"fmt"
	"math"
)

// Epsilon is the default clamp applied to predicted probabilities so the
// logarithm never sees 0 or 1.
const Epsilon = 1e-12

// CrossEntropy computes the binary cross-entropy
//
//	-Σ [y_i·ln(p_i) + (1-y_i)·ln(1-p_i)]
//
// with p clamped into [Epsilon, 1-Epsilon].
func CrossEntropy(y, p []float64) (float64, error) {
	return CrossEntropyEpsilon(y, p, Epsilon)
}

// CrossEntropyEpsilon is CrossEntropy with a caller supplied clamp.
func CrossEntropyEpsilon(y, p []float64, eps float64) (float64, error) {
	if err := CheckPair(y, p, eps); err != nil {
		return 0, err
	}

	s := 0.0
	for i := range y {
		q := Clamp(p[i], eps)
		s += y[i]*math.Log(q) + (1-y[i])*math.Log(1-q)
	}
	return -s, nil
}

// MeanCrossEntropy averages the binary cross-entropy computed by e over
// the samples.
func MeanCrossEntropy(e Evaluator, y, p []float64) (float64, error) {
	s, err := e.CrossEntropy(y, p)
	if err != nil {
		return 0, err
	}
	return s / float64(len(y)), nil
}

// Clamp limits a probability to [eps, 1-eps].
func Clamp(p, eps float64) float64 {
	return math.Min(math.Max(p, eps), 1-eps)
}

// CheckPair validates labels, probabilities and clamp the way
// CrossEntropyEpsilon does.
func CheckPair(y, p []float64, eps float64) error {
	if len(y) != len(p) {
		return fmt.Errorf("cross-entropy: %d labels but %d probabilities: %w", len(y), len(p), ErrInvalidArgument)
	}
	if len(y) == 0 {
		return fmt.Errorf("cross-entropy: empty input: %w", ErrInvalidArgument)
	}
	if !(eps > 0 && eps < 0.5) {
		return fmt.Errorf("cross-entropy: epsilon %g outside (0, 0.5): %w", eps, ErrInvalidArgument)
	}
	return nil
}
