package prob

// Evaluator computes both transforms. Native evaluates them directly on
// slices; graph.Evaluator runs them through an expression graph.
type Evaluator interface {
	CrossEntropy(y, p []float64) (float64, error)
	Softmax(l []float64) ([]float64, error)
}

// Native evaluates the transforms on plain slices.
//
// Epsilon is the probability clamp used by CrossEntropy. The zero value
// means the package default, Epsilon (1e-12); any other value outside
// (0, 0.5), negative ones included, makes CrossEntropy return
// ErrInvalidArgument.
type Native struct {
	Epsilon float64
}

// CrossEntropy is CrossEntropyEpsilon with n's clamp.
func (n Native) CrossEntropy(y, p []float64) (float64, error) {
	eps := n.Epsilon
	if eps == 0 {
		eps = Epsilon
	}
	return CrossEntropyEpsilon(y, p, eps)
}

// Softmax is the package level Softmax.
func (n Native) Softmax(l []float64) ([]float64, error) {
	return Softmax(l)
}
