package graph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/grexie/entropy/pkg/graph"
	"github.com/grexie/entropy/pkg/prob"
)

func TestCrossEntropyMatchesNative(t *testing.T) {
	tests := []struct {
		name string
		y, p []float64
	}{
		{"example", []float64{1, 1, 0}, []float64{0.8, 0.7, 0.1}},
		{"soft labels", []float64{0.2, 0.9, 0.5, 0}, []float64{0.3, 0.6, 0.5, 0.05}},
		{"boundary", []float64{1, 0, 1}, []float64{0, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := prob.CrossEntropy(tt.y, tt.p)
			if err != nil {
				t.Fatalf("native error: %v", err)
			}
			got, err := graph.Evaluator{}.CrossEntropy(tt.y, tt.p)
			if err != nil {
				t.Fatalf("graph error: %v", err)
			}
			if math.Abs(got-want) > 1e-9 {
				t.Fatalf("graph cross-entropy = %.12f, native = %.12f", got, want)
			}
		})
	}
}

func TestCrossEntropyInvalid(t *testing.T) {
	if _, err := graph.CrossEntropy([]float64{1, 0}, []float64{0.5}, prob.Epsilon); !errors.Is(err, prob.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := graph.CrossEntropy(nil, nil, prob.Epsilon); !errors.Is(err, prob.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestSoftmaxMatchesNative(t *testing.T) {
	for _, input := range [][]float64{
		{2, 4, 1, 9},
		{102, 104, 101, 109},
		{-3, -3, -3},
	} {
		want, err := prob.Softmax(input)
		if err != nil {
			t.Fatalf("native error: %v", err)
		}
		got, err := graph.Evaluator{}.Softmax(input)
		if err != nil {
			t.Fatalf("graph error: %v", err)
		}
		if len(got) != len(want) {
			t.Fatalf("len = %d, want %d", len(got), len(want))
		}
		for i := range want {
			if math.Abs(got[i]-want[i]) > 1e-9 {
				t.Errorf("softmax(%v)[%d] = %g, want %g", input, i, got[i], want[i])
			}
		}
	}
}

func TestSoftmaxEmpty(t *testing.T) {
	if _, err := graph.Softmax(nil); !errors.Is(err, prob.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestEvaluatorEpsilon(t *testing.T) {
	if _, err := (graph.Evaluator{Epsilon: -1e-6}).CrossEntropy([]float64{1}, []float64{0.5}); !errors.Is(err, prob.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for negative epsilon, got %v", err)
	}

	got, err := graph.Evaluator{}.CrossEntropy([]float64{1, 0}, []float64{0.5, 0.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := 2 * math.Log(2); math.Abs(got-want) > 1e-9 {
		t.Fatalf("cross-entropy = %f, want %f", got, want)
	}
}
