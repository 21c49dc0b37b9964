// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"io"

	"github.com/grexie/entropy/pkg/prob"
	"github.com/jedib0t/go-pretty/v6/table"
)

type Backend string

const (
	BackendNative Backend = "native"
	BackendGraph  Backend = "graph"
)

var (
	Epsilon = envFloat64("ENTROPY_EPSILON", func() float64 {
		return prob.Epsilon
	}, BoundEpsilon)
	Precision = envInt("ENTROPY_PRECISION", func() int {
		return 6
	}, BoundPrecision)
	BackendName = envString("ENTROPY_BACKEND", func() string {
		return string(BackendNative)
	}, BoundBackend)
)

type Settings struct {
	Epsilon   float64
	Precision int
	Backend   Backend
}

func NewSettingsFromEnv() Settings {
	return Settings{
		Epsilon:   Epsilon(),
		Precision: Precision(),
		Backend:   Backend(BackendName()),
	}
}

// WithBackend returns a copy of s using the named backend, bounded the
// same way ENTROPY_BACKEND is.
func (s Settings) WithBackend(name string) Settings {
	s.Backend = Backend(BoundBackend(name))
	return s
}

// Format renders v with the configured number of decimals.
func (s Settings) Format(v float64) string {
	return fmt.Sprintf("%.*f", s.Precision, v)
}

func (s Settings) Write(w io.Writer, title string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)
	t.AppendRows([]table.Row{
		{"ENTROPY_EPSILON", fmt.Sprintf("%g", s.Epsilon)},
		{"ENTROPY_PRECISION", fmt.Sprintf("%d", s.Precision)},
		{"ENTROPY_BACKEND", string(s.Backend)},
	})
	t.Render()
}
