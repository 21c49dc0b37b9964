// Package report renders results as go-pretty tables.
package report

import (
	"fmt"
	"io"

	"github.com/grexie/entropy/pkg/config"
	"github.com/grexie/entropy/pkg/prob"
	"github.com/grexie/entropy/pkg/vector"
	"github.com/jedib0t/go-pretty/v6/table"
	"gonum.org/v1/gonum/floats"
)

func CrossEntropy(w io.Writer, s config.Settings, y, p []float64, loss, mean float64) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Cross-Entropy")
	t.AppendRows([]table.Row{
		{"Labels", vector.Format(y, s.Precision)},
		{"Probabilities", vector.Format(p, s.Precision)},
		{"Backend", string(s.Backend)},
		{"Epsilon", fmt.Sprintf("%g", s.Epsilon)},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Loss", s.Format(loss)},
		{"Mean Loss", s.Format(mean)},
	})
	t.Render()
}

// Softmax renders logits next to their probabilities. logs, when not
// nil, adds a log-probability column.
func Softmax(w io.Writer, s config.Settings, l, dist, logs []float64) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Softmax")
	if logs == nil {
		t.AppendHeader(table.Row{"#", "Logit", "Probability"})
	} else {
		t.AppendHeader(table.Row{"#", "Logit", "Probability", "Log Probability"})
	}
	for i := range l {
		row := table.Row{i, s.Format(l[i]), s.Format(dist[i])}
		if logs != nil {
			row = append(row, s.Format(logs[i]))
		}
		t.AppendRow(row)
	}
	t.AppendFooter(table.Row{"", "Sum", s.Format(floats.Sum(dist))})
	t.AppendFooter(table.Row{"", "Entropy", s.Format(prob.Entropy(dist))})
	t.Render()
}
