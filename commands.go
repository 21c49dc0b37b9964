package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/grexie/entropy/pkg/config"
	"github.com/grexie/entropy/pkg/graph"
	"github.com/grexie/entropy/pkg/prob"
	"github.com/grexie/entropy/pkg/report"
	"github.com/grexie/entropy/pkg/vector"
	"github.com/spf13/cobra"
)

// run executes the CLI with args (without the program name).
func run(settings config.Settings, args []string, out io.Writer) error {
	cmd := newRootCommand(settings)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(sequenceArgs(args))
	return cmd.Execute()
}

// sequenceArgs moves numeric sequences such as "-1,2,3" behind "--" so
// pflag does not read a leading minus as a shorthand flag. Their order
// relative to each other is kept. Args that already contain "--" are
// returned unchanged.
func sequenceArgs(args []string) []string {
	var rest, sequences []string
	for _, arg := range args {
		if arg == "--" {
			return args
		}
		_, err := vector.Parse(arg)
		if err == nil && (strings.HasPrefix(arg, "-") || len(sequences) > 0) {
			sequences = append(sequences, arg)
			continue
		}
		rest = append(rest, arg)
	}
	if len(sequences) == 0 {
		return args
	}
	return append(append(rest, "--"), sequences...)
}

func newRootCommand(settings config.Settings) *cobra.Command {
	var backend string

	cmd := &cobra.Command{
		Use:           "entropy",
		Short:         "Binary cross-entropy and softmax",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmd.Flags().Changed("backend") {
				settings = settings.WithBackend(backend)
			}
		},
	}
	cmd.PersistentFlags().StringVar(&backend, "backend", string(settings.Backend), "evaluator to use (native or graph)")

	var logProbs bool
	softmax := &cobra.Command{
		Use:     "softmax LOGITS",
		Short:   "Compute the softmax of comma-separated logits",
		Example: "  entropy softmax 2,4,1,9\n  entropy softmax --log -1,2,3",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := vector.Parse(args[0])
			if err != nil {
				return fmt.Errorf("logits: %w", err)
			}
			return runSoftmax(cmd, settings, l, logProbs)
		},
	}
	softmax.Flags().BoolVar(&logProbs, "log", false, "also print log-probabilities")

	cmd.AddCommand(
		&cobra.Command{
			Use:     "cross-entropy LABELS PROBABILITIES",
			Short:   "Compute the binary cross-entropy of comma-separated labels and probabilities",
			Example: "  entropy cross-entropy 1,1,0 0.8,0.7,0.1",
			Args:    cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				y, err := vector.Parse(args[0])
				if err != nil {
					return fmt.Errorf("labels: %w", err)
				}
				p, err := vector.Parse(args[1])
				if err != nil {
					return fmt.Errorf("probabilities: %w", err)
				}
				return runCrossEntropy(cmd, settings, y, p)
			},
		},
		softmax,
		&cobra.Command{
			Use:   "demo",
			Short: "Run both transforms on the reference examples",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := runCrossEntropy(cmd, settings, []float64{1, 1, 0}, []float64{0.8, 0.7, 0.1}); err != nil {
					return err
				}
				return runSoftmax(cmd, settings, []float64{2, 4, 1, 9}, false)
			},
		},
		&cobra.Command{
			Use:   "config",
			Short: "Print the active settings",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				settings.Write(cmd.OutOrStdout(), "Settings")
			},
		},
	)

	return cmd
}

func evaluator(s config.Settings) prob.Evaluator {
	if s.Backend == config.BackendGraph {
		return graph.Evaluator{Epsilon: s.Epsilon}
	}
	return prob.Native{Epsilon: s.Epsilon}
}

func runCrossEntropy(cmd *cobra.Command, s config.Settings, y, p []float64) error {
	e := evaluator(s)
	loss, err := e.CrossEntropy(y, p)
	if err != nil {
		return err
	}
	mean, err := prob.MeanCrossEntropy(e, y, p)
	if err != nil {
		return err
	}
	report.CrossEntropy(cmd.OutOrStdout(), s, y, p, loss, mean)
	return nil
}

func runSoftmax(cmd *cobra.Command, s config.Settings, l []float64, logProbs bool) error {
	dist, err := evaluator(s).Softmax(l)
	if err != nil {
		return err
	}
	var logs []float64
	if logProbs {
		if logs, err = prob.LogSoftmax(l); err != nil {
			return err
		}
	}
	report.Softmax(cmd.OutOrStdout(), s, l, dist, logs)
	return nil
}
