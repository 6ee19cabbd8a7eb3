package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/vango-dev/progressus/pkg/progress"
)

func runCmd() *cobra.Command {
	var (
		flags   widgetFlags
		steps   []float64
		metrics bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Apply a sequence of values and print the patches",
		Long: `Initialize a widget, apply each step with SetValue and print the DOM
patches every step produced, followed by the final HTML.

Steps are deltas from the starting value, not increments.

Examples:
  progressus run --selector .abc --max 4 --steps 1,2,4
  progressus run --config progressus.json --metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("steps") {
				cfg.Steps = steps
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			var (
				registry *prometheus.Registry
				opts     []progress.Option
			)
			if metrics {
				registry = prometheus.NewRegistry()
				opts = append(opts, progress.WithMetrics(progress.NewMetrics(progress.WithRegistry(registry))))
			}

			s, err := newSession(cfg, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, step := range cfg.Steps {
				snapshot := s.doc.Snapshot()
				if err := s.widget.SetValue(step); err != nil {
					return err
				}
				fmt.Fprintf(out, "step %d: value %s (%s%%)\n", i+1,
					formatFloat(s.widget.Value()), formatFloat(s.widget.Percentage()))
				for _, p := range s.doc.DiffSince(snapshot) {
					info(out, "%s", p)
				}
			}

			html, err := s.html(cfg.Pretty)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, html)

			if registry != nil {
				fmt.Fprintln(out)
				return writeMetrics(out, registry)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().Float64SliceVar(&steps, "steps", nil, "Comma-separated SetValue deltas")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Print the widget's Prometheus metrics after the run")

	return cmd
}

// writeMetrics prints the gathered families in the text exposition format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func formatFloat(n float64) string {
	return fmt.Sprintf("%g", n)
}
