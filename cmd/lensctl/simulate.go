package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chen-qingyu/black-hole/internal/logger"
	"github.com/chen-qingyu/black-hole/internal/simulation"
)

func runSimulate(cmd *cobra.Command, args []string) error {
	if steps < 0 {
		return fmt.Errorf("steps must be non-negative, got %d", steps)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	reg, err := simulation.FromConfig(cfg.Simulation)
	if err != nil {
		return err
	}

	logger.Info("simulating", zap.Int("bodies", reg.Len()), zap.Int("steps", steps))
	trace := simulation.Record(reg, simulation.NewIntegrator(), steps, every)

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tX\tY\tZ\t|V|\tDIST\tCAPTURED")
	for i, b := range reg.Bodies()[1:] {
		captured := "-"
		if step := trace.Captured[i]; step >= 0 {
			captured = fmt.Sprintf("step %d", step)
		}
		d := trace.Distances[i]
		fmt.Fprintf(w, "%s\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\t%s\n",
			b.Name, b.Position.X, b.Position.Y, b.Position.Z,
			b.Velocity.Length(), d[len(d)-1], captured)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if plot && len(trace.Steps) > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, plotTrace(trace, plotHeight, plotWidth))
	}
	return nil
}

func plotTrace(trace *simulation.Trace, height, width int) string {
	colors := []asciigraph.AnsiColor{asciigraph.Yellow, asciigraph.Red, asciigraph.Green, asciigraph.Blue, asciigraph.Cyan}
	series := make([]asciigraph.AnsiColor, len(trace.Distances))
	for i := range series {
		series[i] = colors[i%len(colors)]
	}
	return asciigraph.PlotMany(trace.Distances,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(series...),
		asciigraph.SeriesLegends(trace.Names...),
		asciigraph.Caption(fmt.Sprintf("distance to central body (m), %d steps", trace.Steps[len(trace.Steps)-1])),
	)
}
