package main

import (
	"encoding/csv"
	"fmt"
	gomath "math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chen-qingyu/black-hole/internal/engine/grid"
	"github.com/chen-qingyu/black-hole/internal/simulation"
)

func runGrid(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	reg, err := simulation.FromConfig(cfg.Simulation)
	if err != nil {
		return err
	}

	mesh := grid.Generate(reg.Bodies(), grid.ConfigFrom(cfg.Grid))
	out := cmd.OutOrStdout()

	if csvOut {
		w := csv.NewWriter(out)
		if err := w.Write([]string{"x", "y", "z"}); err != nil {
			return err
		}
		for _, v := range mesh.Vertices {
			if err := w.Write([]string{
				strconv.FormatFloat(float64(v.X), 'g', -1, 32),
				strconv.FormatFloat(float64(v.Y), 'g', -1, 32),
				strconv.FormatFloat(float64(v.Z), 'g', -1, 32),
			}); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	}

	minY, maxY := float32(gomath.Inf(1)), float32(gomath.Inf(-1))
	for _, v := range mesh.Vertices {
		minY = min(minY, v.Y)
		maxY = max(maxY, v.Y)
	}
	fmt.Fprintf(out, "vertices %d, indices %d (%d segments)\n",
		len(mesh.Vertices), len(mesh.Indices), len(mesh.Indices)/2)
	fmt.Fprintf(out, "height  min %.4g  max %.4g\n", minY, maxY)
	return nil
}
