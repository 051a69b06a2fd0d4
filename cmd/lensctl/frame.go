package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chen-qingyu/black-hole/internal/engine/camera"
	"github.com/chen-qingyu/black-hole/internal/engine/raymarch"
	"github.com/chen-qingyu/black-hole/internal/simulation"
)

func runFrame(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	reg, err := simulation.FromConfig(cfg.Simulation)
	if err != nil {
		return err
	}

	cam := camera.FromConfig(cfg.Camera)
	aspect := float32(cfg.Graphics.Width) / float32(cfg.Graphics.Height)
	view := raymarch.NewCameraView(cam.Position(), cam.Target(), cfg.Compute.FOVDegrees, aspect, cam.Moving())
	frame := raymarch.NewMarshaller(cfg.Compute).Pack(view, reg.Central(), reg.Bodies())

	out := cmd.OutOrStdout()
	c := frame.Camera
	fmt.Fprintf(out, "camera   pos %v forward %v tanHalfFov %.4f aspect %.4f moving %d\n",
		c.Position, c.Forward, c.TanHalfFov, c.Aspect, c.Moving)
	d := frame.Disk
	fmt.Fprintf(out, "disk     inner %.4g outer %.4g rays %g thickness %g\n",
		d.InnerRadius, d.OuterRadius, d.NumRays, d.Thickness)
	fmt.Fprintf(out, "objects  %d packed, %d dropped\n", frame.Objects.NumObjects, frame.Dropped)

	if hexOut {
		for _, buf := range frame.Buffers() {
			fmt.Fprintf(out, "\nbinding %d (%d bytes)\n%s", buf.Binding, len(buf.Data), hex.Dump(buf.Data))
		}
	}
	return nil
}
