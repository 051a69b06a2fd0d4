// Package main is lensctl, a headless companion to the visualizer: it runs
// the gravity simulation, prints the GPU buffer layouts and dumps the
// spacetime grid without opening a window.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chen-qingyu/black-hole/internal/config"
	"github.com/chen-qingyu/black-hole/internal/logger"
)

var (
	configFile string
	logLevel   string
	steps      int
	every      int
	plot       bool
	plotHeight int
	plotWidth  int
	csvOut     bool
	hexOut     bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "lensctl",
		Short:        "headless tools for the black hole visualizer",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Init(logLevel, "")
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level")

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "step the gravity simulation and report orbits",
		Args:  cobra.NoArgs,
		RunE:  runSimulate,
	}
	simulateCmd.Flags().IntVar(&steps, "steps", 1000, "number of integrator steps")
	simulateCmd.Flags().IntVar(&every, "every", 10, "sample every n steps")
	simulateCmd.Flags().BoolVar(&plot, "plot", false, "plot radial distance")
	simulateCmd.Flags().IntVar(&plotHeight, "height", 15, "plot height")
	simulateCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")

	layoutCmd := &cobra.Command{
		Use:   "layout",
		Short: "print the kernel parameter block layouts",
		Args:  cobra.NoArgs,
		RunE:  runLayout,
	}

	gridCmd := &cobra.Command{
		Use:   "grid",
		Short: "generate the spacetime grid for the configured bodies",
		Args:  cobra.NoArgs,
		RunE:  runGrid,
	}
	gridCmd.Flags().BoolVar(&csvOut, "csv", false, "dump vertices as CSV")

	frameCmd := &cobra.Command{
		Use:   "frame",
		Short: "pack the initial frame and print its parameter blocks",
		Args:  cobra.NoArgs,
		RunE:  runFrame,
	}
	frameCmd.Flags().BoolVar(&hexOut, "hex", false, "hex dump the encoded blocks")

	rootCmd.AddCommand(simulateCmd, layoutCmd, gridCmd, frameCmd)
	return rootCmd
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
