package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chen-qingyu/black-hole/internal/engine/raymarch"
)

func runLayout(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "schema v%d, std140, workgroup %dx%d, image unit %d (rgba8)\n\n",
		raymarch.SchemaVersion, raymarch.WorkgroupSize, raymarch.WorkgroupSize, raymarch.ImageUnit)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, b := range raymarch.Blocks() {
		fmt.Fprintf(w, "%s\tbinding %d\t%d bytes\t\n", b.Name, b.Binding, b.Size)
		for _, f := range b.Fields {
			fmt.Fprintf(w, "  %s\t@%d\t%d bytes\t\n", f.Name, f.Offset, f.Size)
		}
	}
	return w.Flush()
}
