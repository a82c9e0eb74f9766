// Package main provides the entry point for the challan-analytics CLI.
package main

import (
	"os"

	"github.com/Shaikhmohddanish/challan-analytics/cmd/dealers"
	"github.com/Shaikhmohddanish/challan-analytics/cmd/export"
	"github.com/Shaikhmohddanish/challan-analytics/cmd/heatmap"
	"github.com/Shaikhmohddanish/challan-analytics/cmd/root"
	"github.com/Shaikhmohddanish/challan-analytics/cmd/summary"
	"github.com/Shaikhmohddanish/challan-analytics/cmd/timeline"
	"github.com/Shaikhmohddanish/challan-analytics/cmd/validate"
)

func main() {
	root.Init()

	root.Cmd.AddCommand(dealers.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(timeline.Cmd)
	root.Cmd.AddCommand(heatmap.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(validate.Cmd)

	if err := root.Cmd.Execute(); err != nil {
		root.Log.Error(err)
		os.Exit(1)
	}
}
