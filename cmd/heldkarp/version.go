package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heldkarp/internal/sysinfo"
)

var version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "heldkarp version %s\n", version)
			if s, err := sysinfo.Probe(); err == nil {
				fmt.Fprintf(out, "host: %s\n", s)
			}
		},
	}
}
