package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

var logger *slog.Logger

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "heldkarp",
		Short: "Exact travelling-salesman tours for small weighted graphs",
		Long: `heldkarp finds a minimum-cost closed tour through every node of a
directed weighted graph, starting and ending at the first node, using the
Held-Karp dynamic program (or branch and bound as an independent check).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger(cmd.ErrOrStderr(), logLevel)
			slog.SetDefault(logger)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	root.AddCommand(newSolveCmd(), newVersionCmd())

	return root
}

// newLogger returns a JSON logger on w at the named level.
func newLogger(w io.Writer, name string) *slog.Logger {
	var level slog.Level
	switch name {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
