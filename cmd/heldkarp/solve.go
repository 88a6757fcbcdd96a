package main

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heldkarp/graph"
	"github.com/katalvlaran/heldkarp/internal/instance"
	"github.com/katalvlaran/heldkarp/internal/report"
	"github.com/katalvlaran/heldkarp/internal/sysinfo"
	"github.com/katalvlaran/heldkarp/tsp"
)

type solveFlags struct {
	input        string
	algo         string
	workers      int
	memBudgetMiB uint64
	zeroMissing  bool
	noPrecheck   bool
	noColor      bool
	zeroBased    bool
	stats        bool
}

func newSolveCmd() *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one instance file",
		Long: `Reads a JSON or YAML instance, prints the optimal route and its cost.
Exits with status 2 when the graph has no tour through every node.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, &f)
		},
	}

	cmd.Flags().StringVar(&f.input, "input", "", "Instance file, .json or .yaml (required)")
	cmd.Flags().StringVar(&f.algo, "algo", tsp.HeldKarpRecursive.String(), "Algorithm: recursive, iterative, bb, exhaustive")
	cmd.Flags().IntVar(&f.workers, "workers", 1, "Goroutines per generation for iterative (0 = all CPUs)")
	cmd.Flags().Uint64Var(&f.memBudgetMiB, "mem-budget-mib", 0, "Memo table budget in MiB (0 = half of available memory)")
	cmd.Flags().BoolVar(&f.zeroMissing, "zero-missing", false, "Treat off-diagonal 0 as no edge")
	cmd.Flags().BoolVar(&f.noPrecheck, "no-precheck", false, "Skip the degree and connectivity precheck")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&f.zeroBased, "zero-based", false, "Print 0-based node indices")
	cmd.Flags().BoolVar(&f.stats, "stats", false, "Print algorithm and state count")

	cmd.MarkFlagRequired("input")

	return cmd
}

func runSolve(cmd *cobra.Command, f *solveFlags) error {
	algo, err := tsp.ParseAlgorithm(f.algo)
	if err != nil {
		return fmt.Errorf("--algo %q: %w", f.algo, err)
	}
	if f.workers < 0 {
		return fmt.Errorf("--workers %d: %w", f.workers, tsp.ErrInvalidOptions)
	}
	if f.memBudgetMiB > math.MaxUint64>>20 {
		return fmt.Errorf("--mem-budget-mib %d exceeds %d: %w", f.memBudgetMiB, uint64(math.MaxUint64>>20), tsp.ErrInvalidOptions)
	}

	var extra []graph.Option
	if f.zeroMissing {
		extra = append(extra, graph.WithZeroAsMissing())
	}
	g, err := instance.Load(f.input, extra...)
	if err != nil {
		return err
	}

	opts := tsp.DefaultOptions()
	opts.Algo = algo
	opts.Logger = logger
	opts.SkipPrecheck = f.noPrecheck
	opts.Workers = f.workers
	opts.MemoryBudget = f.memBudgetMiB << 20
	if f.workers == 0 || f.memBudgetMiB == 0 {
		host, err := sysinfo.Probe()
		if err != nil {
			logger.Warn("Host probe failed, using defaults", "error", err)
		}
		if f.workers == 0 {
			opts.Workers = host.Workers()
		}
		if f.memBudgetMiB == 0 {
			opts.MemoryBudget = host.Budget()
		}
	}

	logger.Info("Solving", "input", f.input, "n", g.N(), "algo", algo.String(),
		"workers", opts.Workers, "budget_mib", opts.MemoryBudget>>20)

	start := time.Now()
	res, err := tsp.Solve(g, opts)
	elapsed := time.Since(start)

	var popts []report.Option
	if f.noColor {
		popts = append(popts, report.WithColor(false))
	}
	if f.zeroBased {
		popts = append(popts, report.WithZeroBased())
	}
	if f.stats {
		popts = append(popts, report.WithStats())
	}
	p := report.New(cmd.OutOrStdout(), popts...)

	switch {
	case errors.Is(err, tsp.ErrNoFeasibleTour):
		logger.Info("No feasible tour", "elapsed", elapsed, "reason", err.Error())
		if perr := p.NoTour(); perr != nil {
			return perr
		}

		return err
	case err != nil:
		return err
	}

	logger.Info("Solved", "cost", res.Cost, "states", res.States, "elapsed", elapsed)

	return p.Route(g, res)
}
