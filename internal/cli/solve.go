package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/eulerseq/internal/domain"
	"github.com/aalvaropc/eulerseq/internal/infra/logger"
	"github.com/aalvaropc/eulerseq/internal/usecase"
)

func primesCmd() *cobra.Command {
	var workspace string
	var count int
	var nth int
	var strategy string
	var format string

	c := &cobra.Command{
		Use:   "primes",
		Short: "Print the first N primes, or the N-th prime",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("count") && cmd.Flags().Changed("nth") {
				return fmt.Errorf("--count and --nth are mutually exclusive")
			}

			root, cfg, err := loadConfigOrDefault(workspace)
			if err != nil {
				return err
			}

			spec := domain.ProblemSpec{
				Problem:  domain.ProblemPrimes,
				Strategy: strategy,
				Count:    cfg.Defaults.Count,
			}
			if cmd.Flags().Changed("count") {
				spec.Count = count
			}
			if cmd.Flags().Changed("nth") {
				spec.Index = nth
			}

			return solveAndPrint(cmd, root, cfg, spec, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().IntVarP(&count, "count", "n", 0, fmt.Sprintf("Number of primes to print (defaults to the workspace default; at most %d with the recursive strategy)", usecase.MaxRecursivePrimeCount))
	c.Flags().IntVar(&nth, "nth", 0, fmt.Sprintf("Print only the N-th prime (1-based; at most %d with the recursive strategy)", usecase.MaxRecursivePrimeCount))
	c.Flags().StringVar(&strategy, "strategy", "", "Sieve strategy: recursive|iterative (defaults to the workspace setting)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func triangleCmd() *cobra.Command {
	var workspace string
	var over int
	var format string

	c := &cobra.Command{
		Use:   "triangle",
		Short: "Find the first triangular number with more than K divisors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, cfg, err := loadConfigOrDefault(workspace)
			if err != nil {
				return err
			}

			spec := domain.ProblemSpec{
				Problem:   domain.ProblemTriangle,
				Threshold: cfg.Defaults.Threshold,
			}
			if cmd.Flags().Changed("over") {
				spec.Threshold = over
			}

			return solveAndPrint(cmd, root, cfg, spec, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().IntVarP(&over, "over", "k", 0, "Divisor-count threshold (defaults to the workspace default)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func divisorsCmd() *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "divisors N",
		Short: "List the divisors of N",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
			if err != nil {
				return domain.InvalidArgument("cli.divisors", "N must be an integer: %v", err)
			}

			spec := domain.ProblemSpec{Problem: domain.ProblemDivisors, N: n}
			return solveAndPrint(cmd, "", domain.DefaultConfig(), spec, format)
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

// solveAndPrint logs to the workspace only when one was found, so running
// a one-off query never creates files in an arbitrary directory.
func solveAndPrint(cmd *cobra.Command, root string, cfg domain.Config, spec domain.ProblemSpec, format string) error {
	if err := checkFormat(format); err != nil {
		return err
	}

	if root != "" {
		cleanup := startLogging(root, debugFlag(cmd))
		defer cleanup()
	}
	log := logger.L()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	sol, err := newSolver(cfg).Execute(ctx, spec)
	if err != nil {
		log.Error("solve.error", "problem", string(spec.Problem), "error", err.Error())
		return err
	}
	log.Info("solve.done",
		"problem", string(sol.Problem),
		"value", sol.Value,
		"steps", sol.Steps,
		"elapsed_ms", sol.ElapsedMS,
	)

	return printSolution(cmd.OutOrStdout(), sol, format)
}

func checkFormat(format string) error {
	switch format {
	case "pretty", "", "json":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printSolution(w io.Writer, sol domain.Solution, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sol)
	case "pretty", "":
		printPrettySolution(w, sol)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettySolution(w io.Writer, sol domain.Solution) {
	switch sol.Problem {
	case domain.ProblemPrimes:
		fmt.Fprintf(w, "Strategy: %s\n", sol.Strategy)
		if len(sol.Values) > 0 {
			fmt.Fprintf(w, "Primes (%d): %s\n", len(sol.Values), joinInts(sol.Values))
		} else {
			fmt.Fprintf(w, "Prime #%d: %d\n", sol.Steps, sol.Value)
		}
	case domain.ProblemTriangle:
		fmt.Fprintf(w, "Triangle #%d: %d (%d divisors)\n", sol.Steps, sol.Value, sol.Divisors)
	case domain.ProblemDivisors:
		fmt.Fprintf(w, "%d has %d divisors: %s\n", sol.Value, sol.Divisors, joinInts(sol.Values))
	default:
		fmt.Fprintf(w, "Value: %d\n", sol.Value)
	}
	fmt.Fprintf(w, "Elapsed: %dms\n", sol.ElapsedMS)
}

func joinInts(in []int64) string {
	parts := make([]string, len(in))
	for i, v := range in {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, " ")
}
