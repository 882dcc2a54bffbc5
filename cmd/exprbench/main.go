// Command exprbench times eager against lazily composed vector sums and
// cross-checks their results.
//
//	exprbench run --iterations 2000000 --format json
//	exprbench run --config suite.yaml --scenario naive/indirect
//	exprbench run --heap-timing
//	exprbench list
//	exprbench check
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/exprvec/bench"
	"github.com/katalvlaran/exprvec/vec3"
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "exprbench",
		Short:         "Compare eager and lazy 3D vector sums",
		Long:          `Times the a+b+c+a+b+c chain over embedded and indirect storage, eagerly and as expression trees.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.AddCommand(newRunCmd(), newListCmd(), newCheckCmd())

	return rootCmd
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Time the scenario grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			suite, err := suiteFromFlags(cmd)
			if err != nil {
				return err
			}

			logger := bench.NewTextLogger(cmd.ErrOrStderr(), suite.Level())
			runner := bench.NewRunner(append(suite.Options(), bench.WithLogger(logger))...)

			reports, err := runner.Run(cmd.Context(), bench.DefaultScenarios())
			if err != nil {
				return fmt.Errorf("run %s: %w", runner.RunID(), err)
			}

			return bench.Write(cmd.OutOrStdout(), suite.Format, runner.RunID(), reports)
		},
	}
	cmd.Flags().String("config", "", "YAML suite file")
	cmd.Flags().Int("iterations", bench.DefaultIterations, "Timed calls per scenario")
	cmd.Flags().Int("warmup", bench.DefaultWarmup, "Untimed calls before each timed run")
	cmd.Flags().StringSlice("scenario", nil, "Scenario to run (repeatable, default all)")
	cmd.Flags().String("format", bench.FormatText, "Output format (text/json)")
	cmd.Flags().String("log-level", "info", "Log level (debug/info/warn/error)")
	cmd.Flags().Bool("heap-timing", false, "Time indirect scenarios on the heap allocator, count in a separate pass")

	return cmd
}

// suiteFromFlags starts from --config (or the defaults) and applies every
// flag the user set explicitly.
func suiteFromFlags(cmd *cobra.Command) (bench.Suite, error) {
	suite := bench.DefaultSuite()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		s, err := bench.LoadSuite(path)
		if err != nil {
			return bench.Suite{}, fmt.Errorf("failed to load suite: %w", err)
		}
		suite = s
	}

	flags := cmd.Flags()
	if flags.Changed("iterations") {
		suite.Iterations, _ = flags.GetInt("iterations")
	}
	if flags.Changed("warmup") {
		suite.Warmup, _ = flags.GetInt("warmup")
	}
	if flags.Changed("scenario") {
		suite.Scenarios, _ = flags.GetStringSlice("scenario")
	}
	if flags.Changed("format") {
		suite.Format, _ = flags.GetString("format")
	}
	if flags.Changed("log-level") {
		suite.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("heap-timing") {
		suite.HeapTiming, _ = flags.GetBool("heap-timing")
	}
	if err := suite.Validate(); err != nil {
		return bench.Suite{}, err
	}

	return suite, nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List scenario names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range bench.ScenarioNames(bench.DefaultScenarios()) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Cross-check eager and lazy evaluation on both storage kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			alloc := vec3.NewCountingAllocator()
			if err := checkKind(cmd.Context(), out, "embedded", vec3.EmbeddedKind); err != nil {
				return err
			}
			if err := checkKind(cmd.Context(), out, "indirect", vec3.IndirectKind(alloc)); err != nil {
				return err
			}
			if live := alloc.Live(); live != 0 {
				return fmt.Errorf("indirect: %d blocks leaked", live)
			}
			fmt.Fprintln(out, "ok")
			return nil
		},
	}
}

// checkKind evaluates the chain and the grouped form eagerly, lazily and
// concurrently, and fails unless all agree with the expected sum.
func checkKind[S vec3.Storage[S]](ctx context.Context, out io.Writer, name string, kind vec3.Kind[S]) (err error) {
	a, b, c := bench.OperandA, bench.OperandB, bench.OperandC

	var naives []*vec3.Naive[S]
	var lazies []*vec3.Lazy[S]
	defer func() {
		for _, n := range naives {
			_ = n.Release()
		}
		for _, l := range lazies {
			_ = l.Release()
		}
	}()
	for _, v := range [][vec3.Dim]float64{a, b, c} {
		n, err := vec3.NewNaive(kind, v[0], v[1], v[2])
		if err != nil {
			return err
		}
		naives = append(naives, n)
		l, err := vec3.NewLazy(kind, v[0], v[1], v[2])
		if err != nil {
			return err
		}
		lazies = append(lazies, l)
	}
	na, nb, nc := naives[0], naives[1], naives[2]
	la, lb, lc := lazies[0], lazies[1], lazies[2]

	eager, err := vec3.SumNaive(na, nb, nc, na, nb, nc)
	if err != nil {
		return fmt.Errorf("%s: eager: %w", name, err)
	}
	naives = append(naives, eager)
	want, err := eager.Components()
	if err != nil {
		return fmt.Errorf("%s: eager: %w", name, err)
	}

	chain := vec3.Add(vec3.Add(vec3.Add(vec3.Add(vec3.Add(la, lb), lc), la), lb), lc)
	grouped := vec3.Add(vec3.Add(vec3.Add(la, lb), vec3.Add(lc, la)), vec3.Add(lb, lc))

	got := map[string][vec3.Dim]float64{"eager": want}
	if got["chain"], err = vec3.Eval(chain); err != nil {
		return fmt.Errorf("%s: chain: %w", name, err)
	}
	if got["grouped"], err = vec3.Eval(grouped); err != nil {
		return fmt.Errorf("%s: grouped: %w", name, err)
	}
	if got["dynamic"], err = vec3.Eval(vec3.Sum(la, lb, lc, la, lb, lc)); err != nil {
		return fmt.Errorf("%s: dynamic: %w", name, err)
	}
	dst, err := vec3.NewLazy(kind, 0, 0, 0)
	if err != nil {
		return err
	}
	lazies = append(lazies, dst)
	if err = vec3.AssignConcurrent(ctx, dst, chain); err != nil {
		return fmt.Errorf("%s: concurrent: %w", name, err)
	}
	if got["concurrent"], err = dst.Components(); err != nil {
		return fmt.Errorf("%s: concurrent: %w", name, err)
	}

	for _, form := range []string{"eager", "chain", "grouped", "dynamic", "concurrent"} {
		v := got[form]
		status := "ok"
		if v != bench.Expected {
			status = "MISMATCH"
		}
		fmt.Fprintf(out, "%-9s %-10s (%g, %g, %g) %s\n", name, form, v[0], v[1], v[2], status)
		if v != bench.Expected {
			return fmt.Errorf("%s: %s = %v, want %v: %w", name, form, v, bench.Expected, bench.ErrResultMismatch)
		}
	}
	fmt.Fprintf(out, "%-9s depth chain=%d grouped=%d\n", name, vec3.Depth(chain), vec3.Depth(grouped))

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		log.Fatal(err)
	}
}
