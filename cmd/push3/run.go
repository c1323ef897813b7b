package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pushlang/push3"
	"github.com/pushlang/push3/internal/telemetry"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type runFlags struct {
	configPath string
	seed       int64
	maxSteps   int
	timeout    time.Duration
	trace      bool
	dumpOnExit bool
	parallel   int
}

func newRunCommand() *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:   "run [program-file ...]",
		Short: "Parse and run one or more Push3 programs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFiles(cmd, args, flags)
		},
	}
	cmd.Flags().StringVar(&flags.configPath, "config", "", "TOML config file overriding push.DefaultConfig()")
	cmd.Flags().Int64Var(&flags.seed, "seed", 1, "RNG seed")
	cmd.Flags().IntVar(&flags.maxSteps, "max-steps", 0, "step budget (0 uses push.DefaultStepBudget)")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 0, "wall-clock timeout per program (0 disables)")
	cmd.Flags().BoolVar(&flags.trace, "trace", false, "enable step-by-step trace logging")
	cmd.Flags().BoolVar(&flags.dumpOnExit, "dump", false, "print a state dump after each run")
	cmd.Flags().IntVar(&flags.parallel, "parallel", 1, "number of programs to run concurrently in batch mode")
	return cmd
}

// runFiles runs every named program. A single file runs inline; more than
// one fans out through an errgroup bounded by flags.parallel
// (SPEC_FULL.md §2.5 "host-level concurrency"), since the interpreter
// itself is single-threaded per spec.md §5 but nothing stops a host from
// driving several independent States concurrently.
func runFiles(cmd *cobra.Command, paths []string, flags runFlags) error {
	logger := telemetry.New(cmd.ErrOrStderr())
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if len(paths) == 1 {
		return runOne(cmd, paths[0], cfg, flags, logger)
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(1, flags.parallel))
	for _, path := range paths {
		path := path
		g.Go(func() error {
			return runOneCtx(ctx, cmd, path, cfg, flags, logger)
		})
	}
	return g.Wait()
}

func runOne(cmd *cobra.Command, path string, cfg push.Config, flags runFlags, logger *telemetry.Logger) error {
	return runOneCtx(cmd.Context(), cmd, path, cfg, flags, logger)
}

func runOneCtx(ctx context.Context, cmd *cobra.Command, path string, cfg push.Config, flags runFlags, logger *telemetry.Logger) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	opts := []push.StateOption{push.WithConfig(cfg), push.WithSeed(flags.seed)}
	if flags.maxSteps > 0 {
		opts = append(opts, push.WithMaxSteps(flags.maxSteps))
	}
	if flags.trace {
		opts = append(opts, push.WithTrace(logger.Leveledf("TRACE")))
	}

	st, err := push.NewState(opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	program, err := push.Parse(string(src), st.Instructions)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	st.Stacks.Exec.Push(program)

	if flags.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flags.timeout)
		defer cancel()
	}

	outcome, err := push.Run(ctx, st, flags.maxSteps)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	logger.Leveledf("INFO")("%s: %d steps, halted=%v reason=%q", path, outcome.Steps, outcome.Halted, outcome.Reason)

	if flags.dumpOnExit {
		push.NewDumper(st, cmd.OutOrStdout()).Dump()
	}
	return nil
}
