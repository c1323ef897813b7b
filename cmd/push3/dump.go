package main

import (
	"fmt"
	"os"

	"github.com/pushlang/push3"
	"github.com/spf13/cobra"
)

func newDumpCommand() *cobra.Command {
	var (
		configPath string
		seed       int64
		maxSteps   int
	)
	cmd := &cobra.Command{
		Use:   "dump <program-file>",
		Short: "Run one program and print its final state unconditionally",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			st, err := push.NewState(push.WithConfig(cfg), push.WithSeed(seed))
			if err != nil {
				return err
			}
			program, err := push.Parse(string(src), st.Instructions)
			if err != nil {
				return err
			}
			st.Stacks.Exec.Push(program)
			if _, err := push.Run(cmd.Context(), st, maxSteps); err != nil {
				return err
			}
			push.NewDumper(st, cmd.OutOrStdout()).Dump()
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "TOML config file overriding push.DefaultConfig()")
	cmd.Flags().Int64Var(&seed, "seed", 1, "RNG seed")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "step budget (0 uses push.DefaultStepBudget)")
	return cmd
}
