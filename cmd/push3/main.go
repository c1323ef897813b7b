// Command push3 loads and runs Push3 programs from the command line. It
// wraps the github.com/pushlang/push3 library with a cobra CLI, a TOML
// configuration file, and an errgroup-driven batch mode for running many
// programs concurrently, grounded on the teacher's cmd/gothird/main.go
// flag/logger/context wiring but restructured as subcommands since this
// CLI has more than one mode of operation.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "push3",
		Short: "Run and inspect Push3 programs",
	}
	root.AddCommand(newRunCommand(), newDumpCommand())
	return root
}
