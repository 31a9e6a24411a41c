// Command startupgen generates the startup chunk dependencies runtime modules
// of a chunk manifest.
//
//	startupgen generate --manifest chunks.yaml --out dist/startup
//	startupgen check dist/startup/*.js
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree writing to stdout and stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "startupgen",
		Short: "Generate startup chunk dependencies runtime modules",
		Long: `startupgen reads a chunk manifest listing, for every chunk, the chunks
whose entry point depends on it, and emits the runtime module that loads
those chunks before resuming startup.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.AddCommand(newGenerateCmd(), newCheckCmd())
	return root
}
