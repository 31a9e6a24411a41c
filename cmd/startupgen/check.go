package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"goa.design/chunkstartup/codegen/jscheck"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Check that JavaScript files parse",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs []error
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				if err := jscheck.Validate(string(data)); err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", path, err))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok %s\n", path)
			}
			return errors.Join(errs...)
		},
	}
}
