// Command seqcheck runs the reference scenarios of the sequence package and
// reports whether they all hold.
package main

import (
	"fmt"
	"os"

	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/geofduf/vector/internal/selfcheck"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the seqcheck command.
func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "seqcheck",
		Short:        "Run the sequence self-checks",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			zl, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer func() { _ = zl.Sync() }()

			if err := selfcheck.Run(zapr.NewLogger(zl), selfcheck.Checks()); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Everything is fine!")
			return err
		},
	}
}
