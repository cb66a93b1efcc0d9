package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"
)

// Error is the error class for the command line.
var Error = errs.Class("hostdata")

// version is set at link time.
var version = "devel"

func newRootCmd() *cobra.Command {
	var (
		logLevel, logFormatter string
		showVersion            bool
	)

	cmd := &cobra.Command{
		Use:          "hostdata",
		Short:        "`hostdata` converts decimal floating point values and bidirectional text",
		Long:         "`hostdata` converts decimal floating point values and bidirectional text",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configureLogging(logLevel, logFormatter)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), cmd.Root().Name(), version)

				return err
			}

			return cmd.Usage()
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (panic, fatal, error, warn, info, debug, trace)")
	cmd.PersistentFlags().StringVar(&logFormatter, "log-formatter", "text", "log formatter (text, json)")
	cmd.Flags().BoolVarP(&showVersion, "version", "v", false, "show the version and exit")

	cmd.AddCommand(newDecfloatCmd())
	cmd.AddCommand(newBidiCmd())

	return cmd
}
