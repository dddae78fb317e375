// Command cfmt renders a C99 printf-style format string, in the spirit of
// printf(1):
//
//	cfmt '%s: %05.1f%%\n' disk 93.25
//
// Backslash escapes in FORMAT are expanded, and arguments are inferred as
// integers or floats when they parse as such, strings otherwise.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bjaus/cfmt"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "cfmt FORMAT [ARG...]",
		Short:         "Render a C99 printf-style format string",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := log.WarnLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Level: level})

			format := unescape(args[0])
			vals := make([]any, 0, len(args)-1)
			for _, raw := range args[1:] {
				v := inferArg(raw)
				logger.Debug("argument", "raw", raw, "type", fmt.Sprintf("%T", v))
				vals = append(vals, v)
			}
			if err := cfmt.Fprintf(cmd.OutOrStdout(), format, vals...); err != nil {
				logger.Error("format failed", "err", err)
				return err
			}
			return nil
		},
	}
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	return root
}
