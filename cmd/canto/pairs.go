// SPDX-License-Identifier: MIT
package main

import (
	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/canto/example"
	"gitlab.com/fisherprime/canto/parser"
)

func newPairsCmd(s *settings) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "pairs [file]",
		Short: "Parse a list of name/value pairs, e.g. `foo 1, bar 2.`",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			path := stdinPath
			if len(args) > 0 {
				path = args[0]
			}

			text, err := readInput(cmd, path)
			if err != nil {
				return
			}

			l, err := s.buildLexer()
			if err != nil {
				return
			}

			pairs, err := example.Parse(l, text, parser.WithLogger(s.logger), parser.WithDebug(s.debug))
			if err != nil {
				return
			}

			return render(cmd.OutOrStdout(), output, pairs)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", formatJSON, "output format: json, yaml or text")

	return cmd
}
