// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/canto/syntax"
)

func newSyntaxCmd(s *settings) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "syntax",
		Short: "Generate a tmLanguage syntax definition for the grammar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			l, err := s.buildLexer()
			if err != nil {
				return
			}

			if outPath == "" {
				return syntax.Write(cmd.OutOrStdout(), l)
			}

			output, err := syntax.Generate(l)
			if err != nil {
				return
			}

			if err = os.WriteFile(outPath, output, 0o644); err != nil {
				err = fmt.Errorf("failed to write syntax definition (%s): %w", outPath, err)
				return
			}
			s.logger.Infof("syntax definition written to %s", outPath)

			return
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "file to write the definition to; defaults to stdout")

	return cmd
}
