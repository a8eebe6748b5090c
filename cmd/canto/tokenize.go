// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newTokenizeCmd(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [files...]",
		Short: "Tokenize files, or stdin when none are given",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if len(args) < 1 {
				args = []string{stdinPath}
			}

			l, err := s.buildLexer()
			if err != nil {
				return
			}

			texts := make([]string, len(args))
			for index, path := range args {
				if texts[index], err = readInput(cmd, path); err != nil {
					return
				}
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), s.timeout)
			defer cancel()

			results, err := l.TokenizeAll(ctx, texts)
			if err != nil {
				return
			}

			if s.output == formatText {
				for index, tokens := range results {
					for _, token := range tokens {
						if _, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", args[index], token); err != nil {
							return
						}
					}
				}

				return
			}

			outputs := make([]inputOutput, len(results))
			for index, tokens := range results {
				outputs[index] = newInputOutput(args[index], tokens)
			}

			return render(cmd.OutOrStdout(), s.output, outputs)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&s.output, "output", "o", formatJSON, "output format: json, yaml or text")
	flags.DurationVar(&s.timeout, "timeout", defTimeout, "time allowed for tokenizing all inputs")
	flags.IntVar(&s.workers, "workers", 0, "tokenizer goroutines; defaults to the lexer's")

	return cmd
}
