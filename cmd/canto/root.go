// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/canto/example"
	"gitlab.com/fisherprime/canto/grammar"
	"gitlab.com/fisherprime/canto/lexer"
)

type (
	// settings holds the persistent flag values shared by subcommands.
	settings struct {
		logger *logrus.Logger

		grammarPath string
		language    string
		output      string
		timeout     time.Duration
		workers     int
		debug       bool
	}
)

const (
	stdinPath = "-"

	defTimeout = 30 * time.Second
)

func newRootCmd() *cobra.Command {
	s := &settings{logger: logrus.New()}

	rootCmd := &cobra.Command{
		Use:           "canto",
		Short:         "canto - tokenize & parse text with rule-driven lexers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			s.logger.SetOutput(cmd.ErrOrStderr())
			if s.debug {
				s.logger.SetLevel(logrus.DebugLevel)
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&s.grammarPath, "grammar", "g", "", "grammar definition file (.yaml, .yml or .toml); defaults to the name/value pair grammar")
	flags.StringVarP(&s.language, "language", "l", "", "language name, overriding the grammar's")
	flags.BoolVar(&s.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newTokenizeCmd(s), newSyntaxCmd(s), newPairsCmd(s))

	return withErrorLogging(rootCmd, s)
}

// withErrorLogging logs subcommand failures through the logger; cobra's own reporting is
// silenced.
func withErrorLogging(cmd *cobra.Command, s *settings) *cobra.Command {
	for _, sub := range cmd.Commands() {
		runE := sub.RunE
		sub.RunE = func(cmd *cobra.Command, args []string) (err error) {
			if err = runE(cmd, args); err != nil {
				s.logger.Error(err)
			}

			return
		}
	}

	return cmd
}

// buildLexer instantiates the Lexer selected by the flags.
func (s *settings) buildLexer() (l *lexer.Lexer, err error) {
	opts := []lexer.Option{lexer.WithLogger(s.logger), lexer.WithDebug(s.debug)}
	if s.workers > 0 {
		opts = append(opts, lexer.WithWorkers(s.workers))
	}
	if s.language != "" {
		opts = append(opts, lexer.WithLanguageName(s.language))
	}

	if s.grammarPath == "" {
		return example.NewLexer(opts...)
	}

	def, err := grammar.Load(s.grammarPath, grammar.WithLogger(s.logger))
	if err != nil {
		return
	}

	return def.Lexer(opts...)
}

// readInput reads a file's content, or stdin for "-".
func readInput(cmd *cobra.Command, path string) (content string, err error) {
	var data []byte
	if path == stdinPath {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		err = fmt.Errorf("failed to read input (%s): %w", path, err)
		return
	}

	return string(data), nil
}
