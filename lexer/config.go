// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"
)

type (
	// Config defines configuration options for the Lexer's operations.
	Config struct {
		Logger logrus.FieldLogger

		// LanguageName names the language described by the registered token types.
		//
		// Syntax definitions use it as the trailing scope component.
		LanguageName string

		// Workers bounds the goroutines used by [Lexer.TokenizeAll].
		Workers int

		Debug bool
	}
)

const (
	// DefaultLanguageName is used when a Lexer is not given a language name.
	DefaultLanguageName = "unnamedlanguage"

	// DefaultWorkers is the default [Lexer.TokenizeAll] pool size.
	DefaultWorkers = 4
)

// DefaultConfig configures the lexer's Config.
func DefaultConfig() *Config {
	return &Config{
		LanguageName: DefaultLanguageName,
		Workers:      DefaultWorkers,
		Logger:       logrus.New(),
	}
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.LanguageName == "" {
		c.LanguageName = DefaultLanguageName
	}
	if c.Workers < 1 {
		c.Workers = DefaultWorkers
	}
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
}
