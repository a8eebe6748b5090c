// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"
)

// Option defines the Lexer functional option type.
type Option func(*Lexer)

// WithConfig replaces the Lexer's Config with a copy of cfg; missing entries are populated with
// defaults.
//
// Options applied before WithConfig are overridden.
func WithConfig(cfg *Config) Option {
	return func(l *Lexer) {
		if cfg == nil {
			return
		}

		c := *cfg
		l.cfg = &c
	}
}

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(l *Lexer) { l.cfg.Debug = debug } }

// WithLanguageName configures the language name option.
func WithLanguageName(name string) Option { return func(l *Lexer) { l.cfg.LanguageName = name } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(l *Lexer) { l.cfg.Logger = logger } }

// WithWorkers configures the TokenizeAll pool size.
func WithWorkers(n int) Option { return func(l *Lexer) { l.cfg.Workers = n } }
