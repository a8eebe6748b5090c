// SPDX-License-Identifier: MIT
package lexer

import (
	"fmt"
	"regexp"
	"strings"
)

type (
	// Recognizer decides whether a TokenType matches at the start of the remaining input.
	//
	// Implemented by [*Pattern] & [Consumer].
	Recognizer interface {
		recognize(remaining string) ConsumeResult
		validate() error
	}

	// Pattern recognizes a regular expression matching at the very start of the remaining input.
	Pattern struct {
		expr *regexp.Regexp

		// anchored is expr wrapped in `^(?:...)`, sparing a scan of the whole remainder.
		anchored *regexp.Regexp
	}

	// Consumer is a custom Recognizer invoked with the full remaining input.
	//
	// A successful ConsumeResult's Consumed value must be a prefix of remaining.
	Consumer func(remaining string) ConsumeResult

	// ConsumeResult is the outcome of a recognition attempt.
	ConsumeResult struct {
		// Content is the token content supplied by a Consumer; nil when absent.
		Content  any
		Consumed string
		Matched  bool
	}

	// Interpreter produces a Token's content from its consumed text.
	Interpreter func(consumed string) (any, error)

	// TokenType describes one lexical category.
	//
	// Exactly one Recognizer is set; TokenTypes are immutable once registered.
	TokenType struct {
		Recognizer Recognizer

		// Interpret overrides any content supplied by a Consumer.
		Interpret Interpreter

		Name string

		// Role holds classification tags used for syntax highlighting, e.g. "keyword".
		Role []string

		// Ignore tracks matched spans for positioning without emitting Tokens.
		Ignore bool
	}
)

var (
	_ Recognizer = (*Pattern)(nil)
	_ Recognizer = Consumer(nil)
)

// NewPattern compiles expr into a Pattern.
func NewPattern(expr string) (p *Pattern, err error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		err = fmt.Errorf("%w (%s): %v", ErrInvalidPattern, expr, err)
		return
	}

	return PatternOf(re), nil
}

// MustPattern is NewPattern panicking on invalid expressions.
func MustPattern(expr string) *Pattern {
	p, err := NewPattern(expr)
	if err != nil {
		panic(err)
	}

	return p
}

// NewPOSIXPattern compiles expr into a Pattern with POSIX ERE syntax & leftmost-longest
// matching.
func NewPOSIXPattern(expr string) (p *Pattern, err error) {
	re, err := regexp.CompilePOSIX(expr)
	if err != nil {
		err = fmt.Errorf("%w (%s): %v", ErrInvalidPattern, expr, err)
		return
	}

	// POSIX syntax lacks non-capturing groups.
	return &Pattern{expr: re, anchored: regexp.MustCompilePOSIX(`^(` + expr + `)`)}, nil
}

// PatternOf wraps a compiled expression.
//
// Matching is leftmost-first whatever the expression was compiled with; use NewPOSIXPattern
// for leftmost-longest matching. A nil expression yields a Pattern rejected at registration.
func PatternOf(re *regexp.Regexp) *Pattern {
	p := &Pattern{expr: re}
	if re != nil {
		// Wrapping a valid expression in a group yields a valid expression.
		p.anchored = regexp.MustCompile(`^(?:` + re.String() + `)`)
	}

	return p
}

// Source renders the expression back to its source, without a leading `^`.
func (p *Pattern) Source() string {
	if p == nil || p.expr == nil {
		return ""
	}

	return strings.TrimPrefix(p.expr.String(), "^")
}

func (p *Pattern) recognize(remaining string) (resl ConsumeResult) {
	loc := p.anchored.FindStringIndex(remaining)
	if loc == nil || loc[0] != 0 {
		return
	}
	resl.Matched, resl.Consumed = true, remaining[:loc[1]]

	return
}

func (p *Pattern) validate() error {
	if p == nil || p.expr == nil {
		return ErrInvalidPattern
	}

	return nil
}

func (c Consumer) recognize(remaining string) ConsumeResult { return c(remaining) }

func (c Consumer) validate() error {
	if c == nil {
		return ErrInvalidConsumer
	}

	return nil
}

// Match builds a successful ConsumeResult; content may be nil.
func Match(consumed string, content any) ConsumeResult {
	return ConsumeResult{Matched: true, Consumed: consumed, Content: content}
}

// NoMatch builds an unsuccessful ConsumeResult.
func NoMatch() ConsumeResult { return ConsumeResult{} }

// PatternSource exposes the TokenType's pattern for syntax definitions.
//
// ok is false for TokenTypes recognized by a Consumer.
func (t TokenType) PatternSource() (src string, ok bool) {
	p, ok := t.Recognizer.(*Pattern)
	if !ok || p == nil || p.expr == nil {
		return "", false
	}

	return p.Source(), true
}

// validate checks the TokenType's definition.
func (t *TokenType) validate() (err error) {
	if t.Name == "" {
		return ErrMissingName
	}

	if t.Recognizer == nil {
		return fmt.Errorf("%w: %s", ErrMissingRecognizer, t.Name)
	}

	if err = t.Recognizer.validate(); err != nil {
		err = fmt.Errorf("%w: %s", err, t.Name)
	}

	return
}

// content determines a recognized Token's content.
func (t *TokenType) content(resl ConsumeResult) (any, error) {
	switch {
	case t.Interpret != nil:
		return t.Interpret(resl.Consumed)
	case resl.Content != nil:
		return resl.Content, nil
	default:
		return resl.Consumed, nil
	}
}
