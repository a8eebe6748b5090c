// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

type (
	// Lexer converts text into Tokens using an ordered registry of TokenTypes.
	//
	// The registry is populated during setup; once tokenizing starts, the Lexer is safe for
	// concurrent Tokenize calls.
	Lexer struct {
		cfg *Config

		// tokenTypes are tried in registration order; the first match wins.
		tokenTypes []TokenType
	}
)

const (
	previewLimit = 15
)

// Error kinds.
var (
	ErrDefinition = errors.New("token type definition error")
	ErrLex        = errors.New("lex error")
)

// Token type definition errors.
var (
	ErrMissingName       = fmt.Errorf("%w: token types must have a name", ErrDefinition)
	ErrMissingRecognizer = fmt.Errorf("%w: token types must have a pattern or a consumer", ErrDefinition)
	ErrInvalidPattern    = fmt.Errorf("%w: token type pattern must be a compiled expression", ErrDefinition)
	ErrInvalidConsumer   = fmt.Errorf("%w: token type consumer must be a function", ErrDefinition)
)

// Lexing errors.
var (
	ErrNoContent            = fmt.Errorf("%w: no content provided", ErrLex)
	ErrNoTokenTypes         = fmt.Errorf("%w: no token types defined", ErrLex)
	ErrNoViableAlternative  = fmt.Errorf("%w: no viable alternative", ErrLex)
	ErrInconsistentConsumer = fmt.Errorf("%w: consumer did not return the start of the remaining content", ErrLex)
	ErrInterpretation       = fmt.Errorf("%w: failed to interpret token", ErrLex)
)

var previewEscaper = strings.NewReplacer("\r", `\r`, "\t", `\t`, "\n", `\n`)

// New instantiates a Lexer with an empty registry.
func New(opts ...Option) *Lexer {
	l := &Lexer{
		cfg:        DefaultConfig(),
		tokenTypes: make([]TokenType, 0),
	}

	for _, opt := range opts {
		opt(l)
	}
	l.cfg.Validate()

	return l
}

// Config retrieves the Lexer's Config.
func (l *Lexer) Config() *Config { return l.cfg }

// LanguageName obtains the configured language name.
func (l *Lexer) LanguageName() string { return l.cfg.LanguageName }

// Logger obtains the logger.
func (l *Lexer) Logger() logrus.FieldLogger { return l.cfg.Logger }

// AddTokenType validates & appends a TokenType to the registry.
//
// TokenTypes registered first are tried first.
func (l *Lexer) AddTokenType(tt TokenType) (err error) {
	if err = tt.validate(); err != nil {
		return
	}

	tt.Role = append([]string(nil), tt.Role...)
	l.tokenTypes = append(l.tokenTypes, tt)

	if l.cfg.Debug {
		l.cfg.Logger.Debugf("lexer: registered token type %q (%d)", tt.Name, len(l.tokenTypes))
	}

	return
}

// AddTokenTypes registers TokenTypes in order, stopping at the first invalid one.
func (l *Lexer) AddTokenTypes(tts ...TokenType) (err error) {
	for _, tt := range tts {
		if err = l.AddTokenType(tt); err != nil {
			return
		}
	}

	return
}

// TokenTypes lists the registered TokenTypes in registration order.
//
// The returned slice is a copy; modifying it does not affect the Lexer.
func (l *Lexer) TokenTypes() []TokenType {
	tts := make([]TokenType, len(l.tokenTypes))
	for index, tt := range l.tokenTypes {
		tt.Role = append([]string(nil), tt.Role...)
		tts[index] = tt
	}

	return tts
}

// TokenizeReader reads src in full & tokenizes it.
//
// A nil src is absent content.
func (l *Lexer) TokenizeReader(src io.Reader) (tokens []Token, err error) {
	if src == nil {
		err = ErrNoContent
		return
	}

	content, err := io.ReadAll(src)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrNoContent, err)
		return
	}

	return l.Tokenize(string(content))
}

// Tokenize converts text into Tokens.
//
// Empty text yields an empty, non-nil slice. No partial result is returned on failure.
func (l *Lexer) Tokenize(text string) (tokens []Token, err error) {
	if len(l.tokenTypes) < 1 {
		err = ErrNoTokenTypes
		return
	}

	tokens = make([]Token, 0)
	defer func() {
		if err == nil {
			return
		}

		// Skip expensive operation if not debug.
		if l.cfg.Debug {
			l.cfg.Logger.Debugf("lexer: tokens before failure: %s", spew.Sdump(tokens))
		}
		tokens = nil
	}()

	tracker := NewLineTracker()
	for remaining := text; remaining != ""; {
		var (
			tt   *TokenType
			resl ConsumeResult
		)
		if tt, resl, err = l.recognize(remaining, tracker); err != nil {
			return
		}

		if tt == nil {
			err = fmt.Errorf("%w at %d.%d: '%s...'", ErrNoViableAlternative,
				tracker.Line(), tracker.Character(), preview(remaining))
			return
		}

		var content any
		if content, err = tt.content(resl); err != nil {
			err = fmt.Errorf("%w %s at %d.%d: %v", ErrInterpretation, tt.Name,
				tracker.Line(), tracker.Character(), err)
			return
		}

		if !tt.Ignore {
			token := Token{
				Type:      tt.Name,
				Content:   content,
				Line:      tracker.Line(),
				Character: tracker.Character(),
			}
			tokens = append(tokens, token)

			if l.cfg.Debug {
				// Debug operation makes this operation un-inlinable.
				l.cfg.Logger.Debug("lexer emit: ", token)
			}
		}

		remaining = remaining[len(resl.Consumed):]
		tracker.Consume(resl.Consumed)
	}

	return
}

// recognize finds the first registered TokenType matching at the start of remaining.
//
// tt is nil when nothing matched.
func (l *Lexer) recognize(remaining string, tracker *LineTracker) (tt *TokenType, resl ConsumeResult, err error) {
	for index := range l.tokenTypes {
		candidate := &l.tokenTypes[index]

		resl = candidate.Recognizer.recognize(remaining)
		if !resl.Matched {
			continue
		}

		if !strings.HasPrefix(remaining, resl.Consumed) {
			err = fmt.Errorf("%w: the consumer for %s at %d.%d returned %s", ErrInconsistentConsumer,
				candidate.Name, tracker.Line(), tracker.Character(), resl.Consumed)
			return
		}

		// An empty match never advances the input.
		if resl.Consumed == "" {
			continue
		}

		tt = candidate
		return
	}

	resl = NoMatch()

	return
}

// preview renders the start of the unconsumed input for error messages.
func preview(remaining string) string {
	runes := []rune(remaining)
	if len(runes) > previewLimit {
		runes = runes[:previewLimit]
	}

	return previewEscaper.Replace(string(runes))
}
