// SPDX-License-Identifier: MIT

// Package grammar loads declarative Lexer definitions from YAML or TOML files.
//
// A definition lists token types in matching order; each entry either references a standard
// token type or defines its own pattern or literal:
//
//	language: pairs
//	types:
//	  - standard: whitespace
//	  - name: name
//	    pattern: "^[a-z]+"
//	    role: [entity, name]
//	  - standard: comma
//	  - standard: integer
package grammar

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"gitlab.com/fisherprime/canto/lexer"
)

type (
	// Format of a definition file.
	Format int

	// Definition describes a Lexer.
	Definition struct {
		Language   string                `yaml:"language" toml:"language"`
		TokenTypes []TokenTypeDefinition `yaml:"types" toml:"types"`
	}

	// TokenTypeDefinition describes a single token type.
	//
	// Name, Role & Ignore override a referenced Standard token type's values when set.
	TokenTypeDefinition struct {
		Standard  string   `yaml:"standard,omitempty" toml:"standard,omitempty"`
		Name      string   `yaml:"name,omitempty" toml:"name,omitempty"`
		Pattern   string   `yaml:"pattern,omitempty" toml:"pattern,omitempty"`
		Literal   string   `yaml:"literal,omitempty" toml:"literal,omitempty"`
		Interpret string   `yaml:"interpret,omitempty" toml:"interpret,omitempty"`
		Role      []string `yaml:"role,omitempty" toml:"role,omitempty"`
		Ignore    *bool    `yaml:"ignore,omitempty" toml:"ignore,omitempty"`
	}

	// Option defines the Load functional option type.
	Option func(*loader)

	loader struct {
		logger logrus.FieldLogger
	}
)

// Definition formats.
const (
	FormatTOML Format = iota
	FormatYAML
)

// Interpreter names.
const (
	InterpretString  = "string"
	InterpretInteger = "integer"
	InterpretFloat   = "float"
)

// Grammar errors.
var (
	ErrGrammar             = errors.New("invalid grammar")
	ErrUnsupportedFormat   = fmt.Errorf("%w: unsupported format", ErrGrammar)
	ErrUnknownStandard     = fmt.Errorf("%w: unknown standard token type", ErrGrammar)
	ErrUnknownInterpreter  = fmt.Errorf("%w: unknown interpreter", ErrGrammar)
	ErrAmbiguousRecognizer = fmt.Errorf("%w: token types take one of standard, pattern or literal", ErrGrammar)
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(l *loader) { l.logger = logger } }

// DetectFormat determines the format from a file extension; TOML is the default.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load reads a Definition from a file.
func Load(path string, opts ...Option) (def *Definition, err error) {
	ld := &loader{logger: logrus.New()}
	for _, opt := range opts {
		opt(ld)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("failed to read grammar (%s): %w", path, err)
		return
	}

	format := DetectFormat(path)
	if def, err = Parse(content, format); err != nil {
		err = fmt.Errorf("%s: %w", path, err)
		return
	}
	ld.logger.Debugf("grammar: loaded %d token types from %s (%s)", len(def.TokenTypes), path, format)

	return
}

// Parse decodes a Definition.
func Parse(content []byte, format Format) (def *Definition, err error) {
	def = new(Definition)

	switch format {
	case FormatTOML:
		err = toml.Unmarshal(content, def)
	case FormatYAML:
		err = yaml.Unmarshal(content, def)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s parse error: %v", ErrGrammar, format, err)
	}

	return
}

// Lexer instantiates a Lexer registering the defined token types in order.
//
// opts are applied after the Definition's language name.
func (d *Definition) Lexer(opts ...lexer.Option) (l *lexer.Lexer, err error) {
	opts = append([]lexer.Option{lexer.WithLanguageName(d.Language)}, opts...)
	l = lexer.New(opts...)

	for index := range d.TokenTypes {
		var tt lexer.TokenType
		if tt, err = d.TokenTypes[index].Build(); err != nil {
			return nil, fmt.Errorf("token type %d: %w", index, err)
		}

		if err = l.AddTokenType(tt); err != nil {
			return nil, fmt.Errorf("token type %d: %w", index, err)
		}
	}

	return
}

// Build converts the definition into a TokenType.
func (t *TokenTypeDefinition) Build() (tt lexer.TokenType, err error) {
	recognizers := 0
	for _, v := range []string{t.Standard, t.Pattern, t.Literal} {
		if v != "" {
			recognizers++
		}
	}
	if recognizers > 1 {
		err = fmt.Errorf("%w: %s", ErrAmbiguousRecognizer, t.Name)
		return
	}

	switch {
	case t.Standard != "":
		var ok bool
		if tt, ok = lexer.Standard(t.Standard); !ok {
			err = fmt.Errorf("%w: %s", ErrUnknownStandard, t.Standard)
			return
		}
	case t.Literal != "":
		tt = lexer.Constant(t.Literal, t.Name)
	case t.Pattern != "":
		var p *lexer.Pattern
		if p, err = lexer.NewPattern(t.Pattern); err != nil {
			return
		}
		tt.Recognizer = p
	}
	// A definition lacking a recognizer is rejected at registration.

	if t.Name != "" {
		tt.Name = t.Name
	}
	if t.Role != nil {
		tt.Role = t.Role
	}
	if t.Ignore != nil {
		tt.Ignore = *t.Ignore
	}

	if t.Interpret != "" {
		tt.Interpret, err = interpreter(t.Interpret)
	}

	return
}

// interpreter resolves an interpreter by name.
func interpreter(name string) (lexer.Interpreter, error) {
	switch name {
	case InterpretString:
		return nil, nil
	case InterpretInteger:
		return lexer.Integer().Interpret, nil
	case InterpretFloat:
		return lexer.FloatingPoint().Interpret, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownInterpreter, name)
	}
}
