// SPDX-License-Identifier: MIT
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"gitlab.com/fisherprime/canto/lexer"
)

type (
	tokenOutput struct {
		Content   any    `json:"content" yaml:"content"`
		Type      string `json:"type" yaml:"type"`
		Line      int    `json:"line" yaml:"line"`
		Character int    `json:"character" yaml:"character"`
	}

	inputOutput struct {
		Path   string        `json:"path" yaml:"path"`
		Tokens []tokenOutput `json:"tokens" yaml:"tokens"`
	}
)

// Output formats.
const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatText = "text"
)

var errUnknownFormat = errors.New("unknown output format")

func newInputOutput(path string, tokens []lexer.Token) inputOutput {
	out := inputOutput{Path: path, Tokens: make([]tokenOutput, len(tokens))}
	for index, token := range tokens {
		out.Tokens[index] = tokenOutput{
			Content:   token.Content,
			Type:      token.Type,
			Line:      token.Line,
			Character: token.Character,
		}
	}

	return out
}

// render writes v in the requested format; text falls back to fmt's %v per element.
func render(w io.Writer, format string, v any) (err error) {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(v); err == nil {
			err = enc.Close()
		}
	case formatText:
		_, err = fmt.Fprintln(w, v)
	default:
		err = fmt.Errorf("%w: %s", errUnknownFormat, format)
	}

	return
}
