// SPDX-License-Identifier: MIT
package lexer

import "fmt"

type (
	// Token is one classified, positioned unit of lexical output.
	Token struct {
		// Content is the interpreted value, or the consumed text absent an interpreter.
		Content any

		// Type is the Name of the TokenType that produced this Token.
		Type string

		// Line & Character are the 1-based position of the Token's first character.
		Line      int
		Character int
	}
)

// String is the fmt.Stringer implementation for Token.
func (t Token) String() string {
	return fmt.Sprintf("%s(%v)@%d.%d", t.Type, t.Content, t.Line, t.Character)
}
