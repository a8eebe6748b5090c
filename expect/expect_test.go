// SPDX-License-Identifier: MIT
package expect

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"gitlab.com/fisherprime/canto/lexer"
)

type recordingT struct {
	failures []string
}

func (r *recordingT) Errorf(format string, args ...any) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func tokens() []lexer.Token {
	return []lexer.Token{
		{Content: "foo", Type: "name", Line: 1, Character: 1},
		{Content: 1, Type: "integer", Line: 1, Character: 5},
	}
}

func TestCheckTokenTypes(t *testing.T) {
	tests := []struct {
		name       string
		expected   []string
		wantErr    error
		wantErrMsg string
	}{
		{name: "match", expected: []string{"name", "integer"}},
		{
			name:       "count",
			expected:   []string{"name"},
			wantErr:    ErrTokenCount,
			wantErrMsg: "expected 1 tokens but found 2",
		},
		{
			name:       "type",
			expected:   []string{"name", "comma"},
			wantErr:    ErrTokenType,
			wantErrMsg: "expected token type 'comma' but found 'integer' at index 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckTokenTypes(tokens(), tt.expected...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantErrMsg)
		})
	}
}

func TestCheckTokenContent(t *testing.T) {
	assert.NoError(t, CheckTokenContent(tokens(), "foo", 1))
	assert.ErrorIs(t, CheckTokenContent(tokens(), "foo"), ErrTokenCount)

	err := CheckTokenContent(tokens(), "foo", "1")
	assert.ErrorIs(t, err, ErrContent)
	assert.Contains(t, err.Error(), "at index 1")
}

func TestCheckAt(t *testing.T) {
	token := tokens()[1]

	assert.NoError(t, CheckAt(token, 1, 5))

	err := CheckAt(token, 2, 5)
	assert.ErrorIs(t, err, ErrPosition)
	assert.Contains(t, err.Error(), "expected line to be 2 but it was 1")

	err = CheckAt(token, 1, 6)
	assert.ErrorIs(t, err, ErrPosition)
	assert.Contains(t, err.Error(), "expected character to be 6 but it was 5")
}

func TestAssertions(t *testing.T) {
	rt := &recordingT{}

	assert.True(t, TokenTypes(rt, tokens(), "name", "integer"))
	assert.True(t, TokenContent(rt, tokens(), "foo", 1))
	assert.True(t, At(rt, tokens()[0], 1, 1))
	assert.Empty(t, rt.failures)

	assert.False(t, TokenTypes(rt, tokens(), "integer", "name"))
	assert.False(t, TokenContent(rt, tokens(), "bar", 1))
	assert.False(t, At(rt, tokens()[0], 1, 2))
	assert.Len(t, rt.failures, 3)
}
