// SPDX-License-Identifier: MIT
package lexer

import (
	"context"
	"errors"
	"fmt"

	"github.com/panjf2000/ants/v2"

	"gitlab.com/fisherprime/canto/types"
)

// ErrWorkerPool is returned when TokenizeAll cannot schedule its work.
var ErrWorkerPool = errors.New("tokenize worker pool failure")

// TokenizeAll tokenizes independent texts in parallel.
//
// Results are ordered as texts. Failures are joined & prefixed with the failing input's index;
// no results are returned on failure.
func (l *Lexer) TokenizeAll(ctx context.Context, texts []string) (results [][]Token, err error) {
	if len(texts) < 1 {
		return [][]Token{}, nil
	}

	if len(l.tokenTypes) < 1 {
		err = ErrNoTokenTypes
		return
	}

	pool, err := ants.NewPool(l.cfg.Workers)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrWorkerPool, err)
		return
	}
	defer pool.Release()

	// Buffered to the number of inputs; each input reports at most once, so senders never block
	// on abandoned channels.
	done := make(chan bool, len(texts))
	errChan := make(chan error, len(texts))

	// Each worker writes a distinct index.
	out := make([][]Token, len(texts))

	// Submit blocks while every worker is busy; submitting apart lets ctx end the wait.
	go func() {
		for index := range texts {
			if ctx.Err() != nil {
				return
			}

			if sErr := pool.Submit(func() {
				tokens, tErr := l.Tokenize(texts[index])
				if tErr != nil {
					errChan <- fmt.Errorf("input %d: %w", index, tErr)
					return
				}
				out[index] = tokens
				done <- true
			}); sErr != nil {
				errChan <- fmt.Errorf("input %d: %w: %v", index, ErrWorkerPool, sErr)
			}
		}
	}()

	if err = types.MonitorChannels(ctx, len(texts), done, errChan, "tokenize"); err != nil {
		return
	}

	if l.cfg.Debug {
		l.cfg.Logger.Debugf("lexer: tokenized %d inputs", len(texts))
	}

	return out, nil
}
