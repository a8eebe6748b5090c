// SPDX-License-Identifier: MIT
package types

import (
	"context"
	"errors"
	"fmt"
)

// Synchronization errors.
var (
	ErrInvalidGoroutineCount = errors.New("invalid goroutine count")
)

// MonitorChannels waits for `operations` goroutines to report completion over done or failure
// over errChan.
//
// Failures are joined behind errPrefix, which should be in the singular form. Context
// cancellation stops the wait.
func MonitorChannels(ctx context.Context, operations int, done <-chan bool, errChan <-chan error, errPrefix string) (err error) {
	if operations < 1 {
		err = fmt.Errorf("%s %w: %d", errPrefix, ErrInvalidGoroutineCount, operations)
		return
	}

	var errs []error
	for index := 0; index < operations; index++ {
		select {
		case <-ctx.Done():
			errs = append(errs, ctx.Err())
			return fmt.Errorf("%s: %w", errPrefix, errors.Join(errs...))
		case <-done:
		case e := <-errChan:
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		err = fmt.Errorf("%s: %w", errPrefix, errors.Join(errs...))
	}

	return
}
