// SPDX-License-Identifier: MIT
package types

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTest = errors.New("test failure")

func TestMonitorChannels(t *testing.T) {
	t.Run("invalid count", func(t *testing.T) {
		err := MonitorChannels(context.Background(), 0, nil, nil, "op")
		assert.ErrorIs(t, err, ErrInvalidGoroutineCount)
	})

	t.Run("all done", func(t *testing.T) {
		done, errChan := make(chan bool, 3), make(chan error, 3)
		for index := 0; index < 3; index++ {
			done <- true
		}

		assert.NoError(t, MonitorChannels(context.Background(), 3, done, errChan, "op"))
	})

	t.Run("failures are joined", func(t *testing.T) {
		done, errChan := make(chan bool, 3), make(chan error, 3)
		done <- true
		errChan <- errTest
		errChan <- context.DeadlineExceeded

		err := MonitorChannels(context.Background(), 3, done, errChan, "op")
		require.Error(t, err)
		assert.ErrorIs(t, err, errTest)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Contains(t, err.Error(), "op: ")
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := MonitorChannels(ctx, 1, make(chan bool), make(chan error), "op")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
