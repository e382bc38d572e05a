package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitForStop(t *testing.T) {
	t.Run("server error is returned", func(t *testing.T) {
		errs := make(chan error, 1)
		bindErr := errors.New("listen tcp :8080: bind: address already in use")
		errs <- bindErr

		err := waitForStop(context.Background(), errs)
		require.Error(t, err)
		assert.ErrorIs(t, err, bindErr)
	})

	t.Run("clean server exit", func(t *testing.T) {
		errs := make(chan error)
		close(errs)

		assert.NoError(t, waitForStop(context.Background(), errs))
	})

	t.Run("signal", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.NoError(t, waitForStop(ctx, make(chan error)))
	})
}
