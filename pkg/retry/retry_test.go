package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoshop/storefront/pkg/retry"
)

func TestDo(t *testing.T) {
	t.Run("SucceedsFirstAttempt", func(t *testing.T) {
		var calls int

		err := retry.Do(t.Context(), retry.Config{MaxAttempts: 3}, func() error {
			calls++
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("RetriesUntilSuccess", func(t *testing.T) {
		var calls int
		c := retry.Config{
			MaxAttempts: 5,
			Backoff:     retry.LinearBackoff(time.Millisecond),
		}

		err := retry.Do(t.Context(), c, func() error {
			calls++
			if calls < 3 {
				return errors.New("not yet")
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("ReturnsLastErrorAfterMaxAttempts", func(t *testing.T) {
		var calls int
		wantErr := errors.New("still down")
		c := retry.Config{
			MaxAttempts: 3,
			Backoff:     retry.LinearBackoff(time.Millisecond),
		}

		err := retry.Do(t.Context(), c, func() error {
			calls++
			return wantErr
		})

		assert.ErrorIs(t, err, wantErr)
		assert.Equal(t, 3, calls)
	})

	t.Run("ShouldRetryStopsEarly", func(t *testing.T) {
		var calls int
		fatal := errors.New("fatal")
		c := retry.Config{
			MaxAttempts: 5,
			Backoff:     retry.LinearBackoff(time.Millisecond),
			ShouldRetry: func(err error) bool { return !errors.Is(err, fatal) },
		}

		err := retry.Do(t.Context(), c, func() error {
			calls++
			return fatal
		})

		assert.ErrorIs(t, err, fatal)
		assert.Equal(t, 1, calls)
	})

	t.Run("CancelledContextFailsFast", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var calls int
		err := retry.Do(ctx, retry.Config{MaxAttempts: 3}, func() error {
			calls++
			return nil
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, calls)
	})

	t.Run("CancelWhileWaitingKeepsCause", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		cause := errors.New("refused")
		c := retry.Config{
			MaxAttempts: 3,
			Backoff:     retry.LinearBackoff(time.Second),
		}

		err := retry.Do(ctx, c, func() error {
			cancel()
			return cause
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, err, cause)
	})
}

func TestDoWithResult(t *testing.T) {
	t.Run("ReturnsResult", func(t *testing.T) {
		got, err := retry.DoWithResult(t.Context(), retry.Config{}, func() (int, error) {
			return 42, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("ZeroValueOnFailure", func(t *testing.T) {
		c := retry.Config{
			MaxAttempts: 2,
			Backoff:     retry.LinearBackoff(time.Millisecond),
		}

		got, err := retry.DoWithResult(t.Context(), c, func() (string, error) {
			return "partial", errors.New("broken")
		})

		require.Error(t, err)
		assert.Empty(t, got)
	})
}
