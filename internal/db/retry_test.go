package db

import (
	"context"
	"errors"
	"syscall"
	"testing"
	"time"

	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shrinkBackoff(t *testing.T) {
	t.Helper()
	old := retryBaseDelay
	retryBaseDelay = time.Millisecond
	t.Cleanup(func() { retryBaseDelay = old })
}

func TestWithRetry(t *testing.T) {
	transientErr := &pgconn.PgError{Code: codeAdminShutdown}

	t.Run("success on first attempt", func(t *testing.T) {
		shrinkBackoff(t)

		calls := 0
		err := WithRetry(context.Background(), func(ctx context.Context) error {
			calls++
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("transient failures then success", func(t *testing.T) {
		shrinkBackoff(t)

		calls := 0
		err := WithRetry(context.Background(), func(ctx context.Context) error {
			calls++
			if calls < 3 {
				return transientErr
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("non-transient error returns immediately", func(t *testing.T) {
		shrinkBackoff(t)

		permanent := errors.New("unique constraint violation")
		calls := 0
		err := WithRetry(context.Background(), func(ctx context.Context) error {
			calls++
			return permanent
		})

		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("exhausted attempts return last error", func(t *testing.T) {
		shrinkBackoff(t)

		calls := 0
		err := WithRetry(context.Background(), func(ctx context.Context) error {
			calls++
			return transientErr
		})

		assert.ErrorIs(t, err, transientErr)
		assert.Equal(t, retryAttempts, calls)
	})

	t.Run("connection refused is transient", func(t *testing.T) {
		shrinkBackoff(t)

		calls := 0
		err := WithRetry(context.Background(), func(ctx context.Context) error {
			calls++
			if calls == 1 {
				return syscall.ECONNREFUSED
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("context cancellation interrupts backoff", func(t *testing.T) {
		old := retryBaseDelay
		retryBaseDelay = time.Minute
		t.Cleanup(func() { retryBaseDelay = old })

		ctx, cancel := context.WithCancel(context.Background())

		calls := 0
		done := make(chan error, 1)
		go func() {
			done <- WithRetry(ctx, func(ctx context.Context) error {
				calls++
				return transientErr
			})
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
			assert.Equal(t, 1, calls)
		case <-time.After(time.Second):
			t.Fatal("WithRetry did not return after cancellation")
		}
	})
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"too many connections", &pgconn.PgError{Code: codeTooManyConnections}, true},
		{"admin shutdown", &pgconn.PgError{Code: codeAdminShutdown}, true},
		{"cannot establish connection", &pgconn.PgError{Code: codeConnectionRefused}, true},
		{"connection failure", &pgconn.PgError{Code: codeConnectionFailure}, true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"connection refused syscall", syscall.ECONNREFUSED, true},
		{"plain error", errors.New("boom"), false},
		{"syntax error", &pgconn.PgError{Code: "42601"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isTransient(tt.err))
		})
	}
}
