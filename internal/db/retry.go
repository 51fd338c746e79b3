package db

import (
	"context"
	"errors"
	"syscall"
	"time"

	"github.com/jackc/pgconn"
	"go.uber.org/zap"

	"github.com/swiftparcel/tracker/internal/metrics"
)

const retryAttempts = 3

var retryBaseDelay = 500 * time.Millisecond

// SQLSTATE codes treated as transient connection failures.
const (
	codeTooManyConnections = "53300" // too_many_connections
	codeAdminShutdown      = "57P01" // server closed the connection
	codeConnectionRefused  = "08001" // sqlclient_unable_to_establish_sqlconnection
	codeConnectionFailure  = "08006" // connection_failure
)

// WithRetry re-runs op when it fails with a transient connection
// error, waiting retryBaseDelay*attempt between attempts, up to
// retryAttempts attempts total. Any other error propagates
// immediately.
//
// op must be a pure read or a fully self-contained transaction: a
// retried transaction re-runs from BeginTx, so partial effects never
// survive an aborted attempt.
func WithRetry(ctx context.Context, op func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 1; attempt <= retryAttempts; attempt++ {
		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}
		if !isTransient(lastErr) {
			return lastErr
		}

		metrics.DBRetriesTotal.Inc()
		zap.L().Warn("transient database error",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", retryAttempts),
			zap.Error(lastErr))

		if attempt == retryAttempts {
			break
		}

		select {
		case <-time.After(retryBaseDelay * time.Duration(attempt)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return lastErr
}

func isTransient(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeTooManyConnections, codeAdminShutdown, codeConnectionRefused, codeConnectionFailure:
			return true
		}
		return false
	}
	return errors.Is(err, syscall.ECONNREFUSED)
}
