package db

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/swiftparcel/tracker/internal/config"
)

var (
	mu       sync.Mutex
	database *Database
)

// Connect returns the process-wide database handle, creating the
// underlying connection pool on first use. Concurrent first use is
// serialized so only a single pool can ever exist at a time.
func Connect(ctx context.Context, cfg *config.Config) (*Database, error) {
	mu.Lock()
	defer mu.Unlock()

	if database != nil {
		return database, nil
	}

	poolCfg, err := pgxpool.ParseConfig(generateDsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}
	poolCfg.MaxConns = cfg.PoolMaxConns
	poolCfg.MaxConnIdleTime = cfg.PoolMaxConnIdleTime
	poolCfg.HealthCheckPeriod = cfg.PoolHealthCheckPeriod

	pool, err := pgxpool.ConnectConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	database = NewDatabase(pool)
	return database, nil
}

// Close drains and discards the shared pool. A later Connect call
// creates a fresh one; used for shutdown and test teardown.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if database != nil {
		database.cluster.Close()
		database = nil
	}
}

func generateDsn(cfg *config.Config) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
}
