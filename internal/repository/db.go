package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/qiwen-ops/passportd/gen/ent"
	"github.com/qiwen-ops/passportd/internal/retry"
)

type Config struct {
	DSN              string
	WriteMaxConns    int32
	WriteConnTimeout time.Duration
	ReadMaxConns     int32
	ReadConnTimeout  time.Duration
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	TimeZone         string
}

// DB bundles the two connection pools. Writes (inserts, status updates,
// result application) go through Write; polling and exports go through
// Read, which is sized smaller and times out faster.
type DB struct {
	Write *ent.Client
	Read  *ent.Client

	WritePool *pgxpool.Pool
	ReadPool  *pgxpool.Pool
}

// openPolicy mirrors the OCR client's backoff shape for pool dial retries.
var openPolicy = retry.Policy{
	MaxAttempts: 5,
	BackoffBase: 5 * time.Second,
	BackoffCap:  30 * time.Second,
}

// Open creates the read and write pools and wraps each for ent. A
// file: or :memory: DSN opens a single SQLite database instead, shared
// by both handles, with auto-migration; that path exists for local runs
// and tests.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "file:") || strings.Contains(cfg.DSN, ":memory:") {
		return openSQLite(ctx, cfg.DSN, logger)
	}

	logger.Info("db.connect", "write_max_conns", cfg.WriteMaxConns, "read_max_conns", cfg.ReadMaxConns, "time_zone", cfg.TimeZone)

	writePool, err := openPool(ctx, cfg, cfg.WriteMaxConns, cfg.WriteConnTimeout, logger)
	if err != nil {
		return nil, fmt.Errorf("open write pool: %w", err)
	}
	readPool, err := openPool(ctx, cfg, cfg.ReadMaxConns, cfg.ReadConnTimeout, logger)
	if err != nil {
		writePool.Close()
		return nil, fmt.Errorf("open read pool: %w", err)
	}

	db := &DB{
		Write:     entClient(writePool),
		Read:      entClient(readPool),
		WritePool: writePool,
		ReadPool:  readPool,
	}
	logger.Info("db.connected")
	return db, nil
}

func openPool(ctx context.Context, cfg Config, maxConns int32, connTimeout time.Duration, logger *slog.Logger) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, err
	}
	pc.MaxConns = maxConns
	pc.MaxConnLifetime = cfg.MaxConnLifetime
	pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	pc.ConnConfig.ConnectTimeout = connTimeout
	pc.ConnConfig.RuntimeParams["application_name"] = "passportd"
	if cfg.TimeZone != "" {
		pc.ConnConfig.RuntimeParams["TimeZone"] = cfg.TimeZone
	}

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, err
	}
	// The pool dials lazily; ping with backoff so a database that is
	// still starting does not fail the whole process.
	err = openPolicy.Do(ctx, func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, connTimeout)
		defer cancel()
		if pingErr := pool.Ping(pingCtx); pingErr != nil {
			logger.Warn("db.ping_failed", "error", pingErr)
			return pingErr
		}
		return nil
	})
	if err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func entClient(pool *pgxpool.Pool) *ent.Client {
	db := stdlib.OpenDBFromPool(pool)
	drv := entsql.OpenDB(dialect.Postgres, db)
	return ent.NewClient(ent.Driver(drv))
}

func openSQLite(ctx context.Context, dsn string, logger *slog.Logger) (*DB, error) {
	logger.Info("db.connect_sqlite", "dsn", dsn)
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	drv := entsql.OpenDB(dialect.SQLite, sqlDB)
	client := ent.NewClient(ent.Driver(drv))
	if err := client.Schema.Create(ctx); err != nil {
		return nil, fmt.Errorf("migrate sqlite schema: %w", err)
	}
	return &DB{Write: client, Read: client}, nil
}

// Close closes the database connections gracefully
func (db *DB) Close(logger *slog.Logger) {
	logger.Info("db.closing")
	if err := db.Write.Close(); err != nil {
		logger.Error("db.close_write_failed", "error", err)
	}
	if db.Read != db.Write {
		if err := db.Read.Close(); err != nil {
			logger.Error("db.close_read_failed", "error", err)
		}
	}
	if db.WritePool != nil {
		db.WritePool.Close()
	}
	if db.ReadPool != nil {
		db.ReadPool.Close()
	}
	logger.Info("db.closed")
}

// HealthCheck pings both pools to catch DSN issues early.
func (db *DB) HealthCheck(ctx context.Context, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if db.WritePool == nil {
		return nil
	}
	if err := db.WritePool.Ping(ctx); err != nil {
		return fmt.Errorf("write pool: %w", err)
	}
	if err := db.ReadPool.Ping(ctx); err != nil {
		return fmt.Errorf("read pool: %w", err)
	}
	return nil
}
