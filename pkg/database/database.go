// Package database owns the PostgreSQL connection pool.
//
// The pool is a pgxpool.Pool; repositories and the Watermill SQL transport
// talk to it through a *sql.DB opened on top of the same pool, so a single
// set of connections serves both and transactions can span business writes
// and outbox inserts.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/ghuser/itemcatalog/pkg/logger"
)

const (
	defaultMaxConns        = 10
	defaultMinConns        = 2
	defaultMaxConnIdleTime = 5 * time.Minute
	pingTimeout            = 5 * time.Second
)

// Database bundles the pgx pool with its database/sql view.
type Database struct {
	pool *pgxpool.Pool
	db   *sql.DB
	log  logger.Logger
}

// NewPool parses url, opens a pool and verifies connectivity.
func NewPool(ctx context.Context, url string, log logger.Logger) (*Database, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("database: parse config: %w", err)
	}
	cfg.MaxConns = defaultMaxConns
	cfg.MinConns = defaultMinConns
	cfg.MaxConnIdleTime = defaultMaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("database: create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	return &Database{
		pool: pool,
		db:   stdlib.OpenDBFromPool(pool),
		log:  log,
	}, nil
}

// DB returns the database/sql handle backed by the pool.
func (d *Database) DB() *sql.DB {
	return d.db
}

// Pool returns the underlying pgx pool.
func (d *Database) Pool() *pgxpool.Pool {
	return d.pool
}

// WithTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise (including on panic, which is re-raised).
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("database: begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			d.log.ErrorContext(ctx, "database: rollback failed", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("database: commit tx: %w", err)
	}
	return nil
}

// Ping checks the database connection health.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.pool.Ping(ctx); err != nil {
		return fmt.Errorf("database: ping: %w", err)
	}
	return nil
}

// Close closes the database/sql handle and then the pool.
func (d *Database) Close() {
	_ = d.db.Close()
	d.pool.Close()
}
