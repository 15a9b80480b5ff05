// Package postgres wraps a pgx pool with a squirrel statement builder
// and transaction helpers.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const connectTimeout = 20 * time.Second

// Executor is the subset of pgx operations shared by pools and transactions.
type Executor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres holds the connection pool and the shared statement builder.
type Postgres struct {
	Pool    *pgxpool.Pool
	Builder squirrel.StatementBuilderType

	maxPoolSize int
}

// Option configures the Postgres wrapper.
type Option func(*Postgres)

// MaxPoolSize sets the maximum pool size.
func MaxPoolSize(size int) Option {
	return func(p *Postgres) {
		p.maxPoolSize = size
	}
}

// New connects to the database and returns the wrapper.
func New(connString string, opts ...Option) (*Postgres, error) {
	pg := &Postgres{
		Builder:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		maxPoolSize: 10,
	}
	for _, opt := range opts {
		opt(pg)
	}

	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}
	cfg.MaxConns = int32(pg.maxPoolSize)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	pg.Pool = pool

	return pg, nil
}

// InTransaction runs fn inside a transaction, committing on nil error
// and rolling back otherwise.
func (p *Postgres) InTransaction(ctx context.Context, fn func(tx Executor) error) error {
	tx, err := p.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Close closes the pool.
func (p *Postgres) Close() {
	if p.Pool != nil {
		p.Pool.Close()
	}
}
