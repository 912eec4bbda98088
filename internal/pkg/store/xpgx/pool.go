package xpgx

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Sqlizer — собранный squirrel-запрос.
type Sqlizer interface {
	ToSql() (string, []interface{}, error)
}

// Queryer — исполнитель запросов; реализуется и пулом, и транзакцией.
type Queryer interface {
	Execx(ctx context.Context, query Sqlizer) (pgconn.CommandTag, error)
	Getx(ctx context.Context, dest interface{}, query Sqlizer) error
	Selectx(ctx context.Context, dest interface{}, query Sqlizer) error
}

type Pool interface {
	Queryer
	InTx(ctx context.Context, fn func(ctx context.Context, q Queryer) error) error
	Close()
}

type database interface {
	pgxscan.Querier
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type queryer struct {
	db database
}

func (q *queryer) Execx(ctx context.Context, query Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("failed to build query: %w", err)
	}

	return q.db.Exec(ctx, sql, args...)
}

func (q *queryer) Getx(ctx context.Context, dest interface{}, query Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	return pgxscan.Get(ctx, q.db, dest, sql, args...)
}

func (q *queryer) Selectx(ctx context.Context, dest interface{}, query Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	return pgxscan.Select(ctx, q.db, dest, sql, args...)
}

type pool struct {
	queryer
	db *pgxpool.Pool
}

func NewPool(db *pgxpool.Pool) Pool {
	return &pool{queryer: queryer{db: db}, db: db}
}

// InTx выполняет fn в одной транзакции: commit при nil, rollback при ошибке.
func (p *pool) InTx(ctx context.Context, fn func(ctx context.Context, q Queryer) error) error {
	return pgx.BeginFunc(ctx, p.db, func(tx pgx.Tx) error {
		return fn(ctx, &queryer{db: tx})
	})
}

func (p *pool) Close() {
	p.db.Close()
}
