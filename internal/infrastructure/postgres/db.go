package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB é o subconjunto de pgx usado pelos repositórios. É satisfeito por
// *pgx.Conn, *pgxpool.Pool e pgx.Tx, o que permite reusar os repositórios
// na conexão única do bootstrap e nos testes.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ DB = (*pgx.Conn)(nil)
