package postgres

import (
	"context"
	"fmt"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/sgsx-app/sgsx-db/pkg/config"
)

// Connect abre uma conexão única com o PostgreSQL alvo. O bootstrap é
// sequencial e roda em uma instância por vez, então não há pool: cada
// statement executa e commita imediatamente nessa conexão (auto-commit).
func Connect(ctx context.Context, cfg config.DBConfig) (*pgx.Conn, error) {
	connCfg, err := pgx.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	conn, err := pgx.ConnectConfig(ctx, connCfg)
	if err != nil {
		return nil, fmt.Errorf("conectar: %w", err)
	}

	// Codec NUMERIC/DECIMAL -> shopspring/decimal
	pgxdecimal.Register(conn.TypeMap())

	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return conn, nil
}
