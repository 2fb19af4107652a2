// seed provisiona o schema sgsx e os dados iniciais do SGSx em um PostgreSQL.
//
// Uso: go run ./cmd/seed (sem argumentos; configuração via env/.env).
// Reexecutar é seguro: toda etapa checa existência antes de agir.
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/sgsx-app/sgsx-db/internal/infrastructure/postgres"
	"github.com/sgsx-app/sgsx-db/pkg/config"
	"github.com/sgsx-app/sgsx-db/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuracao: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("SGSx - Inicializacao do Banco de Dados")
	fmt.Println(strings.Repeat("=", 60))

	log.Info().
		Str("host", cfg.DB.Host).
		Int("port", cfg.DB.Port).
		Str("db", cfg.DB.DBName).
		Msg("conectando ao PostgreSQL")

	ctx := context.Background()
	conn, err := postgres.Connect(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexao com o PostgreSQL")
	}
	defer conn.Close(ctx)

	b := postgres.NewBootstrapper(conn, log)
	if err := b.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("bootstrap falhou")
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Inicializacao concluida com sucesso!")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("\nUsuarios criados:")
	for _, u := range postgres.UsuariosPadrao() {
		fmt.Printf("  - %s / %s (%s)\n", u.Email, u.Senha, u.Nome)
	}
}
