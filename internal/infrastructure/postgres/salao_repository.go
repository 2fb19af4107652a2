package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sgsx-app/sgsx-db/internal/domain/entity"
)

// SalaoRepo persistência de salões (tenants).
type SalaoRepo struct {
	db DB
}

// NewSalaoRepo constrói o adaptador de persistência para salões.
func NewSalaoRepo(db DB) *SalaoRepo {
	return &SalaoRepo{db: db}
}

// BuscarPorNome obtém um salão pelo nome. Devolve nil, nil se não existir.
func (r *SalaoRepo) BuscarPorNome(ctx context.Context, nome string) (*entity.Salao, error) {
	query := `
		SELECT id, nome, COALESCE(cnpj, ''), COALESCE(email, ''), COALESCE(telefone, ''),
		       COALESCE(endereco, ''), ativo, created_at, updated_at
		FROM sgsx.saloes WHERE nome = $1 LIMIT 1`
	var s entity.Salao
	err := r.db.QueryRow(ctx, query, nome).Scan(
		&s.ID, &s.Nome, &s.CNPJ, &s.Email, &s.Telefone,
		&s.Endereco, &s.Ativo, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar salao por nome: %w", err)
	}
	return &s, nil
}

// Criar persiste um novo salão. Flags e timestamps ficam com os defaults do banco.
func (r *SalaoRepo) Criar(ctx context.Context, s *entity.Salao) error {
	query := `
		INSERT INTO sgsx.saloes (id, nome, cnpj, email, telefone, endereco)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, s.ID, s.Nome, s.CNPJ, s.Email, s.Telefone, s.Endereco)
	if err != nil {
		return fmt.Errorf("insert salao: %w", err)
	}
	return nil
}
