package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sgsx-app/sgsx-db/internal/domain/entity"
)

// PerfilRepo persistência de perfis de acesso.
type PerfilRepo struct {
	db DB
}

// NewPerfilRepo constrói o adaptador de persistência para perfis.
func NewPerfilRepo(db DB) *PerfilRepo {
	return &PerfilRepo{db: db}
}

// BuscarSistemaPorCodigo obtém um perfil global de sistema pelo código
// (salao_id nulo). Devolve nil, nil se não existir.
func (r *PerfilRepo) BuscarSistemaPorCodigo(ctx context.Context, codigo string) (*entity.Perfil, error) {
	query := `
		SELECT id, codigo, nome, COALESCE(descricao, ''), permissoes, nivel_acesso,
		       sistema, ativo, created_at, updated_at
		FROM sgsx.perfis WHERE codigo = $1 AND salao_id IS NULL`
	var p entity.Perfil
	err := r.db.QueryRow(ctx, query, codigo).Scan(
		&p.ID, &p.Codigo, &p.Nome, &p.Descricao, &p.Permissoes, &p.NivelAcesso,
		&p.Sistema, &p.Ativo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar perfil de sistema: %w", err)
	}
	return &p, nil
}

// Criar persiste um novo perfil. SalaoID nulo indica perfil global de sistema.
func (r *PerfilRepo) Criar(ctx context.Context, p *entity.Perfil) error {
	permissoes, err := json.Marshal(p.Permissoes)
	if err != nil {
		return fmt.Errorf("serializar permissoes: %w", err)
	}
	query := `
		INSERT INTO sgsx.perfis (id, salao_id, codigo, nome, descricao, nivel_acesso, permissoes, sistema)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.db.Exec(ctx, query,
		p.ID, p.SalaoID, p.Codigo, p.Nome, p.Descricao, p.NivelAcesso, string(permissoes), p.Sistema,
	)
	if err != nil {
		return fmt.Errorf("insert perfil: %w", err)
	}
	return nil
}
