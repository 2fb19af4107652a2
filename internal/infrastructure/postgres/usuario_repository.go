package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sgsx-app/sgsx-db/internal/domain"
	"github.com/sgsx-app/sgsx-db/internal/domain/entity"
)

// UsuarioRepo persistência de usuários.
type UsuarioRepo struct {
	db DB
}

// NewUsuarioRepo constrói o adaptador de persistência para usuários.
func NewUsuarioRepo(db DB) *UsuarioRepo {
	return &UsuarioRepo{db: db}
}

// BuscarPorEmail obtém um usuário pelo email (único global). Devolve nil, nil
// se não existir.
func (r *UsuarioRepo) BuscarPorEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	query := `
		SELECT id, salao_id, filial_id, perfil_id, nome, email, senha_hash, perfil,
		       ativo, ultimo_acesso, created_at, updated_at
		FROM sgsx.usuarios WHERE email = $1 LIMIT 1`
	var u entity.Usuario
	err := r.db.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.SalaoID, &u.FilialID, &u.PerfilID, &u.Nome, &u.Email, &u.SenhaHash, &u.Perfil,
		&u.Ativo, &u.UltimoAcesso, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar usuario por email: %w", err)
	}
	return &u, nil
}

// Criar persiste um novo usuário. Devolve ErrEmailJaCadastrado se o email já
// existir em qualquer tenant.
func (r *UsuarioRepo) Criar(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO sgsx.usuarios (id, salao_id, filial_id, perfil_id, nome, email, senha_hash, perfil)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		u.ID, u.SalaoID, u.FilialID, u.PerfilID, u.Nome, u.Email, u.SenhaHash, u.Perfil,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailJaCadastrado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}
