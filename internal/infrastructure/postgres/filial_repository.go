package postgres

import (
	"context"
	"fmt"

	"github.com/sgsx-app/sgsx-db/internal/domain"
	"github.com/sgsx-app/sgsx-db/internal/domain/entity"
)

// FilialRepo persistência de filiais.
type FilialRepo struct {
	db DB
}

// NewFilialRepo constrói o adaptador de persistência para filiais.
func NewFilialRepo(db DB) *FilialRepo {
	return &FilialRepo{db: db}
}

// Criar persiste uma nova filial de um salão.
func (r *FilialRepo) Criar(ctx context.Context, f *entity.Filial) error {
	query := `
		INSERT INTO sgsx.filiais (id, salao_id, nome, endereco, telefone, email)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, f.ID, f.SalaoID, f.Nome, f.Endereco, f.Telefone, f.Email)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrSalaoInexistente
		}
		return fmt.Errorf("insert filial: %w", err)
	}
	return nil
}

// ContarPorSalao devolve o número de filiais de um salão.
func (r *FilialRepo) ContarPorSalao(ctx context.Context, salaoID string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM sgsx.filiais WHERE salao_id = $1`, salaoID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("contar filiais: %w", err)
	}
	return n, nil
}
