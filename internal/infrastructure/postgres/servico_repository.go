package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sgsx-app/sgsx-db/internal/domain"
	"github.com/sgsx-app/sgsx-db/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ServicoRepo persistência de serviços.
type ServicoRepo struct {
	db DB
}

// NewServicoRepo constrói o adaptador de persistência para serviços.
func NewServicoRepo(db DB) *ServicoRepo {
	return &ServicoRepo{db: db}
}

// Criar persiste um novo serviço de um salão.
func (r *ServicoRepo) Criar(ctx context.Context, s *entity.Servico) error {
	query := `
		INSERT INTO sgsx.servicos (id, salao_id, nome, descricao, preco, duracao_minutos, comissao_percentual)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		s.ID, s.SalaoID, s.Nome, s.Descricao, s.Preco, s.DuracaoMinutos, s.ComissaoPercentual,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrSalaoInexistente
		}
		return fmt.Errorf("insert servico: %w", err)
	}
	return nil
}

// BuscarPorID obtém um serviço pelo id. Devolve nil, nil se não existir.
func (r *ServicoRepo) BuscarPorID(ctx context.Context, id string) (*entity.Servico, error) {
	query := `
		SELECT id, salao_id, nome, COALESCE(descricao, ''), preco, duracao_minutos,
		       comissao_percentual, ativo, created_at, updated_at
		FROM sgsx.servicos WHERE id = $1`
	var s entity.Servico
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.SalaoID, &s.Nome, &s.Descricao, &s.Preco, &s.DuracaoMinutos,
		&s.ComissaoPercentual, &s.Ativo, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar servico: %w", err)
	}
	return &s, nil
}

// AtualizarPreco altera o preço de um serviço. O updated_at é atualizado
// pelo trigger do banco, nunca pelo chamador.
func (r *ServicoRepo) AtualizarPreco(ctx context.Context, id string, preco decimal.Decimal) error {
	tag, err := r.db.Exec(ctx, `UPDATE sgsx.servicos SET preco = $2 WHERE id = $1`, id, preco)
	if err != nil {
		return fmt.Errorf("update preco servico: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// ContarPorSalao devolve o número de serviços de um salão.
func (r *ServicoRepo) ContarPorSalao(ctx context.Context, salaoID string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM sgsx.servicos WHERE salao_id = $1`, salaoID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("contar servicos: %w", err)
	}
	return n, nil
}
