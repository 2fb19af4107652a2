package postgres

import (
	"context"
	"fmt"

	"github.com/sgsx-app/sgsx-db/internal/domain"
	"github.com/sgsx-app/sgsx-db/internal/domain/entity"
)

// TipoRecebimentoRepo persistência de formas de pagamento.
type TipoRecebimentoRepo struct {
	db DB
}

// NewTipoRecebimentoRepo constrói o adaptador de persistência para tipos de recebimento.
func NewTipoRecebimentoRepo(db DB) *TipoRecebimentoRepo {
	return &TipoRecebimentoRepo{db: db}
}

// Criar persiste um novo tipo de recebimento de um salão.
func (r *TipoRecebimentoRepo) Criar(ctx context.Context, t *entity.TipoRecebimento) error {
	query := `
		INSERT INTO sgsx.tipos_recebimento (id, salao_id, nome, descricao, taxa_percentual, dias_recebimento)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		t.ID, t.SalaoID, t.Nome, t.Descricao, t.TaxaPercentual, t.DiasRecebimento,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrSalaoInexistente
		}
		return fmt.Errorf("insert tipo_recebimento: %w", err)
	}
	return nil
}

// ContarPorSalao devolve o número de tipos de recebimento de um salão.
func (r *TipoRecebimentoRepo) ContarPorSalao(ctx context.Context, salaoID string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM sgsx.tipos_recebimento WHERE salao_id = $1`, salaoID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("contar tipos_recebimento: %w", err)
	}
	return n, nil
}
