package postgres

import (
	"context"
	"fmt"

	"github.com/sgsx-app/sgsx-db/internal/domain"
	"github.com/sgsx-app/sgsx-db/internal/domain/entity"
)

// ColaboradorRepo persistência de colaboradores e seus vínculos com serviços.
type ColaboradorRepo struct {
	db DB
}

// NewColaboradorRepo constrói o adaptador de persistência para colaboradores.
func NewColaboradorRepo(db DB) *ColaboradorRepo {
	return &ColaboradorRepo{db: db}
}

// Criar persiste um novo colaborador.
func (r *ColaboradorRepo) Criar(ctx context.Context, c *entity.Colaborador) error {
	query := `
		INSERT INTO sgsx.colaboradores (id, salao_id, filial_id, nome, cpf, email,
		                                telefone, cargo, data_admissao, comissao_padrao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.SalaoID, c.FilialID, c.Nome, c.CPF, c.Email,
		c.Telefone, c.Cargo, c.DataAdmissao, c.ComissaoPadrao,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrSalaoInexistente
		}
		return fmt.Errorf("insert colaborador: %w", err)
	}
	return nil
}

// VincularServico registra que o colaborador executa o serviço, com comissão
// específica opcional. O par (colaborador, serviço) é único: devolve
// ErrVinculoDuplicado se o vínculo já existir.
func (r *ColaboradorRepo) VincularServico(ctx context.Context, v *entity.ColaboradorServico) error {
	query := `
		INSERT INTO sgsx.colaborador_servicos (id, colaborador_id, servico_id, comissao_especifica)
		VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, query, v.ID, v.ColaboradorID, v.ServicoID, v.ComissaoEspecifica)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrVinculoDuplicado
		}
		return fmt.Errorf("insert colaborador_servico: %w", err)
	}
	return nil
}
