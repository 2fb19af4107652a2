package postgres

import (
	"context"
	"fmt"

	"github.com/sgsx-app/sgsx-db/internal/domain"
	"github.com/sgsx-app/sgsx-db/internal/domain/entity"
)

// ComandaRepo persistência de comandas, itens e pagamentos.
type ComandaRepo struct {
	db DB
}

// NewComandaRepo constrói o adaptador de persistência para comandas.
func NewComandaRepo(db DB) *ComandaRepo {
	return &ComandaRepo{db: db}
}

// Criar persiste uma nova comanda e preenche o número sequencial de exibição
// gerado pelo banco.
func (r *ComandaRepo) Criar(ctx context.Context, c *entity.Comanda) error {
	query := `
		INSERT INTO sgsx.comandas (id, salao_id, filial_id, cliente_id, usuario_id,
		                           nome_cliente, status, subtotal, desconto, acrescimo, total, observacoes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING numero`
	err := r.db.QueryRow(ctx, query,
		c.ID, c.SalaoID, c.FilialID, c.ClienteID, c.UsuarioID,
		c.NomeCliente, c.Status, c.Subtotal, c.Desconto, c.Acrescimo, c.Total, c.Observacoes,
	).Scan(&c.Numero)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrSalaoInexistente
		}
		return fmt.Errorf("insert comanda: %w", err)
	}
	return nil
}

// AdicionarItem persiste uma linha de serviço ou produto na comanda.
func (r *ComandaRepo) AdicionarItem(ctx context.Context, i *entity.ComandaItem) error {
	query := `
		INSERT INTO sgsx.comanda_itens (id, comanda_id, tipo, servico_id, produto_id, colaborador_id,
		                                descricao, quantidade, valor_unitario, valor_total,
		                                comissao_percentual, comissao_valor)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		i.ID, i.ComandaID, i.Tipo, i.ServicoID, i.ProdutoID, i.ColaboradorID,
		i.Descricao, i.Quantidade, i.ValorUnitario, i.ValorTotal,
		i.ComissaoPercentual, i.ComissaoValor,
	)
	if err != nil {
		return fmt.Errorf("insert comanda_item: %w", err)
	}
	return nil
}

// RegistrarPagamento persiste um pagamento da comanda por um tipo de recebimento.
func (r *ComandaRepo) RegistrarPagamento(ctx context.Context, p *entity.ComandaPagamento) error {
	query := `
		INSERT INTO sgsx.comanda_pagamentos (id, comanda_id, tipo_recebimento_id, valor)
		VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, query, p.ID, p.ComandaID, p.TipoRecebimentoID, p.Valor)
	if err != nil {
		return fmt.Errorf("insert comanda_pagamento: %w", err)
	}
	return nil
}
