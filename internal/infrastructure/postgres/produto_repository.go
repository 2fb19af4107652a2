package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sgsx-app/sgsx-db/internal/domain"
	"github.com/sgsx-app/sgsx-db/internal/domain/entity"
)

// ProdutoRepo persistência de produtos de estoque.
type ProdutoRepo struct {
	db DB
}

// NewProdutoRepo constrói o adaptador de persistência para produtos.
func NewProdutoRepo(db DB) *ProdutoRepo {
	return &ProdutoRepo{db: db}
}

// Criar persiste um novo produto de um salão.
func (r *ProdutoRepo) Criar(ctx context.Context, p *entity.Produto) error {
	query := `
		INSERT INTO sgsx.produtos (id, salao_id, nome, codigo, descricao, categoria, marca,
		                           preco_custo, preco_venda, estoque_atual, estoque_minimo, unidade_medida)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.SalaoID, p.Nome, p.Codigo, p.Descricao, p.Categoria, p.Marca,
		p.PrecoCusto, p.PrecoVenda, p.EstoqueAtual, p.EstoqueMinimo, p.UnidadeMedida,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrSalaoInexistente
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// BuscarPorID obtém um produto pelo id. Devolve nil, nil se não existir.
func (r *ProdutoRepo) BuscarPorID(ctx context.Context, id string) (*entity.Produto, error) {
	query := `
		SELECT id, salao_id, nome, COALESCE(codigo, ''), COALESCE(descricao, ''),
		       COALESCE(categoria, ''), COALESCE(marca, ''), preco_custo, preco_venda,
		       estoque_atual, estoque_minimo, unidade_medida, ativo, created_at, updated_at
		FROM sgsx.produtos WHERE id = $1`
	var p entity.Produto
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.SalaoID, &p.Nome, &p.Codigo, &p.Descricao,
		&p.Categoria, &p.Marca, &p.PrecoCusto, &p.PrecoVenda,
		&p.EstoqueAtual, &p.EstoqueMinimo, &p.UnidadeMedida, &p.Ativo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar produto: %w", err)
	}
	return &p, nil
}
