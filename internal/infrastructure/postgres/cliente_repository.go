package postgres

import (
	"context"
	"fmt"

	"github.com/sgsx-app/sgsx-db/internal/domain"
	"github.com/sgsx-app/sgsx-db/internal/domain/entity"
)

// ClienteRepo persistência de clientes.
type ClienteRepo struct {
	db DB
}

// NewClienteRepo constrói o adaptador de persistência para clientes.
func NewClienteRepo(db DB) *ClienteRepo {
	return &ClienteRepo{db: db}
}

// Criar persiste um novo cliente. Devolve ErrSalaoInexistente se o salão
// referenciado não existe (isolamento de tenant).
func (r *ClienteRepo) Criar(ctx context.Context, c *entity.Cliente) error {
	query := `
		INSERT INTO sgsx.clientes (id, salao_id, filial_id, nome, cpf, email, telefone,
		                           whatsapp, data_nascimento, genero, endereco, observacoes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.SalaoID, c.FilialID, c.Nome, c.CPF, c.Email, c.Telefone,
		c.WhatsApp, c.DataNascimento, c.Genero, c.Endereco, c.Observacoes,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrSalaoInexistente
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}
