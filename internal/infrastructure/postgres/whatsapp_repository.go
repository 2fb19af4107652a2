package postgres

import (
	"context"
	"fmt"

	"github.com/sgsx-app/sgsx-db/internal/domain"
	"github.com/sgsx-app/sgsx-db/internal/domain/entity"
)

// WhatsAppRepo persistência de sessões e mensagens WhatsApp.
type WhatsAppRepo struct {
	db DB
}

// NewWhatsAppRepo constrói o adaptador de persistência para WhatsApp.
func NewWhatsAppRepo(db DB) *WhatsAppRepo {
	return &WhatsAppRepo{db: db}
}

// CriarSessao persiste uma nova sessão de conexão de um salão.
func (r *WhatsAppRepo) CriarSessao(ctx context.Context, s *entity.SessaoWhatsApp) error {
	query := `
		INSERT INTO sgsx.sessoes_whatsapp (id, salao_id, nome, descricao, numero, status)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, s.ID, s.SalaoID, s.Nome, s.Descricao, s.Numero, s.Status)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrSalaoInexistente
		}
		return fmt.Errorf("insert sessao_whatsapp: %w", err)
	}
	return nil
}

// CriarMensagem registra uma mensagem enviada ou recebida.
func (r *WhatsAppRepo) CriarMensagem(ctx context.Context, m *entity.WhatsAppMensagem) error {
	query := `
		INSERT INTO sgsx.whatsapp_mensagens (id, salao_id, sessao_id, remote_jid, message_id,
		                                     tipo, conteudo, from_me, timestamp, status, cliente_id, comanda_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		m.ID, m.SalaoID, m.SessaoID, m.RemoteJID, m.MessageID,
		m.Tipo, m.Conteudo, m.FromMe, m.Timestamp, m.Status, m.ClienteID, m.ComandaID,
	)
	if err != nil {
		return fmt.Errorf("insert whatsapp_mensagem: %w", err)
	}
	return nil
}

// ListarMensagensRecentes devolve as últimas mensagens de um salão, mais
// recentes primeiro (mesma ordenação do índice de histórico).
func (r *WhatsAppRepo) ListarMensagensRecentes(ctx context.Context, salaoID string, limite int) ([]entity.WhatsAppMensagem, error) {
	query := `
		SELECT id, salao_id, sessao_id, remote_jid, message_id, tipo, COALESCE(conteudo, ''),
		       from_me, timestamp, status, cliente_id, comanda_id, created_at, updated_at
		FROM sgsx.whatsapp_mensagens
		WHERE salao_id = $1
		ORDER BY timestamp DESC
		LIMIT $2`
	rows, err := r.db.Query(ctx, query, salaoID, limite)
	if err != nil {
		return nil, fmt.Errorf("listar mensagens: %w", err)
	}
	defer rows.Close()

	var lista []entity.WhatsAppMensagem
	for rows.Next() {
		var m entity.WhatsAppMensagem
		if err := rows.Scan(
			&m.ID, &m.SalaoID, &m.SessaoID, &m.RemoteJID, &m.MessageID, &m.Tipo, &m.Conteudo,
			&m.FromMe, &m.Timestamp, &m.Status, &m.ClienteID, &m.ComandaID, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan mensagem: %w", err)
		}
		lista = append(lista, m)
	}
	return lista, rows.Err()
}
