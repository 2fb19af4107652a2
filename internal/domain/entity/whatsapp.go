package entity

import "time"

// Valores do enum status_sessao_whatsapp.
const (
	StatusSessaoDesconectada = "desconectada"
	StatusSessaoConectando   = "conectando"
	StatusSessaoConectada    = "conectada"
	StatusSessaoErro         = "erro"
)

// StatusSessaoWhatsAppValores lista os valores do enum status_sessao_whatsapp.
func StatusSessaoWhatsAppValores() []string {
	return []string{
		StatusSessaoDesconectada,
		StatusSessaoConectando,
		StatusSessaoConectada,
		StatusSessaoErro,
	}
}

// SessaoWhatsApp representa uma sessão de conexão WhatsApp de um salão.
type SessaoWhatsApp struct {
	ID            string
	SalaoID       string
	Nome          string
	Descricao     string
	Numero        string
	Status        string // valores de StatusSessaoWhatsAppValores()
	UltimaConexao *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// WhatsAppMensagem registra uma mensagem enviada ou recebida via WhatsApp,
// opcionalmente vinculada a um cliente e a uma comanda.
type WhatsAppMensagem struct {
	ID        string
	SalaoID   string
	SessaoID  *string
	RemoteJID string // identificador do contato (numero@c.us)
	MessageID string // id da mensagem no provedor
	Tipo      string
	Conteudo  string
	FromMe    bool // true se enviada por nós, false se recebida
	Timestamp time.Time
	Status    string
	ClienteID *string
	ComandaID *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
