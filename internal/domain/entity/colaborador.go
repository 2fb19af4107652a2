package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Colaborador representa um membro da equipe que executa serviços e pode
// receber comissão.
type Colaborador struct {
	ID             string
	SalaoID        string
	FilialID       *string
	Nome           string
	CPF            string
	Email          string
	Telefone       string
	Cargo          string
	DataAdmissao   *time.Time
	ComissaoPadrao decimal.Decimal
	Ativo          bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ColaboradorServico vincula um colaborador a um serviço que ele executa
// (N:N). O par (colaborador, serviço) é único. ComissaoEspecifica, quando
// presente, sobrepõe a comissão padrão para esse par.
type ColaboradorServico struct {
	ID                 string
	ColaboradorID      string
	ServicoID          string
	ComissaoEspecifica *decimal.Decimal
	CreatedAt          time.Time
}
