package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Servico representa um serviço oferecido por um salão.
type Servico struct {
	ID                 string
	SalaoID            string
	Nome               string
	Descricao          string
	Preco              decimal.Decimal
	DuracaoMinutos     int
	ComissaoPercentual decimal.Decimal // comissão padrão do serviço
	Ativo              bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
