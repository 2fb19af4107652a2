package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoRecebimento representa uma forma de pagamento aceita por um salão,
// com taxa percentual e prazo de recebimento em dias.
type TipoRecebimento struct {
	ID              string
	SalaoID         string
	Nome            string
	Descricao       string
	TaxaPercentual  decimal.Decimal
	DiasRecebimento int
	Ativo           bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
