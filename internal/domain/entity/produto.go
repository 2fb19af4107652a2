package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto representa um item de estoque vendido por um salão.
type Produto struct {
	ID            string
	SalaoID       string
	Nome          string
	Codigo        string
	Descricao     string
	Categoria     string
	Marca         string
	PrecoCusto    decimal.Decimal
	PrecoVenda    decimal.Decimal
	EstoqueAtual  decimal.Decimal // quantidade com até 3 casas (ex.: 1.500 kg)
	EstoqueMinimo decimal.Decimal
	UnidadeMedida string
	Ativo         bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
