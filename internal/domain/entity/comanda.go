package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valores do enum status_comanda.
const (
	StatusComandaAberta              = "aberta"
	StatusComandaEmAtendimento       = "em_atendimento"
	StatusComandaAguardandoPagamento = "aguardando_pagamento"
	StatusComandaPaga                = "paga"
	StatusComandaCancelada           = "cancelada"
)

// StatusComandaValores lista os valores do enum na ordem do ciclo de vida.
// É a fonte única para o CREATE TYPE correspondente.
func StatusComandaValores() []string {
	return []string{
		StatusComandaAberta,
		StatusComandaEmAtendimento,
		StatusComandaAguardandoPagamento,
		StatusComandaPaga,
		StatusComandaCancelada,
	}
}

// Valores do enum tipo_item_comanda.
const (
	TipoItemServico = "servico"
	TipoItemProduto = "produto"
)

// TipoItemComandaValores lista os valores do enum tipo_item_comanda.
func TipoItemComandaValores() []string {
	return []string{TipoItemServico, TipoItemProduto}
}

// Comanda representa uma conta aberta acumulando itens de serviço e produto
// até ser paga ou cancelada. Numero é sequencial de exibição (SERIAL).
//
// Total = Subtotal - Desconto + Acrescimo é responsabilidade da camada de
// negócio que consome o schema; o banco não impõe a igualdade.
type Comanda struct {
	ID             string
	SalaoID        string
	FilialID       *string
	ClienteID      *string
	UsuarioID      *string
	Numero         int64
	NomeCliente    string
	Status         string // valores de StatusComandaValores()
	Subtotal       decimal.Decimal
	Desconto       decimal.Decimal
	Acrescimo      decimal.Decimal
	Total          decimal.Decimal
	Observacoes    string
	DataAbertura   time.Time
	DataFechamento *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ComandaItem representa uma linha de comanda: um serviço executado ou um
// produto vendido, com comissão calculada para o colaborador.
type ComandaItem struct {
	ID                 string
	ComandaID          string
	Tipo               string // servico ou produto
	ServicoID          *string
	ProdutoID          *string
	ColaboradorID      *string
	Descricao          string
	Quantidade         decimal.Decimal
	ValorUnitario      decimal.Decimal
	ValorTotal         decimal.Decimal
	ComissaoPercentual decimal.Decimal
	ComissaoValor      decimal.Decimal
	CreatedAt          time.Time
}

// ComandaPagamento representa um pagamento (parcial ou total) de uma comanda
// através de um tipo de recebimento.
type ComandaPagamento struct {
	ID                string
	ComandaID         string
	TipoRecebimentoID string
	Valor             decimal.Decimal
	CreatedAt         time.Time
}
