package entity

import "time"

// Filial representa uma unidade física de um Salao.
type Filial struct {
	ID        string
	SalaoID   string
	Nome      string
	Endereco  string
	Telefone  string
	Email     string
	Ativo     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
