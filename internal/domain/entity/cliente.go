package entity

import "time"

// Cliente representa um cliente de um salão.
type Cliente struct {
	ID             string
	SalaoID        string
	FilialID       *string
	Nome           string
	CPF            string
	Email          string
	Telefone       string
	WhatsApp       string
	DataNascimento *time.Time
	Genero         string
	Endereco       string
	Observacoes    string
	Ativo          bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
