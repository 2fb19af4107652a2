package entity

import "time"

// Salao representa o tenant raiz do sistema (multi-tenant, enfoque Brasil).
// Todo dado de negócio pertence, direta ou transitivamente, a exatamente um salão.
type Salao struct {
	ID        string
	Nome      string
	CNPJ      string
	Email     string
	Telefone  string
	Endereco  string
	Ativo     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
