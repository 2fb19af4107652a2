package entity

import "time"

// Usuario representa um usuário do sistema. O email é único globalmente,
// independente do tenant. SalaoID nulo indica usuário global (super admin).
//
// Perfil (enum) é o espelho legado desnormalizado do papel; PerfilID é a
// referência normalizada e a fonte de verdade para autorização — o enum é
// mantido apenas por compatibilidade, como campo derivado de exibição.
type Usuario struct {
	ID           string
	SalaoID      *string
	FilialID     *string
	PerfilID     *string
	Nome         string
	Email        string
	SenhaHash    string // hash bcrypt, nunca senha em claro
	Perfil       string // valores de PerfilTipoValores()
	Ativo        bool
	UltimoAcesso *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
