package entity

import "time"

// Valores do enum perfil_tipo (espelho legado mantido em usuarios.perfil).
const (
	PerfilTipoSuperAdmin = "super_admin"
	PerfilTipoAdmin      = "admin"
	PerfilTipoGerente    = "gerente"
	PerfilTipoAtendente  = "atendente"
	PerfilTipoCaixa      = "caixa"
)

// PerfilTipoValores lista os valores do enum na ordem de privilégio decrescente.
// É a fonte única para o CREATE TYPE correspondente.
func PerfilTipoValores() []string {
	return []string{
		PerfilTipoSuperAdmin,
		PerfilTipoAdmin,
		PerfilTipoGerente,
		PerfilTipoAtendente,
		PerfilTipoCaixa,
	}
}

// Permissoes mapeia um recurso para o conjunto de ações permitidas.
// Persistido como JSONB na coluna perfis.permissoes.
type Permissoes map[string][]string

// Perfil representa um papel de acesso. Perfis de sistema (Sistema=true) têm
// SalaoID nulo e valem para todos os tenants; perfis customizados pertencem a
// um salão. O par (codigo, escopo) é único.
type Perfil struct {
	ID          string
	SalaoID     *string // nil = perfil global de sistema
	Codigo      string
	Nome        string
	Descricao   string
	Permissoes  Permissoes
	NivelAcesso int // maior = mais privilegiado
	Sistema     bool
	Ativo       bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
