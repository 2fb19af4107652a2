package postgres

import (
	"github.com/sgsx-app/sgsx-db/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Nomes fixos das linhas de referência. A checagem de existência do seed usa
// esses literais, então renomeá-los quebra a idempotência em bancos já
// provisionados.
const (
	NomeSalaoPadrao  = "Demo Salon"
	NomeFilialMatriz = "Headquarters"
)

// SalaoPadrao é o tenant de demonstração criado quando nenhum salão com esse
// nome existe.
func SalaoPadrao() entity.Salao {
	return entity.Salao{
		Nome:     NomeSalaoPadrao,
		Email:    "contato@salao.com",
		Telefone: "(11) 99999-9999",
	}
}

// TiposRecebimentoPadrao são as formas de pagamento criadas junto com o salão
// de demonstração, com taxa percentual e prazo de recebimento fixos.
func TiposRecebimentoPadrao() []entity.TipoRecebimento {
	return []entity.TipoRecebimento{
		{Nome: "Cash", Descricao: "Cash payment", TaxaPercentual: decimal.Zero, DiasRecebimento: 0},
		{Nome: "PIX", Descricao: "Instant payment via PIX", TaxaPercentual: decimal.Zero, DiasRecebimento: 0},
		{Nome: "Debit Card", Descricao: "Debit card payment", TaxaPercentual: decimal.NewFromFloat(1.5), DiasRecebimento: 1},
		{Nome: "Credit Card", Descricao: "Credit card payment", TaxaPercentual: decimal.NewFromFloat(3.5), DiasRecebimento: 30},
		{Nome: "Tab-to-pay", Descricao: "Customer tab / account receivable", TaxaPercentual: decimal.Zero, DiasRecebimento: 0},
	}
}

// ServicosPadrao são os serviços de exemplo do salão de demonstração:
// preço, duração em minutos e comissão percentual padrão.
func ServicosPadrao() []entity.Servico {
	return []entity.Servico{
		{Nome: "Women's Haircut", Preco: decimal.NewFromFloat(80.00), DuracaoMinutos: 45, ComissaoPercentual: decimal.NewFromInt(30)},
		{Nome: "Men's Haircut", Preco: decimal.NewFromFloat(50.00), DuracaoMinutos: 30, ComissaoPercentual: decimal.NewFromInt(30)},
		{Nome: "Blow-dry", Preco: decimal.NewFromFloat(60.00), DuracaoMinutos: 40, ComissaoPercentual: decimal.NewFromInt(25)},
		{Nome: "Hydration", Preco: decimal.NewFromFloat(90.00), DuracaoMinutos: 60, ComissaoPercentual: decimal.NewFromInt(20)},
		{Nome: "Coloring", Preco: decimal.NewFromFloat(150.00), DuracaoMinutos: 90, ComissaoPercentual: decimal.NewFromInt(25)},
		{Nome: "Manicure", Preco: decimal.NewFromFloat(40.00), DuracaoMinutos: 40, ComissaoPercentual: decimal.NewFromInt(30)},
		{Nome: "Pedicure", Preco: decimal.NewFromFloat(50.00), DuracaoMinutos: 50, ComissaoPercentual: decimal.NewFromInt(30)},
		{Nome: "Eyebrow", Preco: decimal.NewFromFloat(30.00), DuracaoMinutos: 20, ComissaoPercentual: decimal.NewFromInt(30)},
	}
}

// PerfisSistema são os cinco papéis globais, do mais para o menos
// privilegiado. Os mapas de permissões de gerente, atendente e caixa são
// intencionalmente vazios: o conteúdo é atribuído depois pela administração.
func PerfisSistema() []entity.Perfil {
	return []entity.Perfil{
		{
			Codigo:      entity.PerfilTipoSuperAdmin,
			Nome:        "Super Administrator",
			Descricao:   "Full system access",
			NivelAcesso: 100,
			Sistema:     true,
			Permissoes: entity.Permissoes{
				"saloes":        {"criar", "editar", "excluir", "listar"},
				"usuarios":      {"criar", "editar", "excluir", "listar"},
				"configuracoes": {"editar"},
			},
		},
		{
			Codigo:      entity.PerfilTipoAdmin,
			Nome:        "Administrator",
			Descricao:   "Salon administrator",
			NivelAcesso: 90,
			Sistema:     true,
			Permissoes: entity.Permissoes{
				"filiais":       {"criar", "editar", "excluir", "listar"},
				"usuarios":      {"criar", "editar", "excluir", "listar"},
				"clientes":      {"criar", "editar", "excluir", "listar"},
				"colaboradores": {"criar", "editar", "excluir", "listar"},
				"servicos":      {"criar", "editar", "excluir", "listar"},
				"produtos":      {"criar", "editar", "excluir", "listar"},
				"comandas":      {"criar", "editar", "excluir", "listar", "fechar", "cancelar"},
			},
		},
		{
			Codigo:      entity.PerfilTipoGerente,
			Nome:        "Manager",
			Descricao:   "Branch manager",
			NivelAcesso: 70,
			Sistema:     true,
			Permissoes:  entity.Permissoes{},
		},
		{
			Codigo:      entity.PerfilTipoAtendente,
			Nome:        "Attendant",
			Descricao:   "Attendant/Receptionist",
			NivelAcesso: 50,
			Sistema:     true,
			Permissoes:  entity.Permissoes{},
		},
		{
			Codigo:      entity.PerfilTipoCaixa,
			Nome:        "Cashier",
			Descricao:   "Cashier operator",
			NivelAcesso: 30,
			Sistema:     true,
			Permissoes:  entity.Permissoes{},
		},
	}
}

// UsuarioPadrao descreve um administrador a criar no seed. Senha fica em
// claro apenas aqui; no banco entra somente o hash bcrypt.
type UsuarioPadrao struct {
	Nome         string
	Email        string
	Senha        string
	PerfilCodigo string // perfil de sistema correspondente
	VinculaSalao bool   // true: vincula ao salão de demonstração
}

// UsuariosPadrao são os dois administradores seed. O super admin não tem
// vínculo com tenant; o admin pertence ao salão de demonstração.
func UsuariosPadrao() []UsuarioPadrao {
	return []UsuarioPadrao{
		{
			Nome:         "Super Admin",
			Email:        "super@sgsx.com.br",
			Senha:        "super123",
			PerfilCodigo: entity.PerfilTipoSuperAdmin,
			VinculaSalao: false,
		},
		{
			Nome:         "Administrator",
			Email:        "admin@sgsx.com.br",
			Senha:        "admin123",
			PerfilCodigo: entity.PerfilTipoAdmin,
			VinculaSalao: true,
		},
	}
}
