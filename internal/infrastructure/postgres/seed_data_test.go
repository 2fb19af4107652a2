package postgres_test

import (
	"testing"

	"github.com/sgsx-app/sgsx-db/internal/domain/entity"
	"github.com/sgsx-app/sgsx-db/internal/infrastructure/postgres"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTiposRecebimentoPadrao_ValoresFixos(t *testing.T) {
	tipos := postgres.TiposRecebimentoPadrao()
	require.Len(t, tipos, 5)

	esperados := []struct {
		nome string
		taxa string
		dias int
	}{
		{"Cash", "0", 0},
		{"PIX", "0", 0},
		{"Debit Card", "1.5", 1},
		{"Credit Card", "3.5", 30},
		{"Tab-to-pay", "0", 0},
	}
	for i, e := range esperados {
		assert.Equal(t, e.nome, tipos[i].Nome)
		assert.True(t, tipos[i].TaxaPercentual.Equal(decimal.RequireFromString(e.taxa)),
			"%s: taxa %s != %s", e.nome, tipos[i].TaxaPercentual, e.taxa)
		assert.Equal(t, e.dias, tipos[i].DiasRecebimento, "%s: dias de recebimento", e.nome)
	}
}

func TestServicosPadrao_ValoresFixos(t *testing.T) {
	servicos := postgres.ServicosPadrao()
	require.Len(t, servicos, 8)

	esperados := []struct {
		nome     string
		preco    string
		duracao  int
		comissao string
	}{
		{"Women's Haircut", "80", 45, "30"},
		{"Men's Haircut", "50", 30, "30"},
		{"Blow-dry", "60", 40, "25"},
		{"Hydration", "90", 60, "20"},
		{"Coloring", "150", 90, "25"},
		{"Manicure", "40", 40, "30"},
		{"Pedicure", "50", 50, "30"},
		{"Eyebrow", "30", 20, "30"},
	}
	for i, e := range esperados {
		assert.Equal(t, e.nome, servicos[i].Nome)
		assert.True(t, servicos[i].Preco.Equal(decimal.RequireFromString(e.preco)),
			"%s: preço %s != %s", e.nome, servicos[i].Preco, e.preco)
		assert.Equal(t, e.duracao, servicos[i].DuracaoMinutos, "%s: duração", e.nome)
		assert.True(t, servicos[i].ComissaoPercentual.Equal(decimal.RequireFromString(e.comissao)),
			"%s: comissão", e.nome)
	}
}

func TestPerfisSistema_CodigosENiveis(t *testing.T) {
	perfis := postgres.PerfisSistema()
	require.Len(t, perfis, 5)

	esperados := []struct {
		codigo string
		nivel  int
	}{
		{"super_admin", 100},
		{"admin", 90},
		{"gerente", 70},
		{"atendente", 50},
		{"caixa", 30},
	}
	for i, e := range esperados {
		assert.Equal(t, e.codigo, perfis[i].Codigo)
		assert.Equal(t, e.nivel, perfis[i].NivelAcesso)
		assert.True(t, perfis[i].Sistema, "%s deve ser perfil de sistema", e.codigo)
		assert.Nil(t, perfis[i].SalaoID, "%s é global, sem tenant", e.codigo)
	}

	// Ordem decrescente de privilégio
	for i := 1; i < len(perfis); i++ {
		assert.Greater(t, perfis[i-1].NivelAcesso, perfis[i].NivelAcesso)
	}
}

// Os mapas de permissões de gerente, atendente e caixa são vazios de
// propósito (atribuídos depois pela administração); só os dois papéis mais
// privilegiados nascem com permissões.
func TestPerfisSistema_PermissoesApenasnosDoisPrimeiros(t *testing.T) {
	perfis := postgres.PerfisSistema()
	require.Len(t, perfis, 5)

	assert.NotEmpty(t, perfis[0].Permissoes, "super_admin nasce com permissões")
	assert.NotEmpty(t, perfis[1].Permissoes, "admin nasce com permissões")
	for _, p := range perfis[2:] {
		assert.Empty(t, p.Permissoes, "%s nasce sem permissões", p.Codigo)
	}

	assert.Contains(t, perfis[0].Permissoes, "saloes")
	assert.Contains(t, perfis[1].Permissoes["comandas"], "fechar")
}

func TestUsuariosPadrao_VinculoDeTenant(t *testing.T) {
	usuarios := postgres.UsuariosPadrao()
	require.Len(t, usuarios, 2)

	super := usuarios[0]
	assert.Equal(t, "super@sgsx.com.br", super.Email)
	assert.Equal(t, entity.PerfilTipoSuperAdmin, super.PerfilCodigo)
	assert.False(t, super.VinculaSalao, "super admin é global, sem tenant")

	admin := usuarios[1]
	assert.Equal(t, "admin@sgsx.com.br", admin.Email)
	assert.Equal(t, entity.PerfilTipoAdmin, admin.PerfilCodigo)
	assert.True(t, admin.VinculaSalao, "admin pertence ao salão de demonstração")
}
