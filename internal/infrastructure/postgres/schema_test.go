package postgres

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refRegex = regexp.MustCompile(`REFERENCES sgsx\.([a-z_]+)\(`)

// TestTabelas_OrdemRespeitaDependencias garante que toda FK aponta para uma
// tabela anterior da lista (ou para a própria tabela): a ordem de criação
// nunca referencia uma tabela ainda inexistente.
func TestTabelas_OrdemRespeitaDependencias(t *testing.T) {
	criadas := make(map[string]bool)
	for _, tab := range tabelas {
		for _, m := range refRegex.FindAllStringSubmatch(tab.DDL, -1) {
			ref := m[1]
			if ref == tab.Nome {
				continue
			}
			assert.True(t, criadas[ref],
				"tabela %s referencia %s antes de sua criação", tab.Nome, ref)
		}
		criadas[tab.Nome] = true
	}
	assert.Len(t, tabelas, 15)
}

// TestIndices_TenantScopedTemIndiceDeSalao: toda tabela com coluna salao_id
// precisa de índice de tenant para os filtros por salão.
func TestIndices_TenantScopedTemIndiceDeSalao(t *testing.T) {
	for _, tab := range tabelas {
		if !strings.Contains(tab.DDL, "salao_id") {
			continue
		}
		alvo := fmt.Sprintf("ON sgsx.%s(salao_id)", tab.Nome)
		encontrado := false
		for _, idx := range indices {
			if strings.Contains(idx, alvo) {
				encontrado = true
				break
			}
		}
		assert.True(t, encontrado, "tabela %s não tem índice em salao_id", tab.Nome)
	}
}

func TestIndices_Idempotentes(t *testing.T) {
	for _, idx := range indices {
		assert.Contains(t, idx, "CREATE INDEX IF NOT EXISTS",
			"índice deve ser idempotente: %s", idx)
	}
}

// TestTriggers_ListaCoincideComDDL: o trigger de updated_at vai em toda
// tabela que tem a coluna, e somente nelas.
func TestTriggers_ListaCoincideComDDL(t *testing.T) {
	comTrigger := make(map[string]bool, len(tabelasComUpdatedAt))
	for _, nome := range tabelasComUpdatedAt {
		comTrigger[nome] = true
	}

	for _, tab := range tabelas {
		temColuna := strings.Contains(tab.DDL, "updated_at")
		assert.Equal(t, temColuna, comTrigger[tab.Nome],
			"tabela %s: coluna updated_at presente=%v mas trigger=%v",
			tab.Nome, temColuna, comTrigger[tab.Nome])
	}
	assert.Len(t, tabelasComUpdatedAt, 12)
}

// TestEnums_ValoresDoDominio: os quatro ENUMs com os valores exatos das
// constantes de entidade.
func TestEnums_ValoresDoDominio(t *testing.T) {
	tipos := enumTipos()
	require.Len(t, tipos, 4)

	porNome := make(map[string][]string, len(tipos))
	for _, e := range tipos {
		porNome[e.Nome] = e.Valores
	}

	assert.Equal(t, []string{"super_admin", "admin", "gerente", "atendente", "caixa"},
		porNome["perfil_tipo"])
	assert.Equal(t, []string{"aberta", "em_atendimento", "aguardando_pagamento", "paga", "cancelada"},
		porNome["status_comanda"])
	assert.Equal(t, []string{"servico", "produto"}, porNome["tipo_item_comanda"])
	assert.Equal(t, []string{"desconectada", "conectando", "conectada", "erro"},
		porNome["status_sessao_whatsapp"])
}

// TestTabelas_SemAcaoDestrutiva: o bootstrap nunca derruba nem altera tabela
// existente; o único DROP permitido é o de trigger (recriado em seguida).
func TestTabelas_SemAcaoDestrutiva(t *testing.T) {
	for _, tab := range tabelas {
		assert.Contains(t, tab.DDL, "CREATE TABLE IF NOT EXISTS sgsx."+tab.Nome)
		assert.NotContains(t, tab.DDL, "DROP")
		assert.NotContains(t, tab.DDL, "ALTER")
	}
}
