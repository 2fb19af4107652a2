package postgres

import "github.com/sgsx-app/sgsx-db/internal/domain/entity"

// SchemaName é o namespace de todos os objetos do SGSx no banco.
const SchemaName = "sgsx"

// enumTipo descreve um tipo ENUM do schema.
type enumTipo struct {
	Nome    string
	Valores []string
}

// enumTipos lista os quatro ENUMs do domínio. Os valores vêm das constantes
// das entidades, então o CREATE TYPE e o código Go não podem divergir.
// Um ENUM existente nunca é recriado nem tem seus valores alterados.
func enumTipos() []enumTipo {
	return []enumTipo{
		{Nome: "perfil_tipo", Valores: entity.PerfilTipoValores()},
		{Nome: "status_comanda", Valores: entity.StatusComandaValores()},
		{Nome: "tipo_item_comanda", Valores: entity.TipoItemComandaValores()},
		{Nome: "status_sessao_whatsapp", Valores: entity.StatusSessaoWhatsAppValores()},
	}
}

// tabela associa o nome de uma tabela ao seu CREATE TABLE IF NOT EXISTS.
type tabela struct {
	Nome string
	DDL  string
}

// tabelas na ordem de dependência de FKs: cada tabela só referencia tabelas
// anteriores na lista. Nomes de colunas, tipos e defaults são contrato
// externo dos consumidores do schema — não alterar.
var tabelas = []tabela{
	{Nome: "saloes", DDL: `
		CREATE TABLE IF NOT EXISTS sgsx.saloes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			nome VARCHAR(200) NOT NULL,
			cnpj VARCHAR(20),
			email VARCHAR(200),
			telefone VARCHAR(20),
			endereco TEXT,
			ativo BOOLEAN DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`},
	{Nome: "filiais", DDL: `
		CREATE TABLE IF NOT EXISTS sgsx.filiais (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			salao_id UUID NOT NULL REFERENCES sgsx.saloes(id),
			nome VARCHAR(200) NOT NULL,
			endereco TEXT,
			telefone VARCHAR(20),
			email VARCHAR(200),
			ativo BOOLEAN DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`},
	{Nome: "perfis", DDL: `
		CREATE TABLE IF NOT EXISTS sgsx.perfis (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			salao_id UUID REFERENCES sgsx.saloes(id) ON DELETE CASCADE,
			codigo VARCHAR(50) NOT NULL,
			nome VARCHAR(100) NOT NULL,
			descricao TEXT,
			permissoes JSONB DEFAULT '{}',
			nivel_acesso INTEGER DEFAULT 10,
			sistema BOOLEAN DEFAULT FALSE,
			ativo BOOLEAN DEFAULT TRUE,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)`},
	{Nome: "usuarios", DDL: `
		CREATE TABLE IF NOT EXISTS sgsx.usuarios (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			salao_id UUID REFERENCES sgsx.saloes(id),
			filial_id UUID REFERENCES sgsx.filiais(id),
			perfil_id UUID REFERENCES sgsx.perfis(id),
			nome VARCHAR(200) NOT NULL,
			email VARCHAR(200) NOT NULL UNIQUE,
			senha_hash VARCHAR(255) NOT NULL,
			perfil sgsx.perfil_tipo DEFAULT 'atendente',
			ativo BOOLEAN DEFAULT TRUE,
			ultimo_acesso TIMESTAMP,
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`},
	{Nome: "clientes", DDL: `
		CREATE TABLE IF NOT EXISTS sgsx.clientes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			salao_id UUID NOT NULL REFERENCES sgsx.saloes(id),
			filial_id UUID REFERENCES sgsx.filiais(id),
			nome VARCHAR(200) NOT NULL,
			cpf VARCHAR(14),
			email VARCHAR(200),
			telefone VARCHAR(20),
			whatsapp VARCHAR(20),
			data_nascimento DATE,
			genero VARCHAR(20),
			endereco TEXT,
			observacoes TEXT,
			ativo BOOLEAN DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`},
	{Nome: "servicos", DDL: `
		CREATE TABLE IF NOT EXISTS sgsx.servicos (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			salao_id UUID NOT NULL REFERENCES sgsx.saloes(id),
			nome VARCHAR(200) NOT NULL,
			descricao TEXT,
			preco DECIMAL(10,2) NOT NULL DEFAULT 0,
			duracao_minutos INTEGER DEFAULT 30,
			comissao_percentual DECIMAL(5,2) DEFAULT 0,
			ativo BOOLEAN DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`},
	{Nome: "colaboradores", DDL: `
		CREATE TABLE IF NOT EXISTS sgsx.colaboradores (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			salao_id UUID NOT NULL REFERENCES sgsx.saloes(id),
			filial_id UUID REFERENCES sgsx.filiais(id),
			nome VARCHAR(200) NOT NULL,
			cpf VARCHAR(14),
			email VARCHAR(200),
			telefone VARCHAR(20),
			cargo VARCHAR(100),
			data_admissao DATE,
			comissao_padrao DECIMAL(5,2) DEFAULT 0,
			ativo BOOLEAN DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`},
	{Nome: "colaborador_servicos", DDL: `
		CREATE TABLE IF NOT EXISTS sgsx.colaborador_servicos (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			colaborador_id UUID NOT NULL REFERENCES sgsx.colaboradores(id) ON DELETE CASCADE,
			servico_id UUID NOT NULL REFERENCES sgsx.servicos(id) ON DELETE CASCADE,
			comissao_especifica DECIMAL(5,2),
			created_at TIMESTAMP DEFAULT NOW(),
			UNIQUE(colaborador_id, servico_id)
		)`},
	{Nome: "produtos", DDL: `
		CREATE TABLE IF NOT EXISTS sgsx.produtos (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			salao_id UUID NOT NULL REFERENCES sgsx.saloes(id),
			nome VARCHAR(200) NOT NULL,
			codigo VARCHAR(50),
			descricao TEXT,
			categoria VARCHAR(100),
			marca VARCHAR(100),
			preco_custo DECIMAL(10,2) DEFAULT 0,
			preco_venda DECIMAL(10,2) NOT NULL DEFAULT 0,
			estoque_atual DECIMAL(10,3) DEFAULT 0,
			estoque_minimo DECIMAL(10,3) DEFAULT 0,
			unidade_medida VARCHAR(10) DEFAULT 'UN',
			ativo BOOLEAN DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`},
	{Nome: "tipos_recebimento", DDL: `
		CREATE TABLE IF NOT EXISTS sgsx.tipos_recebimento (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			salao_id UUID NOT NULL REFERENCES sgsx.saloes(id),
			nome VARCHAR(100) NOT NULL,
			descricao TEXT,
			taxa_percentual DECIMAL(5,2) DEFAULT 0,
			dias_recebimento INTEGER DEFAULT 0,
			ativo BOOLEAN DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`},
	{Nome: "comandas", DDL: `
		CREATE TABLE IF NOT EXISTS sgsx.comandas (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			salao_id UUID NOT NULL REFERENCES sgsx.saloes(id),
			filial_id UUID REFERENCES sgsx.filiais(id),
			cliente_id UUID REFERENCES sgsx.clientes(id),
			usuario_id UUID REFERENCES sgsx.usuarios(id),
			numero SERIAL,
			nome_cliente VARCHAR(200),
			status sgsx.status_comanda DEFAULT 'aberta',
			subtotal DECIMAL(10,2) DEFAULT 0,
			desconto DECIMAL(10,2) DEFAULT 0,
			acrescimo DECIMAL(10,2) DEFAULT 0,
			total DECIMAL(10,2) DEFAULT 0,
			observacoes TEXT,
			data_abertura TIMESTAMP DEFAULT NOW(),
			data_fechamento TIMESTAMP,
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`},
	{Nome: "comanda_itens", DDL: `
		CREATE TABLE IF NOT EXISTS sgsx.comanda_itens (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			comanda_id UUID NOT NULL REFERENCES sgsx.comandas(id) ON DELETE CASCADE,
			tipo sgsx.tipo_item_comanda NOT NULL,
			servico_id UUID REFERENCES sgsx.servicos(id),
			produto_id UUID REFERENCES sgsx.produtos(id),
			colaborador_id UUID REFERENCES sgsx.colaboradores(id),
			descricao VARCHAR(200) NOT NULL,
			quantidade DECIMAL(10,3) DEFAULT 1,
			valor_unitario DECIMAL(10,2) NOT NULL,
			valor_total DECIMAL(10,2) NOT NULL,
			comissao_percentual DECIMAL(5,2) DEFAULT 0,
			comissao_valor DECIMAL(10,2) DEFAULT 0,
			created_at TIMESTAMP DEFAULT NOW()
		)`},
	{Nome: "comanda_pagamentos", DDL: `
		CREATE TABLE IF NOT EXISTS sgsx.comanda_pagamentos (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			comanda_id UUID NOT NULL REFERENCES sgsx.comandas(id) ON DELETE CASCADE,
			tipo_recebimento_id UUID NOT NULL REFERENCES sgsx.tipos_recebimento(id),
			valor DECIMAL(10,2) NOT NULL,
			created_at TIMESTAMP DEFAULT NOW()
		)`},
	{Nome: "sessoes_whatsapp", DDL: `
		CREATE TABLE IF NOT EXISTS sgsx.sessoes_whatsapp (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			salao_id UUID NOT NULL REFERENCES sgsx.saloes(id),
			nome VARCHAR(100) NOT NULL,
			descricao TEXT,
			numero VARCHAR(20),
			status sgsx.status_sessao_whatsapp DEFAULT 'desconectada',
			ultima_conexao TIMESTAMP,
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`},
	{Nome: "whatsapp_mensagens", DDL: `
		CREATE TABLE IF NOT EXISTS sgsx.whatsapp_mensagens (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			salao_id UUID NOT NULL REFERENCES sgsx.saloes(id) ON DELETE CASCADE,
			sessao_id UUID REFERENCES sgsx.sessoes_whatsapp(id) ON DELETE SET NULL,
			remote_jid VARCHAR(100) NOT NULL,
			message_id VARCHAR(200) NOT NULL,
			tipo VARCHAR(50) DEFAULT 'chat',
			conteudo TEXT,
			from_me BOOLEAN DEFAULT FALSE,
			timestamp TIMESTAMPTZ DEFAULT NOW(),
			status VARCHAR(50) DEFAULT 'recebida',
			cliente_id UUID REFERENCES sgsx.clientes(id) ON DELETE SET NULL,
			comanda_id UUID REFERENCES sgsx.comandas(id) ON DELETE SET NULL,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)`},
}

// comentarios documentam colunas menos óbvias direto no catálogo.
// COMMENT ON sobrescreve, então reexecutar é inócuo.
var comentarios = []string{
	`COMMENT ON TABLE sgsx.whatsapp_mensagens IS 'Historico de mensagens enviadas e recebidas via WhatsApp'`,
	`COMMENT ON COLUMN sgsx.whatsapp_mensagens.remote_jid IS 'Identificador do contato no WhatsApp (numero@c.us)'`,
	`COMMENT ON COLUMN sgsx.whatsapp_mensagens.from_me IS 'TRUE se foi enviada por nos, FALSE se foi recebida'`,
}

// indices de consulta: salao_id em toda tabela com escopo de tenant, email,
// status, chaves de join e histórico de mensagens por timestamp decrescente.
var indices = []string{
	"CREATE INDEX IF NOT EXISTS idx_filiais_salao ON sgsx.filiais(salao_id)",
	"CREATE INDEX IF NOT EXISTS idx_perfis_salao ON sgsx.perfis(salao_id)",
	"CREATE INDEX IF NOT EXISTS idx_perfis_codigo ON sgsx.perfis(codigo)",
	"CREATE INDEX IF NOT EXISTS idx_usuarios_salao ON sgsx.usuarios(salao_id)",
	"CREATE INDEX IF NOT EXISTS idx_usuarios_email ON sgsx.usuarios(email)",
	"CREATE INDEX IF NOT EXISTS idx_usuarios_perfil ON sgsx.usuarios(perfil_id)",
	"CREATE INDEX IF NOT EXISTS idx_clientes_salao ON sgsx.clientes(salao_id)",
	"CREATE INDEX IF NOT EXISTS idx_clientes_nome ON sgsx.clientes(nome)",
	"CREATE INDEX IF NOT EXISTS idx_clientes_telefone ON sgsx.clientes(telefone)",
	"CREATE INDEX IF NOT EXISTS idx_colaboradores_salao ON sgsx.colaboradores(salao_id)",
	"CREATE INDEX IF NOT EXISTS idx_servicos_salao ON sgsx.servicos(salao_id)",
	"CREATE INDEX IF NOT EXISTS idx_produtos_salao ON sgsx.produtos(salao_id)",
	"CREATE INDEX IF NOT EXISTS idx_tipos_recebimento_salao ON sgsx.tipos_recebimento(salao_id)",
	"CREATE INDEX IF NOT EXISTS idx_comandas_salao ON sgsx.comandas(salao_id)",
	"CREATE INDEX IF NOT EXISTS idx_comandas_status ON sgsx.comandas(status)",
	"CREATE INDEX IF NOT EXISTS idx_comandas_data ON sgsx.comandas(data_abertura)",
	"CREATE INDEX IF NOT EXISTS idx_comanda_itens_comanda ON sgsx.comanda_itens(comanda_id)",
	"CREATE INDEX IF NOT EXISTS idx_comanda_pagamentos_comanda ON sgsx.comanda_pagamentos(comanda_id)",
	"CREATE INDEX IF NOT EXISTS idx_sessoes_whatsapp_salao ON sgsx.sessoes_whatsapp(salao_id)",
	"CREATE INDEX IF NOT EXISTS idx_whatsapp_mensagens_salao ON sgsx.whatsapp_mensagens(salao_id)",
	"CREATE INDEX IF NOT EXISTS idx_whatsapp_mensagens_sessao ON sgsx.whatsapp_mensagens(sessao_id)",
	"CREATE INDEX IF NOT EXISTS idx_whatsapp_mensagens_cliente ON sgsx.whatsapp_mensagens(cliente_id)",
	"CREATE INDEX IF NOT EXISTS idx_whatsapp_mensagens_remote_jid ON sgsx.whatsapp_mensagens(remote_jid)",
	"CREATE INDEX IF NOT EXISTS idx_whatsapp_mensagens_timestamp ON sgsx.whatsapp_mensagens(timestamp DESC)",
}

// funcUpdatedAt é a função reutilizável de manutenção do updated_at.
// CREATE OR REPLACE permite reinstalar sem duplicar.
const funcUpdatedAt = `
	CREATE OR REPLACE FUNCTION sgsx.update_updated_at()
	RETURNS TRIGGER AS $$
	BEGIN
		NEW.updated_at = NOW();
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql`

// tabelasComUpdatedAt recebem o trigger de updated_at. Tabelas de linha
// imutável (colaborador_servicos, comanda_itens, comanda_pagamentos) ficam
// de fora por não terem a coluna.
var tabelasComUpdatedAt = []string{
	"saloes", "filiais", "perfis", "usuarios", "clientes",
	"colaboradores", "servicos", "produtos",
	"tipos_recebimento", "comandas", "sessoes_whatsapp",
	"whatsapp_mensagens",
}
