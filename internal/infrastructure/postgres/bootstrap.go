package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sgsx-app/sgsx-db/internal/domain/entity"
	"github.com/sgsx-app/sgsx-db/pkg/logger"
	"github.com/sgsx-app/sgsx-db/pkg/password"
)

// Bootstrapper provisiona o schema sgsx e os dados de referência de forma
// idempotente. Não há transação englobando a execução: cada statement commita
// imediatamente, uma falha no meio deixa o que já foi feito no banco, e
// reexecutar retoma do ponto parado porque toda etapa checa existência antes
// de agir.
//
// Uma instância por vez; execuções concorrentes no mesmo banco podem disputar
// as checagens de existência.
type Bootstrapper struct {
	conn *pgx.Conn
	log  *logger.Logger

	salaoID string            // id do salão de demonstração (criado ou preexistente)
	perfis  map[string]string // código -> id dos perfis de sistema
}

// NewBootstrapper constrói o bootstrapper sobre uma conexão aberta.
func NewBootstrapper(conn *pgx.Conn, log *logger.Logger) *Bootstrapper {
	return &Bootstrapper{
		conn:   conn,
		log:    log,
		perfis: make(map[string]string),
	}
}

// Run executa as oito etapas em ordem. Qualquer erro de banco aborta a
// execução e sobe com a etapa no contexto.
func (b *Bootstrapper) Run(ctx context.Context) error {
	etapas := []struct {
		nome string
		fn   func(context.Context) error
	}{
		{"criando schema " + SchemaName, b.criarSchema},
		{"criando tipos ENUM", b.criarEnums},
		{"criando tabelas", b.criarTabelas},
		{"criando indices", b.criarIndices},
		{"instalando triggers de updated_at", b.criarTriggers},
		{"criando salao padrao", b.seedSalaoPadrao},
		{"criando perfis de sistema", b.seedPerfisSistema},
		{"criando usuarios padrao", b.seedUsuariosPadrao},
	}

	for i, e := range etapas {
		b.log.Info().Str("etapa", fmt.Sprintf("%d/%d", i+1, len(etapas))).Msg(e.nome)
		if err := e.fn(ctx); err != nil {
			return fmt.Errorf("%s: %w", e.nome, err)
		}
	}
	return nil
}

// SalaoID devolve o id do salão de demonstração após Run.
func (b *Bootstrapper) SalaoID() string {
	return b.salaoID
}

func (b *Bootstrapper) criarSchema(ctx context.Context) error {
	_, err := b.conn.Exec(ctx, "CREATE SCHEMA IF NOT EXISTS "+SchemaName)
	return err
}

// criarEnums cria cada ENUM apenas se ainda não existe no schema. Um ENUM
// existente nunca tem o conjunto de valores alterado.
func (b *Bootstrapper) criarEnums(ctx context.Context) error {
	for _, e := range enumTipos() {
		var existe bool
		err := b.conn.QueryRow(ctx, `
			SELECT EXISTS (SELECT 1 FROM pg_type WHERE typname = $1
			AND typnamespace = (SELECT oid FROM pg_namespace WHERE nspname = $2))`,
			e.Nome, SchemaName,
		).Scan(&existe)
		if err != nil {
			return fmt.Errorf("verificar tipo %s: %w", e.Nome, err)
		}
		if existe {
			b.log.Debug().Str("tipo", e.Nome).Msg("tipo ENUM ja existe")
			continue
		}

		valores := make([]string, len(e.Valores))
		for i, v := range e.Valores {
			valores[i] = "'" + v + "'"
		}
		ddl := fmt.Sprintf("CREATE TYPE %s.%s AS ENUM (%s)",
			SchemaName, e.Nome, strings.Join(valores, ", "))
		if _, err := b.conn.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("criar tipo %s: %w", e.Nome, err)
		}
		b.log.Debug().Str("tipo", e.Nome).Msg("tipo ENUM criado")
	}
	return nil
}

// criarTabelas executa os CREATE TABLE IF NOT EXISTS na ordem de dependência
// de FKs. Nunca destrói nem altera tabelas existentes.
func (b *Bootstrapper) criarTabelas(ctx context.Context) error {
	for _, t := range tabelas {
		if _, err := b.conn.Exec(ctx, t.DDL); err != nil {
			return fmt.Errorf("criar tabela %s: %w", t.Nome, err)
		}
		b.log.Debug().Str("tabela", t.Nome).Msg("tabela criada/verificada")
	}
	for _, c := range comentarios {
		if _, err := b.conn.Exec(ctx, c); err != nil {
			return fmt.Errorf("comentar tabela: %w", err)
		}
	}
	return nil
}

func (b *Bootstrapper) criarIndices(ctx context.Context) error {
	for _, idx := range indices {
		if _, err := b.conn.Exec(ctx, idx); err != nil {
			return fmt.Errorf("criar indice: %w", err)
		}
	}
	b.log.Debug().Int("total", len(indices)).Msg("indices criados/verificados")
	return nil
}

// criarTriggers instala a função reutilizável de updated_at e anexa o trigger
// a cada tabela que carrega a coluna. Drop-then-create evita duplicar.
func (b *Bootstrapper) criarTriggers(ctx context.Context) error {
	if _, err := b.conn.Exec(ctx, funcUpdatedAt); err != nil {
		return fmt.Errorf("criar funcao update_updated_at: %w", err)
	}

	for _, t := range tabelasComUpdatedAt {
		drop := fmt.Sprintf("DROP TRIGGER IF EXISTS trigger_updated_at_%s ON %s.%s", t, SchemaName, t)
		if _, err := b.conn.Exec(ctx, drop); err != nil {
			return fmt.Errorf("remover trigger de %s: %w", t, err)
		}
		create := fmt.Sprintf(`
			CREATE TRIGGER trigger_updated_at_%s
			BEFORE UPDATE ON %s.%s
			FOR EACH ROW EXECUTE FUNCTION %s.update_updated_at()`,
			t, SchemaName, t, SchemaName)
		if _, err := b.conn.Exec(ctx, create); err != nil {
			return fmt.Errorf("criar trigger de %s: %w", t, err)
		}
	}
	b.log.Debug().Int("total", len(tabelasComUpdatedAt)).Msg("triggers instalados")
	return nil
}

// seedSalaoPadrao cria o salão de demonstração com filial matriz, formas de
// pagamento e serviços de exemplo. Idempotente na granularidade do tenant:
// se o salão já existe, a etapa inteira é pulada (nada é inserido dentro de
// um tenant preexistente).
func (b *Bootstrapper) seedSalaoPadrao(ctx context.Context) error {
	salaoRepo := NewSalaoRepo(b.conn)

	existente, err := salaoRepo.BuscarPorNome(ctx, NomeSalaoPadrao)
	if err != nil {
		return err
	}
	if existente != nil {
		b.salaoID = existente.ID
		b.log.Info().Str("salao_id", existente.ID).Msg("salao padrao ja existe")
		return nil
	}

	salao := SalaoPadrao()
	salao.ID = uuid.New().String()
	if err := salaoRepo.Criar(ctx, &salao); err != nil {
		return err
	}
	b.salaoID = salao.ID
	b.log.Info().Str("salao_id", salao.ID).Msg("salao padrao criado")

	filial := entity.Filial{
		ID:      uuid.New().String(),
		SalaoID: salao.ID,
		Nome:    NomeFilialMatriz,
	}
	if err := NewFilialRepo(b.conn).Criar(ctx, &filial); err != nil {
		return err
	}
	b.log.Info().Str("filial", filial.Nome).Msg("filial matriz criada")

	tipoRepo := NewTipoRecebimentoRepo(b.conn)
	for _, t := range TiposRecebimentoPadrao() {
		t.ID = uuid.New().String()
		t.SalaoID = salao.ID
		if err := tipoRepo.Criar(ctx, &t); err != nil {
			return err
		}
	}
	b.log.Info().Int("total", len(TiposRecebimentoPadrao())).Msg("tipos de recebimento criados")

	servicoRepo := NewServicoRepo(b.conn)
	for _, s := range ServicosPadrao() {
		s.ID = uuid.New().String()
		s.SalaoID = salao.ID
		if err := servicoRepo.Criar(ctx, &s); err != nil {
			return err
		}
	}
	b.log.Info().Int("total", len(ServicosPadrao())).Msg("servicos de exemplo criados")

	return nil
}

// seedPerfisSistema cria os perfis globais que ainda não existem e registra o
// id de todos (criados ou preexistentes) para a etapa de usuários.
func (b *Bootstrapper) seedPerfisSistema(ctx context.Context) error {
	perfilRepo := NewPerfilRepo(b.conn)

	for _, p := range PerfisSistema() {
		existente, err := perfilRepo.BuscarSistemaPorCodigo(ctx, p.Codigo)
		if err != nil {
			return err
		}
		if existente != nil {
			b.perfis[p.Codigo] = existente.ID
			b.log.Debug().Str("codigo", p.Codigo).Msg("perfil de sistema ja existe")
			continue
		}

		p.ID = uuid.New().String()
		if err := perfilRepo.Criar(ctx, &p); err != nil {
			return err
		}
		b.perfis[p.Codigo] = p.ID
		b.log.Debug().Str("codigo", p.Codigo).Int("nivel", p.NivelAcesso).Msg("perfil de sistema criado")
	}
	return nil
}

// seedUsuariosPadrao cria os dois administradores se os emails ainda não
// existem. A senha entra apenas como hash bcrypt; o espelho legado do enum
// perfil é gravado junto com a referência normalizada perfil_id.
func (b *Bootstrapper) seedUsuariosPadrao(ctx context.Context) error {
	usuarioRepo := NewUsuarioRepo(b.conn)

	for _, u := range UsuariosPadrao() {
		existente, err := usuarioRepo.BuscarPorEmail(ctx, u.Email)
		if err != nil {
			return err
		}
		if existente != nil {
			b.log.Info().Str("email", u.Email).Msg("usuario ja existe")
			continue
		}

		hash, err := password.Hash(u.Senha)
		if err != nil {
			return fmt.Errorf("hash da senha de %s: %w", u.Email, err)
		}

		perfilID, ok := b.perfis[u.PerfilCodigo]
		if !ok {
			return fmt.Errorf("perfil de sistema %s nao registrado", u.PerfilCodigo)
		}

		novo := entity.Usuario{
			ID:        uuid.New().String(),
			Nome:      u.Nome,
			Email:     u.Email,
			SenhaHash: hash,
			Perfil:    u.PerfilCodigo,
			PerfilID:  &perfilID,
		}
		if u.VinculaSalao {
			novo.SalaoID = &b.salaoID
		}
		if err := usuarioRepo.Criar(ctx, &novo); err != nil {
			return err
		}
		b.log.Info().Str("email", u.Email).Msg("usuario criado")
	}
	return nil
}
