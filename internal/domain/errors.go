package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado     = errors.New("recurso não encontrado")
	ErrEmailJaCadastrado = errors.New("o email já está cadastrado")
	ErrVinculoDuplicado  = errors.New("vínculo colaborador-serviço já existe")
	ErrSalaoInexistente  = errors.New("salão referenciado não existe")
)
