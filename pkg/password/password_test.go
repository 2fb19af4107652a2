package password_test

import (
	"testing"

	"github.com/sgsx-app/sgsx-db/pkg/password"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHash_SaltAleatorioPorChamada verifica a propriedade central do
// armazenamento de senhas: a mesma senha gera hashes diferentes a cada
// chamada (salt aleatório), e ambos validam contra a senha original.
func TestHash_SaltAleatorioPorChamada(t *testing.T) {
	h1, err := password.Hash("super123")
	require.NoError(t, err)
	h2, err := password.Hash("super123")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "dois hashes da mesma senha devem diferir pelo salt")
	assert.True(t, password.Verify("super123", h1))
	assert.True(t, password.Verify("super123", h2))
}

func TestVerify_RejeitaSenhaErrada(t *testing.T) {
	h, err := password.Hash("admin123")
	require.NoError(t, err)

	assert.True(t, password.Verify("admin123", h))
	assert.False(t, password.Verify("admin1234", h))
	assert.False(t, password.Verify("", h))
}

func TestHash_NaoContemSenhaEmClaro(t *testing.T) {
	h, err := password.Hash("super123")
	require.NoError(t, err)

	assert.NotContains(t, h, "super123")
}
