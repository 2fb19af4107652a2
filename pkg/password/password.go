package password

import "golang.org/x/crypto/bcrypt"

// Hash gera o hash bcrypt de uma senha. O salt é aleatório por chamada,
// então a mesma senha produz hashes diferentes a cada execução.
func Hash(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compara uma senha em texto claro com um hash armazenado.
func Verify(senha, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)) == nil
}
