package tools

import "golang.org/x/crypto/bcrypt"

// HashPassword gera o hash bcrypt da senha com o custo padrão.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword confere a senha em claro contra o hash armazenado.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
