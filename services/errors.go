package services

import "errors"

// Falhas que os serviços devolvem para o gateway. Cada handler mapeia
// o sentinel para o código HTTP correspondente; detalhes do banco nunca
// vazam para fora daqui fora do modo debug.
var (
	// ErrNotFound registro ausente ou pertencente a outra conta.
	// Os dois casos são indistinguíveis de propósito.
	ErrNotFound = errors.New("registro não encontrado")

	// ErrValidation entrada malformada ou incompleta.
	ErrValidation = errors.New("dados inválidos")

	// ErrConflict violação de unicidade (ex: e-mail já cadastrado).
	ErrConflict = errors.New("registro duplicado")

	// ErrUnauthorized credenciais inválidas ou sessão ausente.
	ErrUnauthorized = errors.New("não autorizado")

	// ErrStorage falha do banco; propaga imediatamente, sem retry.
	ErrStorage = errors.New("falha no armazenamento")
)
