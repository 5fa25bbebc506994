package services

import (
	"errors"
	"testing"

	"conecta/models"
	"conecta/tools"
)

func strPtr(s string) *string { return &s }

func TestAccountRegister(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(db, testLogger())

	account, err := svc.Register("Maria Silva", "maria@teste.com", "segredo1", "123.456.789-00", "(11) 99999-0000")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if account.ID == 0 {
		t.Fatal("conta criada sem ID")
	}
	if account.Status != models.ACCOUNT_STATUS_ACTIVE {
		t.Errorf("status = %s, want %s", account.Status, models.ACCOUNT_STATUS_ACTIVE)
	}
	if account.Password != "" {
		t.Error("a resposta não pode carregar a senha")
	}

	// No banco fica o hash bcrypt, nunca a senha em claro.
	var stored models.Account
	if err := db.First(&stored, account.ID).Error; err != nil {
		t.Fatalf("reler conta: %v", err)
	}
	if stored.Password == "segredo1" || stored.Password == "" {
		t.Error("senha deveria estar armazenada como hash")
	}
	if !tools.VerifyPassword(stored.Password, "segredo1") {
		t.Error("hash armazenado não confere com a senha original")
	}
}

func TestAccountRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(db, testLogger())

	cases := []struct {
		name     string
		userName string
		email    string
		password string
		want     error
	}{
		{"nome vazio", "", "a@teste.com", "segredo1", ErrValidation},
		{"email inválido", "Maria", "sem-arroba", "segredo1", ErrValidation},
		{"senha curta", "Maria", "a@teste.com", "12345", ErrValidation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(tc.userName, tc.email, tc.password, "", "")
			if !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestAccountRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(db, testLogger())

	if _, err := svc.Register("Maria", "maria@teste.com", "segredo1", "", ""); err != nil {
		t.Fatalf("primeira conta: %v", err)
	}

	_, err := svc.Register("Outra Maria", "maria@teste.com", "segredo2", "", "")
	if !errors.Is(err, ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
}

func TestAccountAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(db, testLogger())

	if _, err := svc.Register("Maria", "maria@teste.com", "segredo1", "", ""); err != nil {
		t.Fatalf("Register: %v", err)
	}

	account, err := svc.Authenticate("maria@teste.com", "segredo1")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if account.Email != "maria@teste.com" {
		t.Errorf("email = %s", account.Email)
	}
	if account.Password != "" {
		t.Error("a resposta não pode carregar a senha")
	}

	// Conta inexistente e senha errada falham do mesmo jeito.
	_, errMissing := svc.Authenticate("ninguem@teste.com", "segredo1")
	_, errWrong := svc.Authenticate("maria@teste.com", "errada9")
	if !errors.Is(errMissing, ErrUnauthorized) {
		t.Errorf("conta inexistente: err = %v, want ErrUnauthorized", errMissing)
	}
	if !errors.Is(errWrong, ErrUnauthorized) {
		t.Errorf("senha errada: err = %v, want ErrUnauthorized", errWrong)
	}
}

func TestAccountUpdatePartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(db, testLogger())

	account, err := svc.Register("Maria", "maria@teste.com", "segredo1", "", "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	updated, err := svc.Update(account.ID, AccountUpdate{
		Name:  strPtr("Maria de Souza"),
		Phone: strPtr("(21) 98888-7777"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Maria de Souza" {
		t.Errorf("name = %q", updated.Name)
	}
	if updated.Phone != "(21) 98888-7777" {
		t.Errorf("phone = %q", updated.Phone)
	}
	// Campo não enviado permanece.
	if updated.Email != "maria@teste.com" {
		t.Errorf("email mudou sem pedido: %q", updated.Email)
	}
}

func TestAccountUpdatePassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(db, testLogger())

	account, err := svc.Register("Maria", "maria@teste.com", "segredo1", "", "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := svc.Update(account.ID, AccountUpdate{Password: strPtr("novasenha")}); err != nil {
		t.Fatalf("Update senha: %v", err)
	}

	if _, err := svc.Authenticate("maria@teste.com", "novasenha"); err != nil {
		t.Errorf("senha nova deveria autenticar: %v", err)
	}
	if _, err := svc.Authenticate("maria@teste.com", "segredo1"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("senha antiga deveria falhar: %v", err)
	}
}

func TestAccountUpdateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(db, testLogger())

	first, err := svc.Register("Maria", "maria@teste.com", "segredo1", "", "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	second, err := svc.Register("Joana", "joana@teste.com", "segredo1", "", "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Sem nenhum campo.
	if _, err := svc.Update(first.ID, AccountUpdate{}); !errors.Is(err, ErrValidation) {
		t.Errorf("update vazio: err = %v, want ErrValidation", err)
	}

	// Email de outra conta.
	_, err = svc.Update(second.ID, AccountUpdate{Email: strPtr("maria@teste.com")})
	if !errors.Is(err, ErrConflict) {
		t.Errorf("email duplicado: err = %v, want ErrConflict", err)
	}

	// O próprio email não conta como duplicado.
	if _, err := svc.Update(first.ID, AccountUpdate{Email: strPtr("maria@teste.com")}); err != nil {
		t.Errorf("reenviar o próprio email: %v", err)
	}

	// Conta inexistente.
	_, err = svc.Update(9999, AccountUpdate{Name: strPtr("Alguém")})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("conta inexistente: err = %v, want ErrNotFound", err)
	}
}
