package services

import (
	"fmt"
	"strings"

	"conecta/models"
	"conecta/tools"

	"github.com/jinzhu/gorm"
	"github.com/rs/zerolog"
)

// AccountService cuida de cadastro, autenticação e autoatendimento de
// perfil. A senha sai daqui sempre como hash bcrypt e nunca volta em
// resposta alguma.
type AccountService struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewAccountService(db *gorm.DB, log zerolog.Logger) *AccountService {
	return &AccountService{db: db, log: log}
}

// AccountUpdate carrega os campos opcionais de atualização de perfil.
// Ponteiro nil significa "não mexer".
type AccountUpdate struct {
	Name       *string
	Email      *string
	NationalID *string
	Phone      *string
	Password   *string
}

// Register cria uma conta nova com status ativo.
func (s *AccountService) Register(name, email, password, nationalID, phone string) (models.Account, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" || email == "" || password == "" {
		return models.Account{}, fmt.Errorf("nome, email e senha são obrigatórios: %w", ErrValidation)
	}
	if !tools.ValidateEmail(email) {
		return models.Account{}, fmt.Errorf("email inválido: %w", ErrValidation)
	}
	if field := tools.CheckPassword(password); field != "" {
		return models.Account{}, fmt.Errorf("senha deve ter no mínimo 6 caracteres: %w", ErrValidation)
	}

	exists, err := s.EmailExists(email, 0)
	if err != nil {
		return models.Account{}, err
	}
	if exists {
		return models.Account{}, fmt.Errorf("email já cadastrado: %w", ErrConflict)
	}

	hash, err := tools.HashPassword(password)
	if err != nil {
		return models.Account{}, fmt.Errorf("gerar hash de senha: %v: %w", err, ErrStorage)
	}

	account := models.Account{
		Name:       name,
		Email:      email,
		Password:   hash,
		NationalID: strings.TrimSpace(nationalID),
		Phone:      strings.TrimSpace(phone),
		Status:     models.ACCOUNT_STATUS_ACTIVE,
	}

	if err := s.db.Create(&account).Error; err != nil {
		s.log.Error().Err(err).Str("email", email).Msg("erro ao criar conta")
		return models.Account{}, fmt.Errorf("criar conta: %v: %w", err, ErrStorage)
	}

	account.Password = ""
	return account, nil
}

// Authenticate confere email e senha. Conta inexistente e senha errada
// respondem com a mesma falha genérica.
func (s *AccountService) Authenticate(email, password string) (models.Account, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return models.Account{}, fmt.Errorf("email e senha são obrigatórios: %w", ErrValidation)
	}

	var account models.Account
	if err := s.db.Where("email = ?", email).First(&account).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return models.Account{}, fmt.Errorf("credenciais inválidas: %w", ErrUnauthorized)
		}
		return models.Account{}, fmt.Errorf("buscar conta: %v: %w", err, ErrStorage)
	}

	if !tools.VerifyPassword(account.Password, password) {
		return models.Account{}, fmt.Errorf("credenciais inválidas: %w", ErrUnauthorized)
	}

	account.Password = ""
	return account, nil
}

// FindByID busca a conta pelo identificador.
func (s *AccountService) FindByID(id int64) (models.Account, error) {
	var account models.Account
	if err := s.db.First(&account, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return models.Account{}, fmt.Errorf("conta %d: %w", id, ErrNotFound)
		}
		return models.Account{}, fmt.Errorf("buscar conta: %v: %w", err, ErrStorage)
	}
	account.Password = ""
	return account, nil
}

// Update aplica uma atualização parcial de perfil. Chamada sem nenhum
// campo é falha de validação; email passa por formato e unicidade
// (ignorando a própria conta); senha nova passa pela regra de tamanho
// e vira hash.
func (s *AccountService) Update(id int64, update AccountUpdate) (models.Account, error) {
	changes := map[string]interface{}{}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return models.Account{}, fmt.Errorf("nome não pode ser vazio: %w", ErrValidation)
		}
		changes["name"] = name
	}

	if update.Email != nil {
		email := strings.TrimSpace(*update.Email)
		if !tools.ValidateEmail(email) {
			return models.Account{}, fmt.Errorf("email inválido: %w", ErrValidation)
		}
		exists, err := s.EmailExists(email, id)
		if err != nil {
			return models.Account{}, err
		}
		if exists {
			return models.Account{}, fmt.Errorf("email já cadastrado: %w", ErrConflict)
		}
		changes["email"] = email
	}

	if update.NationalID != nil {
		changes["national_id"] = strings.TrimSpace(*update.NationalID)
	}

	if update.Phone != nil {
		changes["phone"] = strings.TrimSpace(*update.Phone)
	}

	if update.Password != nil && *update.Password != "" {
		if field := tools.CheckPassword(*update.Password); field != "" {
			return models.Account{}, fmt.Errorf("senha deve ter no mínimo 6 caracteres: %w", ErrValidation)
		}
		hash, err := tools.HashPassword(*update.Password)
		if err != nil {
			return models.Account{}, fmt.Errorf("gerar hash de senha: %v: %w", err, ErrStorage)
		}
		changes["password_hash"] = hash
	}

	if len(changes) == 0 {
		return models.Account{}, fmt.Errorf("nenhum dado para atualizar: %w", ErrValidation)
	}

	result := s.db.Model(&models.Account{}).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		return models.Account{}, fmt.Errorf("atualizar conta: %v: %w", result.Error, ErrStorage)
	}
	if result.RowsAffected == 0 {
		return models.Account{}, fmt.Errorf("conta %d: %w", id, ErrNotFound)
	}

	return s.FindByID(id)
}

// EmailExists informa se o email já pertence a alguma conta, opcional-
// mente ignorando excludeID (a própria conta em updates).
func (s *AccountService) EmailExists(email string, excludeID int64) (bool, error) {
	query := s.db.Model(&models.Account{}).Where("email = ?", email)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("checar email: %v: %w", err, ErrStorage)
	}
	return count > 0, nil
}
