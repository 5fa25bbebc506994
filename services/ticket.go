package services

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"conecta/models"

	"github.com/jinzhu/gorm"
	"github.com/rs/zerolog"
)

// NumberSource emite números de protocolo para chamados. exists informa
// se um número já está em uso, permitindo a fonte decidir sobre retry.
type NumberSource interface {
	Next(exists func(number string) bool) string
}

// randomNumberSource reproduz o alocador legado: ano corrente + número
// aleatório de 1 a 99999 com zero à esquerda. Tenta até 10 vezes em
// caso de colisão e, esgotadas as tentativas, segue com o último número
// gerado mesmo assim — garantia fraca conhecida. Um alocador mais forte
// (contador por ano) pode substituir esta implementação sem mexer nos
// chamadores.
type randomNumberSource struct {
	rand *rand.Rand
	now  func() time.Time
}

func newRandomNumberSource() *randomNumberSource {
	return &randomNumberSource{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
		now:  time.Now,
	}
}

func (r *randomNumberSource) Next(exists func(number string) bool) string {
	year := r.now().Year()
	var number string
	for attempt := 0; attempt < 10; attempt++ {
		number = fmt.Sprintf("%d%05d", year, r.rand.Intn(99999)+1)
		if !exists(number) {
			break
		}
	}
	return number
}

// TicketService cuida dos chamados de suporte de uma conta.
type TicketService struct {
	db      *gorm.DB
	log     zerolog.Logger
	now     func() time.Time
	numbers NumberSource
}

func NewTicketService(db *gorm.DB, log zerolog.Logger) *TicketService {
	return &TicketService{
		db:      db,
		log:     log,
		now:     time.Now,
		numbers: newRandomNumberSource(),
	}
}

// Create abre um chamado com status "open" e número de protocolo
// gerado. Categoria fora do conjunto fechado ou campos vazios após
// trim são rejeitados antes de qualquer acesso ao banco.
func (s *TicketService) Create(accountID int64, category, subject, description string) (models.Ticket, error) {
	category = strings.TrimSpace(category)
	subject = strings.TrimSpace(subject)
	description = strings.TrimSpace(description)

	if category == "" || subject == "" || description == "" {
		return models.Ticket{}, fmt.Errorf("categoria, assunto e descrição são obrigatórios: %w", ErrValidation)
	}
	if !models.IsTicketCategory(category) {
		return models.Ticket{}, fmt.Errorf("categoria inválida: %w", ErrValidation)
	}

	number := s.numbers.Next(func(number string) bool {
		var count int
		err := s.db.Model(&models.Ticket{}).
			Where("ticket_number = ?", number).
			Count(&count).Error
		if err != nil {
			s.log.Warn().Err(err).Msg("falha ao checar colisão de protocolo")
			return false
		}
		return count > 0
	})

	openedAt := s.now()
	ticket := models.Ticket{
		AccountID:    accountID,
		TicketNumber: number,
		Category:     category,
		Subject:      subject,
		Description:  description,
		Status:       models.TICKET_STATUS_OPEN,
		OpenedAt:     &openedAt,
	}

	if err := s.db.Create(&ticket).Error; err != nil {
		s.log.Error().Err(err).Int64("account_id", accountID).Msg("erro ao criar chamado")
		return models.Ticket{}, fmt.Errorf("criar chamado: %v: %w", err, ErrStorage)
	}

	s.log.Info().
		Int64("account_id", accountID).
		Str("ticket_number", number).
		Msg("chamado aberto")

	return ticket, nil
}

// ListForAccount lista os chamados da conta, mais recentes primeiro.
func (s *TicketService) ListForAccount(accountID int64) ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := s.db.Where("account_id = ?", accountID).
		Order("opened_at desc").
		Find(&tickets).Error
	if err != nil {
		return nil, fmt.Errorf("listar chamados: %v: %w", err, ErrStorage)
	}
	return tickets, nil
}

// FindByID busca um chamado; accountID > 0 restringe ao dono, e chamado
// de outra conta responde como inexistente.
func (s *TicketService) FindByID(id int64, accountID int64) (models.Ticket, error) {
	query := s.db.Where("id = ?", id)
	if accountID > 0 {
		query = query.Where("account_id = ?", accountID)
	}

	var ticket models.Ticket
	if err := query.First(&ticket).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return models.Ticket{}, fmt.Errorf("chamado %d: %w", id, ErrNotFound)
		}
		return models.Ticket{}, fmt.Errorf("buscar chamado: %v: %w", err, ErrStorage)
	}
	return ticket, nil
}

// Update altera status e/ou resposta. Sem nenhum campo a chamada falha.
// Status "resolved" carimba resolved_at com o relógio do servidor,
// nunca com valor vindo do cliente.
func (s *TicketService) Update(id int64, status, response string) error {
	status = strings.TrimSpace(status)
	response = strings.TrimSpace(response)

	updates := map[string]interface{}{}
	if status != "" {
		updates["status"] = status
		if status == models.TICKET_STATUS_RESOLVED {
			updates["resolved_at"] = s.now()
		}
	}
	if response != "" {
		updates["response"] = response
	}

	if len(updates) == 0 {
		return fmt.Errorf("nenhum dado para atualizar: %w", ErrValidation)
	}

	result := s.db.Model(&models.Ticket{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("atualizar chamado: %v: %w", result.Error, ErrStorage)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("chamado %d: %w", id, ErrNotFound)
	}

	return nil
}
