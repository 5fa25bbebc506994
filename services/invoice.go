package services

import (
	"fmt"
	"time"

	"conecta/models"

	"github.com/jinzhu/gorm"
	"github.com/rs/zerolog"
)

// InvoiceService cuida do ciclo de vida das faturas. Não existe job de
// cobrança em background: o status de atraso é recalculado em todo
// caminho de leitura (ver reconcile).
type InvoiceService struct {
	db  *gorm.DB
	log zerolog.Logger
	now func() time.Time
}

func NewInvoiceService(db *gorm.DB, log zerolog.Logger) *InvoiceService {
	return &InvoiceService{db: db, log: log, now: time.Now}
}

// ListForAccount lista as faturas da conta, vencimento mais recente
// primeiro. limit <= 0 significa sem limite. Toda fatura retornada já
// passou pela reconciliação de atraso.
func (s *InvoiceService) ListForAccount(accountID int64, limit int) ([]models.Invoice, error) {
	query := s.db.Where("account_id = ?", accountID).Order("due_date desc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var invoices []models.Invoice
	if err := query.Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("listar faturas: %v: %w", err, ErrStorage)
	}

	for i := range invoices {
		reconciled, err := s.reconcile(invoices[i])
		if err != nil {
			return nil, err
		}
		invoices[i] = reconciled
	}

	if err := s.attachPlanInfo(invoices); err != nil {
		return nil, err
	}

	return invoices, nil
}

// FindByID busca uma fatura. Com accountID > 0 a consulta também exige
// que a fatura pertença à conta; fatura de outra conta responde como
// inexistente, nunca como acesso negado.
func (s *InvoiceService) FindByID(id int64, accountID int64) (models.Invoice, error) {
	query := s.db.Where("id = ?", id)
	if accountID > 0 {
		query = query.Where("account_id = ?", accountID)
	}

	var invoice models.Invoice
	if err := query.First(&invoice).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return models.Invoice{}, fmt.Errorf("fatura %d: %w", id, ErrNotFound)
		}
		return models.Invoice{}, fmt.Errorf("buscar fatura: %v: %w", err, ErrStorage)
	}

	invoice, err := s.reconcile(invoice)
	if err != nil {
		return models.Invoice{}, err
	}

	invoices := []models.Invoice{invoice}
	if err := s.attachPlanInfo(invoices); err != nil {
		return models.Invoice{}, err
	}

	return invoices[0], nil
}

// Create insere uma fatura nova. Quem gera cobrança (processo externo)
// é responsável por validar valor e formato do vencimento antes.
func (s *InvoiceService) Create(invoice *models.Invoice) error {
	if invoice.Status == "" {
		invoice.Status = models.INVOICE_STATUS_PENDING
	}
	if err := s.db.Create(invoice).Error; err != nil {
		return fmt.Errorf("criar fatura: %v: %w", err, ErrStorage)
	}
	return nil
}

// MarkPaid marca a fatura como paga com a data de hoje. O guard de
// "fatura já paga" é contrato do chamador (handler de pagamento), que
// precisa checar o status antes de chamar aqui.
func (s *InvoiceService) MarkPaid(id int64) error {
	updates := map[string]interface{}{
		"status":  models.INVOICE_STATUS_PAID,
		"paid_on": s.now().Format(models.DateLayout),
	}

	result := s.db.Model(&models.Invoice{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("pagar fatura: %v: %w", result.Error, ErrStorage)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("fatura %d: %w", id, ErrNotFound)
	}

	s.log.Info().Int64("invoice_id", id).Msg("fatura marcada como paga")
	return nil
}

// reconcile aplica a regra pura de atraso e, se o status mudou,
// persiste a transição antes de devolver o registro atualizado.
func (s *InvoiceService) reconcile(invoice models.Invoice) (models.Invoice, error) {
	reconciled := models.Reconcile(invoice, s.now())
	if reconciled.Status == invoice.Status {
		return invoice, nil
	}

	err := s.db.Model(&models.Invoice{}).
		Where("id = ?", invoice.ID).
		Update("status", reconciled.Status).Error
	if err != nil {
		return models.Invoice{}, fmt.Errorf("atualizar status da fatura: %v: %w", err, ErrStorage)
	}

	s.log.Debug().
		Int64("invoice_id", invoice.ID).
		Str("due_date", invoice.DueDate).
		Msg("fatura pendente vencida marcada como atrasada")

	return reconciled, nil
}

// attachPlanInfo preenche nome e velocidade do plano para exibição.
// Segue o LEFT JOIN do legado: o plano aparece mesmo que esteja
// inativo no catálogo.
func (s *InvoiceService) attachPlanInfo(invoices []models.Invoice) error {
	ids := make([]int64, 0, len(invoices))
	for _, invoice := range invoices {
		if invoice.PlanID != nil {
			ids = append(ids, *invoice.PlanID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	var plans []models.Plan
	if err := s.db.Where("id in (?)", ids).Find(&plans).Error; err != nil {
		return fmt.Errorf("carregar planos das faturas: %v: %w", err, ErrStorage)
	}

	byID := make(map[int64]models.Plan, len(plans))
	for _, plan := range plans {
		byID[plan.ID] = plan
	}

	for i := range invoices {
		if invoices[i].PlanID == nil {
			continue
		}
		if plan, ok := byID[*invoices[i].PlanID]; ok {
			invoices[i].PlanName = plan.Name
			invoices[i].PlanSpeed = plan.Speed
		}
	}

	return nil
}
