package services

import (
	"fmt"
	"time"

	"conecta/models"

	"github.com/jinzhu/gorm"
	"github.com/rs/zerolog"
)

// SubscriptionService expõe o catálogo de planos e a contratação.
// Contratar é uma operação única e atômica — cancelar a assinatura
// ativa, inserir a nova e atualizar o ponteiro da conta nunca são
// chamáveis em separado.
type SubscriptionService struct {
	db  *gorm.DB
	log zerolog.Logger
	now func() time.Time
}

func NewSubscriptionService(db *gorm.DB, log zerolog.Logger) *SubscriptionService {
	return &SubscriptionService{db: db, log: log, now: time.Now}
}

// ListPlans devolve os planos ativos em ordem crescente de preço, com
// a lista de features já decodificada.
func (s *SubscriptionService) ListPlans() ([]models.Plan, error) {
	var plans []models.Plan
	err := s.db.Where("status = ?", models.PLAN_STATUS_ACTIVE).
		Order("price asc").
		Find(&plans).Error
	if err != nil {
		return nil, fmt.Errorf("listar planos: %v: %w", err, ErrStorage)
	}

	for i := range plans {
		plans[i].DecodeFeatures()
	}
	return plans, nil
}

// GetPlan busca um plano ativo. Plano inativo responde como inexistente.
func (s *SubscriptionService) GetPlan(id int64) (models.Plan, error) {
	var plan models.Plan
	err := s.db.Where("id = ? AND status = ?", id, models.PLAN_STATUS_ACTIVE).
		First(&plan).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return models.Plan{}, fmt.Errorf("plano %d: %w", id, ErrNotFound)
		}
		return models.Plan{}, fmt.Errorf("buscar plano: %v: %w", err, ErrStorage)
	}

	plan.DecodeFeatures()
	return plan, nil
}

// Subscribe contrata um plano para a conta, em uma única transação:
// cancela a assinatura ativa, insere a nova datada de hoje e atualiza
// current_plan_id. No postgres a linha da conta fica travada com
// FOR UPDATE durante a sequência, então duas contratações simultâneas
// da mesma conta serializam e só uma assinatura termina ativa.
func (s *SubscriptionService) Subscribe(accountID, planID int64) error {
	plan, err := s.GetPlan(planID)
	if err != nil {
		return err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("abrir transação: %v: %w", tx.Error, ErrStorage)
	}

	accountQuery := tx
	if s.db.Dialect().GetName() == "postgres" {
		accountQuery = tx.Set("gorm:query_option", "FOR UPDATE")
	}

	var account models.Account
	if err := accountQuery.First(&account, accountID).Error; err != nil {
		tx.Rollback()
		if gorm.IsRecordNotFoundError(err) {
			return fmt.Errorf("conta %d: %w", accountID, ErrNotFound)
		}
		return fmt.Errorf("travar conta: %v: %w", err, ErrStorage)
	}

	err = tx.Model(&models.Subscription{}).
		Where("account_id = ? AND status = ?", accountID, models.SUBSCRIPTION_STATUS_ACTIVE).
		Update("status", models.SUBSCRIPTION_STATUS_CANCELLED).Error
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("cancelar assinatura anterior: %v: %w", err, ErrStorage)
	}

	subscription := models.Subscription{
		AccountID:    accountID,
		PlanID:       plan.ID,
		SubscribedOn: s.now().Format(models.DateLayout),
		Status:       models.SUBSCRIPTION_STATUS_ACTIVE,
	}
	if err := tx.Create(&subscription).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("criar assinatura: %v: %w", err, ErrStorage)
	}

	err = tx.Model(&models.Account{}).
		Where("id = ?", accountID).
		Update("current_plan_id", plan.ID).Error
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("atualizar plano atual da conta: %v: %w", err, ErrStorage)
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("confirmar contratação: %v: %w", err, ErrStorage)
	}

	s.log.Info().
		Int64("account_id", accountID).
		Int64("plan_id", plan.ID).
		Msg("plano contratado")

	return nil
}

// CurrentPlan resolve o plano atual pelo ponteiro desnormalizado da
// conta, cruzado com o catálogo ativo. De propósito NÃO consulta o
// histórico de assinaturas: se o ponteiro aponta para plano inativo ou
// está vazio, a resposta é "sem plano", mesmo que exista assinatura
// ativa no histórico. Corrigir esse drift é decisão futura; o acesso
// fica isolado aqui.
func (s *SubscriptionService) CurrentPlan(accountID int64) (models.Plan, error) {
	var plan models.Plan
	err := s.db.
		Select("plans.*").
		Joins("JOIN accounts ON accounts.current_plan_id = plans.id").
		Where("accounts.id = ? AND plans.status = ?", accountID, models.PLAN_STATUS_ACTIVE).
		First(&plan).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return models.Plan{}, fmt.Errorf("conta %d sem plano atual: %w", accountID, ErrNotFound)
		}
		return models.Plan{}, fmt.Errorf("buscar plano atual: %v: %w", err, ErrStorage)
	}

	plan.DecodeFeatures()
	return plan, nil
}
