package models

import "time"

const SUBSCRIPTION_STATUS_ACTIVE = "active"
const SUBSCRIPTION_STATUS_CANCELLED = "cancelled"

// Subscription registra o histórico de contratação de planos.
// Invariante: no máximo uma assinatura ativa por conta.
type Subscription struct {
	ID           int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	AccountID    int64      `gorm:"not null;index" json:"account_id"`
	PlanID       int64      `gorm:"not null;index" json:"plan_id"`
	SubscribedOn string     `gorm:"column:subscribed_on;type:date;not null" json:"subscribed_on"`
	Status       string     `gorm:"not null;default:'active'" json:"status"`
	CreatedAt    *time.Time `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
