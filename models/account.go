package models

import "time"

const ACCOUNT_STATUS_ACTIVE = "active"
const ACCOUNT_STATUS_INACTIVE = "inactive"
const ACCOUNT_STATUS_SUSPENDED = "suspended"

// Account representa um cliente do provedor.
// CurrentPlanID é um cache desnormalizado da assinatura ativa; quem o
// mantém é o fluxo de assinatura (SubscriptionService.Subscribe).
type Account struct {
	ID            int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name          string     `gorm:"not null" json:"name" form:"name"`
	Email         string     `gorm:"not null;unique" json:"email" form:"email"`
	Password      string     `gorm:"column:password_hash;not null" json:"-"`
	NationalID    string     `gorm:"column:national_id;default:''" json:"national_id" form:"national_id"`
	Phone         string     `gorm:"default:''" json:"phone" form:"phone"`
	Status        string     `gorm:"not null;default:'active'" json:"status"`
	CurrentPlanID *int64     `gorm:"column:current_plan_id" json:"current_plan_id"`
	CreatedAt     *time.Time `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}
