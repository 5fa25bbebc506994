package models

import "time"

const TICKET_STATUS_OPEN = "open"
const TICKET_STATUS_IN_PROGRESS = "in_progress"
const TICKET_STATUS_RESOLVED = "resolved"

const TICKET_CATEGORY_TECHNICAL = "technical"
const TICKET_CATEGORY_COMMERCIAL = "commercial"
const TICKET_CATEGORY_FINANCIAL = "financial"

// Ticket representa um chamado de suporte com número de protocolo
// legível (ano + sequência de 5 dígitos).
type Ticket struct {
	ID           int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	AccountID    int64      `gorm:"not null;index" json:"account_id"`
	TicketNumber string     `gorm:"column:ticket_number;not null;index" json:"ticket_number"`
	Category     string     `gorm:"not null" json:"category"`
	Subject      string     `gorm:"not null" json:"subject"`
	Description  string     `gorm:"not null;type:text" json:"description"`
	Status       string     `gorm:"not null;default:'open'" json:"status"`
	Response     string     `gorm:"type:text;default:''" json:"response,omitempty"`
	OpenedAt     *time.Time `gorm:"column:opened_at" json:"opened_at"`
	ResolvedAt   *time.Time `gorm:"column:resolved_at" json:"resolved_at,omitempty"`
}

func (Ticket) TableName() string {
	return "tickets"
}

// IsTicketCategory valida a categoria contra o conjunto fechado.
func IsTicketCategory(category string) bool {
	switch category {
	case TICKET_CATEGORY_TECHNICAL, TICKET_CATEGORY_COMMERCIAL, TICKET_CATEGORY_FINANCIAL:
		return true
	}
	return false
}
