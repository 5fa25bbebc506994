package models

import "time"

const INVOICE_STATUS_PENDING = "pending"
const INVOICE_STATUS_PAID = "paid"
const INVOICE_STATUS_OVERDUE = "overdue"

// DateLayout é o formato de datas de calendário (vencimento, pagamento).
const DateLayout = "2006-01-02"

// Invoice representa uma fatura da conta. Datas de calendário ficam como
// string YYYY-MM-DD (coluna DATE), o que mantém a comparação de
// vencimento independente de fuso e de driver.
type Invoice struct {
	ID          int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	AccountID   int64      `gorm:"not null;index" json:"account_id"`
	PlanID      *int64     `gorm:"column:plan_id" json:"plan_id"`
	Amount      float64    `gorm:"not null" json:"amount"`
	Status      string     `gorm:"not null;default:'pending'" json:"status"`
	DueDate     string     `gorm:"column:due_date;type:date;not null" json:"due_date"`
	PaidOn      string     `gorm:"column:paid_on;type:date;default:''" json:"paid_on,omitempty"`
	Reference   string     `gorm:"default:''" json:"reference,omitempty"`
	DocumentRef string     `gorm:"column:document_ref;default:''" json:"document_ref,omitempty"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`

	// Campos de exibição preenchidos no join com o plano.
	PlanName  string `gorm:"-" json:"plan_name,omitempty"`
	PlanSpeed string `gorm:"-" json:"plan_speed,omitempty"`
}

func (Invoice) TableName() string {
	return "invoices"
}

// Reconcile aplica a regra de atraso sobre uma fatura, sem tocar no
// banco: pendente com vencimento anterior à data de referência vira
// atrasada. Paga nunca muda de status, atrasada só sai via pagamento.
// Idempotente: reaplicar com a mesma data não gera nova transição.
func Reconcile(invoice Invoice, asOf time.Time) Invoice {
	if invoice.Status != INVOICE_STATUS_PENDING {
		return invoice
	}
	if invoice.DueDate != "" && invoice.DueDate < asOf.Format(DateLayout) {
		invoice.Status = INVOICE_STATUS_OVERDUE
	}
	return invoice
}
