package controllers

import (
	"net/http"
	"strconv"

	"conecta/models"

	"github.com/gin-gonic/gin"
)

// GET /api/invoices?limit=N (autenticado)
func GetInvoices(c *gin.Context) {
	account, ok := GetAccountLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			RespondError(c, "limit inválido", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	svc, ok := invoiceService(c)
	if !ok {
		return
	}

	invoices, err := svc.ListForAccount(account.ID, limit)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	RespondOK(c, "Faturas listadas com sucesso", gin.H{"invoices": invoices})
}

// GET /api/invoices/:id (autenticado)
func GetInvoiceByID(c *gin.Context) {
	account, ok := GetAccountLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	svc, ok := invoiceService(c)
	if !ok {
		return
	}

	invoice, err := svc.FindByID(id, account.ID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	RespondOK(c, "Detalhes da fatura", gin.H{"invoice": invoice})
}

// POST /api/invoices/:id/pay (autenticado)
// O "pagamento" é só a virada de status; fatura já paga é rejeitada
// aqui, antes de chamar o serviço — MarkPaid não re-checa.
func PayInvoice(c *gin.Context) {
	account, ok := GetAccountLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	svc, ok := invoiceService(c)
	if !ok {
		return
	}

	invoice, err := svc.FindByID(id, account.ID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	if invoice.Status == models.INVOICE_STATUS_PAID {
		RespondError(c, "Fatura já foi paga", http.StatusBadRequest)
		return
	}

	if err := svc.MarkPaid(invoice.ID); err != nil {
		RespondServiceError(c, err)
		return
	}

	updated, err := svc.FindByID(id, account.ID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	RespondOK(c, "Fatura paga com sucesso", gin.H{"invoice": updated})
}
