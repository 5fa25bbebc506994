package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type CreateTicketRequest struct {
	Category    string `json:"category" form:"category"`
	Subject     string `json:"subject" form:"subject"`
	Description string `json:"description" form:"description"`
}

type UpdateTicketRequest struct {
	Status   string `json:"status" form:"status"`
	Response string `json:"response" form:"response"`
}

// GET /api/tickets (autenticado)
func GetTickets(c *gin.Context) {
	account, ok := GetAccountLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	svc, ok := ticketService(c)
	if !ok {
		return
	}

	tickets, err := svc.ListForAccount(account.ID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	RespondOK(c, "Chamados listados com sucesso", gin.H{"tickets": tickets})
}

// POST /api/tickets (autenticado)
func CreateTicket(c *gin.Context) {
	account, ok := GetAccountLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreateTicketRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	svc, ok := ticketService(c)
	if !ok {
		return
	}

	ticket, err := svc.Create(account.ID, req.Category, req.Subject, req.Description)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	RespondCreated(c, "Chamado aberto com sucesso", gin.H{"ticket": ticket})
}

// GET /api/tickets/:id (autenticado)
func GetTicketByID(c *gin.Context) {
	account, ok := GetAccountLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	svc, ok := ticketService(c)
	if !ok {
		return
	}

	ticket, err := svc.FindByID(id, account.ID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	RespondOK(c, "Detalhes do chamado", gin.H{"ticket": ticket})
}

// PUT /api/tickets/:id (autenticado)
func UpdateTicket(c *gin.Context) {
	account, ok := GetAccountLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var req UpdateTicketRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	svc, ok := ticketService(c)
	if !ok {
		return
	}

	// Garante que o chamado pertence à conta antes de atualizar;
	// chamado alheio responde 404.
	if _, err := svc.FindByID(id, account.ID); err != nil {
		RespondServiceError(c, err)
		return
	}

	if err := svc.Update(id, req.Status, req.Response); err != nil {
		RespondServiceError(c, err)
		return
	}

	ticket, err := svc.FindByID(id, account.ID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	RespondOK(c, "Chamado atualizado com sucesso", gin.H{"ticket": ticket})
}
