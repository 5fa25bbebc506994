package controllers

import (
	"net/http"

	"conecta/services"

	"github.com/gin-gonic/gin"
)

type UpdateAccountRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	NationalID *string `json:"national_id"`
	Phone      *string `json:"phone"`
	Password   *string `json:"password"`
}

// GET /api/me
// Devolve a conta logada e, se houver ponteiro de plano atual, os
// detalhes do plano junto.
func Me(c *gin.Context) {
	logged, ok := GetAccountLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	accounts, ok := accountService(c)
	if !ok {
		return
	}

	account, err := accounts.FindByID(logged.ID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	data := gin.H{"user": account}

	if account.CurrentPlanID != nil {
		subscriptions, ok := subscriptionService(c)
		if !ok {
			return
		}
		if plan, err := subscriptions.GetPlan(*account.CurrentPlanID); err == nil {
			data["plan"] = plan
		}
	}

	RespondOK(c, "Dados do usuário", data)
}

// PUT /api/me
func UpdateMe(c *gin.Context) {
	logged, ok := GetAccountLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	svc, ok := accountService(c)
	if !ok {
		return
	}

	account, err := svc.Update(logged.ID, toAccountUpdate(req))
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	RespondOK(c, "Dados atualizados com sucesso", gin.H{"user": account})
}

func toAccountUpdate(req UpdateAccountRequest) services.AccountUpdate {
	return services.AccountUpdate{
		Name:       req.Name,
		Email:      req.Email,
		NationalID: req.NationalID,
		Phone:      req.Phone,
		Password:   req.Password,
	}
}
