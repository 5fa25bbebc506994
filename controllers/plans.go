package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type SubscribeRequest struct {
	PlanID int64 `json:"plan_id" form:"plan_id"`
}

// GET /api/plans
func GetPlans(c *gin.Context) {
	svc, ok := subscriptionService(c)
	if !ok {
		return
	}

	plans, err := svc.ListPlans()
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	RespondOK(c, "Planos listados com sucesso", gin.H{"plans": plans})
}

// GET /api/plans/:id
func GetPlanByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	svc, ok := subscriptionService(c)
	if !ok {
		return
	}

	plan, err := svc.GetPlan(id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	RespondOK(c, "Plano encontrado", gin.H{"plan": plan})
}

// POST /api/plans/subscribe (autenticado)
func SubscribePlan(c *gin.Context) {
	account, ok := GetAccountLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.PlanID <= 0 {
		RespondError(c, "plan_id é obrigatório", http.StatusBadRequest)
		return
	}

	svc, ok := subscriptionService(c)
	if !ok {
		return
	}

	if err := svc.Subscribe(account.ID, req.PlanID); err != nil {
		RespondServiceError(c, err)
		return
	}

	plan, err := svc.GetPlan(req.PlanID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	RespondOK(c, "Plano assinado com sucesso", gin.H{"plan": plan})
}

// GET /api/plans/current (autenticado)
func GetCurrentPlan(c *gin.Context) {
	account, ok := GetAccountLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	svc, ok := subscriptionService(c)
	if !ok {
		return
	}

	plan, err := svc.CurrentPlan(account.ID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	RespondOK(c, "Plano atual", gin.H{"plan": plan})
}
