package router

import (
	"net/http"

	"conecta/config"
	"conecta/controllers"
	"conecta/logger"
	"conecta/middleware"

	"github.com/gin-gonic/gin"
)

// Initialize amarra rotas e middlewares: rotas públicas (catálogo,
// registro, login) + rotas autenticadas (conta, faturas, chamados,
// contratação e compra).
func Initialize(r *gin.Engine, cfg config.Configuration) {
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		controllers.RespondError(c, "Método não permitido", http.StatusMethodNotAllowed)
	})
	r.NoRoute(func(c *gin.Context) {
		controllers.RespondError(c, "Ação não encontrada", http.StatusNotFound)
	})

	api := r.Group("/api")

	// Public (no auth)
	api.POST("/auth/register", Logger(), controllers.Register)
	api.POST("/auth/login", Logger(), controllers.Login)
	api.POST("/auth/logout", Logger(), controllers.Logout)

	api.GET("/plans", Logger(), controllers.GetPlans)
	api.GET("/products", Logger(), controllers.GetProducts)
	api.GET("/products/categories", Logger(), controllers.GetProductCategories)
	api.GET("/products/:id", Logger(), controllers.GetProductByID)

	// Authenticated routes (token required)
	auth := api.Group("")
	auth.Use(controllers.AuthRequired())

	auth.GET("/auth/check", Logger(), controllers.CheckAuth)

	auth.GET("/me", Logger(), controllers.Me)
	auth.PUT("/me", Logger(), controllers.UpdateMe)

	auth.GET("/plans/current", Logger(), controllers.GetCurrentPlan)
	auth.GET("/plans/:id", Logger(), controllers.GetPlanByID)
	auth.POST("/plans/subscribe", Logger(), controllers.SubscribePlan)

	auth.GET("/invoices", Logger(), controllers.GetInvoices)
	auth.GET("/invoices/:id", Logger(), controllers.GetInvoiceByID)
	auth.POST("/invoices/:id/pay", Logger(), controllers.PayInvoice)

	auth.GET("/tickets", Logger(), controllers.GetTickets)
	auth.POST("/tickets", Logger(), controllers.CreateTicket)
	auth.GET("/tickets/:id", Logger(), controllers.GetTicketByID)
	auth.PUT("/tickets/:id", Logger(), controllers.UpdateTicket)

	auth.POST("/products/:id/purchase", Logger(), controllers.PurchaseProduct)

	log := logger.L()
	log.Info().Msg("rotas inicializadas")
}
