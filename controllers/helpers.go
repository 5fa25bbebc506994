package controllers

import (
	"net/http"
	"strconv"

	dbpkg "conecta/db"
	"conecta/logger"
	"conecta/services"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

func ParamID(c *gin.Context, name string) (int64, bool) {
	v := c.Param(name)
	if v == "" {
		RespondError(c, name+" é obrigatório", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, name+" inválido", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func database(c *gin.Context) (*gorm.DB, bool) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return nil, false
	}
	return db, true
}

func accountService(c *gin.Context) (*services.AccountService, bool) {
	db, ok := database(c)
	if !ok {
		return nil, false
	}
	return services.NewAccountService(db, logger.L()), true
}

func subscriptionService(c *gin.Context) (*services.SubscriptionService, bool) {
	db, ok := database(c)
	if !ok {
		return nil, false
	}
	return services.NewSubscriptionService(db, logger.L()), true
}

func invoiceService(c *gin.Context) (*services.InvoiceService, bool) {
	db, ok := database(c)
	if !ok {
		return nil, false
	}
	return services.NewInvoiceService(db, logger.L()), true
}

func ticketService(c *gin.Context) (*services.TicketService, bool) {
	db, ok := database(c)
	if !ok {
		return nil, false
	}
	return services.NewTicketService(db, logger.L()), true
}

func productService(c *gin.Context) (*services.ProductService, bool) {
	db, ok := database(c)
	if !ok {
		return nil, false
	}
	return services.NewProductService(db, logger.L()), true
}
