package controllers

import (
	"errors"
	"net/http"

	"conecta/config"
	"conecta/services"

	"github.com/gin-gonic/gin"
)

var (
	jwtSecret       = "CHANGE_ME"
	tokenValidHours = 24
	debugMode       = false
)

// Configure injeta as opções de segurança e debug vindas do main.
func Configure(cfg config.Configuration) {
	jwtSecret = cfg.Security.JwtSecret
	tokenValidHours = cfg.Security.TokenValidHours
	debugMode = cfg.Debug
}

// Envelope de resposta: {status: "ok"|"erro", message, data?}.
func respond(c *gin.Context, code int, status, message string, data gin.H) {
	payload := gin.H{"status": status, "message": message}
	if data != nil {
		payload["data"] = data
	}
	c.JSON(code, payload)
}

func RespondOK(c *gin.Context, message string, data gin.H) {
	respond(c, http.StatusOK, "ok", message, data)
}

func RespondCreated(c *gin.Context, message string, data gin.H) {
	respond(c, http.StatusCreated, "ok", message, data)
}

func RespondError(c *gin.Context, message string, code int) {
	respond(c, code, "erro", message, nil)
}

// RespondServiceError mapeia as falhas dos serviços para o código HTTP
// da convenção: validação 400, sessão 401, ausência (ou dono errado)
// 404, unicidade 409 e o resto 500. Fora do modo debug o erro interno
// vira mensagem genérica.
func RespondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		RespondError(c, err.Error(), http.StatusBadRequest)
	case errors.Is(err, services.ErrUnauthorized):
		RespondError(c, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, services.ErrNotFound):
		RespondError(c, err.Error(), http.StatusNotFound)
	case errors.Is(err, services.ErrConflict):
		RespondError(c, err.Error(), http.StatusConflict)
	default:
		if debugMode {
			RespondError(c, err.Error(), http.StatusInternalServerError)
			return
		}
		RespondError(c, "Erro interno. Tente novamente.", http.StatusInternalServerError)
	}
}
