package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	dbpkg "conecta/db"
	"conecta/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const ctxAccountKey = "auth_account"

// AuthRequired valida o Bearer token e carrega a conta do banco para o
// contexto. Toda operação autenticada resolve a conta por aqui — nunca
// por id vindo do cliente.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			RespondError(c, "Acesso negado. Faça login primeiro.", http.StatusUnauthorized)
			c.Abort()
			return
		}
		raw := strings.TrimSpace(header[len("Bearer "):])

		accountID, ok := parseToken(raw)
		if !ok {
			RespondError(c, "Sessão inválida ou expirada", http.StatusUnauthorized)
			c.Abort()
			return
		}

		db := dbpkg.DBInstance(c)
		if db == nil {
			RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
			c.Abort()
			return
		}

		var account models.Account
		if err := db.First(&account, accountID).Error; err != nil {
			RespondError(c, "Acesso negado. Faça login primeiro.", http.StatusUnauthorized)
			c.Abort()
			return
		}

		c.Set(ctxAccountKey, account)
		c.Next()
	}
}

// GetAccountLogged devolve a conta carregada pelo AuthRequired.
func GetAccountLogged(c *gin.Context) (models.Account, bool) {
	v, ok := c.Get(ctxAccountKey)
	if !ok {
		return models.Account{}, false
	}
	account, ok := v.(models.Account)
	return account, ok
}

func parseToken(raw string) (int64, bool) {
	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}

	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || accountID <= 0 {
		return 0, false
	}
	return accountID, true
}
