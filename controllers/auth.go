package controllers

import (
	"net/http"
	"strconv"
	"time"

	"conecta/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type RegisterRequest struct {
	Name       string `json:"name" form:"name"`
	Email      string `json:"email" form:"email"`
	Password   string `json:"password" form:"password"`
	NationalID string `json:"national_id" form:"national_id"`
	Phone      string `json:"phone" form:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	svc, ok := accountService(c)
	if !ok {
		return
	}

	account, err := svc.Register(req.Name, req.Email, req.Password, req.NationalID, req.Phone)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	RespondCreated(c, "Usuário criado com sucesso", gin.H{"user": account})
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	svc, ok := accountService(c)
	if !ok {
		return
	}

	account, err := svc.Authenticate(req.Email, req.Password)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	if account.Status != models.ACCOUNT_STATUS_ACTIVE {
		RespondError(c, "Usuário inativo ou suspenso", http.StatusForbidden)
		return
	}

	token, err := signToken(account)
	if err != nil {
		RespondError(c, "erro ao assinar token", http.StatusInternalServerError)
		return
	}

	RespondOK(c, "Login realizado com sucesso", gin.H{"token": token, "user": account})
}

// POST /api/auth/logout
// A sessão é um token assinado sem estado no servidor; o logout existe
// para o cliente descartar o token e limpar o que guardou localmente.
func Logout(c *gin.Context) {
	RespondOK(c, "Logout realizado com sucesso", nil)
}

// GET /api/auth/check (autenticado)
func CheckAuth(c *gin.Context) {
	account, ok := GetAccountLogged(c)
	if !ok {
		RespondError(c, "Usuário não autenticado", http.StatusUnauthorized)
		return
	}
	account.Password = ""
	RespondOK(c, "Usuário autenticado", gin.H{"user": account})
}

func signToken(account models.Account) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(account.ID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(tokenValidHours) * time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}
