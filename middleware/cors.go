package middleware

import "github.com/gin-gonic/gin"

// CORSMiddleware libera CORS para as origens configuradas. Com "*" na
// lista qualquer origem passa (útil em dev); em produção configure as
// origens do front em allowed_origins.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowAll := false
	allowed := map[string]bool{}
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		header := c.Writer.Header()
		if allowAll && origin == "" {
			header.Set("Access-Control-Allow-Origin", "*")
		} else if allowAll || allowed[origin] {
			header.Set("Access-Control-Allow-Origin", origin)
		}
		header.Set("Access-Control-Allow-Credentials", "true")
		header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
