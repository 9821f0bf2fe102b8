package middleware

import (
	"github.com/gin-gonic/gin"
)

// CORSHeaders проставляет Access-Control-Allow-Headers и
// Access-Control-Allow-Methods на КАЖДЫЙ ответ, а не только на preflight.
// Исторический контракт API: клиенты полагаются на эти заголовки
// в обычных ответах.
func CORSHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization,true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,PATCH,POST,DELETE,OPTIONS")
		c.Next()
	}
}
