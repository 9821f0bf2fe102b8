package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader — имя заголовка сквозного идентификатора запроса
const RequestIDHeader = "X-Request-ID"

// RequestID проставляет идентификатор запроса: берет входящий X-Request-ID
// или генерирует новый UUID, кладет его в контекст и в заголовок ответа.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("requestID", requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Next()
	}
}
