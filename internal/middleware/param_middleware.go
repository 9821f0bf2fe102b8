package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-api/internal/handler"
)

// ExtractUintParam создает middleware для извлечения и валидации числового параметра URL.
// paramName — имя параметра в URL (например, "id").
// contextKey — ключ, под которым значение будет сохранено в контексте Gin.
// failStatus — статус ответа при нечисловом параметре (404 для /questions/{id},
// 400 для /categories/{id}/questions — в соответствии с контрактом маршрутов).
func ExtractUintParam(paramName, contextKey string, failStatus int) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param(paramName)
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			handler.RespondError(c, failStatus)
			c.Abort()
			return
		}
		// Сохраняем как uint для единообразия
		c.Set(contextKey, uint(id))
		c.Next()
	}
}
