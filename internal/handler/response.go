package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/trivia-api/internal/pkg/errors"
)

// ErrorResponse — единое тело ошибки для всех статусов
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// Фиксированные сообщения по статусам. Причина ошибки клиенту не
// раскрывается, только логируется на сервере.
var statusMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
}

// RespondError пишет каноническое тело ошибки для статуса
func RespondError(c *gin.Context, status int) {
	c.JSON(status, ErrorResponse{
		Success: false,
		Error:   status,
		Message: statusMessages[status],
	})
}

// handleServiceError транслирует ошибку сервиса в HTTP статус.
// Неопознанные ошибки сводятся к 422 (широкий catch-all).
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		RespondError(c, http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrNotFound):
		RespondError(c, http.StatusNotFound)
	default:
		log.Printf("[Handler] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		RespondError(c, http.StatusUnprocessableEntity)
	}
}

// NoRoute возвращает обработчик несуществующего маршрута
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		RespondError(c, http.StatusNotFound)
	}
}

// NoMethod возвращает обработчик неподдерживаемого метода
func NoMethod() gin.HandlerFunc {
	return func(c *gin.Context) {
		RespondError(c, http.StatusMethodNotAllowed)
	}
}

// pageFromQuery извлекает номер страницы из query-параметра page.
// Отсутствующее или некорректное значение дает первую страницу.
func pageFromQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
