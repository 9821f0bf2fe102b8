package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-api/internal/handler/dto"
	"github.com/yourusername/trivia-api/internal/service"
)

// QuizHandler обрабатывает запросы викторины
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторины
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// QuizCategoryRequest — фильтр категории в теле запроса викторины.
// ID == 0 означает "любая категория".
type QuizCategoryRequest struct {
	ID uint `json:"id"`
}

// PlayQuizRequest — тело POST /quizzes. Оба поля обязательны:
// отсутствие любого из них — 400.
type PlayQuizRequest struct {
	PreviousQuestions *[]uint              `json:"previous_questions" binding:"required"`
	QuizCategory      *QuizCategoryRequest `json:"quiz_category" binding:"required"`
}

// PlayQuiz возвращает случайный еще не виданный вопрос викторины.
// Когда невиданных вопросов не осталось, отвечает {success: true}
// без поля question — сигнал завершения викторины.
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req PlayQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest)
		return
	}

	question, err := h.quizService.NextQuestion(*req.PreviousQuestions, req.QuizCategory.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuizResponse(question))
}
