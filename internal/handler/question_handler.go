package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-api/internal/domain/entity"
	"github.com/yourusername/trivia-api/internal/handler/dto"
	"github.com/yourusername/trivia-api/internal/service"
)

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService *service.QuestionService
	categoryService *service.CategoryService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(
	questionService *service.QuestionService,
	categoryService *service.CategoryService,
) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		categoryService: categoryService,
	}
}

// CreateQuestionRequest — тело POST /questions. Поля без binding-валидации:
// полнота полей проверяется сервисом ПОСЛЕ вставки записи (см. QuestionService.CreateQuestion).
type CreateQuestionRequest struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Difficulty *int    `json:"difficulty"`
	Category   *uint   `json:"category"`
}

// SearchQuestionsRequest — тело POST /questions/search
type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// GetQuestions возвращает страницу вопросов вместе с картой категорий
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	questions, total, err := h.questionService.ListQuestions(pageFromQuery(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	categories, err := h.categoryService.GetCategoryMap()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionListResponse(questions, total, categories))
}

// DeleteQuestion удаляет вопрос по ID из пути
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint) // Проставлено middleware.ExtractUintParam

	questions, total, err := h.questionService.DeleteQuestion(questionID, pageFromQuery(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteQuestionResponse{
		Success:        true,
		Deleted:        questionID,
		Questions:      entity.FormatQuestions(questions),
		TotalQuestions: total,
	})
}

// CreateQuestion создает новый вопрос
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusUnprocessableEntity)
		return
	}

	created, questions, total, err := h.questionService.CreateQuestion(service.CreateQuestionParams{
		Question:   req.Question,
		Answer:     req.Answer,
		Difficulty: req.Difficulty,
		Category:   req.Category,
	}, pageFromQuery(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreateQuestionResponse{
		Success:        true,
		Created:        created,
		Questions:      entity.FormatQuestions(questions),
		TotalQuestions: total,
	})
}

// SearchQuestions ищет вопросы по подстроке из тела запроса
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Нечитаемое тело неотличимо от отсутствующего searchTerm
		RespondError(c, http.StatusNotFound)
		return
	}

	questions, total, err := h.questionService.SearchQuestions(req.SearchTerm, pageFromQuery(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SearchQuestionsResponse{
		Success:        true,
		Questions:      entity.FormatQuestions(questions),
		TotalQuestions: total,
	})
}
