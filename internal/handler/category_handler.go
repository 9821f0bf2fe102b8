package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-api/internal/domain/entity"
	"github.com/yourusername/trivia-api/internal/handler/dto"
	"github.com/yourusername/trivia-api/internal/service"
)

// CategoryHandler обрабатывает запросы, связанные с категориями
type CategoryHandler struct {
	categoryService *service.CategoryService
	questionService *service.QuestionService
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(
	categoryService *service.CategoryService,
	questionService *service.QuestionService,
) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		questionService: questionService,
	}
}

// GetCategories возвращает карту всех категорий (id → type)
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.GetCategoryMap()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoryListResponse{
		Success:    true,
		Categories: categories,
	})
}

// GetQuestionsByCategory возвращает страницу вопросов заданной категории
func (h *CategoryHandler) GetQuestionsByCategory(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint) // Проставлено middleware.ExtractUintParam

	questions, total, categoryType, err := h.questionService.QuestionsByCategory(categoryID, pageFromQuery(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoryQuestionsResponse{
		Success:         true,
		Questions:       entity.FormatQuestions(questions),
		TotalQuestions:  total,
		CurrentCategory: categoryType,
	})
}
