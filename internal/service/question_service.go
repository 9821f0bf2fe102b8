package service

import (
	"errors"
	"fmt"

	"github.com/yourusername/trivia-api/internal/domain/entity"
	"github.com/yourusername/trivia-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-api/internal/pkg/errors"
	"github.com/yourusername/trivia-api/internal/pkg/pagination"
)

// QuestionService предоставляет методы для работы с вопросами
type QuestionService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	categoryRepo repository.CategoryRepository,
) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateQuestionParams — входные данные создания вопроса. Поля-указатели:
// nil означает, что поле отсутствовало в запросе.
type CreateQuestionParams struct {
	Question   *string
	Answer     *string
	Difficulty *int
	Category   *uint
}

// ListQuestions возвращает страницу вопросов и их общее количество.
// Пустая страница (в том числе за пределами данных) — ErrNotFound:
// исторический контракт API, закрепленный тестами.
func (s *QuestionService) ListQuestions(page int) ([]entity.Question, int, error) {
	questions, err := s.questionRepo.GetAll()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list questions: %w", err)
	}

	current := pagination.Paginate(questions, page)
	if len(current) == 0 {
		return nil, 0, apperrors.ErrNotFound
	}

	return current, len(questions), nil
}

// DeleteQuestion удаляет вопрос по ID и возвращает страницу оставшихся
// вопросов и их общее количество. Отсутствующий вопрос — ErrNotFound,
// сбой удаления — ErrUnprocessable.
func (s *QuestionService) DeleteQuestion(id uint, page int) ([]entity.Question, int, error) {
	if _, err := s.questionRepo.GetByID(id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, 0, apperrors.ErrNotFound
		}
		return nil, 0, fmt.Errorf("%w: lookup of question #%d: %v", apperrors.ErrUnprocessable, id, err)
	}

	if err := s.questionRepo.Delete(id); err != nil {
		return nil, 0, fmt.Errorf("%w: delete of question #%d: %v", apperrors.ErrUnprocessable, id, err)
	}

	questions, err := s.questionRepo.GetAll()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: list after delete: %v", apperrors.ErrUnprocessable, err)
	}

	return pagination.Paginate(questions, page), len(questions), nil
}

// CreateQuestion сохраняет новый вопрос и возвращает его ID, страницу
// вопросов и их общее количество.
//
// ВНИМАНИЕ: запись вставляется ДО проверки полноты полей — запрос с
// отсутствующим полем получает ErrUnprocessable, но строка уже сохранена
// (с нулевыми значениями вместо отсутствующих полей). Порядок унаследован
// от исходного API и сохранен для поведенческой совместимости; тесты
// закрепляют именно такую последовательность.
func (s *QuestionService) CreateQuestion(params CreateQuestionParams, page int) (uint, []entity.Question, int, error) {
	question := entity.Question{}
	if params.Question != nil {
		question.Question = *params.Question
	}
	if params.Answer != nil {
		question.Answer = *params.Answer
	}
	if params.Difficulty != nil {
		question.Difficulty = *params.Difficulty
	}
	if params.Category != nil {
		question.Category = *params.Category
	}

	if err := s.questionRepo.Create(&question); err != nil {
		return 0, nil, 0, fmt.Errorf("%w: insert question: %v", apperrors.ErrUnprocessable, err)
	}

	if params.Question == nil || params.Answer == nil || params.Difficulty == nil || params.Category == nil {
		return 0, nil, 0, fmt.Errorf("%w: missing required question fields", apperrors.ErrUnprocessable)
	}

	questions, err := s.questionRepo.GetAll()
	if err != nil {
		return 0, nil, 0, fmt.Errorf("%w: list after create: %v", apperrors.ErrUnprocessable, err)
	}

	return question.ID, pagination.Paginate(questions, page), len(questions), nil
}

// SearchQuestions ищет вопросы по подстроке (без учета регистра) и
// возвращает страницу результатов и общее число совпадений.
// Пустой поисковый запрос — ErrNotFound; отсутствие совпадений ошибкой
// не является и дает пустой список.
func (s *QuestionService) SearchQuestions(term string, page int) ([]entity.Question, int, error) {
	if term == "" {
		return nil, 0, apperrors.ErrNotFound
	}

	matches, err := s.questionRepo.Search(term)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search questions: %w", err)
	}

	return pagination.Paginate(matches, page), len(matches), nil
}

// QuestionsByCategory возвращает страницу вопросов категории, общее число
// вопросов в категории и тип категории. Неизвестная категория — ErrValidation.
func (s *QuestionService) QuestionsByCategory(categoryID uint, page int) ([]entity.Question, int, string, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, 0, "", fmt.Errorf("%w: unknown category #%d", apperrors.ErrValidation, categoryID)
		}
		return nil, 0, "", fmt.Errorf("failed to load category #%d: %w", categoryID, err)
	}

	questions, err := s.questionRepo.GetByCategory(category.ID)
	if err != nil {
		return nil, 0, "", fmt.Errorf("failed to list questions of category #%d: %w", categoryID, err)
	}

	return pagination.Paginate(questions, page), len(questions), category.Type, nil
}
