package repository

import (
	"github.com/yourusername/trivia-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	Create(question *entity.Question) error
	GetByID(id uint) (*entity.Question, error)
	GetAll() ([]entity.Question, error)
	GetByCategory(categoryID uint) ([]entity.Question, error)
	// Search выполняет регистронезависимый поиск подстроки по тексту вопроса
	Search(term string) ([]entity.Question, error)
	Delete(id uint) error
	Count() (int64, error)
}
