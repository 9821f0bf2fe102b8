package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-api/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-api/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос
func (r *QuestionRepo) Create(question *entity.Question) error {
	return r.db.Create(question).Error
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// GetAll возвращает все вопросы, упорядоченные по ID
func (r *QuestionRepo) GetAll() ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// GetByCategory возвращает вопросы заданной категории, упорядоченные по ID
func (r *QuestionRepo) GetByCategory(categoryID uint) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("category = ?", categoryID).Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// Search выполняет регистронезависимый поиск подстроки по тексту вопроса
func (r *QuestionRepo) Search(term string) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("question ILIKE ?", "%"+term+"%").Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// Delete удаляет вопрос
func (r *QuestionRepo) Delete(id uint) error {
	return r.db.Delete(&entity.Question{}, id).Error
}

// Count возвращает общее количество вопросов
func (r *QuestionRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Question{}).Count(&count).Error
	return count, err
}
