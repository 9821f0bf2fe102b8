package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/yourusername/trivia-api/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-api/internal/pkg/errors"
)

// CategoryRepo реализует repository.CategoryRepository
type CategoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepo создает новый репозиторий категорий
func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// GetAll возвращает все категории, упорядоченные по ID
func (r *CategoryRepo) GetAll() ([]entity.Category, error) {
	var categories []entity.Category
	err := r.db.Order("id").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID возвращает категорию по ID
func (r *CategoryRepo) GetByID(id uint) (*entity.Category, error) {
	var category entity.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// Create создает новую категорию. Повторное создание категории с тем же
// типом возвращает ErrValidation (уникальный индекс на type).
func (r *CategoryRepo) Create(category *entity.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: category type %q already exists", apperrors.ErrValidation, category.Type)
		}
		return err
	}
	return nil
}

// isUniqueViolation проверяет Postgres unique violation (23505) для pgconn и lib/pq драйверов
func isUniqueViolation(err error) bool {
	// pgx/v5 driver (pgconn.PgError)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// lib/pq driver
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return false
}
