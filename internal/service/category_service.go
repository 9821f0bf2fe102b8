package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/trivia-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-api/internal/pkg/errors"
)

// categoriesCacheKey — ключ кеша карты категорий в Redis
const categoriesCacheKey = "trivia:categories"

// CategoryService предоставляет методы для работы с категориями.
// Категории — неизменяемые справочные данные, поэтому карта id→type
// кешируется в Redis по схеме cache-aside.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	cacheRepo    repository.CacheRepository
	cacheTTL     time.Duration
}

// NewCategoryService создает новый сервис категорий
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		cacheRepo:    cacheRepo,
		cacheTTL:     cacheTTL,
	}
}

// GetCategoryMap возвращает карту id→type всех категорий.
// Возвращает ErrNotFound, если категорий нет.
func (s *CategoryService) GetCategoryMap() (map[uint]string, error) {
	// Сначала пробуем кеш. Любой сбой кеша не фатален — идем в БД.
	if s.cacheRepo != nil {
		var cached map[uint]string
		err := s.cacheRepo.GetJSON(categoriesCacheKey, &cached)
		if err == nil && len(cached) > 0 {
			return cached, nil
		}
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			log.Printf("[CategoryService] Ошибка чтения кеша категорий: %v", err)
		}
	}

	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	categoryMap := make(map[uint]string, len(categories))
	for _, category := range categories {
		categoryMap[category.ID] = category.Type
	}

	if len(categoryMap) == 0 {
		return nil, apperrors.ErrNotFound
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetJSON(categoriesCacheKey, categoryMap, s.cacheTTL); err != nil {
			log.Printf("[CategoryService] Ошибка записи кеша категорий: %v", err)
		}
	}

	return categoryMap, nil
}
