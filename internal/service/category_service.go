package service

import (
	"fmt"

	"github.com/yourusername/trivia-catalog-api/internal/domain/entity"
	"github.com/yourusername/trivia-catalog-api/internal/domain/repository"
)

// CategoryService предоставляет методы для работы с категориями
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService создает новый сервис категорий
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// ListCategories возвращает все категории по возрастанию ID
func (s *CategoryService) ListCategories() ([]entity.Category, error) {
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
