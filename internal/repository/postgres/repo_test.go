package postgres

import (
	"github.com/yourusername/trivia-catalog-api/internal/domain/repository"
)

// Репозитории реализуют ровно те интерфейсы, которыми пользуются сервисы
var (
	_ repository.QuestionRepository = (*QuestionRepo)(nil)
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
)
