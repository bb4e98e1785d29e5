package repository

import (
	"github.com/yourusername/trivia-catalog-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами.
// Все списки упорядочены по ID.
type QuestionRepository interface {
	Create(question *entity.Question) error
	// ExistsByText проверяет наличие вопроса с точно таким же текстом (с учётом регистра)
	ExistsByText(text string) (bool, error)
	// Delete удаляет вопрос; возвращает ErrNotFound, если вопроса нет
	Delete(id uint) error
	List() ([]entity.Question, error)
	Count() (int64, error)
	// Search ищет вопросы, текст которых содержит term без учёта регистра
	Search(term string) ([]entity.Question, error)
	GetByCategory(categoryID uint) ([]entity.Question, error)
}
