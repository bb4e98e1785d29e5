package postgres

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-catalog-api/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-catalog-api/internal/pkg/errors"
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
	if err := r.db.Create(question).Error; err != nil {
		// FK на categories: вопрос ссылается на несуществующую категорию
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: category #%d does not exist", apperrors.ErrValidation, question.Category)
		}
		return err
	}
	return nil
}

// ExistsByText проверяет, есть ли вопрос с точно таким же текстом
func (r *QuestionRepo) ExistsByText(text string) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Question{}).Where("question = ?", text).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete удаляет вопрос
func (r *QuestionRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.Question{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// List возвращает все вопросы по возрастанию ID
func (r *QuestionRepo) List() ([]entity.Question, error) {
	var questions []entity.Question
	if err := r.db.Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// Count возвращает общее количество вопросов
func (r *QuestionRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Question{}).Count(&count).Error
	return count, err
}

// Search ищет вопросы по подстроке без учёта регистра.
// Спецсимволы LIKE в term экранируются, поэтому подстрока ищется буквально.
func (r *QuestionRepo) Search(term string) ([]entity.Question, error) {
	var questions []entity.Question
	pattern := "%" + escapeLike(term) + "%"
	if err := r.db.Where("question ILIKE ?", pattern).Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// GetByCategory возвращает все вопросы категории
func (r *QuestionRepo) GetByCategory(categoryID uint) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("category = ?", categoryID).Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike экранирует символы шаблона LIKE (escape-символ по умолчанию в Postgres - обратный слэш)
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
