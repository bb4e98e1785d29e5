package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/yourusername/trivia-catalog-api/internal/domain/entity"
	"github.com/yourusername/trivia-catalog-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-catalog-api/internal/pkg/errors"
	"github.com/yourusername/trivia-catalog-api/internal/pkg/pagination"
)

// QuestionPage - страница вопросов вместе с данными для бокового меню категорий
type QuestionPage struct {
	Questions       []entity.Question
	TotalQuestions  int
	Categories      []entity.Category
	CurrentCategory []string
}

// SearchResult - результат поиска вопросов
type SearchResult struct {
	Questions       []entity.Question
	TotalQuestions  int64
	CurrentCategory []string
}

// CategoryQuestions - вопросы одной категории
type CategoryQuestions struct {
	Questions       []entity.Question
	TotalQuestions  int64
	CurrentCategory string
}

// QuestionService предоставляет методы для работы с вопросами
type QuestionService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
	pageSize     int
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	categoryRepo repository.CategoryRepository,
) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		pageSize:     pagination.DefaultPageSize,
	}
}

// ListQuestions возвращает страницу вопросов (1-indexed).
// Названия категорий в CurrentCategory собираются по всем вопросам, а не только по странице.
func (s *QuestionService) ListQuestions(page int) (*QuestionPage, error) {
	questions, err := s.questionRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	current := pagination.Paginate(questions, page, s.pageSize)
	if len(current) == 0 {
		return nil, fmt.Errorf("page %d of %d: %w", page, pagination.TotalPages(len(questions), s.pageSize), ErrPageOutOfRange)
	}

	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	labels, err := entity.NewCategoryIndex(categories).DistinctLabels(questions)
	if err != nil {
		log.Printf("[QuestionService] Ошибка сборки категорий для страницы %d: %v", page, err)
		return nil, fmt.Errorf("%w: %w", err, apperrors.ErrUnprocessable)
	}

	return &QuestionPage{
		Questions:       current,
		TotalQuestions:  len(questions),
		Categories:      categories,
		CurrentCategory: labels,
	}, nil
}

// CreateQuestion создает новый вопрос.
// Проверка дубликата и вставка не атомарны: два одновременных запроса с одинаковым текстом могут пройти оба.
func (s *QuestionService) CreateQuestion(question *entity.Question) error {
	if !question.HasText() {
		return fmt.Errorf("question and answer must not be blank: %w", apperrors.ErrValidation)
	}
	if !question.IsValidDifficulty() {
		return fmt.Errorf("difficulty must be between %d and %d, got %d: %w",
			entity.MinDifficulty, entity.MaxDifficulty, question.Difficulty, apperrors.ErrValidation)
	}

	if _, err := s.categoryRepo.GetByID(question.Category); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("category #%d does not exist: %w", question.Category, apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to check category #%d: %w", question.Category, err)
	}

	exists, err := s.questionRepo.ExistsByText(question.Question)
	if err != nil {
		return fmt.Errorf("failed to check duplicate question: %w", err)
	}
	if exists {
		return ErrQuestionExists
	}

	if err := s.questionRepo.Create(question); err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}

	log.Printf("[QuestionService] Создан вопрос ID=%d в категории #%d", question.ID, question.Category)
	return nil
}

// DeleteQuestion удаляет вопрос. Для несуществующего ID возвращает ошибку, совместимую с apperrors.ErrNotFound.
func (s *QuestionService) DeleteQuestion(questionID uint) error {
	if err := s.questionRepo.Delete(questionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("question #%d: %w", questionID, err)
		}
		return fmt.Errorf("failed to delete question #%d: %w", questionID, err)
	}

	log.Printf("[QuestionService] Удален вопрос ID=%d", questionID)
	return nil
}

// SearchQuestions ищет вопросы по подстроке без учёта регистра.
// TotalQuestions - общее количество вопросов в базе, а не количество найденных.
func (s *QuestionService) SearchQuestions(term string) (*SearchResult, error) {
	questions, err := s.questionRepo.Search(term)
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}

	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	labels, err := entity.NewCategoryIndex(categories).DistinctLabels(questions)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", err, apperrors.ErrUnprocessable)
	}

	total, err := s.questionRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}

	return &SearchResult{
		Questions:       questions,
		TotalQuestions:  total,
		CurrentCategory: labels,
	}, nil
}

// GetQuestionsByCategory возвращает все вопросы категории.
// Несуществующая категория - apperrors.ErrUnprocessable (а не ErrNotFound).
func (s *QuestionService) GetQuestionsByCategory(categoryID uint) (*CategoryQuestions, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("category #%d does not exist: %w", categoryID, apperrors.ErrUnprocessable)
		}
		return nil, fmt.Errorf("failed to get category #%d: %w", categoryID, err)
	}

	questions, err := s.questionRepo.GetByCategory(categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions of category #%d: %w", categoryID, err)
	}

	total, err := s.questionRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}

	return &CategoryQuestions{
		Questions:       questions,
		TotalQuestions:  total,
		CurrentCategory: category.Type,
	}, nil
}

// ExportQuestions возвращает все вопросы и индекс категорий для выгрузки
func (s *QuestionService) ExportQuestions() ([]entity.Question, entity.CategoryIndex, error) {
	questions, err := s.questionRepo.List()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list questions: %w", err)
	}

	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return questions, entity.NewCategoryIndex(categories), nil
}
