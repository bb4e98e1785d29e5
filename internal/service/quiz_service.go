package service

import (
	"fmt"
	"log"

	"github.com/yourusername/trivia-catalog-api/internal/domain/entity"
	"github.com/yourusername/trivia-catalog-api/internal/domain/repository"
	"github.com/yourusername/trivia-catalog-api/internal/service/quizmanager"
)

// QuizService выдаёт вопросы для режима игры
type QuizService struct {
	questionRepo repository.QuestionRepository
	selector     *quizmanager.QuestionSelector
}

// NewQuizService создает новый сервис викторины
func NewQuizService(questionRepo repository.QuestionRepository, selector *quizmanager.QuestionSelector) *QuizService {
	return &QuizService{
		questionRepo: questionRepo,
		selector:     selector,
	}
}

// NextQuestion возвращает случайный вопрос категории, которого нет в previousIDs.
// categoryID == quizmanager.AllCategoriesID означает выбор из всех категорий.
func (s *QuizService) NextQuestion(categoryID uint, previousIDs []uint) (*entity.Question, error) {
	var (
		candidates []entity.Question
		err        error
	)
	if categoryID == quizmanager.AllCategoriesID {
		candidates, err = s.questionRepo.List()
	} else {
		candidates, err = s.questionRepo.GetByCategory(categoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz candidates for category #%d: %w", categoryID, err)
	}

	question, err := s.selector.SelectNext(candidates, previousIDs)
	if err != nil {
		log.Printf("[QuizService] Нет вопроса для категории #%d: %v", categoryID, err)
		return nil, err
	}
	return question, nil
}
