package quizmanager

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/yourusername/trivia-catalog-api/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-catalog-api/internal/pkg/errors"
)

// QuestionSelector выбирает следующий вопрос викторины среди ещё не показанных.
// Состояния между вызовами не хранит: клиент каждый раз присылает полный список показанных ID.
type QuestionSelector struct {
	intn func(n int) int
}

// NewQuestionSelector создаёт селектор с равномерным случайным выбором
func NewQuestionSelector() *QuestionSelector {
	return &QuestionSelector{intn: rand.Intn}
}

// SelectNext возвращает случайный вопрос из candidates, ID которого нет в previousIDs.
// Если таких нет - ошибка, совместимая с ErrNoQuestionsLeft и apperrors.ErrUnprocessable.
func (s *QuestionSelector) SelectNext(candidates []entity.Question, previousIDs []uint) (*entity.Question, error) {
	seen := make(map[uint]struct{}, len(previousIDs))
	for _, id := range previousIDs {
		seen[id] = struct{}{}
	}

	remaining := make([]entity.Question, 0, len(candidates))
	for _, q := range candidates {
		if _, ok := seen[q.ID]; !ok {
			remaining = append(remaining, q)
		}
	}

	if len(remaining) == 0 {
		return nil, fmt.Errorf("%w (candidates=%d, previous=%d): %w",
			ErrNoQuestionsLeft, len(candidates), len(previousIDs), apperrors.ErrUnprocessable)
	}

	picked := remaining[s.intn(len(remaining))]
	log.Printf("[QuestionSelector] Selected question ID=%d out of %d remaining", picked.ID, len(remaining))
	return &picked, nil
}
