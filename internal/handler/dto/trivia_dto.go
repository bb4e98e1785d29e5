package dto

import (
	"github.com/yourusername/trivia-catalog-api/internal/domain/entity"
)

// ============================================================================
// Запросы
// ============================================================================

// CreateQuestionRequest представляет запрос на создание вопроса
type CreateQuestionRequest struct {
	Question   string   `json:"question" binding:"required,notblank"`
	Answer     string   `json:"answer" binding:"required,notblank"`
	Category   FlexUint `json:"category" binding:"required"`
	Difficulty FlexUint `json:"difficulty" binding:"required,min=1,max=5"`
}

// SearchRequest представляет запрос на поиск вопросов.
// Пустая строка допустима (совпадает со всеми вопросами), отсутствие поля - нет.
type SearchRequest struct {
	SearchTerm *string `json:"searchTerm" binding:"required"`
}

// QuizCategory - категория, выбранная игроком; ID 0 означает "все категории"
type QuizCategory struct {
	ID   FlexUint `json:"id"`
	Type string   `json:"type"`
}

// QuizRequest представляет запрос следующего вопроса викторины
type QuizRequest struct {
	PreviousQuestions []FlexUint    `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category" binding:"required"`
}

// ============================================================================
// Ответы
// ============================================================================

// QuestionResponse представляет вопрос в формате для ответа клиенту
type QuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// SuccessResponse - ответ без полезной нагрузки
type SuccessResponse struct {
	Success bool `json:"success"`
}

// CategoriesResponse - список категорий в виде {id: type}
type CategoriesResponse struct {
	Success    bool            `json:"success"`
	Categories map[uint]string `json:"categories"`
}

// QuestionsPageResponse - страница вопросов
type QuestionsPageResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	Categories      map[uint]string    `json:"categories"`
	CurrentCategory []string           `json:"current_category"`
}

// SearchResponse - результат поиска вопросов
type SearchResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int64              `json:"total_questions"`
	CurrentCategory []string           `json:"current_category"`
}

// CategoryQuestionsResponse - вопросы одной категории
type CategoryQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int64              `json:"total_questions"`
	CurrentCategory string             `json:"current_category"`
}

// QuizQuestionResponse - следующий вопрос викторины
type QuizQuestionResponse struct {
	Success  bool             `json:"success"`
	Question QuestionResponse `json:"question"`
}

// NewQuestionResponse создает DTO для вопроса
func NewQuestionResponse(q *entity.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// NewQuestionListResponse создает слайс DTO; для пустого списка возвращает [] (не null)
func NewQuestionListResponse(questions []entity.Question) []QuestionResponse {
	list := make([]QuestionResponse, len(questions))
	for i := range questions {
		list[i] = NewQuestionResponse(&questions[i])
	}
	return list
}

// NewCategoryMap создает отображение {id: type}
func NewCategoryMap(categories []entity.Category) map[uint]string {
	m := make(map[uint]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}
