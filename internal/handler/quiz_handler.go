package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/trivia-catalog-api/internal/handler/dto"
	"github.com/yourusername/trivia-catalog-api/internal/service"
)

// QuizHandler обрабатывает запросы режима игры
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторины
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// NextQuestion возвращает случайный ещё не показанный вопрос выбранной категории
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req dto.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[QuizHandler] Invalid quiz request: %v", err)
		abortWithStatus(c, http.StatusUnprocessableEntity)
		return
	}

	question, err := h.quizService.NextQuestion(uint(req.QuizCategory.ID), dto.ToUintSlice(req.PreviousQuestions))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuizQuestionResponse{
		Success:  true,
		Question: dto.NewQuestionResponse(question),
	})
}
