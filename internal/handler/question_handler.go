package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"github.com/yourusername/trivia-catalog-api/internal/domain/entity"
	"github.com/yourusername/trivia-catalog-api/internal/handler/dto"
	"github.com/yourusername/trivia-catalog-api/internal/handler/helper"
	"github.com/yourusername/trivia-catalog-api/internal/pkg/pagination"
	"github.com/yourusername/trivia-catalog-api/internal/service"
)

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// ListQuestions возвращает страницу вопросов (?page=N, по 10 на странице)
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page := pagination.ParsePage(c.DefaultQuery("page", "1"))

	result, err := h.questionService.ListQuestions(page)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuestionsPageResponse{
		Success:         true,
		Questions:       dto.NewQuestionListResponse(result.Questions),
		TotalQuestions:  result.TotalQuestions,
		Categories:      dto.NewCategoryMap(result.Categories),
		CurrentCategory: result.CurrentCategory,
	})
}

// CreateQuestion обрабатывает запрос на создание вопроса
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[QuestionHandler] Invalid create request: %v", err)
		abortWithStatus(c, http.StatusUnprocessableEntity)
		return
	}

	question := &entity.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   uint(req.Category),
		Difficulty: int(req.Difficulty),
	}
	if err := h.questionService.CreateQuestion(question); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// DeleteQuestion удаляет вопрос по ID
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint) // Получаем из контекста

	if err := h.questionService.DeleteQuestion(questionID); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// SearchQuestions ищет вопросы по подстроке searchTerm без учёта регистра
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[QuestionHandler] Invalid search request: %v", err)
		abortWithStatus(c, http.StatusUnprocessableEntity)
		return
	}

	result, err := h.questionService.SearchQuestions(*req.SearchTerm)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SearchResponse{
		Success:         true,
		Questions:       dto.NewQuestionListResponse(result.Questions),
		TotalQuestions:  result.TotalQuestions,
		CurrentCategory: result.CurrentCategory,
	})
}

// ExportQuestions выгружает все вопросы в CSV или XLSX (?format=csv|xlsx, по умолчанию xlsx)
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", "xlsx")
	if format != "csv" && format != "xlsx" {
		abortWithStatus(c, http.StatusUnprocessableEntity)
		return
	}

	questions, categories, err := h.questionService.ExportQuestions()
	if err != nil {
		handleError(c, err)
		return
	}

	filename := fmt.Sprintf("questions_%s", time.Now().Format("20060102_150405"))
	if format == "csv" {
		h.exportCSV(c, questions, categories, filename)
		return
	}
	h.exportXLSX(c, questions, categories, filename)
}

var exportHeaders = []string{"ID", "Question", "Answer", "Category", "Difficulty"}

// exportCSV экспортирует вопросы в CSV
func (h *QuestionHandler) exportCSV(c *gin.Context, questions []entity.Question, categories entity.CategoryIndex, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))
	c.Status(http.StatusOK)

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	if err := writer.Write(exportHeaders); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи заголовков CSV: %v", err)
		return
	}

	for _, q := range questions {
		row := []string{
			strconv.FormatUint(uint64(q.ID), 10),
			helper.SanitizeForExcel(q.Question),
			helper.SanitizeForExcel(q.Answer),
			helper.SanitizeForExcel(categories[q.Category]),
			strconv.Itoa(q.Difficulty),
		}
		if err := writer.Write(row); err != nil {
			log.Printf("[QuestionHandler] Ошибка записи строки CSV для вопроса %d: %v", q.ID, err)
			return
		}
	}
}

// exportXLSX экспортирует вопросы в Excel с использованием StreamWriter
func (h *QuestionHandler) exportXLSX(c *gin.Context, questions []entity.Question, categories entity.CategoryIndex, filename string) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Questions"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		log.Printf("[QuestionHandler] Ошибка переименования листа: %v", err)
		abortWithStatus(c, http.StatusInternalServerError)
		return
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[QuestionHandler] Ошибка создания StreamWriter: %v", err)
		abortWithStatus(c, http.StatusInternalServerError)
		return
	}

	headers := make([]interface{}, len(exportHeaders))
	for i, name := range exportHeaders {
		headers[i] = name
	}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи заголовков: %v", err)
	}

	for i, q := range questions {
		rowNum := i + 2 // Начинаем с 2 строки (1 - заголовки)
		cell := fmt.Sprintf("A%d", rowNum)
		row := []interface{}{
			q.ID,
			helper.SanitizeForExcel(q.Question),
			helper.SanitizeForExcel(q.Answer),
			helper.SanitizeForExcel(categories[q.Category]),
			q.Difficulty,
		}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[QuestionHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[QuestionHandler] Ошибка при Flush: %v", err)
		abortWithStatus(c, http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи Excel в response: %v", err)
	}
}
