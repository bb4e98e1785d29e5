package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/trivia-catalog-api/internal/pkg/envelope"
	apperrors "github.com/yourusername/trivia-catalog-api/internal/pkg/errors"
)

// handleError приводит ошибку нижних слоёв к одному из статусов API.
// Детали ошибки только логируются, клиенту уходит фиксированный конверт.
func handleError(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrUnprocessable):
		status = http.StatusUnprocessableEntity
	default:
		// Сбой хранилища или неожиданная ошибка: клиенту тоже 422
		log.Printf("ERROR: Unclassified error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		abortWithStatus(c, http.StatusUnprocessableEntity)
		return
	}

	log.Printf("[Handler] %s %s -> %d: %v", c.Request.Method, c.Request.URL.Path, status, err)
	abortWithStatus(c, status)
}

// abortWithStatus прерывает цепочку и отвечает конвертом ошибки
func abortWithStatus(c *gin.Context, status int) {
	envelope.Abort(c, status)
}

// NoRoute отвечает на запросы к несуществующим маршрутам
func NoRoute(c *gin.Context) {
	abortWithStatus(c, http.StatusNotFound)
}

// NoMethod отвечает, когда маршрут есть, но метод не поддерживается
func NoMethod(c *gin.Context) {
	abortWithStatus(c, http.StatusMethodNotAllowed)
}

// Recovery превращает panic в конверт 500 вместо голого ответа
func Recovery(c *gin.Context, recovered any) {
	log.Printf("ERROR: panic recovered on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
	abortWithStatus(c, http.StatusInternalServerError)
}
