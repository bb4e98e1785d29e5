package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger проверяет доступность хранилища (например, *sql.DB)
type Pinger interface {
	Ping() error
}

// HealthHandler отвечает на проверки живости
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler создает новый обработчик health-check
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health пингует базу данных
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		log.Printf("[HealthHandler] Database ping failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
