// Package envelope описывает единый JSON-формат ошибок API.
// Им пользуются и обработчики, и middleware.
package envelope

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - единый формат ошибки
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// errorMessages - фиксированные тексты ошибок, на которые завязан фронтенд
var errorMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusTooManyRequests:     "too many requests",
	http.StatusInternalServerError: "internal server error",
	http.StatusServiceUnavailable:  "service unavailable",
}

// NewErrorResponse создает конверт ошибки для HTTP-статуса
func NewErrorResponse(status int) ErrorResponse {
	msg, ok := errorMessages[status]
	if !ok {
		msg = http.StatusText(status)
	}
	return ErrorResponse{Success: false, Error: status, Message: msg}
}

// Abort прерывает цепочку обработчиков и отвечает конвертом ошибки
func Abort(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, NewErrorResponse(status))
}
