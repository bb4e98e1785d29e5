package handler

import (
	"log"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators добавляет в валидатор Gin кастомные правила
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			log.Println("[Validators] Gin validator engine is not go-playground/validator, custom rules skipped")
			return
		}
		if err := v.RegisterValidation("notblank", notBlank); err != nil {
			log.Printf("[Validators] Failed to register notblank: %v", err)
		}
	})
}

// notBlank - строка не пустая и не состоит только из пробелов
func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
