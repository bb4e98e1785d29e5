package errors

import "errors"

// Общие ошибки приложения.
// Слои оборачивают их через fmt.Errorf("...: %w", ...), хендлеры классифицируют через errors.Is.
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для ошибок валидации входных данных
	// (пустой текст вопроса, несуществующая категория и т.п.).
	ErrValidation = errors.New("validation failed")

	// ErrDuplicate используется, когда создаваемая запись уже существует (например, вопрос с тем же текстом).
	ErrDuplicate = errors.New("resource already exists")

	// ErrUnprocessable используется, когда запрос корректен по форме, но операцию выполнить нельзя
	// (например, в категории не осталось непоказанных вопросов).
	ErrUnprocessable = errors.New("unprocessable")
)
