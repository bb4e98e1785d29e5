package service

import (
	"fmt"

	apperrors "github.com/yourusername/trivia-catalog-api/internal/pkg/errors"
)

// Ошибки сервисов. Каждая совместима (errors.Is) с одной из общих ошибок apperrors.
var (
	ErrQuestionExists = fmt.Errorf("question with the same text already exists: %w", apperrors.ErrDuplicate)
	ErrPageOutOfRange = fmt.Errorf("page is out of range: %w", apperrors.ErrNotFound)
)
