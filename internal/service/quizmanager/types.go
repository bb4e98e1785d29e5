package quizmanager

import (
	"errors"
)

// AllCategoriesID - значение quiz_category.id, означающее "любая категория"
const AllCategoriesID uint = 0

// ErrNoQuestionsLeft возвращается, когда все вопросы категории уже были показаны
var ErrNoQuestionsLeft = errors.New("no unseen questions left")
