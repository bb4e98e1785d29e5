package entity

import "strings"

// Границы сложности вопроса
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Question представляет вопрос викторины
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"not null" json:"question"`
	Answer     string `gorm:"not null" json:"answer"`
	Category   uint   `gorm:"not null;index" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// IsValidDifficulty проверяет, что сложность в допустимом диапазоне
func (q *Question) IsValidDifficulty() bool {
	return q.Difficulty >= MinDifficulty && q.Difficulty <= MaxDifficulty
}

// HasText проверяет, что заполнены текст вопроса и ответ
func (q *Question) HasText() bool {
	return strings.TrimSpace(q.Question) != "" && strings.TrimSpace(q.Answer) != ""
}
