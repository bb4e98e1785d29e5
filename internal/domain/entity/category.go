package entity

import (
	"errors"
	"fmt"
)

// Category представляет категорию вопросов (Science, Art, ...).
// Категории создаются только сидом и через API не изменяются.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"not null" json:"type"`
}

// TableName определяет имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}

// CategoryIndex отображает ID категории в её название
type CategoryIndex map[uint]string

// NewCategoryIndex строит индекс по списку категорий
func NewCategoryIndex(categories []Category) CategoryIndex {
	idx := make(CategoryIndex, len(categories))
	for _, c := range categories {
		idx[c.ID] = c.Type
	}
	return idx
}

// ErrUnknownCategory возвращается, когда вопрос ссылается на категорию, которой нет в индексе
var ErrUnknownCategory = errors.New("question references unknown category")

// DistinctLabels возвращает названия категорий вопросов без повторов,
// в порядке первого появления.
func (idx CategoryIndex) DistinctLabels(questions []Question) ([]string, error) {
	labels := make([]string, 0)
	seen := make(map[uint]struct{})

	for _, q := range questions {
		if _, ok := seen[q.Category]; ok {
			continue
		}
		label, ok := idx[q.Category]
		if !ok {
			return nil, fmt.Errorf("%w: question #%d, category #%d", ErrUnknownCategory, q.ID, q.Category)
		}
		seen[q.Category] = struct{}{}
		labels = append(labels, label)
	}

	return labels, nil
}
