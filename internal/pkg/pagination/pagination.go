// Package pagination нарезает упорядоченные коллекции на страницы фиксированного размера.
package pagination

import (
	"errors"
	"math"
	"strconv"
)

// DefaultPageSize - количество вопросов на странице
const DefaultPageSize = 10

// ParsePage разбирает номер страницы из query-параметра.
// Отсутствующее, нечисловое или неположительное значение трактуется как первая страница.
// Положительное число, не помещающееся в int, - страница за пределами любой коллекции.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) && page > 0 {
		return math.MaxInt
	}
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Paginate возвращает страницу page (1-indexed) размера pageSize.
// Страница за пределами коллекции - пустой (не nil) срез.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	// Сравниваем номера страниц до умножения: (page-1)*pageSize может переполнить int
	if page-1 >= TotalPages(len(items), pageSize) {
		return []T{}
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages возвращает количество непустых страниц для total элементов
func TotalPages(total, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return (total + pageSize - 1) / pageSize
}
