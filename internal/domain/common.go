package domain

import "math"

const (
	// DefaultPage номер страницы по умолчанию
	DefaultPage = 1
	// DefaultPageSize кол-во записей на странице по умолчанию
	DefaultPageSize = 20
	// MaxPageSize максимальное кол-во записей на странице
	MaxPageSize = 100
)

// PageRequest — параметры постраничной выдачи (page >= 1, limit >= 1).
type PageRequest struct {
	Page  int `validate:"min=1"`
	Limit int `validate:"min=1"`
}

// Offset вернет смещение начала страницы.
// При переполнении возвращает math.MaxInt, то есть заведомо за пределами любого списка.
func (p PageRequest) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// Pagination — метаданные страницы.
type Pagination struct {
	Total      int
	TotalPages int
	Page       int
	Limit      int
}

// Page — страница результатов.
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}

// NormalizePageRequest подставляет значения по умолчанию вместо неположительных.
func NormalizePageRequest(page, limit int) PageRequest {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	return PageRequest{Page: page, Limit: limit}
}
