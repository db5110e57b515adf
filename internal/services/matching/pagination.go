package matching

import (
	"preference_match/internal/domain"
)

// Paginate возвращает срез [(page-1)*limit, page*limit) и метаданные страницы.
// Страница за пределами списка — пустой срез, а не ошибка.
func Paginate[T any](items []T, req domain.PageRequest) domain.Page[T] {
	req = domain.NormalizePageRequest(req.Page, req.Limit)

	total := len(items)
	totalPages := total / req.Limit
	if total%req.Limit != 0 {
		totalPages++
	}
	page := domain.Page[T]{
		Items: []T{},
		Pagination: domain.Pagination{
			Total:      total,
			TotalPages: totalPages,
			Page:       req.Page,
			Limit:      req.Limit,
		},
	}

	// Номер страницы сравниваем до умножения: (page-1)*limit может переполниться
	if req.Page > totalPages {
		return page
	}
	start := req.Offset()
	end := start + min(req.Limit, total-start)
	page.Items = items[start:end]

	return page
}
