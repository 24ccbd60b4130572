package response

import "project-portal/pkg/utils"

type PaginatedResponse[T any] struct {
	Data       []T            `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

type PaginationMeta struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	// Limit zero means the page holds every matching row
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}

func NewPaginatedResponse[T any](data []T, page, limit int, total int64) *PaginatedResponse[T] {
	totalPages := utils.CalculateTotalPages(total, limit)
	if limit <= 0 && total > 0 {
		totalPages = 1
	}

	return &PaginatedResponse[T]{
		Data: data,
		Pagination: PaginationMeta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}

// Empty reports whether the page carries no rows
func (p *PaginatedResponse[T]) Empty() bool {
	return len(p.Data) == 0
}
