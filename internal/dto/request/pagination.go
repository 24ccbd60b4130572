package request

import "project-portal/pkg/utils"

type PageRequest struct {
	Page  int `json:"page" validate:"gte=0"`
	Limit int `json:"limit" validate:"gte=0,lte=100"`
}

// Offset is zero when Limit is zero, which lists everything
func (p PageRequest) Offset() int {
	if p.Limit < 1 {
		return 0
	}
	return utils.CalculateOffset(p.Page, p.Limit)
}
