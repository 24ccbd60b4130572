package response

import (
	"time"

	"project-portal/internal/data/entity"
)

type TabResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

type TabDeletedResponse struct {
	Tab                TabResponse `json:"tab"`
	AttachmentsDeleted int64       `json:"attachments_deleted"`
	FilesFailed        int         `json:"files_failed"`
}

type BroadcastResponse struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

func TabToResponse(tab *entity.Tab) TabResponse {
	return TabResponse{
		ID:        tab.ID.String(),
		Name:      tab.Name,
		Type:      tab.Type,
		CreatedAt: tab.CreatedAt,
	}
}

func TabsToResponse(tabs []*entity.Tab) []TabResponse {
	result := make([]TabResponse, 0, len(tabs))
	for _, t := range tabs {
		result = append(result, TabToResponse(t))
	}
	return result
}
