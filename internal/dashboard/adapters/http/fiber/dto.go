package fiber

import (
	"time"

	"alert-dashboard-service/internal/dashboard/core/domain"
)

type SetStateRequest struct {
	GroupBy   string `json:"group_by" example:"severity"`
	DarkTheme *bool  `json:"dark_theme,omitempty"`
}

type DashboardResponse struct {
	GroupBy    string               `json:"group_by" example:"category"`
	DarkTheme  bool                 `json:"dark_theme"`
	Total      int                  `json:"total"`
	RenderedAt time.Time            `json:"rendered_at"`
	Charts     []domain.ChartConfig `json:"charts"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_group_by"`
	Message string `json:"message" example:"invalid group_by value"`
}

func toDashboardResponse(s domain.Snapshot) DashboardResponse {
	return DashboardResponse{
		GroupBy:    s.State.GroupBy.String(),
		DarkTheme:  s.State.DarkTheme,
		Total:      s.Total,
		RenderedAt: s.RenderedAt,
		Charts:     s.Charts,
	}
}
