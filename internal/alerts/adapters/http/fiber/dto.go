package fiber

import "alert-dashboard-service/internal/alerts/core/domain"

// CreateAlertRequest is a single alert record; every field is optional.
// @Description Alert record (id, alert{category,severity,signature}, timestamp)
type CreateAlertRequest = domain.Record

type CreateAlertResponse struct {
	Status string `json:"status" example:"created"`
	ID     string `json:"id,omitempty"`
}

type BulkCreateAlertsRequest struct {
	Alerts []domain.Record `json:"alerts"`
}

type BulkCreateAlertsResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

type AggregationResponse struct {
	GroupBy string   `json:"group_by" example:"category"`
	Labels  []string `json:"labels"`
	Counts  []int    `json:"counts"`
	Total   int      `json:"total"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_alert"`
	Message string `json:"message" example:"Alert payload is invalid"`
}

func toAggregationResponse(res *domain.AggregationResult) AggregationResponse {
	return AggregationResponse{
		GroupBy: res.Key().String(),
		Labels:  res.Labels(),
		Counts:  res.Counts(),
		Total:   res.Total(),
	}
}
