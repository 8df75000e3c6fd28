package fiber

import (
	"context"
	"errors"
	"net/http"

	"alert-dashboard-service/internal/alerts/core/domain"
	"alert-dashboard-service/internal/alerts/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type AggregateAlertsUseCase interface {
	Execute(ctx context.Context, in usecase.AggregateAlertsInput) (*domain.AggregationResult, error)
}

type StoreAlertUseCase interface {
	Execute(ctx context.Context, in usecase.StoreAlertInput) (bool, error)
	BulkCreateAlerts(ctx context.Context, in usecase.BulkCreateAlertsInput) (usecase.BulkCreateAlertsResult, error)
}

type AlertHandler struct {
	aggregateUC AggregateAlertsUseCase
	storeUC     StoreAlertUseCase
}

// NewAlertHandler builds the handler. storeUC may be nil for read-only stores,
// in which case the ingestion routes are not registered.
func NewAlertHandler(aggregateUC AggregateAlertsUseCase, storeUC StoreAlertUseCase) *AlertHandler {
	return &AlertHandler{aggregateUC: aggregateUC, storeUC: storeUC}
}

func (h *AlertHandler) Register(r fiber.Router) {
	r.Get("/alerts/aggregations", h.GetAggregation)
	if h.storeUC != nil {
		r.Post("/alerts", h.CreateAlert)
		r.Post("/alerts/bulk", h.BulkCreateAlerts)
	}
}

// CreateAlert godoc
// @Summary Store an alert
// @Description Stores a single alert record; an alert with an already stored id is a duplicate
// @Tags Alerts
// @Accept json
// @Produce json
// @Param request body CreateAlertRequest true "Alert record"
// @Success 201 {object} CreateAlertResponse
// @Success 200 {object} CreateAlertResponse "Duplicate alert"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /alerts [post]
func (h *AlertHandler) CreateAlert(c *fiber.Ctx) error {
	var req CreateAlertRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	created, err := h.storeUC.Execute(c.UserContext(), usecase.StoreAlertInput{Record: req})
	if err != nil {
		return writeStoreError(c, err)
	}

	if !created {
		return c.Status(http.StatusOK).JSON(CreateAlertResponse{Status: "duplicate", ID: req.ID})
	}

	return c.Status(http.StatusCreated).JSON(CreateAlertResponse{Status: "created", ID: req.ID})
}

// BulkCreateAlerts godoc
// @Summary Bulk store alerts
// @Description Validates every alert first, then stores them one by one
// @Tags Alerts
// @Accept json
// @Produce json
// @Param request body BulkCreateAlertsRequest true "Bulk alert payload"
// @Success 201 {object} BulkCreateAlertsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /alerts/bulk [post]
func (h *AlertHandler) BulkCreateAlerts(c *fiber.Ctx) error {
	var req BulkCreateAlertsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	if len(req.Alerts) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "alerts_list_required",
		})
	}

	inputs := make([]usecase.StoreAlertInput, len(req.Alerts))
	for i, a := range req.Alerts {
		inputs[i] = usecase.StoreAlertInput{Record: a}
	}

	result, err := h.storeUC.BulkCreateAlerts(
		c.UserContext(),
		usecase.BulkCreateAlertsInput{Alerts: inputs},
	)
	if err != nil {
		return writeStoreError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(BulkCreateAlertsResponse{
		Created:    result.Created,
		Duplicates: result.Duplicates,
	})
}

// GetAggregation godoc
// @Summary Count alerts per label
// @Description Groups alerts by category, severity or calendar day (timeSeries); labels keep first-seen order
// @Tags Alerts
// @Produce json
// @Param group_by query string false "Group by: category | severity | timeSeries" default(category)
// @Success 200 {object} AggregationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /alerts/aggregations [get]
func (h *AlertHandler) GetAggregation(c *fiber.Ctx) error {
	groupBy := c.Query("group_by", string(domain.GroupByCategory))

	res, err := h.aggregateUC.Execute(c.UserContext(), usecase.AggregateAlertsInput{GroupBy: groupBy})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidGroupBy) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_group_by",
				Message: err.Error(),
			})
		}
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	return c.Status(http.StatusOK).JSON(toAggregationResponse(res))
}

func writeStoreError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidAlert),
		errors.Is(err, usecase.ErrFutureTime):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_alert",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
