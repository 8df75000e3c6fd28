package fiber

import (
	"context"
	"errors"
	"net/http"

	alertusecase "alert-dashboard-service/internal/alerts/core/usecase"
	"alert-dashboard-service/internal/dashboard/core/domain"
	"alert-dashboard-service/internal/dashboard/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type DashboardUseCase interface {
	Current(ctx context.Context) (domain.Snapshot, error)
	SetState(ctx context.Context, in usecase.SetStateInput) (domain.Snapshot, error)
	ToggleTheme(ctx context.Context) (domain.Snapshot, error)
}

type DashboardHandler struct {
	uc DashboardUseCase
}

func NewDashboardHandler(uc DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) Register(r fiber.Router) {
	r.Get("/dashboard", h.GetDashboard)
	r.Put("/dashboard/state", h.SetState)
	r.Post("/dashboard/theme/toggle", h.ToggleTheme)
}

// GetDashboard godoc
// @Summary Current dashboard charts
// @Description Re-aggregates the alerts with the selected key and returns bar, pie, line and doughnut chart configs
// @Tags Dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	snap, err := h.uc.Current(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toDashboardResponse(snap))
}

// SetState godoc
// @Summary Change the grouping key and/or theme
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param request body SetStateRequest true "Dashboard state"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/state [put]
func (h *DashboardHandler) SetState(c *fiber.Ctx) error {
	var req SetStateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	snap, err := h.uc.SetState(c.UserContext(), usecase.SetStateInput{
		GroupBy:   req.GroupBy,
		DarkTheme: req.DarkTheme,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toDashboardResponse(snap))
}

// ToggleTheme godoc
// @Summary Switch between the light and dark palette
// @Tags Dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/theme/toggle [post]
func (h *DashboardHandler) ToggleTheme(c *fiber.Ctx) error {
	snap, err := h.uc.ToggleTheme(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toDashboardResponse(snap))
}

func writeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, alertusecase.ErrInvalidGroupBy) {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_group_by",
			Message: err.Error(),
		})
	}
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Error: "internal_server_error",
	})
}
