package usecase

import (
	"context"
	"sync"

	alertdomain "alert-dashboard-service/internal/alerts/core/domain"
	alertusecase "alert-dashboard-service/internal/alerts/core/usecase"
	"alert-dashboard-service/internal/dashboard/core/domain"

	"go.uber.org/zap"
)

type AggregateAlertsUseCase interface {
	Execute(ctx context.Context, in alertusecase.AggregateAlertsInput) (*alertdomain.AggregationResult, error)
}

type SetStateInput struct {
	GroupBy   string // empty keeps the current key
	DarkTheme *bool  // nil keeps the current theme
}

// DashboardUseCase drives the board from the dashboard controls: the group
// key selector and the theme toggle.
type DashboardUseCase struct {
	mu        sync.Mutex
	aggregate AggregateAlertsUseCase
	board     *domain.Board
	log       *zap.Logger
}

func NewDashboardUseCase(aggregate AggregateAlertsUseCase, board *domain.Board, log *zap.Logger) *DashboardUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &DashboardUseCase{aggregate: aggregate, board: board, log: log}
}

// Current re-aggregates the records with the current state and re-renders.
func (uc *DashboardUseCase) Current(ctx context.Context) (domain.Snapshot, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.render(ctx, uc.board.State())
}

func (uc *DashboardUseCase) SetState(ctx context.Context, in SetStateInput) (domain.Snapshot, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := uc.board.State()
	if in.GroupBy != "" {
		key, err := alertdomain.ParseGroupKey(in.GroupBy)
		if err != nil {
			return domain.Snapshot{}, alertusecase.ErrInvalidGroupBy
		}
		next.GroupBy = key
	}
	if in.DarkTheme != nil {
		next.DarkTheme = *in.DarkTheme
	}

	return uc.render(ctx, next)
}

func (uc *DashboardUseCase) SelectGroupBy(ctx context.Context, groupBy string) (domain.Snapshot, error) {
	if groupBy == "" {
		return domain.Snapshot{}, alertusecase.ErrInvalidGroupBy
	}
	return uc.SetState(ctx, SetStateInput{GroupBy: groupBy})
}

func (uc *DashboardUseCase) ToggleTheme(ctx context.Context) (domain.Snapshot, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := uc.board.State()
	next.DarkTheme = !next.DarkTheme
	return uc.render(ctx, next)
}

// render leaves the board untouched when aggregation fails.
func (uc *DashboardUseCase) render(ctx context.Context, st domain.State) (domain.Snapshot, error) {
	res, err := uc.aggregate.Execute(ctx, alertusecase.AggregateAlertsInput{GroupBy: st.GroupBy.String()})
	if err != nil {
		return domain.Snapshot{}, err
	}

	snap := uc.board.Render(res, st.DarkTheme)

	uc.log.Debug("dashboard rendered",
		zap.String("group_by", snap.State.GroupBy.String()),
		zap.Bool("dark_theme", snap.State.DarkTheme),
		zap.Int("labels", res.Len()),
	)
	return snap, nil
}
