package usecase

import (
	"context"
	"errors"

	"alert-dashboard-service/internal/alerts/core/domain"
	"alert-dashboard-service/internal/alerts/core/ports"

	"go.uber.org/zap"
)

var ErrInvalidGroupBy = errors.New("invalid group_by value")

type AggregateAlertsInput struct {
	GroupBy string // "category", "severity", "timeSeries"
}

type AggregateAlertsUseCase struct {
	reader ports.RecordReaderPort
	dates  *domain.DateFormatter
	log    *zap.Logger
}

func NewAggregateAlertsUseCase(reader ports.RecordReaderPort, dates *domain.DateFormatter, log *zap.Logger) *AggregateAlertsUseCase {
	if dates == nil {
		dates = domain.DefaultDateFormatter()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &AggregateAlertsUseCase{reader: reader, dates: dates, log: log}
}

// Execute validates the grouping key, loads the records and counts them per label.
func (uc *AggregateAlertsUseCase) Execute(ctx context.Context, in AggregateAlertsInput) (*domain.AggregationResult, error) {
	key, err := domain.ParseGroupKey(in.GroupBy)
	if err != nil {
		return nil, ErrInvalidGroupBy
	}

	records, err := uc.reader.ListRecords(ctx)
	if err != nil {
		return nil, err
	}

	res, err := domain.Aggregate(records, key, uc.dates)
	if err != nil {
		// ParseGroupKey already guarantees a valid key.
		return nil, err
	}

	uc.log.Debug("alerts aggregated",
		zap.String("group_by", key.String()),
		zap.Int("records", len(records)),
		zap.Int("labels", res.Len()),
	)

	return res, nil
}
