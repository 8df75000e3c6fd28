package usecase

import (
	"context"
	"errors"
	"time"

	"alert-dashboard-service/internal/alerts/core/domain"
	"alert-dashboard-service/internal/alerts/core/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidAlert = errors.New("invalid alert")
	ErrFutureTime   = errors.New("timestamp cannot be in the future")
)

const maxIDLength = 128

// allowed clock skew between alert producers and this service
const futureTolerance = time.Minute

type StoreAlertUseCase struct {
	repo  ports.RecordWriterPort
	dates *domain.DateFormatter
	log   *zap.Logger
	now   func() time.Time
}

func NewStoreAlertUseCase(repo ports.RecordWriterPort, dates *domain.DateFormatter, log *zap.Logger) *StoreAlertUseCase {
	if dates == nil {
		dates = domain.DefaultDateFormatter()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &StoreAlertUseCase{repo: repo, dates: dates, log: log, now: time.Now}
}

type StoreAlertInput struct {
	Record domain.Record
}

func (uc *StoreAlertUseCase) Execute(ctx context.Context, in StoreAlertInput) (bool, error) {
	if err := uc.validateInput(in); err != nil {
		return false, err
	}

	r := in.Record
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	created, err := uc.repo.InsertRecord(ctx, &r)
	if err != nil {
		uc.log.Error("insert alert failed", zap.String("id", r.ID), zap.Error(err))
		return false, err
	}

	if !created {
		uc.log.Debug("duplicate alert ignored", zap.String("id", r.ID))
	}

	return created, nil
}

type BulkCreateAlertsInput struct {
	Alerts []StoreAlertInput
}

type BulkCreateAlertsResult struct {
	Created    int
	Duplicates int
}

// BulkCreateAlerts validates every alert before storing any of them.
func (uc *StoreAlertUseCase) BulkCreateAlerts(ctx context.Context, in BulkCreateAlertsInput) (BulkCreateAlertsResult, error) {
	var res BulkCreateAlertsResult

	for _, a := range in.Alerts {
		if err := uc.validateInput(a); err != nil {
			return res, err
		}
	}

	for _, a := range in.Alerts {
		ok, err := uc.Execute(ctx, a)
		if err != nil {
			return res, err
		}

		if ok {
			res.Created++
		} else {
			res.Duplicates++
		}
	}

	uc.log.Info("bulk alerts stored",
		zap.Int("created", res.Created),
		zap.Int("duplicates", res.Duplicates),
	)

	return res, nil
}

func (uc *StoreAlertUseCase) validateInput(in StoreAlertInput) error {
	r := in.Record

	if r.Alert == nil && !r.Timestamp.IsSet() {
		return ErrInvalidAlert
	}
	if len(r.ID) > maxIDLength {
		return ErrInvalidAlert
	}

	// unreadable timestamps are accepted and end up under "Invalid Date"
	if t, ok := uc.dates.Time(r.Timestamp); ok {
		if t.After(uc.now().Add(futureTolerance)) {
			return ErrFutureTime
		}
	}

	return nil
}
