package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"alert-dashboard-service/internal/alerts/core/domain"
)

// Fake repo
type fakeBulkRepo struct {
	InsertCalls []*domain.Record
	Results     []bool
	Err         error
}

func (f *fakeBulkRepo) InsertRecord(ctx context.Context, r *domain.Record) (bool, error) {
	if f.Err != nil {
		return false, f.Err
	}
	f.InsertCalls = append(f.InsertCalls, r)

	if len(f.Results) == 0 {
		// default: created
		return true, nil
	}

	res := f.Results[0]
	f.Results = f.Results[1:]
	return res, nil
}

func fixedClock() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func categoryInput(id, category, ts string) StoreAlertInput {
	return StoreAlertInput{Record: domain.Record{
		ID:        id,
		Alert:     &domain.AlertFields{Category: domain.StringField(category)},
		Timestamp: domain.StringField(ts),
	}}
}

func TestBulkCreateAlerts_AllCreated(t *testing.T) {
	ctx := context.Background()

	repo := &fakeBulkRepo{
		Results: []bool{true, true, true},
	}

	uc := NewStoreAlertUseCase(repo, nil, nil)
	uc.now = fixedClock

	input := BulkCreateAlertsInput{
		Alerts: []StoreAlertInput{
			categoryInput("a1", "malware", "2024-06-01T10:00:00Z"),
			categoryInput("a2", "phishing", "2024-06-01T11:00:00Z"),
			categoryInput("", "malware", "2024-05-31T23:59:59Z"),
		},
	}

	res, err := uc.BulkCreateAlerts(ctx, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Created != 3 {
		t.Errorf("expected Created=3, got %d", res.Created)
	}
	if res.Duplicates != 0 {
		t.Errorf("expected Duplicates=0, got %d", res.Duplicates)
	}

	if len(repo.InsertCalls) != 3 {
		t.Fatalf("expected 3 InsertRecord calls, got %d", len(repo.InsertCalls))
	}
	if repo.InsertCalls[2].ID == "" {
		t.Errorf("expected generated id for third alert")
	}
}

func TestBulkCreateAlerts_MixedCreatedAndDuplicate(t *testing.T) {
	ctx := context.Background()

	// created, duplicate, created
	repo := &fakeBulkRepo{
		Results: []bool{true, false, true},
	}

	uc := NewStoreAlertUseCase(repo, nil, nil)
	uc.now = fixedClock

	input := BulkCreateAlertsInput{
		Alerts: []StoreAlertInput{
			categoryInput("a1", "malware", "2024-06-01T10:00:00Z"),
			categoryInput("a1", "malware", "2024-06-01T10:00:00Z"),
			categoryInput("a2", "dos", "2024-06-01T10:00:00Z"),
		},
	}

	res, err := uc.BulkCreateAlerts(ctx, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Created != 2 {
		t.Errorf("expected Created=2, got %d", res.Created)
	}
	if res.Duplicates != 1 {
		t.Errorf("expected Duplicates=1, got %d", res.Duplicates)
	}
}

func TestBulkCreateAlerts_ValidationErrorInOneAlert(t *testing.T) {
	ctx := context.Background()

	repo := &fakeBulkRepo{}
	uc := NewStoreAlertUseCase(repo, nil, nil)
	uc.now = fixedClock

	input := BulkCreateAlertsInput{
		Alerts: []StoreAlertInput{
			categoryInput("a1", "malware", "2024-06-01T10:00:00Z"),
			// future relative to the fixed clock
			categoryInput("a2", "malware", "2024-06-02T10:00:00Z"),
			categoryInput("a3", "malware", "2024-06-01T10:00:00Z"),
		},
	}

	_, err := uc.BulkCreateAlerts(ctx, input)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if !errors.Is(err, ErrFutureTime) {
		t.Errorf("expected ErrFutureTime, got %v", err)
	}

	if len(repo.InsertCalls) != 0 {
		t.Errorf("expected 0 InsertRecord calls, got %d", len(repo.InsertCalls))
	}
}

func TestBulkCreateAlerts_RepositoryErrorStops(t *testing.T) {
	repo := &fakeBulkRepo{Err: errors.New("db failure")}
	uc := NewStoreAlertUseCase(repo, nil, nil)
	uc.now = fixedClock

	res, err := uc.BulkCreateAlerts(context.Background(), BulkCreateAlertsInput{
		Alerts: []StoreAlertInput{categoryInput("a1", "malware", "2024-06-01T10:00:00Z")},
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if res.Created != 0 || res.Duplicates != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
}
