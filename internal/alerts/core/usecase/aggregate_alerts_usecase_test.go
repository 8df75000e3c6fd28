package usecase_test

import (
	"context"
	"errors"
	"testing"

	"alert-dashboard-service/internal/alerts/core/domain"
	"alert-dashboard-service/internal/alerts/core/usecase"
)

// fakeRecordReader fakes RecordReaderPort for tests.
type fakeRecordReader struct {
	ListFn func(ctx context.Context) ([]domain.Record, error)
	called bool
}

func (f *fakeRecordReader) ListRecords(ctx context.Context) ([]domain.Record, error) {
	f.called = true
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	return nil, nil
}

func alert(category, severity string) domain.Record {
	return domain.Record{Alert: &domain.AlertFields{
		Category: domain.StringField(category),
		Severity: domain.StringField(severity),
	}}
}

// ------------------------------------------------------------
// SUCCESS (group_by=category)
// ------------------------------------------------------------

func TestAggregateAlerts_Success_GroupByCategory(t *testing.T) {
	reader := &fakeRecordReader{
		ListFn: func(ctx context.Context) ([]domain.Record, error) {
			return []domain.Record{
				alert("malware", "high"),
				alert("phishing", "low"),
				alert("malware", "low"),
			}, nil
		},
	}

	uc := usecase.NewAggregateAlertsUseCase(reader, nil, nil)

	out, err := uc.Execute(context.Background(), usecase.AggregateAlertsInput{GroupBy: "category"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Key() != domain.GroupByCategory {
		t.Fatalf("expected key=category, got %s", out.Key())
	}
	if out.Len() != 2 || out.Count("malware") != 2 || out.Count("phishing") != 1 {
		t.Fatalf("unexpected result: %v %v", out.Labels(), out.Counts())
	}
	if !reader.called {
		t.Fatalf("expected ListRecords to be called")
	}
}

// ------------------------------------------------------------
// SUCCESS (group_by=severity)
// ------------------------------------------------------------

func TestAggregateAlerts_Success_GroupBySeverity(t *testing.T) {
	reader := &fakeRecordReader{
		ListFn: func(ctx context.Context) ([]domain.Record, error) {
			return []domain.Record{
				alert("malware", "high"),
				alert("phishing", "low"),
				alert("malware", "low"),
				{},
			}, nil
		},
	}

	uc := usecase.NewAggregateAlertsUseCase(reader, nil, nil)

	out, err := uc.Execute(context.Background(), usecase.AggregateAlertsInput{GroupBy: "severity"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	labels := out.Labels()
	if len(labels) != 3 || labels[0] != "high" || labels[1] != "low" || labels[2] != "undefined" {
		t.Fatalf("unexpected labels: %v", labels)
	}
	if out.Total() != 4 {
		t.Fatalf("expected total=4, got %d", out.Total())
	}
}

// ------------------------------------------------------------
// SUCCESS (group_by=timeSeries, custom formatter)
// ------------------------------------------------------------

func TestAggregateAlerts_Success_TimeSeries(t *testing.T) {
	reader := &fakeRecordReader{
		ListFn: func(ctx context.Context) ([]domain.Record, error) {
			return []domain.Record{
				{Timestamp: domain.StringField("2024-01-01T10:00:00Z")},
				{Timestamp: domain.StringField("2024-01-01T23:00:00Z")},
				{Timestamp: domain.StringField("2024-01-02T01:00:00Z")},
			}, nil
		},
	}

	dates, err := domain.NewDateFormatter("en-GB", "UTC")
	if err != nil {
		t.Fatalf("formatter: %v", err)
	}

	uc := usecase.NewAggregateAlertsUseCase(reader, dates, nil)

	out, err := uc.Execute(context.Background(), usecase.AggregateAlertsInput{GroupBy: "timeSeries"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count("01/01/2024") != 2 || out.Count("02/01/2024") != 1 {
		t.Fatalf("unexpected result: %v %v", out.Labels(), out.Counts())
	}
}

// ------------------------------------------------------------
// VALIDATION: group_by bilinmeyen değer
// ------------------------------------------------------------

func TestAggregateAlerts_InvalidGroupBy(t *testing.T) {
	for _, groupBy := range []string{"", "channel", "host"} {
		reader := &fakeRecordReader{}
		uc := usecase.NewAggregateAlertsUseCase(reader, nil, nil)

		out, err := uc.Execute(context.Background(), usecase.AggregateAlertsInput{GroupBy: groupBy})
		if !errors.Is(err, usecase.ErrInvalidGroupBy) {
			t.Fatalf("group_by=%q: expected ErrInvalidGroupBy, got %v", groupBy, err)
		}
		if out != nil {
			t.Fatalf("expected nil result")
		}
		if reader.called {
			t.Fatalf("store should not be called on invalid group_by")
		}
	}
}

// ------------------------------------------------------------
// STORE ERROR PROPAGATION
// ------------------------------------------------------------

func TestAggregateAlerts_StoreError(t *testing.T) {
	reader := &fakeRecordReader{
		ListFn: func(ctx context.Context) ([]domain.Record, error) {
			return nil, errors.New("db failure")
		},
	}

	uc := usecase.NewAggregateAlertsUseCase(reader, nil, nil)

	out, err := uc.Execute(context.Background(), usecase.AggregateAlertsInput{GroupBy: "category"})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if err.Error() != "db failure" {
		t.Fatalf("expected db failure, got %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil result on error")
	}
}
