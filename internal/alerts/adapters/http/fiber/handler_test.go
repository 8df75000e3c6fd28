package fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"alert-dashboard-service/internal/alerts/core/domain"
	"alert-dashboard-service/internal/alerts/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type fakeStoreAlertUseCase struct {
	ExecuteFunc         func(ctx context.Context, in usecase.StoreAlertInput) (bool, error)
	BulkCreateFunc      func(ctx context.Context, in usecase.BulkCreateAlertsInput) (usecase.BulkCreateAlertsResult, error)
	LastExecuteInput    usecase.StoreAlertInput
	LastBulkCreateInput usecase.BulkCreateAlertsInput
}

func (f *fakeStoreAlertUseCase) Execute(ctx context.Context, in usecase.StoreAlertInput) (bool, error) {
	f.LastExecuteInput = in
	if f.ExecuteFunc != nil {
		return f.ExecuteFunc(ctx, in)
	}
	return false, nil
}

func (f *fakeStoreAlertUseCase) BulkCreateAlerts(ctx context.Context, in usecase.BulkCreateAlertsInput) (usecase.BulkCreateAlertsResult, error) {
	f.LastBulkCreateInput = in
	if f.BulkCreateFunc != nil {
		return f.BulkCreateFunc(ctx, in)
	}
	return usecase.BulkCreateAlertsResult{}, nil
}

type fakeAggregateUseCase struct {
	ExecuteFunc func(ctx context.Context, in usecase.AggregateAlertsInput) (*domain.AggregationResult, error)
	lastInput   usecase.AggregateAlertsInput
}

func (f *fakeAggregateUseCase) Execute(ctx context.Context, in usecase.AggregateAlertsInput) (*domain.AggregationResult, error) {
	f.lastInput = in
	if f.ExecuteFunc != nil {
		return f.ExecuteFunc(ctx, in)
	}
	return nil, nil
}

// helper: create fiber app and routes
func setupTestApp(agg AggregateAlertsUseCase, store StoreAlertUseCase) *fiber.App {
	app := fiber.New()
	NewAlertHandler(agg, store).Register(app)
	return app
}

// helper: send request
func doRequest(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		buf = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	_ = resp.Body.Close()

	return resp, respBody
}

func TestCreateAlert_Success_Created(t *testing.T) {
	fakeUC := &fakeStoreAlertUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.StoreAlertInput) (bool, error) {
			return true, nil
		},
	}

	app := setupTestApp(&fakeAggregateUseCase{}, fakeUC)

	reqBody := map[string]any{
		"id":        "a1",
		"timestamp": "2024-01-01T10:00:00Z",
		"alert":     map[string]any{"category": "malware", "severity": 2},
	}

	resp, body := doRequest(t, app, http.MethodPost, "/alerts", reqBody)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusCreated, resp.StatusCode, string(body))
	}

	var respJSON map[string]any
	if err := json.Unmarshal(body, &respJSON); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if respJSON["status"] != "created" {
		t.Errorf("expected status=created, got %v", respJSON["status"])
	}

	got := fakeUC.LastExecuteInput.Record
	if got.Category().Label() != "malware" || got.Severity().Label() != "2" {
		t.Errorf("unexpected record passed to usecase: %+v", got)
	}
}

func TestCreateAlert_Success_Duplicate(t *testing.T) {
	fakeUC := &fakeStoreAlertUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.StoreAlertInput) (bool, error) {
			// created = false → duplicate
			return false, nil
		},
	}

	app := setupTestApp(&fakeAggregateUseCase{}, fakeUC)

	resp, body := doRequest(t, app, http.MethodPost, "/alerts", map[string]any{"id": "a1", "alert": map[string]any{}})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusOK, resp.StatusCode, string(body))
	}

	var respJSON map[string]any
	if err := json.Unmarshal(body, &respJSON); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if respJSON["status"] != "duplicate" {
		t.Errorf("expected status=duplicate, got %v", respJSON["status"])
	}
}

func TestCreateAlert_InvalidJSON(t *testing.T) {
	app := setupTestApp(&fakeAggregateUseCase{}, &fakeStoreAlertUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/alerts", bytes.NewBufferString(`{"alert":`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestCreateAlert_ValidationErrors(t *testing.T) {
	for _, ucErr := range []error{usecase.ErrInvalidAlert, usecase.ErrFutureTime} {
		fakeUC := &fakeStoreAlertUseCase{
			ExecuteFunc: func(ctx context.Context, in usecase.StoreAlertInput) (bool, error) {
				return false, ucErr
			},
		}

		app := setupTestApp(&fakeAggregateUseCase{}, fakeUC)

		resp, body := doRequest(t, app, http.MethodPost, "/alerts", map[string]any{})
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected status %d, got %d (body: %s)", http.StatusBadRequest, resp.StatusCode, string(body))
		}

		var respJSON map[string]any
		if err := json.Unmarshal(body, &respJSON); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if respJSON["error"] != "invalid_alert" {
			t.Errorf("expected error=invalid_alert, got %v", respJSON["error"])
		}
	}
}

func TestCreateAlert_InternalError(t *testing.T) {
	fakeUC := &fakeStoreAlertUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.StoreAlertInput) (bool, error) {
			return false, errors.New("db error")
		},
	}

	app := setupTestApp(&fakeAggregateUseCase{}, fakeUC)

	resp, body := doRequest(t, app, http.MethodPost, "/alerts", map[string]any{"alert": map[string]any{}})

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusInternalServerError, resp.StatusCode, string(body))
	}
}

// ---- Bulk tests ----

func TestBulkCreateAlerts_Success(t *testing.T) {
	fakeUC := &fakeStoreAlertUseCase{
		BulkCreateFunc: func(ctx context.Context, in usecase.BulkCreateAlertsInput) (usecase.BulkCreateAlertsResult, error) {
			return usecase.BulkCreateAlertsResult{Created: len(in.Alerts) - 1, Duplicates: 1}, nil
		},
	}

	app := setupTestApp(&fakeAggregateUseCase{}, fakeUC)

	reqBody := map[string]any{
		"alerts": []map[string]any{
			{"id": "a1", "alert": map[string]any{"category": "malware"}},
			{"id": "a1", "alert": map[string]any{"category": "malware"}},
			{"alert": map[string]any{"category": "dos"}},
		},
	}

	resp, body := doRequest(t, app, http.MethodPost, "/alerts/bulk", reqBody)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusCreated, resp.StatusCode, string(body))
	}

	var out BulkCreateAlertsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if out.Created != 2 || out.Duplicates != 1 {
		t.Errorf("unexpected response: %+v", out)
	}
	if len(fakeUC.LastBulkCreateInput.Alerts) != 3 {
		t.Errorf("expected 3 alerts passed to usecase, got %d", len(fakeUC.LastBulkCreateInput.Alerts))
	}
}

func TestBulkCreateAlerts_EmptyList(t *testing.T) {
	app := setupTestApp(&fakeAggregateUseCase{}, &fakeStoreAlertUseCase{})

	resp, body := doRequest(t, app, http.MethodPost, "/alerts/bulk", map[string]any{"alerts": []any{}})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusBadRequest, resp.StatusCode, string(body))
	}
}

func TestReadOnlyStore_NoIngestionRoutes(t *testing.T) {
	app := setupTestApp(&fakeAggregateUseCase{}, nil)

	resp, _ := doRequest(t, app, http.MethodPost, "/alerts", map[string]any{"alert": map[string]any{}})
	if resp.StatusCode != http.StatusNotFound && resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected ingestion route to be absent, got %d", resp.StatusCode)
	}
}

// ---- Aggregation tests ----

func TestGetAggregation_Success(t *testing.T) {
	records := []domain.Record{
		{Alert: &domain.AlertFields{Category: domain.StringField("malware")}},
		{Alert: &domain.AlertFields{Category: domain.StringField("phishing")}},
		{Alert: &domain.AlertFields{Category: domain.StringField("malware")}},
	}

	fakeUC := &fakeAggregateUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.AggregateAlertsInput) (*domain.AggregationResult, error) {
			return domain.Aggregate(records, domain.GroupByCategory, nil)
		},
	}

	app := setupTestApp(fakeUC, nil)

	resp, body := doRequest(t, app, http.MethodGet, "/alerts/aggregations", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d (body: %s)", resp.StatusCode, string(body))
	}
	if fakeUC.lastInput.GroupBy != "category" {
		t.Fatalf("expected default group_by=category, got %s", fakeUC.lastInput.GroupBy)
	}

	var out AggregationResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if len(out.Labels) != 2 || out.Labels[0] != "malware" || out.Counts[0] != 2 || out.Total != 3 {
		t.Fatalf("unexpected response: %+v", out)
	}
}

func TestGetAggregation_InvalidGroupBy(t *testing.T) {
	fakeUC := &fakeAggregateUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.AggregateAlertsInput) (*domain.AggregationResult, error) {
			return nil, usecase.ErrInvalidGroupBy
		},
	}

	app := setupTestApp(fakeUC, nil)

	resp, _ := doRequest(t, app, http.MethodGet, "/alerts/aggregations?group_by=channel", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
	if fakeUC.lastInput.GroupBy != "channel" {
		t.Fatalf("expected group_by=channel passed through, got %s", fakeUC.lastInput.GroupBy)
	}
}

func TestGetAggregation_InternalError(t *testing.T) {
	fakeUC := &fakeAggregateUseCase{
		ExecuteFunc: func(ctx context.Context, in usecase.AggregateAlertsInput) (*domain.AggregationResult, error) {
			return nil, context.DeadlineExceeded
		},
	}

	app := setupTestApp(fakeUC, nil)

	resp, _ := doRequest(t, app, http.MethodGet, "/alerts/aggregations?group_by=severity", nil)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.StatusCode)
	}
}
