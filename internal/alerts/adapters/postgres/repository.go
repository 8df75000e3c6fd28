package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"alert-dashboard-service/internal/alerts/core/domain"
	"alert-dashboard-service/internal/alerts/core/ports"

	"github.com/cockroachdb/errors"
	"github.com/lib/pq"
)

var ErrSchemaMissing = errors.New("alerts table does not exist")

// undefined_table
const pqUndefinedTable = pq.ErrorCode("42P01")

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type AlertRepository struct {
	db DB
}

func NewAlertRepository(db DB) *AlertRepository {
	return &AlertRepository{db: db}
}

var _ ports.RecordStorePort = (*AlertRepository)(nil)

const createAlertsTableSQL = `
CREATE TABLE IF NOT EXISTS alerts (
    seq        BIGSERIAL PRIMARY KEY,
    id         TEXT NOT NULL UNIQUE,
    payload    JSONB NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

const insertAlertSQL = `
INSERT INTO alerts (
    id,
    payload
) VALUES (
    $1, $2
)
ON CONFLICT (id) DO NOTHING;
`

const listAlertsSQL = `
SELECT
    payload
FROM alerts
ORDER BY seq`

// EnsureSchema creates the alerts table when it is missing.
func (r *AlertRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createAlertsTableSQL); err != nil {
		return errors.Wrap(err, "create alerts table")
	}
	return nil
}

func (r *AlertRepository) InsertRecord(ctx context.Context, rec *domain.Record) (bool, error) {
	if rec.ID == "" {
		return false, errors.New("alert id is required")
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return false, errors.Wrap(err, "encode alert payload")
	}

	res, err := r.db.ExecContext(ctx, insertAlertSQL, rec.ID, payload)
	if err != nil {
		return false, classify(err, "insert alert")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 1  -> new record
	// rows == 0  -> duplicate id (ON CONFLICT DO NOTHING)
	return rows > 0, nil
}

func (r *AlertRepository) ListRecords(ctx context.Context) ([]domain.Record, error) {
	rows, err := r.db.QueryContext(ctx, listAlertsSQL)
	if err != nil {
		return nil, classify(err, "list alerts")
	}
	defer rows.Close()

	records := make([]domain.Record, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}

		var rec domain.Record
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, errors.Wrap(err, "decode alert payload")
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func classify(err error, op string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUndefinedTable {
		return errors.WithSecondaryError(errors.Wrap(ErrSchemaMissing, op), err)
	}
	return errors.Wrap(err, op)
}
