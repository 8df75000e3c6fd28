package ports

import (
	"context"

	"alert-dashboard-service/internal/alerts/core/domain"
)

type RecordReaderPort interface {
	// ListRecords returns every stored record in insertion order.
	ListRecords(ctx context.Context) ([]domain.Record, error)
}

type RecordWriterPort interface {
	// InsertRecord:
	//   created = true,  err = nil  -> new record
	//   created = false, err = nil  -> duplicate id (idempotent)
	//   created = false, err != nil -> store error
	InsertRecord(ctx context.Context, r *domain.Record) (created bool, err error)
}

type RecordStorePort interface {
	RecordReaderPort
	RecordWriterPort
}
