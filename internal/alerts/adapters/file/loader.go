package file

import (
	"context"
	"encoding/json"
	"os"

	"alert-dashboard-service/internal/alerts/core/domain"
	"alert-dashboard-service/internal/alerts/core/ports"

	"github.com/cockroachdb/errors"
)

// LoadRecords reads a JSON array of alert records.
func LoadRecords(path string) ([]domain.Record, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read records file %s", path)
	}

	var records []domain.Record
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, errors.Wrapf(err, "decode records file %s", path)
	}
	return records, nil
}

// Source serves a static records file, re-reading it on every call.
type Source struct {
	path string
}

var _ ports.RecordReaderPort = (*Source)(nil)

func NewSource(path string) *Source {
	return &Source{path: path}
}

func (s *Source) ListRecords(ctx context.Context) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadRecords(s.path)
}
