package memory

import (
	"context"
	"sync"

	"alert-dashboard-service/internal/alerts/core/domain"
	"alert-dashboard-service/internal/alerts/core/ports"
)

// Store keeps records in process memory in insertion order.
type Store struct {
	mu      sync.RWMutex
	records []domain.Record
	ids     map[string]struct{}
}

var _ ports.RecordStorePort = (*Store)(nil)

// NewStore seeds the store. Seed records are kept as given, duplicates
// included; only later inserts are deduplicated by id.
func NewStore(seed []domain.Record) *Store {
	s := &Store{
		records: make([]domain.Record, 0, len(seed)),
		ids:     make(map[string]struct{}, len(seed)),
	}
	for _, r := range seed {
		s.records = append(s.records, r)
		if r.ID != "" {
			s.ids[r.ID] = struct{}{}
		}
	}
	return s
}

func (s *Store) ListRecords(ctx context.Context) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *Store) InsertRecord(ctx context.Context, r *domain.Record) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID != "" {
		if _, dup := s.ids[r.ID]; dup {
			return false, nil
		}
		s.ids[r.ID] = struct{}{}
	}
	s.records = append(s.records, *r)
	return true, nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
