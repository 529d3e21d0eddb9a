package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/supertruth/violet/core"
	"github.com/supertruth/violet/storage"
)

// HourlyRepository implements storage.HourlyRepository for BadgerDB.
// A term has at most one pattern record, keyed by the term's ID.
type HourlyRepository struct {
	backend *Backend
}

var _ storage.HourlyRepository = (*HourlyRepository)(nil)

// NewHourlyRepository creates a new HourlyRepository.
func NewHourlyRepository(backend *Backend) (*HourlyRepository, error) {
	return &HourlyRepository{backend: backend}, nil
}

// Close releases repository resources.
func (r *HourlyRepository) Close() error {
	return nil
}

// UpsertPattern stores a term's hourly pattern, replacing any previous one.
func (r *HourlyRepository) UpsertPattern(ctx context.Context, pattern *core.HourlyPattern) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		pattern.Id = pattern.TermId
		if pattern.FetchedAt.IsZero() {
			pattern.FetchedAt = time.Now().UTC()
		}

		key := makeHourlyKey(pattern.TermId)
		if err := tx.Set(key, storage.MarshalHourlyPattern(pattern)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetPattern retrieves the pattern for a term.
func (r *HourlyRepository) GetPattern(ctx context.Context, termID core.ID) (*core.HourlyPattern, error) {
	var result *core.HourlyPattern
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeHourlyKey(termID))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			result, unmarshalErr = storage.UnmarshalHourlyPattern(val)
			return unmarshalErr
		})
	}, false)
	return result, err
}
