package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/supertruth/violet/core"
	"github.com/supertruth/violet/storage"
)

// TrendRepository implements storage.TrendRepository for BadgerDB.
type TrendRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.TrendRepository = (*TrendRepository)(nil)

// NewTrendRepository creates a new TrendRepository.
func NewTrendRepository(backend *Backend) (*TrendRepository, error) {
	idSeq, err := backend.GetSequence(trendIDSeq)
	if err != nil {
		return nil, err
	}

	return &TrendRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *TrendRepository) Close() error {
	return r.idSeq.Release()
}

// AddObservations appends observations, generating sequence IDs.
func (r *TrendRepository) AddObservations(ctx context.Context, obs ...*core.TrendObservation) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, o := range obs {
			if err := core.ValidateObservation(o); err != nil {
				return err
			}

			// Always generate new ID from sequence
			nextID, err := r.idSeq.Next()
			if err != nil {
				return err
			}
			// BadgerDB sequences can return 0 on first call, so we skip it
			if nextID == 0 {
				nextID, err = r.idSeq.Next()
				if err != nil {
					return err
				}
			}
			o.Id = core.ID(nextID)

			if o.FetchedAt.IsZero() {
				o.FetchedAt = time.Now().UTC()
			}

			// Store primary record
			key := makeTrendKey(o.Id)
			if err := tx.Set(key, storage.MarshalObservation(o)); err != nil {
				return err
			}

			// Update per-term date index
			indexKey := makeTrendTermKey(o.TermId, o.GeoLevel, o.Date, o.Id)
			if err := tx.Set(indexKey, storage.MarshalID(o.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// ClearObservations removes all observations and their indexes.
func (r *TrendRepository) ClearObservations(ctx context.Context) error {
	return r.backend.DropPrefixes(
		[]byte(trendRecordPrefix+":"),
		[]byte(trendTermPrefix+":"),
	)
}

// ListByTerm retrieves a term's observations at the given geo level,
// ordered by date ascending.
func (r *TrendRepository) ListByTerm(ctx context.Context, termID core.ID, level core.GeoLevel) ([]*core.TrendObservation, error) {
	startKey := makePartialTrendTermKey(termID, level)
	return r.scanIndex(startKey, startKey)
}

// ListByTermSince retrieves a term's observations at the given geo level
// with Date >= since, ordered by date ascending.
func (r *TrendRepository) ListByTermSince(ctx context.Context, termID core.ID, level core.GeoLevel, since time.Time) ([]*core.TrendObservation, error) {
	startKey := makePartialTrendDateKey(termID, level, since)
	prefix := makePartialTrendTermKey(termID, level)
	return r.scanIndex(startKey, prefix)
}

// scanIndex walks the per-term date index from startKey while keys still
// carry the given prefix, resolving each entry to its full record.
func (r *TrendRepository) scanIndex(startKey, prefix []byte) ([]*core.TrendObservation, error) {
	var results []*core.TrendObservation
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			// Read the ID from the index
			var obsID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				obsID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full record
			obs, err := r.readObservation(tx, makeTrendKey(obsID))
			if err != nil {
				return err
			}
			if obs != nil {
				results = append(results, obs)
			}
		}
		return nil
	}, false)

	return results, err
}

// readObservation reads a trend observation from the transaction.
func (r *TrendRepository) readObservation(tx *badger.Txn, key []byte) (*core.TrendObservation, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var obs *core.TrendObservation
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		obs, unmarshalErr = storage.UnmarshalObservation(val)
		return unmarshalErr
	})
	return obs, err
}
