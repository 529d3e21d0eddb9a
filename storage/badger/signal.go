package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/supertruth/violet/core"
	"github.com/supertruth/violet/storage"
)

// SignalRepository implements storage.SignalRepository for BadgerDB.
type SignalRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.SignalRepository = (*SignalRepository)(nil)

// NewSignalRepository creates a new SignalRepository.
func NewSignalRepository(backend *Backend) (*SignalRepository, error) {
	idSeq, err := backend.GetSequence(signalIDSeq)
	if err != nil {
		return nil, err
	}

	return &SignalRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *SignalRepository) Close() error {
	return r.idSeq.Release()
}

// AddSignals appends signals, generating sequence IDs.
func (r *SignalRepository) AddSignals(ctx context.Context, signals ...*core.RelatedSignal) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, signal := range signals {
			if err := core.ValidateSignal(signal); err != nil {
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
			signal.Id = core.ID(nextID)

			if signal.DiscoveredAt.IsZero() {
				signal.DiscoveredAt = time.Now().UTC()
			}

			// Store primary record
			key := makeSignalKey(signal.Id)
			if err := tx.Set(key, storage.MarshalSignal(signal)); err != nil {
				return err
			}

			// Update per-term index
			indexKey := makeSignalTermKey(signal.SourceTermId, signal.Id)
			if err := tx.Set(indexKey, storage.MarshalID(signal.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// UpdateSignals updates existing signals in place. The source term never
// changes after discovery, so the per-term index needs no maintenance.
func (r *SignalRepository) UpdateSignals(ctx context.Context, signals ...*core.RelatedSignal) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, signal := range signals {
			key := makeSignalKey(signal.Id)

			old, err := r.readSignal(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			if err := tx.Set(key, storage.MarshalSignal(signal)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// ClearSignals removes all signals and their indexes.
func (r *SignalRepository) ClearSignals(ctx context.Context) error {
	return r.backend.DropPrefixes(
		[]byte(signalRecordPrefix+":"),
		[]byte(signalTermPrefix+":"),
	)
}

// ListUnpromotedRising retrieves unpromoted signals of a rising kind.
func (r *SignalRepository) ListUnpromotedRising(ctx context.Context) ([]*core.RelatedSignal, error) {
	var results []*core.RelatedSignal
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(signalRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var signal *core.RelatedSignal
			err := iter.Item().Value(func(val []byte) error {
				var unmarshalErr error
				signal, unmarshalErr = storage.UnmarshalSignal(val)
				return unmarshalErr
			})
			if err != nil {
				return err
			}
			if signal != nil && signal.Kind.Rising() && !signal.Promoted {
				results = append(results, signal)
			}
		}
		return nil
	}, false)

	return results, err
}

// ListBySourceTerm retrieves all signals surfaced for a source term.
func (r *SignalRepository) ListBySourceTerm(ctx context.Context, termID core.ID) ([]*core.RelatedSignal, error) {
	var results []*core.RelatedSignal
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialSignalTermKey(termID)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(startKey) || slices.Compare(key[:len(startKey)], startKey) != 0 {
				break
			}

			// Read the ID from the index
			var signalID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				signalID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full record
			signal, err := r.readSignal(tx, makeSignalKey(signalID))
			if err != nil {
				return err
			}
			if signal != nil {
				results = append(results, signal)
			}
		}
		return nil
	}, false)

	return results, err
}

// readSignal reads a related signal from the transaction.
func (r *SignalRepository) readSignal(tx *badger.Txn, key []byte) (*core.RelatedSignal, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var signal *core.RelatedSignal
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		signal, unmarshalErr = storage.UnmarshalSignal(val)
		return unmarshalErr
	})
	return signal, err
}
