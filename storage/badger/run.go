package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/supertruth/violet/core"
	"github.com/supertruth/violet/storage"
)

// RunRepository implements storage.RunRepository for BadgerDB.
type RunRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.RunRepository = (*RunRepository)(nil)

// NewRunRepository creates a new RunRepository.
func NewRunRepository(backend *Backend) (*RunRepository, error) {
	idSeq, err := backend.GetSequence(runIDSeq)
	if err != nil {
		return nil, err
	}

	return &RunRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *RunRepository) Close() error {
	return r.idSeq.Release()
}

// AddRun stores a new run, generating a sequence ID.
func (r *RunRepository) AddRun(ctx context.Context, run *core.PipelineRun) (*core.PipelineRun, error) {
	if err := core.ValidateRunStatus(run.Status); err != nil {
		return nil, err
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
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
		run.Id = core.ID(nextID)

		if run.StartedAt.IsZero() {
			run.StartedAt = time.Now().UTC()
		}

		key := makeRunKey(run.Id)
		if err := tx.Set(key, storage.MarshalRun(run)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	return run, err
}

// UpdateRun updates an existing run, enforcing the forward-only status
// state machine. Terminal runs reject any status change.
func (r *RunRepository) UpdateRun(ctx context.Context, run *core.PipelineRun) (*core.PipelineRun, error) {
	if err := core.ValidateRunStatus(run.Status); err != nil {
		return nil, err
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeRunKey(run.Id)

		old, err := r.readRun(tx, key)
		if err != nil {
			return err
		}
		if old == nil {
			return storage.ErrNotFound
		}

		if old.Status != run.Status && !old.Status.CanTransitionTo(run.Status) {
			return storage.ErrInvalidTransition
		}

		if err := tx.Set(key, storage.MarshalRun(run)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	return run, err
}

// GetRun retrieves a run by ID.
func (r *RunRepository) GetRun(ctx context.Context, id core.ID) (*core.PipelineRun, error) {
	var result *core.PipelineRun
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readRun(tx, makeRunKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// ListRuns retrieves up to limit runs, most recent first. Run counts stay
// small, so the full set is loaded and sorted in memory.
func (r *RunRepository) ListRuns(ctx context.Context, limit int) ([]*core.PipelineRun, error) {
	var results []*core.PipelineRun
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(runRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var run *core.PipelineRun
			err := iter.Item().Value(func(val []byte) error {
				var unmarshalErr error
				run, unmarshalErr = storage.UnmarshalRun(val)
				return unmarshalErr
			})
			if err != nil {
				return err
			}
			if run != nil {
				results = append(results, run)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b *core.PipelineRun) int {
		if a.Id > b.Id {
			return -1
		}
		if a.Id < b.Id {
			return 1
		}
		return 0
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}

// readRun reads a pipeline run from the transaction.
func (r *RunRepository) readRun(tx *badger.Txn, key []byte) (*core.PipelineRun, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var run *core.PipelineRun
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		run, unmarshalErr = storage.UnmarshalRun(val)
		return unmarshalErr
	})
	return run, err
}
