package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/supertruth/violet/core"
	"github.com/supertruth/violet/storage"
)

// TermRepository implements storage.TermRepository for BadgerDB.
// Term IDs are content hashes of the normalized text, so no sequence
// is needed and inserts are naturally idempotent.
type TermRepository struct {
	backend *Backend
}

var _ storage.TermRepository = (*TermRepository)(nil)

// NewTermRepository creates a new TermRepository.
func NewTermRepository(backend *Backend) (*TermRepository, error) {
	return &TermRepository{backend: backend}, nil
}

// Close releases repository resources.
func (r *TermRepository) Close() error {
	return nil
}

// AddTerms inserts terms that do not already exist. Terms whose content
// ID is already present are skipped. Returns the terms actually created.
func (r *TermRepository) AddTerms(ctx context.Context, terms ...*core.Term) ([]*core.Term, error) {
	var created []*core.Term
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, term := range terms {
			if err := core.ValidateTerm(term); err != nil {
				return err
			}
			term.Text = core.NormalizeTermText(term.Text)
			term.Id = core.TermID(term.Text)

			key := makeTermKey(term.Id)
			existing, err := r.readTerm(tx, key)
			if err != nil {
				return err
			}
			if existing != nil {
				continue
			}

			term.CreatedAt = time.Now().UTC()
			term.UpdatedAt = term.CreatedAt

			if err := tx.Set(key, storage.MarshalTerm(term)); err != nil {
				return err
			}
			created = append(created, term)
		}
		return tx.Commit()
	}, true)

	return created, err
}

// UpdateTerms updates existing terms in place.
func (r *TermRepository) UpdateTerms(ctx context.Context, terms ...*core.Term) ([]*core.Term, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, term := range terms {
			key := makeTermKey(term.Id)

			old, err := r.readTerm(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			term.UpdatedAt = time.Now().UTC()

			if err := tx.Set(key, storage.MarshalTerm(term)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return terms, err
}

// GetTerm retrieves a single term by ID.
func (r *TermRepository) GetTerm(ctx context.Context, id core.ID) (*core.Term, error) {
	var result *core.Term
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readTerm(tx, makeTermKey(id))
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

// GetTermByText retrieves a term by its text. The content-based ID scheme
// makes this a direct lookup rather than an index scan.
func (r *TermRepository) GetTermByText(ctx context.Context, text string) (*core.Term, error) {
	return r.GetTerm(ctx, core.TermID(text))
}

// ListTerms retrieves all terms.
func (r *TermRepository) ListTerms(ctx context.Context) ([]*core.Term, error) {
	return r.listTerms(func(term *core.Term) bool { return true })
}

// ListEmbeddedTerms retrieves terms that have an embedding vector.
func (r *TermRepository) ListEmbeddedTerms(ctx context.Context) ([]*core.Term, error) {
	return r.listTerms(func(term *core.Term) bool { return term.Embedded() })
}

// ListUnembeddedTerms retrieves terms lacking an embedding vector.
func (r *TermRepository) ListUnembeddedTerms(ctx context.Context) ([]*core.Term, error) {
	return r.listTerms(func(term *core.Term) bool { return !term.Embedded() })
}

// listTerms scans all term records and keeps those matching the filter.
func (r *TermRepository) listTerms(keep func(*core.Term) bool) ([]*core.Term, error) {
	var results []*core.Term
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(termRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var term *core.Term
			err := iter.Item().Value(func(val []byte) error {
				var unmarshalErr error
				term, unmarshalErr = storage.UnmarshalTerm(val)
				return unmarshalErr
			})
			if err != nil {
				return err
			}
			if term != nil && keep(term) {
				results = append(results, term)
			}
		}
		return nil
	}, false)

	return results, err
}

// readTerm reads a term from the transaction.
func (r *TermRepository) readTerm(tx *badger.Txn, key []byte) (*core.Term, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var term *core.Term
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		term, unmarshalErr = storage.UnmarshalTerm(val)
		return unmarshalErr
	})
	return term, err
}
