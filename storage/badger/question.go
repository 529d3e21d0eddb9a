package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/supertruth/violet/core"
	"github.com/supertruth/violet/storage"
)

// QuestionRepository implements storage.QuestionRepository for BadgerDB.
type QuestionRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.QuestionRepository = (*QuestionRepository)(nil)

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(backend *Backend) (*QuestionRepository, error) {
	idSeq, err := backend.GetSequence(questionIDSeq)
	if err != nil {
		return nil, err
	}

	return &QuestionRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *QuestionRepository) Close() error {
	return r.idSeq.Release()
}

// ReplaceTermQuestions replaces all questions stored for a term. Each
// refresh surfaces a complete new set, so the old set is discarded.
func (r *QuestionRepository) ReplaceTermQuestions(ctx context.Context, termID core.ID, questions ...*core.TermQuestion) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		// Remove the term's existing questions and index entries
		startKey := makePartialQuestionTermKey(termID)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		var stale [][]byte
		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(startKey) || slices.Compare(key[:len(startKey)], startKey) != 0 {
				break
			}

			var questionID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				questionID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				iter.Close()
				return err
			}

			stale = append(stale, iter.Item().KeyCopy(nil), makeQuestionKey(questionID))
		}
		iter.Close()

		for _, key := range stale {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}

		// Store the new set
		for _, question := range questions {
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
			question.Id = core.ID(nextID)
			question.SourceTermId = termID

			if question.FetchedAt.IsZero() {
				question.FetchedAt = time.Now().UTC()
			}

			key := makeQuestionKey(question.Id)
			if err := tx.Set(key, storage.MarshalQuestion(question)); err != nil {
				return err
			}

			indexKey := makeQuestionTermKey(termID, question.Rank, question.Id)
			if err := tx.Set(indexKey, storage.MarshalID(question.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// ListByTerm retrieves a term's questions ordered by rank.
func (r *QuestionRepository) ListByTerm(ctx context.Context, termID core.ID) ([]*core.TermQuestion, error) {
	var results []*core.TermQuestion
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialQuestionTermKey(termID)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(startKey) || slices.Compare(key[:len(startKey)], startKey) != 0 {
				break
			}

			// Read the ID from the index
			var questionID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				questionID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full record
			question, err := r.readQuestion(tx, makeQuestionKey(questionID))
			if err != nil {
				return err
			}
			if question != nil {
				results = append(results, question)
			}
		}
		return nil
	}, false)

	return results, err
}

// readQuestion reads a term question from the transaction.
func (r *QuestionRepository) readQuestion(tx *badger.Txn, key []byte) (*core.TermQuestion, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var question *core.TermQuestion
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		question, unmarshalErr = storage.UnmarshalQuestion(val)
		return unmarshalErr
	})
	return question, err
}
