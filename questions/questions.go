// Package questions surfaces the literal human-phrased questions people
// ask about tracked terms and keeps the stored set fresh.
package questions

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/supertruth/violet/core"
	"github.com/supertruth/violet/storage"
)

var (
	// ErrNilFetcher is returned when a Loader is constructed without a fetcher.
	ErrNilFetcher = errors.New("fetcher cannot be nil")

	// ErrNilRepository is returned when a Loader is constructed without a
	// question repository.
	ErrNilRepository = errors.New("question repository cannot be nil")
)

// Item is one fetched question with its source attribution.
type Item struct {
	Question    string
	Snippet     string
	SourceTitle string
	SourceURL   string
	SourceKind  core.QuestionSource
}

// Fetcher retrieves human-phrased questions for a term from an upstream
// source such as "people also ask" blocks or autocomplete.
type Fetcher interface {
	// FetchQuestions returns questions for a term in relevance order.
	FetchQuestions(ctx context.Context, term *core.Term) ([]Item, error)
}

// Loader fetches questions for a set of terms and wholesale-replaces each
// term's stored set.
type Loader struct {
	fetcher Fetcher
	repo    storage.QuestionRepository
	logger  *slog.Logger
}

// NewLoader creates a Loader over the given fetcher and repository.
func NewLoader(fetcher Fetcher, repo storage.QuestionRepository) (*Loader, error) {
	if fetcher == nil {
		return nil, ErrNilFetcher
	}
	if repo == nil {
		return nil, ErrNilRepository
	}
	return &Loader{
		fetcher: fetcher,
		repo:    repo,
		logger:  slog.Default().With("component", "questions-loader"),
	}, nil
}

// Refresh fetches and replaces the stored questions for every term. A
// term whose fetch fails is logged and skipped.
// Returns the number of terms whose questions were refreshed.
func (l *Loader) Refresh(ctx context.Context, terms []*core.Term) (int, error) {
	refreshed := 0
	for _, term := range terms {
		if err := ctx.Err(); err != nil {
			return refreshed, err
		}

		items, err := l.fetcher.FetchQuestions(ctx, term)
		if err != nil {
			l.logger.Warn("question fetch failed, skipping term",
				"term", term.Text, "error", err)
			continue
		}

		fetchedAt := time.Now()
		records := make([]*core.TermQuestion, 0, len(items))
		for rank, item := range items {
			records = append(records, &core.TermQuestion{
				Question:    item.Question,
				Snippet:     item.Snippet,
				SourceTitle: item.SourceTitle,
				SourceURL:   item.SourceURL,
				SourceKind:  item.SourceKind,
				Rank:        rank,
				FetchedAt:   fetchedAt,
			})
		}

		if err := l.repo.ReplaceTermQuestions(ctx, term.Id, records...); err != nil {
			return refreshed, err
		}
		refreshed++
	}

	l.logger.Info("question refresh complete",
		"terms", len(terms), "refreshed", refreshed)
	return refreshed, nil
}
