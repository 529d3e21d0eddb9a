package storage

import (
	"context"
	"time"

	"github.com/supertruth/violet/core"
)

// TermRepository provides operations for managing taxonomy terms.
// Term IDs are content-based (core.TermID), which makes inserts idempotent.
type TermRepository interface {
	// AddTerms inserts terms that do not already exist.
	// Existing terms (by content ID) are left untouched and not returned.
	// Sets CreatedAt/UpdatedAt timestamps.
	// Returns only the terms that were actually created.
	AddTerms(ctx context.Context, terms ...*core.Term) ([]*core.Term, error)

	// UpdateTerms updates existing terms in place.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any term doesn't exist.
	UpdateTerms(ctx context.Context, terms ...*core.Term) ([]*core.Term, error)

	// GetTerm retrieves a single term by ID.
	// Returns ErrNotFound if the term doesn't exist.
	GetTerm(ctx context.Context, id core.ID) (*core.Term, error)

	// GetTermByText retrieves a term by its (normalized) text.
	// Returns ErrNotFound if no such term exists.
	GetTermByText(ctx context.Context, text string) (*core.Term, error)

	// ListTerms retrieves all terms.
	ListTerms(ctx context.Context) ([]*core.Term, error)

	// ListEmbeddedTerms retrieves terms that have an embedding vector.
	ListEmbeddedTerms(ctx context.Context) ([]*core.Term, error)

	// ListUnembeddedTerms retrieves terms lacking an embedding vector.
	ListUnembeddedTerms(ctx context.Context) ([]*core.Term, error)

	// Close releases repository resources.
	Close() error
}

// ClusterRepository provides operations for managing cluster records.
// Clusters are wholesale-replaced on each full refit.
type ClusterRepository interface {
	// ReplaceClusters deletes all existing clusters and stores the given set.
	ReplaceClusters(ctx context.Context, clusters ...*core.Cluster) error

	// GetCluster retrieves a single cluster by ID.
	// Returns ErrNotFound if the cluster doesn't exist.
	GetCluster(ctx context.Context, id core.ID) (*core.Cluster, error)

	// ListClusters retrieves all clusters.
	ListClusters(ctx context.Context) ([]*core.Cluster, error)

	// Close releases repository resources.
	Close() error
}

// TrendRepository provides operations for trend observations.
type TrendRepository interface {
	// AddObservations appends observations, generating sequence IDs.
	AddObservations(ctx context.Context, obs ...*core.TrendObservation) error

	// ClearObservations removes all observations and their indexes.
	ClearObservations(ctx context.Context) error

	// ListByTerm retrieves a term's observations at the given geo level,
	// ordered by date ascending.
	ListByTerm(ctx context.Context, termID core.ID, level core.GeoLevel) ([]*core.TrendObservation, error)

	// ListByTermSince retrieves a term's observations at the given geo level
	// with Date >= since, ordered by date ascending.
	ListByTermSince(ctx context.Context, termID core.ID, level core.GeoLevel, since time.Time) ([]*core.TrendObservation, error)

	// Close releases repository resources.
	Close() error
}

// SignalRepository provides operations for related signals.
type SignalRepository interface {
	// AddSignals appends signals, generating sequence IDs.
	AddSignals(ctx context.Context, signals ...*core.RelatedSignal) error

	// UpdateSignals updates existing signals (e.g. the promoted flag).
	// Returns ErrNotFound if any signal doesn't exist.
	UpdateSignals(ctx context.Context, signals ...*core.RelatedSignal) error

	// ClearSignals removes all signals and their indexes.
	ClearSignals(ctx context.Context) error

	// ListUnpromotedRising retrieves unpromoted signals of a rising kind.
	ListUnpromotedRising(ctx context.Context) ([]*core.RelatedSignal, error)

	// ListBySourceTerm retrieves all signals surfaced for a source term.
	ListBySourceTerm(ctx context.Context, termID core.ID) ([]*core.RelatedSignal, error)

	// Close releases repository resources.
	Close() error
}

// RunRepository provides operations for pipeline run records.
type RunRepository interface {
	// AddRun stores a new run, generating a sequence ID.
	AddRun(ctx context.Context, run *core.PipelineRun) (*core.PipelineRun, error)

	// UpdateRun updates an existing run. Terminal runs are immutable:
	// status changes that violate the forward-only state machine return
	// ErrInvalidTransition.
	UpdateRun(ctx context.Context, run *core.PipelineRun) (*core.PipelineRun, error)

	// GetRun retrieves a run by ID.
	// Returns ErrNotFound if the run doesn't exist.
	GetRun(ctx context.Context, id core.ID) (*core.PipelineRun, error)

	// ListRuns retrieves up to limit runs, most recent first.
	ListRuns(ctx context.Context, limit int) ([]*core.PipelineRun, error)

	// Close releases repository resources.
	Close() error
}

// RegionRepository provides operations for geographic reference data.
type RegionRepository interface {
	// UpsertRegions inserts or updates regions keyed by geo code.
	UpsertRegions(ctx context.Context, regions ...*core.Region) error

	// GetRegion retrieves a region by geo code.
	// Returns ErrNotFound if the region doesn't exist.
	GetRegion(ctx context.Context, geoCode string) (*core.Region, error)

	// ListRegions retrieves all regions.
	ListRegions(ctx context.Context) ([]*core.Region, error)

	// Close releases repository resources.
	Close() error
}

// HourlyRepository provides operations for hour-of-day search patterns.
type HourlyRepository interface {
	// UpsertPattern stores a term's hourly pattern, replacing any previous one.
	UpsertPattern(ctx context.Context, pattern *core.HourlyPattern) error

	// GetPattern retrieves the pattern for a term.
	// Returns ErrNotFound if no pattern exists.
	GetPattern(ctx context.Context, termID core.ID) (*core.HourlyPattern, error)

	// Close releases repository resources.
	Close() error
}

// QuestionRepository provides operations for surfaced term questions.
type QuestionRepository interface {
	// ReplaceTermQuestions replaces all questions stored for a term.
	ReplaceTermQuestions(ctx context.Context, termID core.ID, questions ...*core.TermQuestion) error

	// ListByTerm retrieves a term's questions ordered by rank.
	ListByTerm(ctx context.Context, termID core.ID) ([]*core.TermQuestion, error)

	// Close releases repository resources.
	Close() error
}

// Repositories bundles every repository the pipeline needs.
type Repositories struct {
	Terms     TermRepository
	Clusters  ClusterRepository
	Trends    TrendRepository
	Signals   SignalRepository
	Runs      RunRepository
	Regions   RegionRepository
	Hourly    HourlyRepository
	Questions QuestionRepository
}

// Close closes every repository, returning the first error encountered.
func (r *Repositories) Close() error {
	var firstErr error
	closers := []interface{ Close() error }{
		r.Terms, r.Clusters, r.Trends, r.Signals,
		r.Runs, r.Regions, r.Hourly, r.Questions,
	}
	for _, c := range closers {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
