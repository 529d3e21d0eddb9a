package trends

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/supertruth/violet/core"
	"github.com/supertruth/violet/geo"
	"github.com/supertruth/violet/storage"
)

// commitBatchSize bounds how many terms' worth of fetched data are held
// in memory before a storage flush.
const commitBatchSize = 10

const (
	// defaultGeo scopes fetches to the United States.
	defaultGeo = "US"

	// defaultTimeframe covers the trailing three months.
	defaultTimeframe = "today 3-m"
)

// Loader drives trend fetching for a set of terms and persists the
// results. A refresh is wholesale: prior observations and signals are
// cleared first so the store always reflects the latest fetch.
type Loader struct {
	fetcher   Fetcher
	repos     *storage.Repositories
	geo       string
	timeframe string
	logger    *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithGeo sets the country scope for fetches, e.g. "US".
func WithGeo(geoCode string) LoaderOption {
	return func(l *Loader) {
		l.geo = geoCode
	}
}

// WithTimeframe sets the fetch timeframe, e.g. "today 3-m".
func WithTimeframe(timeframe string) LoaderOption {
	return func(l *Loader) {
		l.timeframe = timeframe
	}
}

// WithLogger sets the logger used for progress and skip reporting.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a Loader over the given fetcher and repositories.
func NewLoader(fetcher Fetcher, repos *storage.Repositories, opts ...LoaderOption) (*Loader, error) {
	if fetcher == nil {
		return nil, ErrNilFetcher
	}
	if repos == nil {
		return nil, ErrNilRepositories
	}

	loader := &Loader{
		fetcher:   fetcher,
		repos:     repos,
		geo:       defaultGeo,
		timeframe: defaultTimeframe,
		logger:    slog.Default().With("component", "trends-loader"),
	}
	for _, opt := range opts {
		opt(loader)
	}
	return loader, nil
}

// Refresh fetches trend data for every term and replaces the stored
// observations and signals. A term whose fetch or transform fails is
// logged and skipped; the refresh continues. Regions seen in regional
// breakdowns are upserted with their centroids.
// Returns the number of terms successfully loaded.
func (l *Loader) Refresh(ctx context.Context, terms []*core.Term) (int, error) {
	if err := l.repos.Trends.ClearObservations(ctx); err != nil {
		return 0, err
	}
	if err := l.repos.Signals.ClearSignals(ctx); err != nil {
		return 0, err
	}

	var pendingObs []*core.TrendObservation
	var pendingSignals []*core.RelatedSignal
	seenRegions := make(map[string]string) // code -> name
	processed := 0
	batched := 0

	for _, term := range terms {
		if err := ctx.Err(); err != nil {
			return processed, err
		}

		fetchedAt := time.Now()
		signals, err := l.fetcher.FetchSignals(ctx, term, FetchOptions{
			Timeframe: l.timeframe,
			Geo:       l.geo,
		})
		if err != nil {
			l.logger.Warn("trend fetch failed, skipping term",
				"term", term.Text, "error", err)
			continue
		}

		related, err := buildSignals(term, signals.Related, fetchedAt)
		if err != nil {
			l.logger.Warn("signal transform failed, skipping term",
				"term", term.Text, "error", err)
			continue
		}

		pendingObs = append(pendingObs, buildObservations(term, signals, l.geo, fetchedAt)...)
		pendingSignals = append(pendingSignals, related...)
		for _, point := range signals.Regional {
			seenRegions[point.Code] = point.Name
		}

		processed++
		batched++
		if batched >= commitBatchSize {
			if err := l.flush(ctx, pendingObs, pendingSignals); err != nil {
				return processed, err
			}
			pendingObs = pendingObs[:0]
			pendingSignals = pendingSignals[:0]
			batched = 0
		}
	}

	if err := l.flush(ctx, pendingObs, pendingSignals); err != nil {
		return processed, err
	}
	if err := l.upsertRegions(ctx, seenRegions); err != nil {
		return processed, err
	}

	l.logger.Info("trend refresh complete",
		"terms", len(terms), "loaded", processed, "regions", len(seenRegions))
	return processed, nil
}

// RefreshHourly fetches hour-resolution series and stores aggregated
// patterns. Per-term failures are logged and skipped.
// Returns the number of patterns stored.
func (l *Loader) RefreshHourly(ctx context.Context, terms []*core.Term) (int, error) {
	stored := 0
	for _, term := range terms {
		if err := ctx.Err(); err != nil {
			return stored, err
		}

		points, err := l.fetcher.FetchHourly(ctx, term, FetchOptions{
			Timeframe: l.timeframe,
			Geo:       l.geo,
		})
		if err != nil {
			l.logger.Warn("hourly fetch failed, skipping term",
				"term", term.Text, "error", err)
			continue
		}

		pattern, err := AggregateHourly(term.Id, points, time.Now())
		if err != nil {
			l.logger.Warn("hourly aggregation failed, skipping term",
				"term", term.Text, "error", err)
			continue
		}

		if err := l.repos.Hourly.UpsertPattern(ctx, pattern); err != nil {
			return stored, err
		}
		stored++
	}

	l.logger.Info("hourly refresh complete", "terms", len(terms), "stored", stored)
	return stored, nil
}

func (l *Loader) flush(ctx context.Context, obs []*core.TrendObservation, signals []*core.RelatedSignal) error {
	if len(obs) > 0 {
		if err := l.repos.Trends.AddObservations(ctx, obs...); err != nil {
			return err
		}
	}
	if len(signals) > 0 {
		if err := l.repos.Signals.AddSignals(ctx, signals...); err != nil {
			return err
		}
	}
	return nil
}

// upsertRegions creates region records for geographies seen in regional
// breakdowns. Existing regions are left alone so overlay fields such as
// the vulnerability index survive a trend refresh.
func (l *Loader) upsertRegions(ctx context.Context, seen map[string]string) error {
	if len(seen) == 0 {
		return nil
	}

	now := time.Now()
	var regions []*core.Region
	for code, name := range seen {
		geoCode := l.geo + "-" + code
		if _, err := l.repos.Regions.GetRegion(ctx, geoCode); err == nil {
			continue
		} else if !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		region := &core.Region{
			GeoCode:   geoCode,
			Name:      name,
			Level:     core.GeoLevelState,
			UpdatedAt: now,
		}
		if lat, lon, ok := geo.StateCentroid(code); ok {
			region.Latitude = lat
			region.Longitude = lon
		}
		regions = append(regions, region)
	}
	if len(regions) == 0 {
		return nil
	}
	return l.repos.Regions.UpsertRegions(ctx, regions...)
}
