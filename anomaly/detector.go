package anomaly

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/supertruth/violet/core"
	"github.com/supertruth/violet/storage"
)

// ErrNilRepositories is returned when a Detector is constructed without
// storage repositories.
var ErrNilRepositories = errors.New("repositories cannot be nil")

// Config holds the detection thresholds.
type Config struct {
	// MinPoints is the minimum number of weekly points before the
	// spike/drop family runs on a series.
	MinPoints int

	// SpikeZScore is the minimum z-score of the latest weekly point for
	// a spike insight.
	SpikeZScore float64

	// DropZScore is the maximum (negative) z-score of the latest weekly
	// point for a drop insight.
	DropZScore float64

	// HighZScore upgrades a spike to high severity.
	HighZScore float64

	// LookbackWeeks bounds how far back the weekly baseline reaches.
	LookbackWeeks int

	// EmergingWeeks is the window examined for sustained growth.
	EmergingWeeks int

	// MinEmergingPoints is the minimum number of points the emerging
	// window needs.
	MinEmergingPoints int

	// GrowthPercent is the minimum split-half growth for an emerging
	// insight; HighGrowthPercent upgrades it to high severity.
	GrowthPercent     float64
	HighGrowthPercent float64

	// MinRegions is the minimum number of regional snapshots needed
	// before regional outliers are considered.
	MinRegions int

	// RegionalZScore is the minimum z-score of a region's interest for
	// a regional outlier insight.
	RegionalZScore float64

	// VulnerabilityThreshold marks a region as high vulnerability.
	VulnerabilityThreshold float64

	// MinSeriesPoints is the minimum aligned series length for the
	// correlation scan.
	MinSeriesPoints int

	// CorrelationMin is the minimum absolute Pearson correlation for a
	// correlation insight.
	CorrelationMin float64
}

// DefaultConfig returns the production detection thresholds.
func DefaultConfig() Config {
	return Config{
		MinPoints:              4,
		SpikeZScore:            2.0,
		DropZScore:             -1.5,
		HighZScore:             3.0,
		LookbackWeeks:          12,
		EmergingWeeks:          8,
		MinEmergingPoints:      4,
		GrowthPercent:          30,
		HighGrowthPercent:      50,
		MinRegions:             3,
		RegionalZScore:         2.0,
		VulnerabilityThreshold: 0.6,
		MinSeriesPoints:        8,
		CorrelationMin:         0.8,
	}
}

// Detector recomputes anomaly insights from persisted trend data.
// Insights are ephemeral: nothing here writes to storage.
type Detector struct {
	repos  *storage.Repositories
	cfg    Config
	logger *slog.Logger
}

// NewDetector creates a Detector over the given repositories.
func NewDetector(repos *storage.Repositories, cfg Config) (*Detector, error) {
	if repos == nil {
		return nil, ErrNilRepositories
	}
	return &Detector{
		repos:  repos,
		cfg:    cfg,
		logger: slog.Default().With("component", "anomaly-detector"),
	}, nil
}

// termSeries is one term's weekly interest history, date ascending.
type termSeries struct {
	term   *core.Term
	values []float64
}

// Detect runs every detection family over all tracked terms and returns
// the insights ordered by severity, most severe first. Within a severity
// the families keep their detection order: spike/drop, then emerging,
// then regional outliers, then correlations.
func (d *Detector) Detect(ctx context.Context) ([]*core.Insight, error) {
	terms, err := d.repos.Terms.ListTerms(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	since := now.AddDate(0, 0, -7*d.cfg.LookbackWeeks)

	series := make([]termSeries, 0, len(terms))
	regional := make([][]*core.TrendObservation, 0, len(terms))

	for _, term := range terms {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		weekly, err := d.repos.Trends.ListByTermSince(ctx, term.Id, core.GeoLevelCountry, since)
		if err != nil {
			return nil, err
		}
		values := make([]float64, 0, len(weekly))
		for _, ob := range weekly {
			values = append(values, float64(ob.Interest))
		}
		series = append(series, termSeries{term: term, values: values})

		snapshots, err := d.repos.Trends.ListByTerm(ctx, term.Id, core.GeoLevelState)
		if err != nil {
			return nil, err
		}
		regional = append(regional, snapshots)
	}

	var insights []*core.Insight
	for _, s := range series {
		insights = append(insights, d.detectSpikeDrop(s.term, s.values, now)...)
	}
	for _, s := range series {
		insights = append(insights, d.detectEmerging(s.term, s.values, now)...)
	}
	for i, s := range series {
		outliers, err := d.detectRegionalOutliers(ctx, s.term, regional[i], now)
		if err != nil {
			return nil, err
		}
		insights = append(insights, outliers...)
	}
	insights = append(insights, d.detectCorrelations(series, now)...)

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Severity.Tier() < insights[j].Severity.Tier()
	})

	d.logger.Info("anomaly detection complete",
		"terms", len(terms), "insights", len(insights))
	return insights, nil
}
