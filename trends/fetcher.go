package trends

import (
	"context"
	"time"

	"github.com/supertruth/violet/core"
)

// TimePoint is one dated interest measurement from an interest-over-time
// series.
type TimePoint struct {
	Date     time.Time
	Interest int // 0-100
}

// RegionPoint is one subdivision's interest from an interest-by-region
// breakdown. Code is the bare subdivision code, e.g. "TX".
type RegionPoint struct {
	Code     string
	Name     string
	Interest int // 0-100
}

// RelatedItem is one related query or topic surfaced for a term. Kind is
// the wire name: rising_query, top_query, rising_topic or top_topic.
type RelatedItem struct {
	Query          string
	Kind           string
	TopicType      string
	Value          string // raw display value, e.g. "Breakout" or "+450%"
	ExtractedValue int
}

// TermSignals bundles everything a single fetch surfaces for one term.
type TermSignals struct {
	Weekly   []TimePoint
	Regional []RegionPoint
	Related  []RelatedItem
}

// HourlyPoint is one hour-resolution interest measurement.
type HourlyPoint struct {
	Time     time.Time
	Interest int // 0-100
}

// FetchOptions scope a fetch to a timeframe and country.
type FetchOptions struct {
	// Timeframe in the upstream's notation, e.g. "today 3-m".
	Timeframe string

	// Geo is the country code, e.g. "US".
	Geo string
}

// Fetcher retrieves search interest data for a term from an upstream
// source. Implementations are expected to rate-limit themselves.
type Fetcher interface {
	// FetchSignals retrieves the weekly series, regional breakdown and
	// related queries/topics for a term.
	FetchSignals(ctx context.Context, term *core.Term, opts FetchOptions) (*TermSignals, error)

	// FetchHourly retrieves an hour-resolution interest series for a term,
	// typically covering the trailing seven days.
	FetchHourly(ctx context.Context, term *core.Term, opts FetchOptions) ([]HourlyPoint, error)
}
