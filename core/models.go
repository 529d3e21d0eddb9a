package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// NormalizeTermText canonicalizes a term phrase for identity and dedup checks.
func NormalizeTermText(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// TermID derives the content-based ID for a term phrase.
// Seeding and promotion both use this, which makes inserts idempotent.
func TermID(text string) ID {
	return IDFromContent(NormalizeTermText(text))
}

// GeoLevel identifies the geographic resolution of an observation or region.
type GeoLevel int

const (
	// GeoLevelCountry represents country-level data.
	GeoLevelCountry GeoLevel = iota + 1
	// GeoLevelState represents state/subdivision-level data.
	GeoLevelState
)

// Granularity identifies the temporal resolution of a trend observation.
type Granularity int

const (
	// GranularityWeekly represents one point per week over a timeframe.
	GranularityWeekly Granularity = iota + 1
	// GranularitySnapshot represents a single point-in-time measurement.
	GranularitySnapshot
)

// SignalKind identifies the variant of a related signal.
type SignalKind int

const (
	// SignalRisingQuery is a related query with rising interest.
	SignalRisingQuery SignalKind = iota + 1
	// SignalTopQuery is a consistently popular related query.
	SignalTopQuery
	// SignalRisingTopic is a related topic with rising interest.
	SignalRisingTopic
	// SignalTopTopic is a consistently popular related topic.
	SignalTopTopic
)

// String returns the wire name of the signal kind.
func (k SignalKind) String() string {
	switch k {
	case SignalRisingQuery:
		return "rising_query"
	case SignalTopQuery:
		return "top_query"
	case SignalRisingTopic:
		return "rising_topic"
	case SignalTopTopic:
		return "top_topic"
	default:
		return "unknown"
	}
}

// Rising reports whether the signal kind carries a growth metric.
// Only rising signals are candidates for taxonomy promotion.
func (k SignalKind) Rising() bool {
	return k == SignalRisingQuery || k == SignalRisingTopic
}

// QuestionSource identifies where a human-phrased question was surfaced.
type QuestionSource int

const (
	// QuestionPeopleAlsoAsk comes from a "people also ask" result block.
	QuestionPeopleAlsoAsk QuestionSource = iota + 1
	// QuestionAutocomplete comes from search autocomplete suggestions.
	QuestionAutocomplete
)

// String returns the wire name of the question source.
func (s QuestionSource) String() string {
	switch s {
	case QuestionPeopleAlsoAsk:
		return "people_also_ask"
	case QuestionAutocomplete:
		return "autocomplete"
	default:
		return "unknown"
	}
}

// RunStatus is the lifecycle state of a pipeline run.
// Transitions are forward-only: queued -> running -> {completed, failed}.
type RunStatus int

const (
	// RunQueued means the run is accepted but not yet executing.
	RunQueued RunStatus = iota + 1
	// RunRunning means the run is executing stages.
	RunRunning
	// RunCompleted means every stage finished without a fatal error.
	RunCompleted
	// RunFailed means a run-fatal stage error occurred.
	RunFailed
)

// String returns the wire name of the run status.
func (s RunStatus) String() string {
	switch s {
	case RunQueued:
		return "queued"
	case RunRunning:
		return "running"
	case RunCompleted:
		return "completed"
	case RunFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status is final and immutable.
func (s RunStatus) Terminal() bool {
	return s == RunCompleted || s == RunFailed
}

// CanTransitionTo reports whether the forward-only state machine permits
// moving from s to next.
func (s RunStatus) CanTransitionTo(next RunStatus) bool {
	switch s {
	case RunQueued:
		return next == RunRunning || next == RunFailed
	case RunRunning:
		return next == RunCompleted || next == RunFailed
	default:
		return false
	}
}

// Term is a canonical tracked search phrase. Terms are created by seeding or
// by taxonomy promotion and are never deleted; the embedding and clustering
// stages enrich them in place.
type Term struct {
	Id          ID
	Text        string
	Category    string
	Subcategory string
	ParentId    ID // 0 = no parent
	Vector      []float32 // nil until embedded
	Coords      []float64 // nil until placed, then length 3
	ClusterId   ID        // 0 = unassigned or density noise
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Embedded reports whether the term has an embedding vector.
func (t *Term) Embedded() bool {
	return len(t.Vector) > 0
}

// Cluster is a density-based group of terms. Clusters are wholesale-replaced
// on each full refit; identity is not stable across runs.
type Cluster struct {
	Id         ID
	Name       string
	Centroid   []float64 // length 3, mean of member coordinates
	MeanVector []float32 // mean of member embeddings
	TermCount  int
}

// TrendObservation is one time/geo-stamped interest measurement for a term.
// Written by the fetch stage, read-only to the anomaly detector.
type TrendObservation struct {
	Id          ID
	TermId      ID
	Date        time.Time
	Granularity Granularity
	GeoCode     string
	GeoName     string
	GeoLevel    GeoLevel
	Interest    int // bounded 0-100
	FetchedAt   time.Time
}

// RelatedSignal is a candidate term or topic surfaced alongside a tracked
// term. Rising signals above the growth threshold may be promoted into
// first-class terms; the Promoted flag guarantees at-most-once promotion.
type RelatedSignal struct {
	Id             ID
	SourceTermId   ID
	Query          string
	Kind           SignalKind
	TopicType      string // only set for topic kinds
	Value          string // raw display value, e.g. "Breakout" or "+450%"
	ExtractedValue int
	Promoted       bool
	PromotedTermId ID
	DiscoveredAt   time.Time
}

// InsightKind identifies the anomaly family an insight belongs to.
type InsightKind string

const (
	InsightSpike           InsightKind = "spike"
	InsightDrop            InsightKind = "drop"
	InsightEmerging        InsightKind = "emerging"
	InsightRegionalOutlier InsightKind = "regional_outlier"
	InsightCorrelation     InsightKind = "correlation"
)

// Severity ranks how actionable an insight is.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Tier returns the sort rank of the severity, lower is more severe.
func (s Severity) Tier() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	default:
		return 2
	}
}

// Insight is an ephemeral anomaly record. Insights are recomputed from
// persisted trend data on demand and are never stored.
type Insight struct {
	Kind          InsightKind
	Severity      Severity
	Title         string
	Description   string
	TermId        ID
	TermText      string
	ClusterId     ID
	GeoCode       string
	MetricValue   float64
	BaselineValue float64
	PercentChange float64
	DetectedAt    time.Time
}

// RunConfig holds the options a pipeline run was started with.
type RunConfig struct {
	FetchTrends    bool
	FetchHourly    bool
	FetchQuestions bool
	Timeframe      string
	Geo            string
}

// PipelineRun records one orchestrated pipeline execution.
type PipelineRun struct {
	Id               ID
	Handle           string // external UUID handle
	Name             string
	Status           RunStatus
	Config           RunConfig
	StartedAt        time.Time
	CompletedAt      time.Time // zero until terminal
	RecordsProcessed int
	Errors           []string
}

// HourlyPattern aggregates a term's hour-of-day search behavior.
// AnxietyIndex is the ratio of late-night to daytime interest; values above
// 1.0 mean more searching happens at night.
type HourlyPattern struct {
	Id           ID // equals TermId, one pattern per term
	TermId       ID
	HourlyAvg    []float64 // length 24, indexed by hour of day
	DayOfWeekAvg []float64 // length 7, indexed Monday=0
	PeakHours    []int     // top 3 hours by average interest
	LateNightAvg float64
	DaytimeAvg   float64
	AnxietyIndex float64
	FetchedAt    time.Time
}

// TermQuestion is a literal human-phrased question surfaced for a term.
type TermQuestion struct {
	Id           ID
	SourceTermId ID
	Question     string
	Snippet      string
	SourceTitle  string
	SourceURL    string
	SourceKind   QuestionSource
	Rank         int
	FetchedAt    time.Time
}

// Region is geographic reference data with a social-vulnerability overlay.
type Region struct {
	Id            ID // content-based, derived from GeoCode
	GeoCode       string
	Name          string
	Level         GeoLevel
	Latitude      float64
	Longitude     float64
	Population    int
	Vulnerability float64 // SVI 0-1, 0 = unknown
	UninsuredRate float64
	UpdatedAt     time.Time
}

// RegionID derives the content-based ID for a geo code.
func RegionID(geoCode string) ID {
	return IDFromContent(geoCode)
}
