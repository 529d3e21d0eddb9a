package taxonomy

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/supertruth/violet/core"
	"github.com/supertruth/violet/storage"
)

// DiscoveredSubcategory marks terms that entered the taxonomy through
// signal promotion rather than curation.
const DiscoveredSubcategory = "trends_discovered"

// Config holds promotion thresholds for taxonomy expansion.
type Config struct {
	// GrowthThreshold is the minimum extracted growth value (percent)
	// a rising signal needs to be considered.
	GrowthThreshold int

	// MinTermLength is the minimum query length worth promoting.
	MinTermLength int

	// MaxPromotions caps how many terms a single expansion can add.
	MaxPromotions int
}

// DefaultConfig returns the production expansion thresholds.
func DefaultConfig() Config {
	return Config{
		GrowthThreshold: 200,
		MinTermLength:   3,
		MaxPromotions:   50,
	}
}

// Expander promotes fast-growing related signals into first-class
// taxonomy terms.
type Expander struct {
	terms   storage.TermRepository
	signals storage.SignalRepository
	cfg     Config
	logger  *slog.Logger
}

// NewExpander creates an Expander over the given repositories.
func NewExpander(terms storage.TermRepository, signals storage.SignalRepository, cfg Config) (*Expander, error) {
	if terms == nil {
		return nil, ErrNilTermRepository
	}
	if signals == nil {
		return nil, ErrNilSignalRepository
	}

	return &Expander{
		terms:   terms,
		signals: signals,
		cfg:     cfg,
		logger:  slog.Default().With("component", "taxonomy-expander"),
	}, nil
}

// Expand promotes qualifying rising signals into new terms. A signal
// qualifies when its growth clears the threshold, its query is long
// enough, and no term with that text exists yet. The strongest signals
// win when more qualify than the promotion cap allows.
// Returns the newly created terms. Running twice is a no-op the second
// time: promoted signals are flagged and promoted queries become terms.
func (e *Expander) Expand(ctx context.Context) ([]*core.Term, error) {
	signals, err := e.signals.ListUnpromotedRising(ctx)
	if err != nil {
		return nil, err
	}

	var candidates []*core.RelatedSignal
	seen := make(map[string]bool)
	for _, signal := range signals {
		text := core.NormalizeTermText(signal.Query)
		if signal.ExtractedValue < e.cfg.GrowthThreshold {
			continue
		}
		if len(text) < e.cfg.MinTermLength {
			continue
		}
		if seen[text] {
			continue
		}

		_, err := e.terms.GetTermByText(ctx, text)
		if err == nil {
			continue
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}

		seen[text] = true
		candidates = append(candidates, signal)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ExtractedValue > candidates[j].ExtractedValue
	})
	if len(candidates) > e.cfg.MaxPromotions {
		candidates = candidates[:e.cfg.MaxPromotions]
	}

	var promoted []*core.Term
	for _, signal := range candidates {
		source, err := e.terms.GetTerm(ctx, signal.SourceTermId)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				e.logger.Warn("signal references missing source term",
					"signal", signal.Id, "term", signal.SourceTermId)
				continue
			}
			return nil, err
		}

		term := &core.Term{
			Text:        signal.Query,
			Category:    source.Category,
			Subcategory: DiscoveredSubcategory,
			ParentId:    source.Id,
		}
		created, err := e.terms.AddTerms(ctx, term)
		if err != nil {
			return nil, err
		}
		if len(created) == 0 {
			// Raced with another promotion of the same text
			continue
		}

		signal.Promoted = true
		signal.PromotedTermId = created[0].Id
		if err := e.signals.UpdateSignals(ctx, signal); err != nil {
			return nil, err
		}

		promoted = append(promoted, created[0])
		e.logger.Info("promoted signal to term",
			"query", strings.ToLower(signal.Query),
			"growth", signal.ExtractedValue,
			"category", source.Category)
	}

	e.logger.Info("taxonomy expansion complete",
		"candidates", len(candidates), "promoted", len(promoted))
	return promoted, nil
}
