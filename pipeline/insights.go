package pipeline

import (
	"context"

	"github.com/supertruth/violet/anomaly"
	"github.com/supertruth/violet/core"
)

// InsightFilter narrows the insight listing. Zero values match everything.
type InsightFilter struct {
	// Severity keeps only insights at this severity.
	Severity core.Severity

	// Kind keeps only insights of this anomaly family.
	Kind core.InsightKind

	// TermId keeps only insights anchored on this term.
	TermId core.ID

	// Limit caps the result count; 0 means no cap.
	Limit int
}

// Insights recomputes anomaly insights from the stored trend data,
// ordered most severe first. Nothing is persisted.
func (p *Pipeline) Insights(ctx context.Context, filter InsightFilter) ([]*core.Insight, error) {
	detector, err := anomaly.NewDetector(p.repos, p.anomalyCfg)
	if err != nil {
		return nil, err
	}

	insights, err := detector.Detect(ctx)
	if err != nil {
		return nil, err
	}

	filtered := insights[:0:0]
	for _, insight := range insights {
		if filter.Severity != "" && insight.Severity != filter.Severity {
			continue
		}
		if filter.Kind != "" && insight.Kind != filter.Kind {
			continue
		}
		if filter.TermId != 0 && insight.TermId != filter.TermId {
			continue
		}
		filtered = append(filtered, insight)
		if filter.Limit > 0 && len(filtered) >= filter.Limit {
			break
		}
	}
	return filtered, nil
}
