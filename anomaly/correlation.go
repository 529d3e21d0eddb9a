package anomaly

import (
	"fmt"
	"math"
	"time"

	"github.com/supertruth/violet/core"
)

// detectCorrelations scans term pairs in different categories for
// strongly correlated weekly series. Same-category pairs are expected to
// move together and are never flagged.
func (d *Detector) detectCorrelations(series []termSeries, now time.Time) []*core.Insight {
	var insights []*core.Insight
	for i := 0; i < len(series); i++ {
		for j := i + 1; j < len(series); j++ {
			a, b := series[i], series[j]
			if a.term.Category == b.term.Category {
				continue
			}

			// Align on the shared leading window
			n := len(a.values)
			if len(b.values) < n {
				n = len(b.values)
			}
			if n < d.cfg.MinSeriesPoints {
				continue
			}
			va := a.values[:n]
			vb := b.values[:n]

			r := pearson(va, vb)
			if math.Abs(r) <= d.cfg.CorrelationMin {
				continue
			}

			insights = append(insights, &core.Insight{
				Kind:     core.InsightCorrelation,
				Severity: core.SeverityLow,
				Title:    "Correlated trends detected",
				Description: fmt.Sprintf(
					"%q and %q show %.0f%% correlation across different categories",
					a.term.Text, b.term.Text, math.Abs(r)*100),
				TermId:      a.term.Id,
				TermText:    a.term.Text,
				MetricValue: r,
				DetectedAt:  now,
			})
		}
	}
	return insights
}
