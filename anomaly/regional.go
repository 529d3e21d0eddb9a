package anomaly

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/supertruth/violet/core"
	"github.com/supertruth/violet/storage"
)

// geoInterest is one geography's mean interest over a term's snapshots.
type geoInterest struct {
	name  string
	sum   float64
	count int
}

func (g *geoInterest) mean() float64 {
	return g.sum / float64(g.count)
}

// detectRegionalOutliers flags regions whose mean interest stands far
// above the term's regional average. Regions with a high vulnerability
// index are called out in the description.
func (d *Detector) detectRegionalOutliers(ctx context.Context, term *core.Term, snapshots []*core.TrendObservation, now time.Time) ([]*core.Insight, error) {
	// Mean interest per geography across all of the term's snapshots
	byGeo := make(map[string]*geoInterest)
	for _, ob := range snapshots {
		g, ok := byGeo[ob.GeoCode]
		if !ok {
			g = &geoInterest{name: ob.GeoName}
			byGeo[ob.GeoCode] = g
		}
		g.sum += float64(ob.Interest)
		g.count++
	}
	if len(byGeo) < d.cfg.MinRegions {
		return nil, nil
	}

	var insights []*core.Insight
	for code, g := range byGeo {
		value := g.mean()

		// Baseline excludes the candidate so one hotspot cannot mask itself
		others := make([]float64, 0, len(byGeo)-1)
		for otherCode, other := range byGeo {
			if otherCode == code {
				continue
			}
			others = append(others, other.mean())
		}
		m := mean(others)
		sd := stdDev(others)
		if sd == 0 {
			continue
		}
		z := (value - m) / sd
		if z <= d.cfg.RegionalZScore {
			continue
		}

		description := fmt.Sprintf(
			"Interest score %.0f against a regional average of %.0f",
			value, m)

		region, err := d.repos.Regions.GetRegion(ctx, code)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		if region != nil && region.Vulnerability > d.cfg.VulnerabilityThreshold {
			description += " (high vulnerability area)"
		}

		geoName := g.name
		if geoName == "" {
			geoName = code
		}

		percent := 0.0
		if m > 0 {
			percent = (value - m) / m * 100
		}
		insights = append(insights, &core.Insight{
			Kind:          core.InsightRegionalOutlier,
			Severity:      core.SeverityMedium,
			Title:         fmt.Sprintf("High regional interest: %s in %s", term.Text, geoName),
			Description:   description,
			TermId:        term.Id,
			TermText:      term.Text,
			ClusterId:     term.ClusterId,
			GeoCode:       code,
			MetricValue:   value,
			BaselineValue: m,
			PercentChange: percent,
			DetectedAt:    now,
		})
	}
	return insights, nil
}
