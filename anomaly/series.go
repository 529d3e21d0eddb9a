package anomaly

import (
	"fmt"
	"time"

	"github.com/supertruth/violet/core"
)

// detectSpikeDrop compares the latest weekly point against the baseline
// formed by the earlier points.
func (d *Detector) detectSpikeDrop(term *core.Term, values []float64, now time.Time) []*core.Insight {
	if len(values) < d.cfg.MinPoints {
		return nil
	}

	latest := values[len(values)-1]
	baseline := values[:len(values)-1]
	m := mean(baseline)
	sd := stdDev(baseline)
	if sd == 0 {
		return nil
	}

	z := (latest - m) / sd
	percent := 0.0
	if m > 0 {
		percent = (latest - m) / m * 100
	}

	if z >= d.cfg.SpikeZScore {
		severity := core.SeverityMedium
		if z > d.cfg.HighZScore {
			severity = core.SeverityHigh
		}
		return []*core.Insight{{
			Kind:     core.InsightSpike,
			Severity: severity,
			Title:    fmt.Sprintf("Spike detected: %s", term.Text),
			Description: fmt.Sprintf(
				"Search interest jumped %.0f%% above average. Current: %.0f, Baseline: %.0f",
				percent, latest, m),
			TermId:        term.Id,
			TermText:      term.Text,
			ClusterId:     term.ClusterId,
			MetricValue:   latest,
			BaselineValue: m,
			PercentChange: percent,
			DetectedAt:    now,
		}}
	}

	if z <= d.cfg.DropZScore {
		return []*core.Insight{{
			Kind:     core.InsightDrop,
			Severity: core.SeverityMedium,
			Title:    fmt.Sprintf("Drop detected: %s", term.Text),
			Description: fmt.Sprintf(
				"Search interest dropped %.0f%% below average. Current: %.0f, Baseline: %.0f",
				-percent, latest, m),
			TermId:        term.Id,
			TermText:      term.Text,
			ClusterId:     term.ClusterId,
			MetricValue:   latest,
			BaselineValue: m,
			PercentChange: percent,
			DetectedAt:    now,
		}}
	}

	return nil
}

// detectEmerging looks for sustained split-half growth over the trailing
// emerging window.
func (d *Detector) detectEmerging(term *core.Term, values []float64, now time.Time) []*core.Insight {
	window := values
	if len(window) > d.cfg.EmergingWeeks {
		window = window[len(window)-d.cfg.EmergingWeeks:]
	}
	if len(window) < d.cfg.MinEmergingPoints {
		return nil
	}

	half := len(window) / 2
	early := mean(window[:half])
	recent := mean(window[half:])
	if early <= 0 {
		return nil
	}

	growth := (recent - early) / early * 100
	if growth <= d.cfg.GrowthPercent {
		return nil
	}

	severity := core.SeverityMedium
	if growth > d.cfg.HighGrowthPercent {
		severity = core.SeverityHigh
	}
	return []*core.Insight{{
		Kind:     core.InsightEmerging,
		Severity: severity,
		Title:    fmt.Sprintf("Emerging topic: %s", term.Text),
		Description: fmt.Sprintf(
			"Consistent %.0f%% growth over recent weeks. Early avg: %.0f, Recent avg: %.0f",
			growth, early, recent),
		TermId:        term.Id,
		TermText:      term.Text,
		ClusterId:     term.ClusterId,
		MetricValue:   recent,
		BaselineValue: early,
		PercentChange: growth,
		DetectedAt:    now,
	}}
}
