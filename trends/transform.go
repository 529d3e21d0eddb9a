package trends

import (
	"fmt"
	"time"

	"github.com/supertruth/violet/core"
)

// ParseSignalKind maps a wire kind name to its SignalKind.
func ParseSignalKind(name string) (core.SignalKind, error) {
	switch name {
	case "rising_query":
		return core.SignalRisingQuery, nil
	case "top_query":
		return core.SignalTopQuery, nil
	case "rising_topic":
		return core.SignalRisingTopic, nil
	case "top_topic":
		return core.SignalTopTopic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSignalKind, name)
	}
}

// buildObservations converts fetched series into storable observations.
// Weekly points become country-level weekly observations; regional points
// become state-level snapshots stamped with the fetch time.
func buildObservations(term *core.Term, signals *TermSignals, geo string, fetchedAt time.Time) []*core.TrendObservation {
	obs := make([]*core.TrendObservation, 0, len(signals.Weekly)+len(signals.Regional))

	for _, point := range signals.Weekly {
		obs = append(obs, &core.TrendObservation{
			TermId:      term.Id,
			Date:        point.Date,
			Granularity: core.GranularityWeekly,
			GeoCode:     geo,
			GeoName:     geo,
			GeoLevel:    core.GeoLevelCountry,
			Interest:    point.Interest,
			FetchedAt:   fetchedAt,
		})
	}

	for _, point := range signals.Regional {
		obs = append(obs, &core.TrendObservation{
			TermId:      term.Id,
			Date:        fetchedAt,
			Granularity: core.GranularitySnapshot,
			GeoCode:     geo + "-" + point.Code,
			GeoName:     point.Name,
			GeoLevel:    core.GeoLevelState,
			Interest:    point.Interest,
			FetchedAt:   fetchedAt,
		})
	}

	return obs
}

// buildSignals converts fetched related items into storable signals.
// Items with unknown kinds produce an error rather than silent loss.
func buildSignals(term *core.Term, related []RelatedItem, discoveredAt time.Time) ([]*core.RelatedSignal, error) {
	signals := make([]*core.RelatedSignal, 0, len(related))
	for _, item := range related {
		kind, err := ParseSignalKind(item.Kind)
		if err != nil {
			return nil, err
		}
		signals = append(signals, &core.RelatedSignal{
			SourceTermId:   term.Id,
			Query:          item.Query,
			Kind:           kind,
			TopicType:      item.TopicType,
			Value:          item.Value,
			ExtractedValue: item.ExtractedValue,
			DiscoveredAt:   discoveredAt,
		})
	}
	return signals, nil
}
