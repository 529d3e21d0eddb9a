package trends

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supertruth/violet/core"
)

func TestParseSignalKind(t *testing.T) {
	tests := []struct {
		wire string
		want core.SignalKind
	}{
		{"rising_query", core.SignalRisingQuery},
		{"top_query", core.SignalTopQuery},
		{"rising_topic", core.SignalRisingTopic},
		{"top_topic", core.SignalTopTopic},
	}
	for _, tt := range tests {
		got, err := ParseSignalKind(tt.wire)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseSignalKind("breakout_query")
	assert.ErrorIs(t, err, ErrUnknownSignalKind)
}

func TestBuildObservations(t *testing.T) {
	term := &core.Term{Id: 42, Text: "neuroblastoma"}
	fetchedAt := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)

	signals := &TermSignals{
		Weekly: []TimePoint{
			{Date: monday.AddDate(0, 0, -7), Interest: 40},
			{Date: monday, Interest: 55},
		},
		Regional: []RegionPoint{
			{Code: "TX", Name: "Texas", Interest: 80},
		},
	}

	obs := buildObservations(term, signals, "US", fetchedAt)
	require.Len(t, obs, 3)

	weekly := obs[0]
	assert.Equal(t, core.ID(42), weekly.TermId)
	assert.Equal(t, core.GranularityWeekly, weekly.Granularity)
	assert.Equal(t, core.GeoLevelCountry, weekly.GeoLevel)
	assert.Equal(t, "US", weekly.GeoCode)
	assert.Equal(t, 40, weekly.Interest)

	regional := obs[2]
	assert.Equal(t, core.GranularitySnapshot, regional.Granularity)
	assert.Equal(t, core.GeoLevelState, regional.GeoLevel)
	assert.Equal(t, "US-TX", regional.GeoCode)
	assert.Equal(t, "Texas", regional.GeoName)
	assert.Equal(t, fetchedAt, regional.Date)
}

func TestBuildSignals(t *testing.T) {
	term := &core.Term{Id: 42, Text: "neuroblastoma"}
	discoveredAt := time.Now()

	signals, err := buildSignals(term, []RelatedItem{
		{Query: "neuroblastoma stage 4", Kind: "rising_query", Value: "Breakout", ExtractedValue: 5000},
		{Query: "Oncology", Kind: "top_topic", TopicType: "Medical field", Value: "100", ExtractedValue: 100},
	}, discoveredAt)
	require.NoError(t, err)
	require.Len(t, signals, 2)

	assert.Equal(t, core.SignalRisingQuery, signals[0].Kind)
	assert.Equal(t, 5000, signals[0].ExtractedValue)
	assert.Equal(t, core.ID(42), signals[0].SourceTermId)
	assert.False(t, signals[0].Promoted)
	assert.Equal(t, "Medical field", signals[1].TopicType)

	_, err = buildSignals(term, []RelatedItem{{Query: "x", Kind: "nope"}}, discoveredAt)
	assert.ErrorIs(t, err, ErrUnknownSignalKind)
}
