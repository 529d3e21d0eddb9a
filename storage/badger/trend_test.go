package badger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supertruth/violet/core"
)

func weeklyObs(termID core.ID, date time.Time, interest int) *core.TrendObservation {
	return &core.TrendObservation{
		TermId:      termID,
		Date:        date,
		Granularity: core.GranularityWeekly,
		GeoCode:     "US",
		GeoName:     "United States",
		GeoLevel:    core.GeoLevelCountry,
		Interest:    interest,
	}
}

func TestTrendRepository_ListByTerm_DateOrdered(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	termID := core.TermID("leukemia")
	base := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	// Insert out of chronological order
	err := repos.Trends.AddObservations(ctx,
		weeklyObs(termID, base.AddDate(0, 0, 14), 60),
		weeklyObs(termID, base, 40),
		weeklyObs(termID, base.AddDate(0, 0, 7), 50),
	)
	require.NoError(t, err)

	obs, err := repos.Trends.ListByTerm(ctx, termID, core.GeoLevelCountry)
	require.NoError(t, err)
	require.Len(t, obs, 3)

	assert.Equal(t, 40, obs[0].Interest)
	assert.Equal(t, 50, obs[1].Interest)
	assert.Equal(t, 60, obs[2].Interest)
	for i := 0; i < len(obs)-1; i++ {
		assert.True(t, !obs[i].Date.After(obs[i+1].Date))
	}
}

func TestTrendRepository_ListByTerm_LevelIsolation(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	termID := core.TermID("lymphoma")
	date := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	state := weeklyObs(termID, date, 75)
	state.GeoCode = "US-TX"
	state.GeoName = "Texas"
	state.GeoLevel = core.GeoLevelState
	state.Granularity = core.GranularitySnapshot

	err := repos.Trends.AddObservations(ctx, weeklyObs(termID, date, 30), state)
	require.NoError(t, err)

	country, err := repos.Trends.ListByTerm(ctx, termID, core.GeoLevelCountry)
	require.NoError(t, err)
	require.Len(t, country, 1)
	assert.Equal(t, "US", country[0].GeoCode)

	states, err := repos.Trends.ListByTerm(ctx, termID, core.GeoLevelState)
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, "US-TX", states[0].GeoCode)
}

func TestTrendRepository_ListByTermSince(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	termID := core.TermID("glioma")
	base := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	var all []*core.TrendObservation
	for week := 0; week < 6; week++ {
		all = append(all, weeklyObs(termID, base.AddDate(0, 0, week*7), 40+week))
	}
	require.NoError(t, repos.Trends.AddObservations(ctx, all...))

	since := base.AddDate(0, 0, 21)
	recent, err := repos.Trends.ListByTermSince(ctx, termID, core.GeoLevelCountry, since)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, 43, recent[0].Interest)
}

func TestTrendRepository_ClearObservations(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	termID := core.TermID("sarcoma")
	date := time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repos.Trends.AddObservations(ctx, weeklyObs(termID, date, 20)))

	require.NoError(t, repos.Trends.ClearObservations(ctx))

	obs, err := repos.Trends.ListByTerm(ctx, termID, core.GeoLevelCountry)
	require.NoError(t, err)
	assert.Empty(t, obs)
}

func TestTrendRepository_AddObservations_Invalid(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	bad := weeklyObs(core.TermID("melanoma"), time.Now().UTC(), 150)
	err := repos.Trends.AddObservations(ctx, bad)
	assert.ErrorIs(t, err, core.ErrInterestOutOfRange)
}
