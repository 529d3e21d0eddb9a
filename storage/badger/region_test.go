package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supertruth/violet/core"
	"github.com/supertruth/violet/storage"
)

func TestRegionRepository_Upsert(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	err := repos.Regions.UpsertRegions(ctx, &core.Region{
		GeoCode:   "US-NM",
		Name:      "New Mexico",
		Level:     core.GeoLevelState,
		Latitude:  34.5199,
		Longitude: -105.8701,
	})
	require.NoError(t, err)

	// Second upsert overwrites in place
	err = repos.Regions.UpsertRegions(ctx, &core.Region{
		GeoCode:       "US-NM",
		Name:          "New Mexico",
		Level:         core.GeoLevelState,
		Latitude:      34.5199,
		Longitude:     -105.8701,
		Vulnerability: 0.87,
		UninsuredRate: 0.12,
	})
	require.NoError(t, err)

	region, err := repos.Regions.GetRegion(ctx, "US-NM")
	require.NoError(t, err)
	assert.Equal(t, 0.87, region.Vulnerability)
	assert.Equal(t, core.RegionID("US-NM"), region.Id)

	all, err := repos.Regions.ListRegions(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRegionRepository_GetRegion_NotFound(t *testing.T) {
	repos := newTestRepos(t)

	_, err := repos.Regions.GetRegion(context.Background(), "US-ZZ")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestHourlyRepository_Upsert(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	termID := core.TermID("chemotherapy side effects")
	pattern := &core.HourlyPattern{
		TermId:       termID,
		HourlyAvg:    make([]float64, 24),
		DayOfWeekAvg: make([]float64, 7),
		PeakHours:    []int{2, 3, 23},
		LateNightAvg: 70,
		DaytimeAvg:   30,
		AnxietyIndex: 2.33,
	}
	require.NoError(t, repos.Hourly.UpsertPattern(ctx, pattern))

	stored, err := repos.Hourly.GetPattern(ctx, termID)
	require.NoError(t, err)
	assert.Equal(t, termID, stored.Id)
	assert.Equal(t, []int{2, 3, 23}, stored.PeakHours)

	// Replace with fresh numbers
	pattern.AnxietyIndex = 1.1
	require.NoError(t, repos.Hourly.UpsertPattern(ctx, pattern))

	stored, err = repos.Hourly.GetPattern(ctx, termID)
	require.NoError(t, err)
	assert.Equal(t, 1.1, stored.AnxietyIndex)
}

func TestQuestionRepository_ReplaceAndList(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	termID := core.TermID("neuroblastoma")
	err := repos.Questions.ReplaceTermQuestions(ctx, termID,
		&core.TermQuestion{Question: "what is neuroblastoma", SourceKind: core.QuestionPeopleAlsoAsk, Rank: 2},
		&core.TermQuestion{Question: "is neuroblastoma curable", SourceKind: core.QuestionPeopleAlsoAsk, Rank: 1},
	)
	require.NoError(t, err)

	questions, err := repos.Questions.ListByTerm(ctx, termID)
	require.NoError(t, err)
	require.Len(t, questions, 2)

	// Rank order, not insertion order
	assert.Equal(t, "is neuroblastoma curable", questions[0].Question)
	assert.Equal(t, "what is neuroblastoma", questions[1].Question)

	// A refresh replaces the previous set entirely
	err = repos.Questions.ReplaceTermQuestions(ctx, termID,
		&core.TermQuestion{Question: "neuroblastoma stage 4 survival rate", SourceKind: core.QuestionAutocomplete, Rank: 1},
	)
	require.NoError(t, err)

	questions, err = repos.Questions.ListByTerm(ctx, termID)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "neuroblastoma stage 4 survival rate", questions[0].Question)
}
