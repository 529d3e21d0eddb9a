package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supertruth/violet/ai/mock"
	"github.com/supertruth/violet/core"
	"github.com/supertruth/violet/geo"
	"github.com/supertruth/violet/questions"
	"github.com/supertruth/violet/storage"
	"github.com/supertruth/violet/storage/badger"
	"github.com/supertruth/violet/trends"
)

func newTestPipeline(t *testing.T, embedder *mock.MockEmbedder) (*Pipeline, *storage.Repositories) {
	repos, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		repos.Close()
		backend.Close()
	})

	p, err := New(repos, embedder,
		trends.NewStubFetcher(),
		questions.NewStubFetcher(),
		geo.NewStaticOverlayLoader())
	require.NoError(t, err)
	t.Cleanup(func() { p.Close() })
	return p, repos
}

func TestPipeline_RunEndToEnd(t *testing.T) {
	p, repos := newTestPipeline(t, mock.NewMockEmbedder())
	ctx := context.Background()

	run, err := p.Run(ctx, core.RunConfig{
		FetchTrends:    true,
		FetchHourly:    true,
		FetchQuestions: true,
		Timeframe:      "today 3-m",
		Geo:            "US",
	})
	require.NoError(t, err)

	assert.Equal(t, core.RunCompleted, run.Status)
	assert.False(t, run.CompletedAt.IsZero())
	assert.Empty(t, run.Errors)
	assert.Greater(t, run.RecordsProcessed, 0)

	// Every term ends up embedded with coordinates
	terms, err := repos.Terms.ListTerms(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, terms)
	for _, term := range terms {
		assert.True(t, term.Embedded(), "term %q has no vector", term.Text)
		assert.Len(t, term.Coords, 3, "term %q has no coordinates", term.Text)
	}

	// Clusters were fitted and named
	clusters, err := repos.Clusters.ListClusters(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, clusters)
	for _, c := range clusters {
		assert.NotEmpty(t, c.Name)
		assert.Greater(t, c.TermCount, 0)
		assert.Len(t, c.Centroid, 3)
	}

	// Trend data landed for the seeded terms
	weekly, err := repos.Trends.ListByTerm(ctx, terms[0].Id, core.GeoLevelCountry)
	require.NoError(t, err)
	assert.NotEmpty(t, weekly)

	// Hourly and question stages ran
	_, err = repos.Hourly.GetPattern(ctx, terms[0].Id)
	assert.NoError(t, err)
	stored, err := repos.Questions.ListByTerm(ctx, terms[0].Id)
	require.NoError(t, err)
	assert.NotEmpty(t, stored)
}

func TestPipeline_RunSkipsOptionalStages(t *testing.T) {
	p, repos := newTestPipeline(t, mock.NewMockEmbedder())
	ctx := context.Background()

	run, err := p.Run(ctx, core.RunConfig{})
	require.NoError(t, err)
	assert.Equal(t, core.RunCompleted, run.Status)

	terms, err := repos.Terms.ListTerms(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, terms)

	weekly, err := repos.Trends.ListByTerm(ctx, terms[0].Id, core.GeoLevelCountry)
	require.NoError(t, err)
	assert.Empty(t, weekly)

	_, err = repos.Hourly.GetPattern(ctx, terms[0].Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPipeline_EmbeddingFailureFailsRun(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, errors.New("model unavailable")
	}
	p, _ := newTestPipeline(t, embedder)

	run, err := p.Run(context.Background(), core.RunConfig{})
	require.NoError(t, err)

	assert.Equal(t, core.RunFailed, run.Status)
	assert.False(t, run.CompletedAt.IsZero())
	require.NotEmpty(t, run.Errors)
	assert.Contains(t, run.Errors[0], "failed")
}

func TestPipeline_StartRunAsync(t *testing.T) {
	p, _ := newTestPipeline(t, mock.NewMockEmbedder())
	ctx := context.Background()

	run, err := p.StartRun(ctx, core.RunConfig{})
	require.NoError(t, err)
	require.NotZero(t, run.Id)
	assert.NotEmpty(t, run.Handle)

	deadline := time.After(30 * time.Second)
	for {
		current, err := p.RunStatus(ctx, run.Id)
		require.NoError(t, err)
		if current.Status.Terminal() {
			assert.Equal(t, core.RunCompleted, current.Status)
			break
		}
		select {
		case <-deadline:
			t.Fatalf("run %d did not finish, status %s", run.Id, current.Status)
		case <-time.After(100 * time.Millisecond):
		}
	}
}

func TestPipeline_Insights(t *testing.T) {
	p, repos := newTestPipeline(t, mock.NewMockEmbedder())
	ctx := context.Background()

	created, err := repos.Terms.AddTerms(ctx,
		&core.Term{Text: "neuroblastoma", Category: "pediatric_oncology"})
	require.NoError(t, err)
	term := created[0]

	now := time.Now().Truncate(24 * time.Hour)
	interests := []int{35, 45, 35, 45, 35, 45, 35, 45, 60}
	obs := make([]*core.TrendObservation, 0, len(interests))
	for i, interest := range interests {
		obs = append(obs, &core.TrendObservation{
			TermId:      term.Id,
			Date:        now.AddDate(0, 0, -7*(len(interests)-1-i)),
			Granularity: core.GranularityWeekly,
			GeoCode:     "US",
			GeoName:     "US",
			GeoLevel:    core.GeoLevelCountry,
			Interest:    interest,
		})
	}
	require.NoError(t, repos.Trends.AddObservations(ctx, obs...))

	insights, err := p.Insights(ctx, InsightFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, insights)
	assert.Equal(t, core.InsightSpike, insights[0].Kind)

	none, err := p.Insights(ctx, InsightFilter{Kind: core.InsightDrop})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPipeline_InvalidRunConfig(t *testing.T) {
	p, _ := newTestPipeline(t, mock.NewMockEmbedder())

	_, err := p.StartRun(context.Background(), core.RunConfig{Geo: "us-TX"})
	assert.ErrorIs(t, err, ErrInvalidRunConfig)

	_, err = p.Run(context.Background(), core.RunConfig{Geo: "usa"})
	assert.ErrorIs(t, err, ErrInvalidRunConfig)
}

func TestNew_NilDependencies(t *testing.T) {
	repos, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		repos.Close()
		backend.Close()
	})

	_, err = New(nil, mock.NewMockEmbedder(), trends.NewStubFetcher(),
		questions.NewStubFetcher(), geo.NewStaticOverlayLoader())
	assert.ErrorIs(t, err, ErrNilRepositories)

	_, err = New(repos, nil, trends.NewStubFetcher(),
		questions.NewStubFetcher(), geo.NewStaticOverlayLoader())
	assert.ErrorIs(t, err, ErrNilEmbedder)

	_, err = New(repos, mock.NewMockEmbedder(), nil,
		questions.NewStubFetcher(), geo.NewStaticOverlayLoader())
	assert.ErrorIs(t, err, ErrNilFetcher)
}
