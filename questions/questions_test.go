package questions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supertruth/violet/core"
	"github.com/supertruth/violet/storage"
	"github.com/supertruth/violet/storage/badger"
)

func newTestRepos(t *testing.T) *storage.Repositories {
	repos, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		repos.Close()
		backend.Close()
	})
	return repos
}

type failingFetcher struct {
	failText string
}

func (f *failingFetcher) FetchQuestions(ctx context.Context, term *core.Term) ([]Item, error) {
	if term.Text == f.failText {
		return nil, errors.New("upstream unavailable")
	}
	return NewStubFetcher().FetchQuestions(ctx, term)
}

func TestLoader_Refresh(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	created, err := repos.Terms.AddTerms(ctx,
		&core.Term{Text: "neuroblastoma", Category: "pediatric_oncology"})
	require.NoError(t, err)
	term := created[0]

	loader, err := NewLoader(NewStubFetcher(), repos.Questions)
	require.NoError(t, err)

	refreshed, err := loader.Refresh(ctx, []*core.Term{term})
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed)

	stored, err := repos.Questions.ListByTerm(ctx, term.Id)
	require.NoError(t, err)
	require.Len(t, stored, 3)

	// Rank follows fetch order and the source term is recorded
	assert.Equal(t, 0, stored[0].Rank)
	assert.Equal(t, term.Id, stored[0].SourceTermId)
	assert.Contains(t, stored[0].Question, "neuroblastoma")
	assert.Equal(t, core.QuestionAutocomplete, stored[2].SourceKind)

	// A second refresh replaces rather than appends
	refreshed, err = loader.Refresh(ctx, []*core.Term{term})
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed)

	stored, err = repos.Questions.ListByTerm(ctx, term.Id)
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestLoader_RefreshSkipsFailedTerm(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	created, err := repos.Terms.AddTerms(ctx,
		&core.Term{Text: "neuroblastoma", Category: "pediatric_oncology"},
		&core.Term{Text: "wilms tumor", Category: "pediatric_oncology"},
	)
	require.NoError(t, err)

	loader, err := NewLoader(&failingFetcher{failText: "wilms tumor"}, repos.Questions)
	require.NoError(t, err)

	refreshed, err := loader.Refresh(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed)
}

func TestNewLoader_NilArguments(t *testing.T) {
	repos := newTestRepos(t)

	_, err := NewLoader(nil, repos.Questions)
	assert.ErrorIs(t, err, ErrNilFetcher)

	_, err = NewLoader(NewStubFetcher(), nil)
	assert.ErrorIs(t, err, ErrNilRepository)
}
