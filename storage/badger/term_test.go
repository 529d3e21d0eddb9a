package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supertruth/violet/core"
	"github.com/supertruth/violet/storage"
)

func newTestRepos(t *testing.T) *storage.Repositories {
	t.Helper()
	repos, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		repos.Close()
		backend.Close()
	})
	return repos
}

func TestTermRepository_AddTerms(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	created, err := repos.Terms.AddTerms(ctx,
		&core.Term{Text: "Neuroblastoma", Category: "pediatric_oncology"},
		&core.Term{Text: "wilms tumor", Category: "pediatric_oncology"},
	)
	require.NoError(t, err)
	require.Len(t, created, 2)

	// Text is normalized and the ID derives from it
	assert.Equal(t, "neuroblastoma", created[0].Text)
	assert.Equal(t, core.TermID("neuroblastoma"), created[0].Id)
	assert.False(t, created[0].CreatedAt.IsZero())
}

func TestTermRepository_AddTerms_Idempotent(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	first, err := repos.Terms.AddTerms(ctx,
		&core.Term{Text: "gene therapy", Category: "treatment"})
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Same text (modulo case) must not create a second record
	second, err := repos.Terms.AddTerms(ctx,
		&core.Term{Text: "Gene Therapy", Category: "treatment"})
	require.NoError(t, err)
	assert.Empty(t, second)

	all, err := repos.Terms.ListTerms(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestTermRepository_AddTerms_Invalid(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	_, err := repos.Terms.AddTerms(ctx, &core.Term{Text: "  ", Category: "symptoms"})
	assert.ErrorIs(t, err, core.ErrEmptyTermText)

	_, err = repos.Terms.AddTerms(ctx, &core.Term{Text: "fatigue", Category: ""})
	assert.ErrorIs(t, err, core.ErrEmptyCategory)
}

func TestTermRepository_GetTermByText(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	_, err := repos.Terms.AddTerms(ctx,
		&core.Term{Text: "car t cell therapy", Category: "treatment"})
	require.NoError(t, err)

	term, err := repos.Terms.GetTermByText(ctx, "CAR T Cell Therapy")
	require.NoError(t, err)
	assert.Equal(t, "car t cell therapy", term.Text)

	_, err = repos.Terms.GetTermByText(ctx, "unknown term")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestTermRepository_UpdateTerms(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	created, err := repos.Terms.AddTerms(ctx,
		&core.Term{Text: "immunotherapy", Category: "treatment"})
	require.NoError(t, err)
	require.Len(t, created, 1)

	term := created[0]
	term.Vector = []float32{0.5, 0.5}
	term.ClusterId = core.ID(2)

	_, err = repos.Terms.UpdateTerms(ctx, term)
	require.NoError(t, err)

	stored, err := repos.Terms.GetTerm(ctx, term.Id)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 0.5}, stored.Vector)
	assert.Equal(t, core.ID(2), stored.ClusterId)
	assert.True(t, stored.UpdatedAt.After(stored.CreatedAt) || stored.UpdatedAt.Equal(stored.CreatedAt))
}

func TestTermRepository_UpdateTerms_NotFound(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	_, err := repos.Terms.UpdateTerms(ctx,
		&core.Term{Id: core.ID(12345), Text: "ghost", Category: "symptoms"})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestTermRepository_EmbeddedPartition(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	created, err := repos.Terms.AddTerms(ctx,
		&core.Term{Text: "proton therapy", Category: "treatment", Vector: []float32{0.1, 0.9}},
		&core.Term{Text: "clinical trial enrollment", Category: "clinical_trials"},
		&core.Term{Text: "tumor board", Category: "diagnosis"},
	)
	require.NoError(t, err)
	require.Len(t, created, 3)

	embedded, err := repos.Terms.ListEmbeddedTerms(ctx)
	require.NoError(t, err)
	require.Len(t, embedded, 1)
	assert.Equal(t, "proton therapy", embedded[0].Text)

	unembedded, err := repos.Terms.ListUnembeddedTerms(ctx)
	require.NoError(t, err)
	assert.Len(t, unembedded, 2)
}
