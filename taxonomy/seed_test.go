package taxonomy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supertruth/violet/core"
)

func TestSeedTerms(t *testing.T) {
	terms := SeedTerms()
	require.NotEmpty(t, terms)

	categories := make(map[string]bool)
	byId := make(map[core.ID]bool)
	for _, term := range terms {
		categories[term.Category] = true
		byId[core.TermID(term.Text)] = true
	}
	assert.Len(t, categories, 20)

	// Parent references resolve to other seed terms
	for _, term := range terms {
		if term.ParentId != 0 {
			assert.True(t, byId[term.ParentId],
				"parent of %q is not a seed term", term.Text)
		}
	}
}

func TestSeedTerms_Deterministic(t *testing.T) {
	first := SeedTerms()
	second := SeedTerms()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Text, second[i].Text)
	}
}

func TestSeed_Idempotent(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	created, err := Seed(ctx, repos.Terms)
	require.NoError(t, err)
	assert.Equal(t, len(SeedTerms()), created)

	again, err := Seed(ctx, repos.Terms)
	require.NoError(t, err)
	assert.Zero(t, again)
}
