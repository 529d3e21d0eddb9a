package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supertruth/violet/core"
)

func TestSignalRepository_AddAndListBySourceTerm(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	termA := core.TermID("osteosarcoma")
	termB := core.TermID("retinoblastoma")

	err := repos.Signals.AddSignals(ctx,
		&core.RelatedSignal{SourceTermId: termA, Query: "osteosarcoma survival rate", Kind: core.SignalRisingQuery, Value: "+250%", ExtractedValue: 250},
		&core.RelatedSignal{SourceTermId: termA, Query: "osteosarcoma symptoms", Kind: core.SignalTopQuery, Value: "100", ExtractedValue: 100},
		&core.RelatedSignal{SourceTermId: termB, Query: "retinoblastoma genetics", Kind: core.SignalRisingTopic, Value: "Breakout", ExtractedValue: 5000},
	)
	require.NoError(t, err)

	forA, err := repos.Signals.ListBySourceTerm(ctx, termA)
	require.NoError(t, err)
	assert.Len(t, forA, 2)

	forB, err := repos.Signals.ListBySourceTerm(ctx, termB)
	require.NoError(t, err)
	require.Len(t, forB, 1)
	assert.Equal(t, "retinoblastoma genetics", forB[0].Query)
	assert.NotZero(t, forB[0].Id)
}

func TestSignalRepository_ListUnpromotedRising(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	termID := core.TermID("medulloblastoma")
	err := repos.Signals.AddSignals(ctx,
		&core.RelatedSignal{SourceTermId: termID, Query: "rising unpromoted", Kind: core.SignalRisingQuery, ExtractedValue: 300},
		&core.RelatedSignal{SourceTermId: termID, Query: "rising promoted", Kind: core.SignalRisingQuery, ExtractedValue: 400, Promoted: true},
		&core.RelatedSignal{SourceTermId: termID, Query: "top query", Kind: core.SignalTopQuery, ExtractedValue: 90},
	)
	require.NoError(t, err)

	rising, err := repos.Signals.ListUnpromotedRising(ctx)
	require.NoError(t, err)
	require.Len(t, rising, 1)
	assert.Equal(t, "rising unpromoted", rising[0].Query)
}

func TestSignalRepository_UpdateSignals_PromotionFlag(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	termID := core.TermID("ependymoma")
	require.NoError(t, repos.Signals.AddSignals(ctx,
		&core.RelatedSignal{SourceTermId: termID, Query: "ependymoma recurrence", Kind: core.SignalRisingQuery, ExtractedValue: 320}))

	signals, err := repos.Signals.ListBySourceTerm(ctx, termID)
	require.NoError(t, err)
	require.Len(t, signals, 1)

	signal := signals[0]
	signal.Promoted = true
	signal.PromotedTermId = core.TermID("ependymoma recurrence")
	require.NoError(t, repos.Signals.UpdateSignals(ctx, signal))

	rising, err := repos.Signals.ListUnpromotedRising(ctx)
	require.NoError(t, err)
	assert.Empty(t, rising)
}

func TestSignalRepository_ClearSignals(t *testing.T) {
	repos := newTestRepos(t)
	ctx := context.Background()

	termID := core.TermID("hepatoblastoma")
	require.NoError(t, repos.Signals.AddSignals(ctx,
		&core.RelatedSignal{SourceTermId: termID, Query: "hepatoblastoma staging", Kind: core.SignalTopTopic}))

	require.NoError(t, repos.Signals.ClearSignals(ctx))

	signals, err := repos.Signals.ListBySourceTerm(ctx, termID)
	require.NoError(t, err)
	assert.Empty(t, signals)
}
