// Copyright 2025 Supertruth Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package pipeline orchestrates the full refresh cycle: seeding, embedding,
// clustering, trend loading, taxonomy expansion, hourly and question
// loading, and the vulnerability overlay. Runs execute one at a time and
// their lifecycle is recorded as PipelineRun rows.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"github.com/supertruth/violet/ai"
	"github.com/supertruth/violet/anomaly"
	"github.com/supertruth/violet/cluster"
	"github.com/supertruth/violet/core"
	"github.com/supertruth/violet/geo"
	"github.com/supertruth/violet/questions"
	"github.com/supertruth/violet/storage"
	"github.com/supertruth/violet/taxonomy"
	"github.com/supertruth/violet/trends"
)

// runName is the name recorded on every orchestrated run.
const runName = "full_pipeline"

// Pipeline wires the stages together over shared storage. One run
// executes at a time; StartRun queues behind any run in flight.
type Pipeline struct {
	repos           *storage.Repositories
	embedder        ai.Embedder
	fetcher         trends.Fetcher
	questionFetcher questions.Fetcher
	overlayLoader   geo.OverlayLoader

	clusterCfg   cluster.Config
	expansionCfg taxonomy.Config
	anomalyCfg   anomaly.Config

	pool   *ants.Pool
	logger *slog.Logger
}

// Option is a functional option for configuring a Pipeline.
type Option func(*Pipeline)

// WithClusterConfig overrides the clustering parameters.
func WithClusterConfig(cfg cluster.Config) Option {
	return func(p *Pipeline) {
		p.clusterCfg = cfg
	}
}

// WithExpansionConfig overrides the taxonomy expansion thresholds.
func WithExpansionConfig(cfg taxonomy.Config) Option {
	return func(p *Pipeline) {
		p.expansionCfg = cfg
	}
}

// WithAnomalyConfig overrides the anomaly detection thresholds.
func WithAnomalyConfig(cfg anomaly.Config) Option {
	return func(p *Pipeline) {
		p.anomalyCfg = cfg
	}
}

// WithLogger sets the pipeline logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a Pipeline. All dependencies are required.
func New(repos *storage.Repositories, embedder ai.Embedder, fetcher trends.Fetcher,
	questionFetcher questions.Fetcher, overlayLoader geo.OverlayLoader, opts ...Option) (*Pipeline, error) {
	if repos == nil {
		return nil, ErrNilRepositories
	}
	if embedder == nil {
		return nil, ErrNilEmbedder
	}
	if fetcher == nil {
		return nil, ErrNilFetcher
	}
	if questionFetcher == nil {
		return nil, ErrNilQuestionFetcher
	}
	if overlayLoader == nil {
		return nil, ErrNilOverlayLoader
	}

	// A single worker serializes run execution
	pool, err := ants.NewPool(1)
	if err != nil {
		return nil, fmt.Errorf("creating run pool: %w", err)
	}

	p := &Pipeline{
		repos:           repos,
		embedder:        embedder,
		fetcher:         fetcher,
		questionFetcher: questionFetcher,
		overlayLoader:   overlayLoader,
		clusterCfg:      cluster.DefaultConfig(),
		expansionCfg:    taxonomy.DefaultConfig(),
		anomalyCfg:      anomaly.DefaultConfig(),
		pool:            pool,
		logger:          slog.Default().With("component", "pipeline"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Close stops accepting runs and releases the worker pool. Any queued
// run that has not started is abandoned in the queued state.
func (p *Pipeline) Close() error {
	p.pool.Release()
	return nil
}

// validateConfig rejects run configurations before a run record exists.
func validateConfig(cfg core.RunConfig) error {
	if cfg.Geo != "" {
		if len(cfg.Geo) != 2 || strings.ToUpper(cfg.Geo) != cfg.Geo {
			return fmt.Errorf("%w: geo %q must be a two-letter country code", ErrInvalidRunConfig, cfg.Geo)
		}
	}
	return nil
}

// StartRun records a queued run and schedules it for execution. The
// returned run carries the ID to poll with RunStatus.
func (p *Pipeline) StartRun(ctx context.Context, cfg core.RunConfig) (*core.PipelineRun, error) {
	if p.pool.IsClosed() {
		return nil, ErrPipelineClosed
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	run, err := p.repos.Runs.AddRun(ctx, &core.PipelineRun{
		Handle: uuid.NewString(),
		Name:   runName,
		Status: core.RunQueued,
		Config: cfg,
	})
	if err != nil {
		return nil, err
	}

	id := run.Id
	if err := p.pool.Submit(func() {
		p.execute(context.Background(), id)
	}); err != nil {
		return nil, fmt.Errorf("scheduling run %d: %w", id, err)
	}
	return run, nil
}

// Run records a run and executes it synchronously, returning the
// terminal run record.
func (p *Pipeline) Run(ctx context.Context, cfg core.RunConfig) (*core.PipelineRun, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	run, err := p.repos.Runs.AddRun(ctx, &core.PipelineRun{
		Handle: uuid.NewString(),
		Name:   runName,
		Status: core.RunQueued,
		Config: cfg,
	})
	if err != nil {
		return nil, err
	}
	p.execute(ctx, run.Id)
	return p.repos.Runs.GetRun(ctx, run.Id)
}

// RunStatus retrieves the current state of a run.
func (p *Pipeline) RunStatus(ctx context.Context, id core.ID) (*core.PipelineRun, error) {
	return p.repos.Runs.GetRun(ctx, id)
}

// ListRuns retrieves up to limit runs, most recent first.
func (p *Pipeline) ListRuns(ctx context.Context, limit int) ([]*core.PipelineRun, error) {
	return p.repos.Runs.ListRuns(ctx, limit)
}
